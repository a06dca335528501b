package service

import (
	"errors"

	"learnpath_backend/internal/model"
	"learnpath_backend/internal/repository"
	"learnpath_backend/internal/util"

	"gorm.io/gorm"
)

type ResourceService struct {
	ResourceRepo *repository.ResourceRepository
}

func NewResourceService(resourceRepo *repository.ResourceRepository) *ResourceService {
	return &ResourceService{ResourceRepo: resourceRepo}
}

func (s *ResourceService) List(q repository.ResourceQuery) ([]model.Resource, error) {
	resources, err := s.ResourceRepo.Search(q)
	if err != nil {
		return nil, err
	}
	if resources == nil {
		resources = []model.Resource{}
	}
	return resources, nil
}

func (s *ResourceService) Get(id uint) (*model.Resource, error) {
	resource, err := s.ResourceRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrResourceNotFound
		}
		return nil, err
	}
	return resource, nil
}
