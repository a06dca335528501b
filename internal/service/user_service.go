package service

import (
	"errors"
	"strings"

	"learnpath_backend/internal/model"
	"learnpath_backend/internal/repository"
	"learnpath_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

// UpdateProfileRequest 档案部分更新：nil 字段保持原值
type UpdateProfileRequest struct {
	Name                *string                    `json:"name" binding:"omitempty,min=1"`
	Email               *string                    `json:"email" binding:"omitempty,email"`
	Password            *string                    `json:"password" binding:"omitempty,min=6"`
	Goals               *string                    `json:"goals"`
	Interests           *[]string                  `json:"interests"`
	CurrentLevel        *string                    `json:"currentLevel" binding:"omitempty,oneof=Beginner Intermediate Advanced"`
	TimeCommitment      *float64                   `json:"timeCommitment" binding:"omitempty,gt=0"`
	LearningPreferences *model.LearningPreferences `json:"learningPreferences"`
}

func (s *UserService) UpdateProfile(userID uint, req UpdateProfileRequest) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != user.Email {
			taken, err := s.UserRepo.EmailInUse(email, user.ID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, util.ErrEmailRegistered
			}
			user.Email = email
		}
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashed)
	}
	if req.Goals != nil {
		user.Goals = *req.Goals
	}
	if req.Interests != nil {
		user.Interests = model.StringList(*req.Interests)
	}
	if req.CurrentLevel != nil {
		user.CurrentLevel = model.SkillLevel(*req.CurrentLevel)
	}
	if req.TimeCommitment != nil {
		user.TimeCommitment = *req.TimeCommitment
	}
	if req.LearningPreferences != nil {
		user.LearningPreferences = *req.LearningPreferences
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
