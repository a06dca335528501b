package service

import (
	"errors"
	"time"

	"learnpath_backend/internal/model"
	"learnpath_backend/internal/repository"
	"learnpath_backend/internal/util"

	"gorm.io/gorm"
)

type ProgressService struct {
	PathRepo *repository.LearningPathRepository
}

func NewProgressService(pathRepo *repository.LearningPathRepository) *ProgressService {
	return &ProgressService{PathRepo: pathRepo}
}

// UpdateNodeRequest 节点状态更新：completionStatus 缺省不变；
// notes 只要出现（含空串）就整体覆盖
type UpdateNodeRequest struct {
	CompletionStatus *string `json:"completionStatus"`
	Notes            *string `json:"notes"`
}

// UpdateNode 修改单个节点的状态并派生日期：
// 首次进入 Completed 记 completionDate，首次进入 In Progress 记
// startDate，回到 Not Started 无条件清空两者。只有路径属主可修改。
func (s *ProgressService) UpdateNode(nodeID string, callerID uint, req UpdateNodeRequest) (*NodeResponse, error) {
	node, err := s.PathRepo.FindNodeByID(nodeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNodeNotFound
		}
		return nil, err
	}

	if node.Path == nil || node.Path.UserID != callerID {
		return nil, util.ErrPermissionDenied
	}

	if req.CompletionStatus != nil {
		status := model.CompletionStatus(*req.CompletionStatus)
		if !status.Valid() {
			return nil, util.ErrInvalidStatus
		}
		node.CompletionStatus = status

		switch status {
		case model.StatusCompleted:
			if node.CompletionDate == nil {
				now := time.Now()
				node.CompletionDate = &now
			}
		case model.StatusInProgress:
			if node.StartDate == nil {
				now := time.Now()
				node.StartDate = &now
			}
		case model.StatusNotStarted:
			node.StartDate = nil
			node.CompletionDate = nil
		}
	}

	if req.Notes != nil {
		node.Notes = *req.Notes
	}

	if err := s.PathRepo.UpdateNode(node); err != nil {
		return nil, err
	}

	// 前端只需要最小的资源展示字段
	view := nodeView(node, nil)
	if node.Resource != nil {
		view.Resource = ResourceSummary{
			ID:    node.Resource.ID,
			Title: node.Resource.Title,
			Type:  node.Resource.Type,
			URL:   node.Resource.URL,
		}
	}
	return &view, nil
}
