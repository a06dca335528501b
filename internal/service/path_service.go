package service

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"learnpath_backend/internal/model"
	"learnpath_backend/internal/repository"
	"learnpath_backend/internal/util"

	"gorm.io/gorm"
)

const (
	// maxPathNodes 路径长度上限，策略常量，与用户每周投入无关
	maxPathNodes = 10
	// upcomingCount 「接下来要学」取前几个未完成节点
	upcomingCount = 3
)

type PathService struct {
	PathRepo     *repository.LearningPathRepository
	ResourceRepo *repository.ResourceRepository
	UserRepo     *repository.UserRepository
}

func NewPathService(
	pathRepo *repository.LearningPathRepository,
	resourceRepo *repository.ResourceRepository,
	userRepo *repository.UserRepository,
) *PathService {
	return &PathService{
		PathRepo:     pathRepo,
		ResourceRepo: resourceRepo,
		UserRepo:     userRepo,
	}
}

// GeneratePathRequest 生成路径时可选的标题/描述/目标覆盖
type GeneratePathRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Goal        string `json:"goal"`
}

// ResourceSummary 节点上展开的资源展示字段
type ResourceSummary struct {
	ID               uint               `json:"id"`
	Title            string             `json:"title"`
	Type             model.ResourceType `json:"type"`
	URL              string             `json:"url"`
	Difficulty       model.Difficulty   `json:"difficulty,omitempty"`
	EstimatedMinutes int                `json:"estimatedMinutes,omitempty"`
}

// NodeResponse 节点及其资源展示字段
type NodeResponse struct {
	ID               string                 `json:"id"`
	PathID           string                 `json:"pathId"`
	Sequence         int                    `json:"sequence"`
	CompletionStatus model.CompletionStatus `json:"completionStatus"`
	Notes            string                 `json:"notes"`
	StartDate        *time.Time             `json:"startDate"`
	CompletionDate   *time.Time             `json:"completionDate"`
	Resource         ResourceSummary        `json:"resource"`
}

// ProgressSummary 读取时派生的完成度，不落库
type ProgressSummary struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
	Percent   int `json:"percent"`
}

// PathResponse 路径 + 节点 + 派生进度
type PathResponse struct {
	Path     model.LearningPath `json:"path"`
	Nodes    []NodeResponse     `json:"nodes"`
	Progress ProgressSummary    `json:"progress"`
	Upcoming []NodeResponse     `json:"upcoming"`
}

// Generate 依据用户兴趣生成新路径。旧的激活路径被置为非激活（保留不删），
// 去激活、建路径、建节点在一个事务内完成，失败整体回滚。
// 无匹配资源时返回 ErrNoResourcesFound，不创建任何记录。
func (s *PathService) Generate(userID uint, req GeneratePathRequest) (*PathResponse, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	resources, err := s.ResourceRepo.FindMatching(user.Interests, model.Difficulty(user.CurrentLevel), maxPathNodes)
	if err != nil {
		return nil, err
	}
	if len(resources) == 0 {
		return nil, util.ErrNoResourcesFound
	}

	goal := req.Goal
	if goal == "" {
		goal = user.Goals
	}

	title := req.Title
	if title == "" {
		title = fmt.Sprintf("Learning Path for %s", strings.Join(user.Interests, ", "))
	}

	description := req.Description
	if description == "" {
		objective := goal
		if objective == "" {
			objective = "your learning objectives"
		}
		description = fmt.Sprintf("A path to achieve %s.", objective)
	}

	path := &model.LearningPath{
		UUIDBase:    model.UUIDBase{ID: model.GenerateUUID()},
		UserID:      userID,
		Title:       title,
		Description: description,
		Goal:        goal,
		IsActive:    true,
	}

	nodes := make([]model.PathNode, len(resources))
	for i, resource := range resources {
		nodes[i] = model.PathNode{
			PathID:           path.ID,
			ResourceID:       resource.ID,
			Sequence:         i + 1,
			CompletionStatus: model.StatusNotStarted,
		}
	}

	if err := s.PathRepo.ReplaceActivePath(path, nodes); err != nil {
		return nil, err
	}

	views := make([]NodeResponse, len(nodes))
	for i := range nodes {
		views[i] = nodeView(&nodes[i], &resources[i])
	}

	return &PathResponse{
		Path:     *path,
		Nodes:    views,
		Progress: progressFor(nodes),
		Upcoming: upcomingOf(views),
	}, nil
}

// GetActive 当前激活路径及其节点，按 sequence 升序
func (s *PathService) GetActive(userID uint) (*PathResponse, error) {
	path, err := s.PathRepo.FindActiveByUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPathNotFound
		}
		return nil, err
	}

	nodes, err := s.PathRepo.FindNodesByPath(path.ID)
	if err != nil {
		return nil, err
	}

	views := make([]NodeResponse, len(nodes))
	for i := range nodes {
		views[i] = nodeView(&nodes[i], nodes[i].Resource)
	}

	return &PathResponse{
		Path:     *path,
		Nodes:    views,
		Progress: progressFor(nodes),
		Upcoming: upcomingOf(views),
	}, nil
}

func nodeView(node *model.PathNode, resource *model.Resource) NodeResponse {
	view := NodeResponse{
		ID:               node.ID,
		PathID:           node.PathID,
		Sequence:         node.Sequence,
		CompletionStatus: node.CompletionStatus,
		Notes:            node.Notes,
		StartDate:        node.StartDate,
		CompletionDate:   node.CompletionDate,
	}
	if resource != nil {
		view.Resource = ResourceSummary{
			ID:               resource.ID,
			Title:            resource.Title,
			Type:             resource.Type,
			URL:              resource.URL,
			Difficulty:       resource.Difficulty,
			EstimatedMinutes: resource.EstimatedMinutes,
		}
	}
	return view
}

func progressFor(nodes []model.PathNode) ProgressSummary {
	total := len(nodes)
	completed := 0
	for i := range nodes {
		if nodes[i].CompletionStatus == model.StatusCompleted {
			completed++
		}
	}

	percent := 0
	if total > 0 {
		percent = int(math.Round(float64(completed) / float64(total) * 100))
	}

	return ProgressSummary{
		Completed: completed,
		Total:     total,
		Percent:   percent,
	}
}

func upcomingOf(views []NodeResponse) []NodeResponse {
	upcoming := make([]NodeResponse, 0, upcomingCount)
	for _, v := range views {
		if v.CompletionStatus == model.StatusCompleted {
			continue
		}
		upcoming = append(upcoming, v)
		if len(upcoming) == upcomingCount {
			break
		}
	}
	return upcoming
}
