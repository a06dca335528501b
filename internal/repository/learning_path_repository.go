package repository

import (
	"learnpath_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LearningPathRepository struct {
	DB *gorm.DB
}

func NewLearningPathRepository(db *gorm.DB) *LearningPathRepository {
	return &LearningPathRepository{DB: db}
}

// ReplaceActivePath 在单个事务内将用户现有激活路径全部置为非激活，
// 并创建新路径及其全部节点。任何一步失败则整体回滚，旧路径保持激活。
func (r *LearningPathRepository) ReplaceActivePath(path *model.LearningPath, nodes []model.PathNode) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.LearningPath{}).
			Where("user_id = ? AND is_active = ?", path.UserID, true).
			Update("is_active", false).Error; err != nil {
			return err
		}

		if err := tx.Create(path).Error; err != nil {
			return err
		}

		for i := range nodes {
			nodes[i].PathID = path.ID
		}
		if len(nodes) > 0 {
			if err := tx.Create(&nodes).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *LearningPathRepository) FindActiveByUser(userID uint) (*model.LearningPath, error) {
	var path model.LearningPath
	err := r.DB.Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		First(&path).Error
	return &path, err
}

// FindNodesByPath 返回路径全部节点，按 sequence 升序，预加载资源
func (r *LearningPathRepository) FindNodesByPath(pathID string) ([]model.PathNode, error) {
	var nodes []model.PathNode
	err := r.DB.Where("path_id = ?", pathID).
		Order("sequence ASC").
		Preload("Resource").
		Find(&nodes).Error
	return nodes, err
}

func (r *LearningPathRepository) FindNodeByID(id string) (*model.PathNode, error) {
	var node model.PathNode
	err := r.DB.Where("id = ?", id).
		Preload("Path").
		Preload("Resource").
		First(&node).Error
	return &node, err
}

func (r *LearningPathRepository) UpdateNode(node *model.PathNode) error {
	// Save 覆盖全部列，保证 startDate/completionDate 能被置空
	return r.DB.Omit(clause.Associations).Save(node).Error
}
