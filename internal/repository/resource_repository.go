package repository

import (
	"strings"

	"learnpath_backend/internal/model"

	"gorm.io/gorm"
)

type ResourceRepository struct {
	DB *gorm.DB
}

func NewResourceRepository(db *gorm.DB) *ResourceRepository {
	return &ResourceRepository{DB: db}
}

func (r *ResourceRepository) Create(resource *model.Resource) error {
	return r.DB.Create(resource).Error
}

func (r *ResourceRepository) FindByID(id uint) (*model.Resource, error) {
	var resource model.Resource
	err := r.DB.First(&resource, id).Error
	return &resource, err
}

func (r *ResourceRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Resource{}).Count(&count).Error
	return count, err
}

// likeEscaper 转义 LIKE 通配符，输入中的 % 和 _ 只做字面匹配。
// 转义符选用 ! 而非反斜杠，避开 MySQL 字符串字面量的反斜杠语义
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func likePattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}

// ResourceQuery 资源库列表的筛选条件，条件之间为 AND
type ResourceQuery struct {
	Search     string
	Type       string
	Difficulty string
	Tag        string
}

// Search 资源库检索：search 对标题或描述做大小写不敏感的模糊匹配，
// 其余条件精确或模糊 AND；无任何条件时返回全量目录
func (r *ResourceRepository) Search(q ResourceQuery) ([]model.Resource, error) {
	var resources []model.Resource
	query := r.DB.Model(&model.Resource{})

	if q.Search != "" {
		pattern := likePattern(q.Search)
		query = query.Where("LOWER(title) LIKE ? ESCAPE '!' OR LOWER(description) LIKE ? ESCAPE '!'", pattern, pattern)
	}
	if q.Type != "" {
		query = query.Where("type = ?", q.Type)
	}
	if q.Difficulty != "" {
		query = query.Where("difficulty = ?", q.Difficulty)
	}
	if q.Tag != "" {
		query = query.Where("LOWER(topic_tags) LIKE ? ESCAPE '!'", likePattern(q.Tag))
	}

	err := query.Find(&resources).Error
	return resources, err
}

// FindMatching 路径生成的资源匹配：任一兴趣标签作为大小写不敏感子串
// 命中任一资源标签即算匹配，兴趣中的 % 和 _ 按字面处理。无标签输入
// 直接返回空集；无排序，结果按存储顺序截断到 limit。difficulty 保留
// 在签名中但不作硬过滤，匹配完全由标签驱动。
func (r *ResourceRepository) FindMatching(tags []string, difficulty model.Difficulty, limit int) ([]model.Resource, error) {
	if len(tags) == 0 {
		return nil, nil
	}

	query := r.DB.Model(&model.Resource{})

	conds := make([]string, 0, len(tags))
	args := make([]interface{}, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		conds = append(conds, "LOWER(topic_tags) LIKE ? ESCAPE '!'")
		args = append(args, likePattern(tag))
	}
	if len(conds) == 0 {
		return nil, nil
	}

	var resources []model.Resource
	err := query.Where(strings.Join(conds, " OR "), args...).
		Limit(limit).
		Find(&resources).Error
	return resources, err
}
