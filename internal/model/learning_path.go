package model

import "time"

type CompletionStatus string

const (
	StatusNotStarted CompletionStatus = "Not Started"
	StatusInProgress CompletionStatus = "In Progress"
	StatusCompleted  CompletionStatus = "Completed"
)

func (s CompletionStatus) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// LearningPath 一个用户的有序学习路径；同一用户最多只有一条处于激活状态
// swagger:model LearningPath
type LearningPath struct {
	UUIDBase
	UserID      uint   `gorm:"index;not null" json:"userId"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Goal        string `gorm:"type:text" json:"goal"`
	IsActive    bool   `gorm:"index;default:true" json:"isActive"`
}

func (LearningPath) TableName() string {
	return "learning_paths"
}

// PathNode 路径中的一步，sequence 在同一路径内唯一
// swagger:model PathNode
type PathNode struct {
	UUIDBase
	PathID           string           `gorm:"type:varchar(36);not null;uniqueIndex:idx_path_sequence" json:"pathId"`
	ResourceID       uint             `gorm:"index;not null" json:"resourceId"`
	Sequence         int              `gorm:"not null;uniqueIndex:idx_path_sequence" json:"sequence"`
	CompletionStatus CompletionStatus `gorm:"size:20;default:'Not Started'" json:"completionStatus"`
	Notes            string           `gorm:"type:text" json:"notes"`
	StartDate        *time.Time       `json:"startDate"`
	CompletionDate   *time.Time       `json:"completionDate"`

	Resource *Resource     `gorm:"foreignKey:ResourceID" json:"-"`
	Path     *LearningPath `gorm:"foreignKey:PathID" json:"-"`
}

func (PathNode) TableName() string {
	return "path_nodes"
}
