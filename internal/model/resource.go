package model

type ResourceType string

const (
	TypeVideo    ResourceType = "video"
	TypeArticle  ResourceType = "article"
	TypeCourse   ResourceType = "course"
	TypeBook     ResourceType = "book"
	TypeTutorial ResourceType = "tutorial"
	TypeOther    ResourceType = "other"
)

func (t ResourceType) Valid() bool {
	switch t {
	case TypeVideo, TypeArticle, TypeCourse, TypeBook, TypeTutorial, TypeOther:
		return true
	}
	return false
}

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
	DifficultyAll          Difficulty = "All"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced, DifficultyAll:
		return true
	}
	return false
}

// Resource 学习资源目录条目，指向外部学习材料
// swagger:model Resource
type Resource struct {
	BaseModel
	Title            string       `gorm:"size:255;not null" json:"title"`
	Description      string       `gorm:"type:text" json:"description"`
	Type             ResourceType `gorm:"size:20;not null" json:"type"`
	Difficulty       Difficulty   `gorm:"size:20;default:'All'" json:"difficulty"`
	TopicTags        StringList   `gorm:"type:text" json:"topicTags"`
	URL              string       `gorm:"size:255;not null" json:"url"`
	EstimatedMinutes int          `gorm:"default:0" json:"estimatedMinutes"` // 预计完成时长（分钟）
	CreatedByID      *uint        `gorm:"index" json:"createdById,omitempty"`
}

func (Resource) TableName() string {
	return "resources"
}
