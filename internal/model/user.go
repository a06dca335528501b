package model

type SkillLevel string

const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelAdvanced     SkillLevel = "Advanced"
)

func (l SkillLevel) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// LearningPreferences 学习偏好（四个独立开关）
// swagger:model LearningPreferences
type LearningPreferences struct {
	Visual    bool `gorm:"default:false" json:"visual"`
	Audio     bool `gorm:"default:false" json:"audio"`
	Reading   bool `gorm:"default:false" json:"reading"`
	Practical bool `gorm:"default:false" json:"practical"`
}

// swagger:model User
type User struct {
	BaseModel
	Name                string              `gorm:"size:100;not null" json:"name"`
	Email               string              `gorm:"size:100;unique;not null" json:"email"`
	Password            string              `gorm:"size:100;not null" json:"-"`
	Goals               string              `gorm:"type:text" json:"goals"`
	Interests           StringList          `gorm:"type:text" json:"interests"`
	CurrentLevel        SkillLevel          `gorm:"size:20;default:'Beginner'" json:"currentLevel"`
	TimeCommitment      float64             `gorm:"default:5" json:"timeCommitment"` // 每周学习小时数
	LearningPreferences LearningPreferences `gorm:"embedded;embeddedPrefix:pref_" json:"learningPreferences"`
}

func (User) TableName() string {
	return "users"
}
