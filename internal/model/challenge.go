package model

// TestCase 单个测试用例：给定输入，比对裁剪空白后的完整输出
type TestCase struct {
	Input    string `json:"input"`
	Expected string `json:"expected"`
}

// swagger:model Challenge
type Challenge struct {
	BaseModel
	LessonID    uint        `gorm:"index;not null" json:"lesson_id"`
	Title       string      `gorm:"size:255;not null" json:"title"`
	Description string      `gorm:"type:text" json:"description"`
	StarterCode string      `gorm:"type:text" json:"starter_code"`
	TestCases   []TestCase  `gorm:"serializer:json" json:"test_cases"`
	Difficulty  CourseLevel `gorm:"size:20;default:'beginner'" json:"difficulty"`
	Points      int         `gorm:"default:10" json:"points"`
}

func (Challenge) TableName() string {
	return "challenges"
}
