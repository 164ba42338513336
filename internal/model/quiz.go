package model

// Quiz 单选题，正确答案只在判分时使用，不随题目下发
// swagger:model Quiz
type Quiz struct {
	BaseModel
	ArticleID     uint   `gorm:"index;not null" json:"article_id"`
	Question      string `gorm:"type:text;not null" json:"question"`
	OptionA       string `gorm:"size:255;not null" json:"option_a"`
	OptionB       string `gorm:"size:255;not null" json:"option_b"`
	OptionC       string `gorm:"size:255;not null" json:"option_c"`
	OptionD       string `gorm:"size:255;not null" json:"option_d"`
	CorrectAnswer string `gorm:"size:1;not null" json:"-"`
	Points        int    `gorm:"default:10" json:"points"`
}

func (Quiz) TableName() string {
	return "quizzes"
}
