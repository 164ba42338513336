package model

// Submission 一次挑战提交的不可变记录，创建后不再更新
// swagger:model Submission
type Submission struct {
	UUIDBase
	UserID      uint    `gorm:"index;not null" json:"user_id"`
	ChallengeID uint    `gorm:"index;not null" json:"challenge_id"`
	Code        string  `gorm:"type:text;not null" json:"-"`
	PassedTests int     `gorm:"default:0" json:"passed_tests"`
	TotalTests  int     `gorm:"default:0" json:"total_tests"`
	Score       float64 `gorm:"default:0" json:"score"`
}

func (Submission) TableName() string {
	return "submissions"
}
