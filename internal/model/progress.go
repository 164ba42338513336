package model

import "time"

// ChallengeProgress 每个 (用户, 挑战) 至多一行，由唯一索引保证。
// BestScore 只增不减；Completed 置位后不再回退。
type ChallengeProgress struct {
	BaseModel
	UserID        uint       `gorm:"uniqueIndex:idx_user_challenge;not null" json:"user_id"`
	ChallengeID   uint       `gorm:"uniqueIndex:idx_user_challenge;not null" json:"challenge_id"`
	Completed     bool       `gorm:"default:false" json:"completed"`
	BestScore     float64    `gorm:"default:0" json:"best_score"`
	Attempts      int        `gorm:"default:0" json:"attempts"`
	LastSubmitted *time.Time `json:"last_submitted,omitempty"`
}

func (ChallengeProgress) TableName() string {
	return "challenge_progress"
}

// ArticleProgress 文章维度的完成状态，测验提交与显式进度上报共用
type ArticleProgress struct {
	BaseModel
	UserID      uint       `gorm:"uniqueIndex:idx_user_article;not null" json:"user_id"`
	ArticleID   uint       `gorm:"uniqueIndex:idx_user_article;not null" json:"article_id"`
	Completed   bool       `gorm:"default:false" json:"completed"`
	Score       int        `gorm:"default:0" json:"score"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func (ArticleProgress) TableName() string {
	return "article_progress"
}
