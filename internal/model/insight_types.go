package model

import "time"

// LearnerAggregates 启发式评分的全部输入，由一次聚合查询算出
type LearnerAggregates struct {
	TotalAttempts     int     `json:"total_attempts"`
	AverageScore      float64 `json:"average_score"`
	CompletedCount    int     `json:"completed_count"`
	AvgCompletedScore float64 `json:"avg_completed_score"`
	ActiveDays        int     `json:"active_days"`
}

// LearnerScores 四项单位区间分值与加权综合分
type LearnerScores struct {
	Engagement     float64 `json:"engagement"`
	Performance    float64 `json:"performance"`
	CompletionRate float64 `json:"completion_rate"`
	Consistency    float64 `json:"consistency"`
	Skill          float64 `json:"skill_estimate"`
}

// ArticleProgressView 进度查询的联表结果（带文章/课程标题）
type ArticleProgressView struct {
	ArticleID    uint       `json:"article_id"`
	ArticleTitle string     `json:"article_title"`
	CourseTitle  string     `json:"course_title"`
	Completed    bool       `json:"completed"`
	Score        int        `json:"score"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

type RecentActivity struct {
	Title       string     `json:"title"`
	Score       int        `json:"score"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// UserStats /api/stats/:userId 的聚合视图
type UserStats struct {
	Username          string           `json:"username"`
	TotalPoints       int              `json:"total_points"`
	CompletedArticles int              `json:"completed_articles"`
	TotalArticles     int              `json:"total_articles"`
	CompletionRate    float64          `json:"completion_rate"`
	RecentActivities  []RecentActivity `json:"recent_activities"`
}

// ChallengeStats /api/user/stats 的聚合视图
type ChallengeStats struct {
	TotalLessons        int     `json:"total_lessons"`
	TotalChallenges     int     `json:"total_challenges"`
	CompletedChallenges int     `json:"completed_challenges"`
	CompletionRate      float64 `json:"completion_rate"`
	AverageScore        float64 `json:"average_score"`
}
