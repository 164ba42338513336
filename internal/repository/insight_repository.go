package repository

import (
	"pylearn_backend/internal/model"

	"gorm.io/gorm"
)

// InsightRepository 启发式评分的输入聚合，单条查询取出全部计数
type InsightRepository struct {
	DB *gorm.DB
}

func NewInsightRepository(db *gorm.DB) *InsightRepository {
	return &InsightRepository{DB: db}
}

func (r *InsightRepository) Aggregates(userID uint) (*model.LearnerAggregates, error) {
	var agg model.LearnerAggregates
	err := r.DB.Raw(`
		SELECT
			(SELECT COUNT(*) FROM submissions WHERE user_id = ?) AS total_attempts,
			(SELECT COALESCE(AVG(score), 0) FROM submissions WHERE user_id = ?) AS average_score,
			(SELECT COUNT(*) FROM challenge_progress WHERE user_id = ? AND completed = ?) AS completed_count,
			(SELECT COALESCE(AVG(best_score), 0) FROM challenge_progress WHERE user_id = ? AND completed = ?) AS avg_completed_score,
			(SELECT COUNT(DISTINCT DATE(created_at)) FROM submissions WHERE user_id = ?) AS active_days`,
		userID, userID, userID, true, userID, true, userID,
	).Scan(&agg).Error
	if err != nil {
		return nil, err
	}
	return &agg, nil
}
