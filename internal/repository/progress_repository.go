package repository

import (
	"errors"
	"time"

	"pylearn_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) GetChallengeProgress(userID, challengeID uint) (*model.ChallengeProgress, error) {
	var progress model.ChallengeProgress
	err := r.DB.Where("user_id = ? AND challenge_id = ?", userID, challengeID).First(&progress).Error
	return &progress, err
}

func (r *ProgressRepository) ListChallengeProgress(userID uint) ([]model.ChallengeProgress, error) {
	var progress []model.ChallengeProgress
	err := r.DB.Where("user_id = ?", userID).Order("challenge_id ASC").Find(&progress).Error
	return progress, err
}

func (r *ProgressRepository) CountCompletedChallenges(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.ChallengeProgress{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Count(&count).Error
	return count, err
}

// UpsertArticleProgress (用户, 文章) 至多一行；completed 置位后不回退
func (r *ProgressRepository) UpsertArticleProgress(userID, articleID uint, completed bool, score int) (*model.ArticleProgress, error) {
	var progress model.ArticleProgress
	err := r.DB.Where("user_id = ? AND article_id = ?", userID, articleID).First(&progress).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		progress = model.ArticleProgress{UserID: userID, ArticleID: articleID}
	}

	progress.Completed = progress.Completed || completed
	if score > progress.Score {
		progress.Score = score
	}
	if progress.Completed && progress.CompletedAt == nil {
		now := time.Now()
		progress.CompletedAt = &now
	}

	if err := r.DB.Save(&progress).Error; err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *ProgressRepository) ListArticleProgressViews(userID uint) ([]model.ArticleProgressView, error) {
	var views []model.ArticleProgressView
	err := r.DB.Model(&model.ArticleProgress{}).
		Select("article_progress.article_id, articles.title AS article_title, courses.title AS course_title, article_progress.completed, article_progress.score, article_progress.completed_at").
		Joins("JOIN articles ON articles.id = article_progress.article_id").
		Joins("JOIN courses ON courses.id = articles.course_id").
		Where("article_progress.user_id = ?", userID).
		Order("article_progress.completed_at DESC").
		Scan(&views).Error
	return views, err
}

func (r *ProgressRepository) CountCompletedArticles(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.ArticleProgress{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Count(&count).Error
	return count, err
}

func (r *ProgressRepository) RecentActivities(userID uint, limit int) ([]model.RecentActivity, error) {
	var activities []model.RecentActivity
	err := r.DB.Model(&model.ArticleProgress{}).
		Select("articles.title, article_progress.score, article_progress.completed_at").
		Joins("JOIN articles ON articles.id = article_progress.article_id").
		Where("article_progress.user_id = ?", userID).
		Order("article_progress.completed_at DESC").
		Limit(limit).
		Scan(&activities).Error
	return activities, err
}
