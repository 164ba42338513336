package service

import (
	"errors"
	"math"

	"pylearn_backend/internal/model"
	"pylearn_backend/internal/repository"
	"pylearn_backend/internal/util"

	"gorm.io/gorm"
)

type ProgressService struct {
	ProgressRepo   *repository.ProgressRepository
	SubmissionRepo *repository.SubmissionRepository
	ContentRepo    *repository.ContentRepository
	ChallengeRepo  *repository.ChallengeRepository
	UserRepo       *repository.UserRepository
}

func NewProgressService(
	progressRepo *repository.ProgressRepository,
	submissionRepo *repository.SubmissionRepository,
	contentRepo *repository.ContentRepository,
	challengeRepo *repository.ChallengeRepository,
	userRepo *repository.UserRepository,
) *ProgressService {
	return &ProgressService{
		ProgressRepo:   progressRepo,
		SubmissionRepo: submissionRepo,
		ContentRepo:    contentRepo,
		ChallengeRepo:  challengeRepo,
		UserRepo:       userRepo,
	}
}

func (s *ProgressService) UpdateArticleProgress(userID, articleID uint, completed bool, score int) (*model.ArticleProgress, error) {
	if _, err := s.ContentRepo.FindArticleByID(articleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrArticleNotFound
		}
		return nil, err
	}
	return s.ProgressRepo.UpsertArticleProgress(userID, articleID, completed, score)
}

func (s *ProgressService) GetArticleProgress(userID uint) ([]model.ArticleProgressView, error) {
	return s.ProgressRepo.ListArticleProgressViews(userID)
}

func (s *ProgressService) GetChallengeProgress(userID uint) ([]model.ChallengeProgress, error) {
	return s.ProgressRepo.ListChallengeProgress(userID)
}

// GetChallengeProgressDetail 单个挑战的进度；尚未提交过时返回零值进度而非 404
func (s *ProgressService) GetChallengeProgressDetail(userID, challengeID uint) (*model.ChallengeProgress, error) {
	if _, err := s.ChallengeRepo.FindByID(challengeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrChallengeNotFound
		}
		return nil, err
	}

	progress, err := s.ProgressRepo.GetChallengeProgress(userID, challengeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &model.ChallengeProgress{UserID: userID, ChallengeID: challengeID}, nil
		}
		return nil, err
	}
	return progress, nil
}

// GetUserStats 文章维度的统计视图
func (s *ProgressService) GetUserStats(userID uint) (*model.UserStats, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	completed, err := s.ProgressRepo.CountCompletedArticles(userID)
	if err != nil {
		return nil, err
	}

	total, err := s.ContentRepo.CountArticles()
	if err != nil {
		return nil, err
	}

	activities, err := s.ProgressRepo.RecentActivities(userID, 5)
	if err != nil {
		return nil, err
	}

	rate := 0.0
	if total > 0 {
		rate = round1(float64(completed) / float64(total) * 100)
	}

	return &model.UserStats{
		Username:          user.Username,
		TotalPoints:       user.TotalPoints,
		CompletedArticles: int(completed),
		TotalArticles:     int(total),
		CompletionRate:    rate,
		RecentActivities:  activities,
	}, nil
}

// GetChallengeStats 挑战维度的统计视图（/api/user/stats）
func (s *ProgressService) GetChallengeStats(userID uint) (*model.ChallengeStats, error) {
	totalLessons, err := s.ContentRepo.CountLessons()
	if err != nil {
		return nil, err
	}

	totalChallenges, err := s.ChallengeRepo.Count()
	if err != nil {
		return nil, err
	}

	completed, err := s.ProgressRepo.CountCompletedChallenges(userID)
	if err != nil {
		return nil, err
	}

	avgScore, err := s.SubmissionRepo.AverageScore(userID)
	if err != nil {
		return nil, err
	}

	rate := 0.0
	if totalChallenges > 0 {
		rate = round1(float64(completed) / float64(totalChallenges) * 100)
	}

	return &model.ChallengeStats{
		TotalLessons:        int(totalLessons),
		TotalChallenges:     int(totalChallenges),
		CompletedChallenges: int(completed),
		CompletionRate:      rate,
		AverageScore:        round1(avgScore),
	}, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
