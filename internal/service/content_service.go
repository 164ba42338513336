package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"pylearn_backend/internal/model"
	"pylearn_backend/internal/repository"
	"pylearn_backend/internal/util"
	"pylearn_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	lessonsCacheKey = "content:lessons"
	coursesCacheKey = "content:courses"
	contentCacheTTL = 5 * time.Minute
)

// ContentService 课程目录读取与种子数据写入。
// 列表读多写少，整表缓存在 redis 里，种子写入后失效。
type ContentService struct {
	ContentRepo   *repository.ContentRepository
	ChallengeRepo *repository.ChallengeRepository
	Redis         *redis.Client
	DB            *gorm.DB
}

func NewContentService(
	contentRepo *repository.ContentRepository,
	challengeRepo *repository.ChallengeRepository,
	rdb *redis.Client,
	db *gorm.DB,
) *ContentService {
	return &ContentService{
		ContentRepo:   contentRepo,
		ChallengeRepo: challengeRepo,
		Redis:         rdb,
		DB:            db,
	}
}

func (s *ContentService) GetLessons(ctx context.Context) ([]model.Lesson, error) {
	if s.Redis != nil {
		cached, err := s.Redis.Get(ctx, lessonsCacheKey).Result()
		if err == nil {
			var lessons []model.Lesson
			if json.Unmarshal([]byte(cached), &lessons) == nil {
				return lessons, nil
			}
		}
	}

	lessons, err := s.ContentRepo.FindLessons()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(lessons); err == nil {
			if err := s.Redis.Set(ctx, lessonsCacheKey, data, contentCacheTTL).Err(); err != nil {
				logger.Log.Warn("Failed to cache lessons", zap.Error(err))
			}
		}
	}

	return lessons, nil
}

func (s *ContentService) GetLesson(id uint) (*model.Lesson, error) {
	lesson, err := s.ContentRepo.FindLessonByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLessonNotFound
		}
		return nil, err
	}
	return lesson, nil
}

func (s *ContentService) GetCourses(ctx context.Context, level string) ([]model.Course, error) {
	// 只缓存未过滤的整表
	if level == "" && s.Redis != nil {
		cached, err := s.Redis.Get(ctx, coursesCacheKey).Result()
		if err == nil {
			var courses []model.Course
			if json.Unmarshal([]byte(cached), &courses) == nil {
				return courses, nil
			}
		}
	}

	courses, err := s.ContentRepo.FindCourses(level)
	if err != nil {
		return nil, err
	}

	if level == "" && s.Redis != nil {
		if data, err := json.Marshal(courses); err == nil {
			s.Redis.Set(ctx, coursesCacheKey, data, contentCacheTTL)
		}
	}

	return courses, nil
}

func (s *ContentService) GetCourse(id uint) (*model.Course, error) {
	course, err := s.ContentRepo.FindCourseByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}
	return course, nil
}

func (s *ContentService) GetArticle(id uint) (*model.Article, error) {
	article, err := s.ContentRepo.FindArticleByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrArticleNotFound
		}
		return nil, err
	}
	return article, nil
}

func (s *ContentService) GetChallenges(lessonID uint) ([]model.Challenge, error) {
	return s.ChallengeRepo.FindAll(lessonID)
}

func (s *ContentService) GetChallenge(id uint) (*model.Challenge, error) {
	challenge, err := s.ChallengeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrChallengeNotFound
		}
		return nil, err
	}
	return challenge, nil
}

// SeedData 幂等的样例数据写入：已有课程时不做任何事
func (s *ContentService) SeedData(ctx context.Context) (bool, error) {
	count, err := s.ContentRepo.CountCourses()
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		courses := seedCourses()
		if err := tx.Create(&courses).Error; err != nil {
			return err
		}

		articles := seedArticles(courses)
		if err := tx.Create(&articles).Error; err != nil {
			return err
		}

		quizzes := seedQuizzes(articles)
		if err := tx.Create(&quizzes).Error; err != nil {
			return err
		}

		lessons := seedLessons()
		if err := tx.Create(&lessons).Error; err != nil {
			return err
		}

		challenges := seedChallenges(lessons)
		return tx.Create(&challenges).Error
	})
	if err != nil {
		return false, err
	}

	if s.Redis != nil {
		s.Redis.Del(ctx, lessonsCacheKey, coursesCacheKey)
	}

	return true, nil
}
