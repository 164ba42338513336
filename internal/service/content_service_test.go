package service

import (
	"context"
	"errors"
	"testing"

	"pylearn_backend/internal/model"
	"pylearn_backend/internal/repository"
	"pylearn_backend/internal/util"

	"gorm.io/gorm"
)

func newContentService(db *gorm.DB) *ContentService {
	return NewContentService(
		repository.NewContentRepository(db),
		repository.NewChallengeRepository(db),
		nil, // 测试不走 redis 缓存
		db,
	)
}

func TestSeedData_Idempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newContentService(db)
	ctx := context.Background()

	inserted, err := svc.SeedData(ctx)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if !inserted {
		t.Fatalf("first seed must insert")
	}

	var before int64
	if err := db.Model(&model.Course{}).Count(&before).Error; err != nil {
		t.Fatalf("count courses: %v", err)
	}
	if before == 0 {
		t.Fatalf("seed inserted no courses")
	}

	inserted, err = svc.SeedData(ctx)
	if err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if inserted {
		t.Fatalf("second seed must be a no-op")
	}

	var after int64
	if err := db.Model(&model.Course{}).Count(&after).Error; err != nil {
		t.Fatalf("count courses: %v", err)
	}
	if before != after {
		t.Fatalf("second seed changed row count: %d -> %d", before, after)
	}
}

func TestGetLessons_OrderedByOrderNum(t *testing.T) {
	db := newTestDB(t)
	svc := newContentService(db)

	if _, err := svc.SeedData(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	lessons, err := svc.GetLessons(context.Background())
	if err != nil {
		t.Fatalf("get lessons: %v", err)
	}
	if len(lessons) == 0 {
		t.Fatalf("expected seeded lessons")
	}
	for i := 1; i < len(lessons); i++ {
		if lessons[i-1].OrderNum > lessons[i].OrderNum {
			t.Fatalf("lessons out of order at %d: %d > %d", i, lessons[i-1].OrderNum, lessons[i].OrderNum)
		}
	}
}

func TestGetCourses_LevelFilter(t *testing.T) {
	db := newTestDB(t)
	svc := newContentService(db)

	if _, err := svc.SeedData(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	all, err := svc.GetCourses(context.Background(), "")
	if err != nil {
		t.Fatalf("get all courses: %v", err)
	}
	beginner, err := svc.GetCourses(context.Background(), "beginner")
	if err != nil {
		t.Fatalf("get beginner courses: %v", err)
	}
	if len(beginner) == 0 || len(beginner) >= len(all) {
		t.Fatalf("filter must narrow the list: all=%d beginner=%d", len(all), len(beginner))
	}
	for _, course := range beginner {
		if course.Level != model.Beginner {
			t.Fatalf("filter leaked course with level %q", course.Level)
		}
	}
}

func TestGetCourse_PreloadsArticles(t *testing.T) {
	db := newTestDB(t)
	svc := newContentService(db)

	if _, err := svc.SeedData(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	courses, err := svc.GetCourses(context.Background(), "")
	if err != nil {
		t.Fatalf("get courses: %v", err)
	}

	found := false
	for _, c := range courses {
		course, err := svc.GetCourse(c.ID)
		if err != nil {
			t.Fatalf("get course %d: %v", c.ID, err)
		}
		if len(course.Articles) > 0 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected at least one course with preloaded articles")
	}
}

func TestContentNotFoundSentinels(t *testing.T) {
	db := newTestDB(t)
	svc := newContentService(db)

	if _, err := svc.GetLesson(999); !errors.Is(err, util.ErrLessonNotFound) {
		t.Fatalf("expected ErrLessonNotFound, got %v", err)
	}
	if _, err := svc.GetCourse(999); !errors.Is(err, util.ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
	if _, err := svc.GetArticle(999); !errors.Is(err, util.ErrArticleNotFound) {
		t.Fatalf("expected ErrArticleNotFound, got %v", err)
	}
	if _, err := svc.GetChallenge(999); !errors.Is(err, util.ErrChallengeNotFound) {
		t.Fatalf("expected ErrChallengeNotFound, got %v", err)
	}
}

func TestGetChallenges_LessonFilter(t *testing.T) {
	db := newTestDB(t)
	svc := newContentService(db)

	if _, err := svc.SeedData(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	all, err := svc.GetChallenges(0)
	if err != nil {
		t.Fatalf("get challenges: %v", err)
	}
	if len(all) == 0 {
		t.Fatalf("expected seeded challenges")
	}

	lessonID := all[0].LessonID
	filtered, err := svc.GetChallenges(lessonID)
	if err != nil {
		t.Fatalf("filtered challenges: %v", err)
	}
	for _, ch := range filtered {
		if ch.LessonID != lessonID {
			t.Fatalf("filter leaked challenge from lesson %d", ch.LessonID)
		}
	}
}
