package repository

import (
	"pylearn_backend/internal/model"

	"gorm.io/gorm"
)

// ContentRepository 只读的课程目录：课时、课程、文章及其测验
type ContentRepository struct {
	DB *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{DB: db}
}

func (r *ContentRepository) FindLessons() ([]model.Lesson, error) {
	var lessons []model.Lesson
	err := r.DB.Order("order_num ASC").Find(&lessons).Error
	return lessons, err
}

func (r *ContentRepository) FindLessonByID(id uint) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.DB.First(&lesson, id).Error
	return &lesson, err
}

func (r *ContentRepository) FindCourses(level string) ([]model.Course, error) {
	var courses []model.Course
	query := r.DB.Order("level ASC, order_num ASC")
	if level != "" {
		query = r.DB.Where("level = ?", level).Order("order_num ASC")
	}
	err := query.Find(&courses).Error
	return courses, err
}

func (r *ContentRepository) FindCourseByID(id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.Preload("Articles", func(db *gorm.DB) *gorm.DB {
		return db.Order("articles.order_num ASC")
	}).First(&course, id).Error
	return &course, err
}

func (r *ContentRepository) FindArticleByID(id uint) (*model.Article, error) {
	var article model.Article
	err := r.DB.Preload("Quizzes").First(&article, id).Error
	return &article, err
}

func (r *ContentRepository) CountCourses() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Course{}).Count(&count).Error
	return count, err
}

func (r *ContentRepository) CountArticles() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Article{}).Count(&count).Error
	return count, err
}

func (r *ContentRepository) CountLessons() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Lesson{}).Count(&count).Error
	return count, err
}
