package repository

import (
	"pylearn_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.First(&quiz, id).Error
	return &quiz, err
}

func (r *QuizRepository) FindByArticleID(articleID uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Where("article_id = ?", articleID).Find(&quizzes).Error
	return quizzes, err
}
