package repository

import (
	"pylearn_backend/internal/model"

	"gorm.io/gorm"
)

type ChallengeRepository struct {
	DB *gorm.DB
}

func NewChallengeRepository(db *gorm.DB) *ChallengeRepository {
	return &ChallengeRepository{DB: db}
}

func (r *ChallengeRepository) FindAll(lessonID uint) ([]model.Challenge, error) {
	var challenges []model.Challenge
	query := r.DB.Order("lesson_id ASC, id ASC")
	if lessonID > 0 {
		query = query.Where("lesson_id = ?", lessonID)
	}
	err := query.Find(&challenges).Error
	return challenges, err
}

func (r *ChallengeRepository) FindByID(id uint) (*model.Challenge, error) {
	var challenge model.Challenge
	err := r.DB.First(&challenge, id).Error
	return &challenge, err
}

func (r *ChallengeRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Challenge{}).Count(&count).Error
	return count, err
}
