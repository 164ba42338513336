package service

import (
	"errors"
	"strings"

	"pylearn_backend/internal/model"
	"pylearn_backend/internal/repository"
	"pylearn_backend/internal/util"

	"gorm.io/gorm"
)

type QuizService struct {
	QuizRepo     *repository.QuizRepository
	UserRepo     *repository.UserRepository
	ProgressRepo *repository.ProgressRepository
}

func NewQuizService(
	quizRepo *repository.QuizRepository,
	userRepo *repository.UserRepository,
	progressRepo *repository.ProgressRepository,
) *QuizService {
	return &QuizService{
		QuizRepo:     quizRepo,
		UserRepo:     userRepo,
		ProgressRepo: progressRepo,
	}
}

// QuizResult 答错时才回显正确答案
type QuizResult struct {
	Correct       bool   `json:"correct"`
	PointsEarned  int    `json:"points_earned"`
	CorrectAnswer string `json:"correct_answer,omitempty"`
}

// GetArticleQuizzes 某篇文章下的全部测验题（不含正确答案）
func (s *QuizService) GetArticleQuizzes(articleID uint) ([]model.Quiz, error) {
	return s.QuizRepo.FindByArticleID(articleID)
}

// SubmitQuiz 大小写不敏感比对选项，答对一次性加满分值，无部分给分
func (s *QuizService) SubmitQuiz(userID, quizID uint, answer string) (*QuizResult, error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return nil, util.ErrEmptySubmission
	}

	quiz, err := s.QuizRepo.FindByID(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}

	correct := strings.EqualFold(answer, quiz.CorrectAnswer)
	if !correct {
		return &QuizResult{
			Correct:       false,
			PointsEarned:  0,
			CorrectAnswer: quiz.CorrectAnswer,
		}, nil
	}

	if err := s.UserRepo.AddPoints(userID, quiz.Points); err != nil {
		return nil, err
	}

	// 记录文章维度的得分，不改变完成状态
	if _, err := s.ProgressRepo.UpsertArticleProgress(userID, quiz.ArticleID, false, quiz.Points); err != nil {
		return nil, err
	}

	return &QuizResult{
		Correct:      true,
		PointsEarned: quiz.Points,
	}, nil
}
