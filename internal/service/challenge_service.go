package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"pylearn_backend/internal/model"
	"pylearn_backend/internal/repository"
	"pylearn_backend/internal/util"
	"pylearn_backend/pkg/logger"
	"pylearn_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ChallengeService 挑战判分：逐个用例执行提交代码并比对输出
type ChallengeService struct {
	ChallengeRepo  *repository.ChallengeRepository
	ProgressRepo   *repository.ProgressRepository
	SubmissionRepo *repository.SubmissionRepository
	Runner         CodeRunner
	DB             *gorm.DB
}

func NewChallengeService(
	challengeRepo *repository.ChallengeRepository,
	progressRepo *repository.ProgressRepository,
	submissionRepo *repository.SubmissionRepository,
	runner CodeRunner,
	db *gorm.DB,
) *ChallengeService {
	return &ChallengeService{
		ChallengeRepo:  challengeRepo,
		ProgressRepo:   progressRepo,
		SubmissionRepo: submissionRepo,
		Runner:         runner,
		DB:             db,
	}
}

// SubmissionResult 一次提交的判分结果与更新后的进度
type SubmissionResult struct {
	SubmissionID string  `json:"submission_id"`
	PassedTests  int     `json:"passed"`
	TotalTests   int     `json:"total"`
	Score        float64 `json:"score"`
	Completed    bool    `json:"completed"`
	BestScore    float64 `json:"best_score"`
	Attempts     int     `json:"attempts"`
}

func (s *ChallengeService) SubmitChallenge(ctx context.Context, userID, challengeID uint, code string) (*SubmissionResult, error) {
	if strings.TrimSpace(code) == "" {
		return nil, util.ErrEmptySubmission
	}

	challenge, err := s.ChallengeRepo.FindByID(challengeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrChallengeNotFound
		}
		return nil, err
	}

	passed, total := s.runTestCases(ctx, code, challenge.TestCases)
	score := RoundScore(passed, total)
	allPassed := total > 0 && passed == total

	submission := &model.Submission{
		UserID:      userID,
		ChallengeID: challengeID,
		Code:        code,
		PassedTests: passed,
		TotalTests:  total,
		Score:       score,
	}

	var progress *model.ChallengeProgress
	// 提交记录与进度更新在同一事务中落库
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(submission).Error; err != nil {
			return err
		}

		var p model.ChallengeProgress
		err := tx.Where("user_id = ? AND challenge_id = ?", userID, challengeID).First(&p).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			p = model.ChallengeProgress{UserID: userID, ChallengeID: challengeID}
		}

		now := time.Now()
		p.Attempts++
		p.LastSubmitted = &now
		if score > p.BestScore {
			p.BestScore = score
		}
		// 完成标记只进不退
		if allPassed {
			p.Completed = true
		}

		if err := tx.Save(&p).Error; err != nil {
			return err
		}
		progress = &p
		return nil
	})
	if err != nil {
		return nil, err
	}

	outcome := "failed"
	if allPassed {
		outcome = "passed"
	}
	monitoring.SubmissionCounter.WithLabelValues(outcome).Inc()

	return &SubmissionResult{
		SubmissionID: submission.ID,
		PassedTests:  passed,
		TotalTests:   total,
		Score:        score,
		Completed:    progress.Completed,
		BestScore:    progress.BestScore,
		Attempts:     progress.Attempts,
	}, nil
}

// runTestCases 逐个用例执行。执行失败（语法/运行时/判题端不可达）计为该用例未通过，
// 不向上传播为请求错误。
func (s *ChallengeService) runTestCases(ctx context.Context, code string, cases []model.TestCase) (passed, total int) {
	total = len(cases)
	for _, tc := range cases {
		result, err := s.Runner.Run(ctx, code, tc.Input)
		if err != nil {
			logger.Log.Warn("Test case execution failed", zap.Error(err))
			continue
		}
		if OutputMatches(result.Stdout, tc.Expected) {
			passed++
		}
	}
	return passed, total
}

// ExecuteCode 单次试运行，不记录提交
func (s *ChallengeService) ExecuteCode(ctx context.Context, code string) (*RunResult, error) {
	if strings.TrimSpace(code) == "" {
		return nil, util.ErrEmptySubmission
	}
	return s.Runner.Run(ctx, code, "")
}

// OutputMatches 裁剪首尾空白后的精确比对
func OutputMatches(actual, expected string) bool {
	return strings.TrimSpace(actual) == strings.TrimSpace(expected)
}

// RoundScore passes/total × 100，保留一位小数
func RoundScore(passed, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(passed)/float64(total)*1000) / 10
}
