package service

import (
	"errors"
	"math"

	"pylearn_backend/internal/model"
	"pylearn_backend/internal/repository"
	"pylearn_backend/internal/util"

	"gorm.io/gorm"
)

// 启发式评分的固定权重与阈值。这里没有训练过程，也没有持久化的模型，
// 全部输出都是对聚合计数的确定性算术。
const (
	weightEngagement  = 0.25
	weightPerformance = 0.50
	weightCompletion  = 0.15
	weightConsistency = 0.10

	engagementWindowDays  = 30.0
	consistencyWindowDays = 14.0

	easyThreshold     = 0.3
	moderateThreshold = 0.6
)

var difficultyConstants = map[model.CourseLevel]float64{
	model.Beginner:     0.3,
	model.Intermediate: 0.6,
	model.Advanced:     0.9,
}

// InsightService /api/ml 路由背后的启发式评分
type InsightService struct {
	InsightRepo *repository.InsightRepository
	UserRepo    *repository.UserRepository
}

func NewInsightService(insightRepo *repository.InsightRepository, userRepo *repository.UserRepository) *InsightService {
	return &InsightService{
		InsightRepo: insightRepo,
		UserRepo:    userRepo,
	}
}

// ComputeScores 四项分值均被钳制到 [0,1]，综合分为固定权重加权和
func ComputeScores(agg *model.LearnerAggregates) model.LearnerScores {
	engagement := clamp01(float64(agg.ActiveDays) / engagementWindowDays)
	performance := clamp01(agg.AverageScore / 100)
	completion := clamp01(float64(agg.CompletedCount) / math.Max(float64(agg.TotalAttempts), 1))
	consistency := clamp01(float64(agg.ActiveDays) / consistencyWindowDays)

	skill := weightEngagement*engagement +
		weightPerformance*performance +
		weightCompletion*completion +
		weightConsistency*consistency

	return model.LearnerScores{
		Engagement:     engagement,
		Performance:    performance,
		CompletionRate: completion,
		Consistency:    consistency,
		Skill:          skill,
	}
}

// DifficultyLabel 综合分与难度常量的绝对差映射到三档标签
func DifficultyLabel(skill float64, level model.CourseLevel) (string, float64) {
	constant, ok := difficultyConstants[level]
	if !ok {
		constant = difficultyConstants[model.Beginner]
	}

	diff := math.Abs(constant - skill)
	switch {
	case diff < easyThreshold:
		return "Easy", diff
	case diff < moderateThreshold:
		return "Moderate", diff
	default:
		return "Challenging", diff
	}
}

// UserAnalysis /api/ml/user-analysis/:id 的完整输出
type UserAnalysis struct {
	UserID     uint                    `json:"user_id"`
	Aggregates model.LearnerAggregates `json:"aggregates"`
	Scores     model.LearnerScores     `json:"scores"`
}

func (s *InsightService) AnalyzeUser(userID uint) (*UserAnalysis, error) {
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	agg, err := s.InsightRepo.Aggregates(userID)
	if err != nil {
		return nil, err
	}

	return &UserAnalysis{
		UserID:     userID,
		Aggregates: *agg,
		Scores:     ComputeScores(agg),
	}, nil
}

// DifficultyPrediction /api/ml/predict-difficulty 的输出
type DifficultyPrediction struct {
	UserID        uint              `json:"user_id"`
	Level         model.CourseLevel `json:"level"`
	SkillEstimate float64           `json:"skill_estimate"`
	Difference    float64           `json:"difference"`
	Label         string            `json:"predicted_difficulty"`
}

func (s *InsightService) PredictDifficulty(userID uint, level model.CourseLevel) (*DifficultyPrediction, error) {
	analysis, err := s.AnalyzeUser(userID)
	if err != nil {
		return nil, err
	}

	label, diff := DifficultyLabel(analysis.Scores.Skill, level)
	return &DifficultyPrediction{
		UserID:        userID,
		Level:         level,
		SkillEstimate: analysis.Scores.Skill,
		Difference:    diff,
		Label:         label,
	}, nil
}

// ModelInfo 公开评分公式的全部参数，明确标注为启发式而非学习模型
func (s *InsightService) ModelInfo() map[string]interface{} {
	return map[string]interface{}{
		"type":    "heuristic",
		"version": "1.0",
		"weights": map[string]float64{
			"engagement":      weightEngagement,
			"performance":     weightPerformance,
			"completion_rate": weightCompletion,
			"consistency":     weightConsistency,
		},
		"difficulty_constants": map[string]float64{
			"beginner":     difficultyConstants[model.Beginner],
			"intermediate": difficultyConstants[model.Intermediate],
			"advanced":     difficultyConstants[model.Advanced],
		},
		"label_thresholds": map[string]float64{
			"easy":     easyThreshold,
			"moderate": moderateThreshold,
		},
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
