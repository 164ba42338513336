package service

import (
	"errors"
	"math"
	"testing"

	"pylearn_backend/internal/model"
	"pylearn_backend/internal/repository"
	"pylearn_backend/internal/util"
)

func TestComputeScores_PerfectLearner(t *testing.T) {
	// 30 天活跃、满分、每次尝试都完成 → 所有分量拉满
	agg := &model.LearnerAggregates{
		TotalAttempts:  30,
		AverageScore:   100,
		CompletedCount: 30,
		ActiveDays:     30,
	}
	scores := ComputeScores(agg)

	if scores.Engagement != 1 || scores.Performance != 1 || scores.CompletionRate != 1 || scores.Consistency != 1 {
		t.Fatalf("expected all component scores at 1.0, got %+v", scores)
	}
	if math.Abs(scores.Skill-1.0) > 1e-9 {
		t.Fatalf("expected skill=1.0, got %v", scores.Skill)
	}
}

func TestComputeScores_NoActivity(t *testing.T) {
	scores := ComputeScores(&model.LearnerAggregates{})
	if scores.Skill != 0 {
		t.Fatalf("a learner with no history must score 0, got %v", scores.Skill)
	}
}

func TestComputeScores_ClampsComponents(t *testing.T) {
	// 60 个活跃日超过两个窗口，participation 分量仍封顶在 1
	agg := &model.LearnerAggregates{
		TotalAttempts:  10,
		AverageScore:   250, // 异常值也不能溢出
		CompletedCount: 50,
		ActiveDays:     60,
	}
	scores := ComputeScores(agg)
	if scores.Engagement != 1 || scores.Consistency != 1 || scores.Performance != 1 || scores.CompletionRate != 1 {
		t.Fatalf("components must be clamped to [0,1], got %+v", scores)
	}
}

func TestComputeScores_CompletionRateDivision(t *testing.T) {
	// 完成数按尝试数归一，零尝试时按 1 处理避免除零
	agg := &model.LearnerAggregates{TotalAttempts: 4, CompletedCount: 1}
	scores := ComputeScores(agg)
	if scores.CompletionRate != 0.25 {
		t.Fatalf("expected completion rate 0.25, got %v", scores.CompletionRate)
	}
}

func TestDifficultyLabel(t *testing.T) {
	cases := []struct {
		skill float64
		level model.CourseLevel
		want  string
	}{
		{1.0, model.Advanced, "Easy"},        // |0.9-1.0| = 0.1
		{1.0, model.Beginner, "Challenging"}, // |0.3-1.0| = 0.7
		{0.5, model.Beginner, "Easy"},        // 0.2
		{0.0, model.Intermediate, "Challenging"},
		{0.2, model.Intermediate, "Moderate"}, // 0.4
	}
	for _, c := range cases {
		label, _ := DifficultyLabel(c.skill, c.level)
		if label != c.want {
			t.Fatalf("DifficultyLabel(%v, %s) = %q, want %q", c.skill, c.level, label, c.want)
		}
	}
}

func TestDifficultyLabel_UnknownLevelFallsBackToBeginner(t *testing.T) {
	known, _ := DifficultyLabel(0.5, model.Beginner)
	unknown, _ := DifficultyLabel(0.5, model.CourseLevel("expert"))
	if known != unknown {
		t.Fatalf("unknown level must behave like beginner, got %q vs %q", unknown, known)
	}
}

func TestAnalyzeUser_UnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewInsightService(repository.NewInsightRepository(db), repository.NewUserRepository(db))

	if _, err := svc.AnalyzeUser(42); !errors.Is(err, util.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAnalyzeUser_AggregatesFromSubmissions(t *testing.T) {
	db := newTestDB(t)
	svc := NewInsightService(repository.NewInsightRepository(db), repository.NewUserRepository(db))

	user := &model.User{Username: "bob", Email: "bob@example.com", Password: "hash"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	submissions := []model.Submission{
		{UserID: user.ID, ChallengeID: 1, Code: "x", Score: 100, PassedTests: 2, TotalTests: 2},
		{UserID: user.ID, ChallengeID: 1, Code: "x", Score: 50, PassedTests: 1, TotalTests: 2},
	}
	for i := range submissions {
		if err := db.Create(&submissions[i]).Error; err != nil {
			t.Fatalf("seed submission: %v", err)
		}
	}
	progress := &model.ChallengeProgress{UserID: user.ID, ChallengeID: 1, Completed: true, BestScore: 100, Attempts: 2}
	if err := db.Create(progress).Error; err != nil {
		t.Fatalf("seed progress: %v", err)
	}

	analysis, err := svc.AnalyzeUser(user.ID)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if analysis.Aggregates.TotalAttempts != 2 {
		t.Fatalf("expected 2 attempts, got %d", analysis.Aggregates.TotalAttempts)
	}
	if analysis.Aggregates.AverageScore != 75 {
		t.Fatalf("expected average 75, got %v", analysis.Aggregates.AverageScore)
	}
	if analysis.Aggregates.CompletedCount != 1 {
		t.Fatalf("expected 1 completed, got %d", analysis.Aggregates.CompletedCount)
	}
	if analysis.Aggregates.ActiveDays != 1 {
		t.Fatalf("same-day submissions are one active day, got %d", analysis.Aggregates.ActiveDays)
	}
	if analysis.Scores.Performance != 0.75 {
		t.Fatalf("expected performance 0.75, got %v", analysis.Scores.Performance)
	}
}

func TestPredictDifficulty(t *testing.T) {
	db := newTestDB(t)
	svc := NewInsightService(repository.NewInsightRepository(db), repository.NewUserRepository(db))

	user := &model.User{Username: "carol", Email: "carol@example.com", Password: "hash"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	// 无历史 → skill=0，beginner 差 0.3 → Moderate
	prediction, err := svc.PredictDifficulty(user.ID, model.Beginner)
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if prediction.Label != "Moderate" {
		t.Fatalf("expected Moderate for a new learner on beginner, got %q", prediction.Label)
	}
	if prediction.SkillEstimate != 0 {
		t.Fatalf("expected skill 0, got %v", prediction.SkillEstimate)
	}

	// advanced 差 0.9 → Challenging
	prediction, err = svc.PredictDifficulty(user.ID, model.Advanced)
	if err != nil {
		t.Fatalf("predict advanced: %v", err)
	}
	if prediction.Label != "Challenging" {
		t.Fatalf("expected Challenging for a new learner on advanced, got %q", prediction.Label)
	}
}

func TestModelInfo(t *testing.T) {
	svc := NewInsightService(nil, nil)
	info := svc.ModelInfo()

	if info["type"] != "heuristic" {
		t.Fatalf("model info must declare itself heuristic, got %v", info["type"])
	}
	weights, ok := info["weights"].(map[string]float64)
	if !ok {
		t.Fatalf("missing weights map")
	}
	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Fatalf("weights must sum to 1.0, got %v", sum)
	}
}
