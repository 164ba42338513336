package controller

import (
	"errors"

	"pylearn_backend/internal/model"
	"pylearn_backend/internal/service"
	"pylearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type InsightController struct {
	InsightService   *service.InsightService
	AssistantService *service.AssistantService
}

func NewInsightController(insightService *service.InsightService, assistantService *service.AssistantService) *InsightController {
	return &InsightController{
		InsightService:   insightService,
		AssistantService: assistantService,
	}
}

// GetUserAnalysis godoc
// @Summary 学习者画像分析
// @Description 基于提交与进度聚合计算四项分值和综合技能分
// @Tags 洞察
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "用户ID"
// @Success 200 {object} util.Response{data=service.UserAnalysis} "成功"
// @Failure 404 {object} util.Response "用户不存在"
// @Router /api/ml/user-analysis/{id} [get]
func (c *InsightController) GetUserAnalysis(ctx *gin.Context) {
	userID, err := parseIDParam(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	analysis, err := c.InsightService.AnalyzeUser(userID)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "User not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, analysis)
}

// swagger:model PredictDifficultyRequest
type PredictDifficultyRequest struct {
	UserID uint   `json:"user_id"`
	Level  string `json:"level" binding:"required"`
}

// PredictDifficulty godoc
// @Summary 预测某难度级别对用户的体感难度
// @Description 技能分与难度常量的绝对差映射到 Easy/Moderate/Challenging；user_id 省略时取当前登录用户
// @Tags 洞察
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body PredictDifficultyRequest true "目标难度与可选的用户ID"
// @Success 200 {object} util.Response{data=service.DifficultyPrediction} "成功"
// @Failure 404 {object} util.Response "用户不存在"
// @Router /api/ml/predict-difficulty [post]
func (c *InsightController) PredictDifficulty(ctx *gin.Context) {
	var req PredictDifficultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	userID := req.UserID
	if userID == 0 {
		claims := util.GetUserFromContext(ctx)
		if claims == nil {
			util.Unauthorized(ctx)
			return
		}
		userID = claims.UserID
	}

	prediction, err := c.InsightService.PredictDifficulty(userID, model.CourseLevel(req.Level))
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "User not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, prediction)
}

// GetModelInfo godoc
// @Summary 评分模型参数
// @Description 公开启发式评分的权重、常量与阈值
// @Tags 洞察
// @Produce  json
// @Success 200 {object} util.Response{data=object} "成功"
// @Router /api/ml/model-info [get]
func (c *InsightController) GetModelInfo(ctx *gin.Context) {
	util.Success(ctx, c.InsightService.ModelInfo())
}

// swagger:model CodeAssistantRequest
type CodeAssistantRequest struct {
	Code         string `json:"code" binding:"required"`
	ErrorMessage string `json:"error_message"`
}

// CodeAssistant godoc
// @Summary 代码建议
// @Description 规则匹配生成的固定建议列表，不调用外部模型
// @Tags 洞察
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body CodeAssistantRequest true "代码与可选的报错信息"
// @Success 200 {object} util.Response{data=object} "成功"
// @Router /api/ai/code-assistant [post]
func (c *InsightController) CodeAssistant(ctx *gin.Context) {
	var req CodeAssistantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, gin.H{
		"suggestions": c.AssistantService.Suggest(req.Code, req.ErrorMessage),
	})
}
