package controller

import (
	"errors"

	"pylearn_backend/internal/service"
	"pylearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ChallengeController struct {
	ChallengeService *service.ChallengeService
}

func NewChallengeController(challengeService *service.ChallengeService) *ChallengeController {
	return &ChallengeController{ChallengeService: challengeService}
}

// swagger:model SubmitChallengeRequest
type SubmitChallengeRequest struct {
	Code string `json:"code" binding:"required"`
}

// SubmitChallenge godoc
// @Summary 提交挑战代码
// @Description 逐个测试用例执行并判分，同时落库提交记录并更新进度
// @Tags 挑战
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "挑战ID"
// @Param   body body SubmitChallengeRequest true "提交的代码"
// @Success 200 {object} util.Response{data=service.SubmissionResult} "判分结果"
// @Failure 400 {object} util.Response "提交内容为空"
// @Failure 401 {object} util.Response "未授权"
// @Failure 404 {object} util.Response "挑战不存在"
// @Router /api/challenges/{id}/submit [post]
func (c *ChallengeController) SubmitChallenge(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid challenge id")
		return
	}

	var req SubmitChallengeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.ChallengeService.SubmitChallenge(ctx.Request.Context(), claims.UserID, id, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrEmptySubmission):
			util.BadRequest(ctx, "Code is required")
		case errors.Is(err, util.ErrChallengeNotFound):
			util.NotFound(ctx, "Challenge not found")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}

// swagger:model ExecuteCodeRequest
type ExecuteCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// ExecuteCode godoc
// @Summary 试运行代码
// @Description 一次性执行，不判分、不留提交记录
// @Tags 挑战
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body ExecuteCodeRequest true "要执行的代码"
// @Success 200 {object} util.Response{data=service.RunResult} "执行输出"
// @Failure 400 {object} util.Response "提交内容为空"
// @Router /api/code/execute [post]
func (c *ChallengeController) ExecuteCode(ctx *gin.Context) {
	var req ExecuteCodeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.ChallengeService.ExecuteCode(ctx.Request.Context(), req.Code)
	if err != nil {
		if errors.Is(err, util.ErrEmptySubmission) {
			util.BadRequest(ctx, "Code is required")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}
