package controller

import (
	"errors"

	"pylearn_backend/internal/service"
	"pylearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// swagger:model UpdateProgressRequest
type UpdateProgressRequest struct {
	ArticleID uint `json:"article_id" binding:"required"`
	Completed bool `json:"completed"`
	Score     int  `json:"score"`
}

// UpdateProgress godoc
// @Summary 上报文章学习进度
// @Description 每个 (用户, 文章) 至多一行；完成标记置位后不回退
// @Tags 进度
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body UpdateProgressRequest true "进度"
// @Success 200 {object} util.Response{data=model.ArticleProgress} "成功"
// @Failure 404 {object} util.Response "文章不存在"
// @Router /api/progress [post]
func (c *ProgressController) UpdateProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req UpdateProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	progress, err := c.ProgressService.UpdateArticleProgress(claims.UserID, req.ArticleID, req.Completed, req.Score)
	if err != nil {
		if errors.Is(err, util.ErrArticleNotFound) {
			util.NotFound(ctx, "Article not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, progress)
}

// GetUserProgress godoc
// @Summary 当前用户的挑战进度
// @Tags 进度
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object} "成功"
// @Router /api/user/progress [get]
func (c *ProgressController) GetUserProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	progress, err := c.ProgressService.GetChallengeProgress(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"user_id":  claims.UserID,
		"progress": progress,
	})
}

// GetUserStats godoc
// @Summary 当前用户的挑战统计
// @Tags 进度
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.ChallengeStats} "成功"
// @Router /api/user/stats [get]
func (c *ProgressController) GetUserStats(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	stats, err := c.ProgressService.GetChallengeStats(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// GetChallengeProgressDetail godoc
// @Summary 当前用户在单个挑战上的进度
// @Description 尚未提交过时返回零值进度
// @Tags 进度
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "挑战ID"
// @Success 200 {object} util.Response{data=model.ChallengeProgress} "成功"
// @Failure 404 {object} util.Response "挑战不存在"
// @Router /api/challenges/{id}/progress [get]
func (c *ProgressController) GetChallengeProgressDetail(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	challengeID, err := parseIDParam(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid challenge id")
		return
	}

	progress, err := c.ProgressService.GetChallengeProgressDetail(claims.UserID, challengeID)
	if err != nil {
		if errors.Is(err, util.ErrChallengeNotFound) {
			util.NotFound(ctx, "Challenge not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, progress)
}

// GetProgressByUserID godoc
// @Summary 指定用户的文章进度（联表带标题）
// @Tags 进度
// @Produce  json
// @Param   userId path int true "用户ID"
// @Success 200 {object} util.Response{data=[]model.ArticleProgressView} "成功"
// @Router /api/progress/{userId} [get]
func (c *ProgressController) GetProgressByUserID(ctx *gin.Context) {
	userID, err := parseIDParam(ctx, "userId")
	if err != nil {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	views, err := c.ProgressService.GetArticleProgress(userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, views)
}

// GetStatsByUserID godoc
// @Summary 指定用户的文章统计
// @Tags 进度
// @Produce  json
// @Param   userId path int true "用户ID"
// @Success 200 {object} util.Response{data=model.UserStats} "成功"
// @Failure 404 {object} util.Response "用户不存在"
// @Router /api/stats/{userId} [get]
func (c *ProgressController) GetStatsByUserID(ctx *gin.Context) {
	userID, err := parseIDParam(ctx, "userId")
	if err != nil {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	stats, err := c.ProgressService.GetUserStats(userID)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "User not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, stats)
}
