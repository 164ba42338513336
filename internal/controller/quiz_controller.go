package controller

import (
	"errors"

	"pylearn_backend/internal/service"
	"pylearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// GetArticleQuizzes godoc
// @Summary 某篇文章下的测验题列表
// @Tags 测验
// @Produce  json
// @Param   id path int true "文章ID"
// @Success 200 {object} util.Response{data=[]model.Quiz} "成功"
// @Router /api/articles/{id}/quizzes [get]
func (c *QuizController) GetArticleQuizzes(ctx *gin.Context) {
	articleID, err := parseIDParam(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid article id")
		return
	}

	quizzes, err := c.QuizService.GetArticleQuizzes(articleID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, quizzes)
}

// swagger:model SubmitQuizRequest
type SubmitQuizRequest struct {
	QuizID uint   `json:"quiz_id" binding:"required"`
	Answer string `json:"answer" binding:"required"`
}

// SubmitQuiz godoc
// @Summary 提交测验答案
// @Description 大小写不敏感比对，答对加满分值，答错回显正确答案
// @Tags 测验
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body SubmitQuizRequest true "测验答案"
// @Success 200 {object} util.Response{data=service.QuizResult} "判分结果"
// @Failure 400 {object} util.Response "答案为空"
// @Failure 401 {object} util.Response "未授权"
// @Failure 404 {object} util.Response "测验不存在"
// @Router /api/quiz/submit [post]
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.QuizService.SubmitQuiz(claims.UserID, req.QuizID, req.Answer)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrEmptySubmission):
			util.BadRequest(ctx, "Answer is required")
		case errors.Is(err, util.ErrQuizNotFound):
			util.NotFound(ctx, "Quiz not found")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}
