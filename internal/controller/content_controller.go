package controller

import (
	"errors"
	"strconv"

	"pylearn_backend/internal/service"
	"pylearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	ContentService *service.ContentService
}

func NewContentController(contentService *service.ContentService) *ContentController {
	return &ContentController{ContentService: contentService}
}

// GetLessons godoc
// @Summary 课时列表
// @Description 按 order_num 升序返回全部课时
// @Tags 内容
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.Lesson} "成功"
// @Router /api/lessons [get]
func (c *ContentController) GetLessons(ctx *gin.Context) {
	lessons, err := c.ContentService.GetLessons(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, lessons)
}

// GetLesson godoc
// @Summary 课时详情
// @Tags 内容
// @Produce  json
// @Param   id path int true "课时ID"
// @Success 200 {object} util.Response{data=model.Lesson} "成功"
// @Failure 404 {object} util.Response "课时不存在"
// @Router /api/lessons/{id} [get]
func (c *ContentController) GetLesson(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid lesson id")
		return
	}

	lesson, err := c.ContentService.GetLesson(id)
	if err != nil {
		if errors.Is(err, util.ErrLessonNotFound) {
			util.NotFound(ctx, "Lesson not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, lesson)
}

// GetCourses godoc
// @Summary 课程列表
// @Description 可按难度过滤，按难度和 order_num 排序
// @Tags 内容
// @Produce  json
// @Param   level query string false "难度（beginner/intermediate/advanced）"
// @Success 200 {object} util.Response{data=[]model.Course} "成功"
// @Router /api/courses [get]
func (c *ContentController) GetCourses(ctx *gin.Context) {
	courses, err := c.ContentService.GetCourses(ctx.Request.Context(), ctx.Query("level"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// GetCourse godoc
// @Summary 课程详情（含文章列表）
// @Tags 内容
// @Produce  json
// @Param   id path int true "课程ID"
// @Success 200 {object} util.Response{data=model.Course} "成功"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/courses/{id} [get]
func (c *ContentController) GetCourse(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	course, err := c.ContentService.GetCourse(id)
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx, "Course not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, course)
}

// GetArticle godoc
// @Summary 文章详情（含测验，正确答案不下发）
// @Tags 内容
// @Produce  json
// @Param   id path int true "文章ID"
// @Success 200 {object} util.Response{data=model.Article} "成功"
// @Failure 404 {object} util.Response "文章不存在"
// @Router /api/articles/{id} [get]
func (c *ContentController) GetArticle(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid article id")
		return
	}

	article, err := c.ContentService.GetArticle(id)
	if err != nil {
		if errors.Is(err, util.ErrArticleNotFound) {
			util.NotFound(ctx, "Article not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, article)
}

// GetChallenges godoc
// @Summary 挑战列表
// @Tags 内容
// @Produce  json
// @Param   lesson_id query int false "按课时过滤"
// @Success 200 {object} util.Response{data=[]model.Challenge} "成功"
// @Router /api/challenges [get]
func (c *ContentController) GetChallenges(ctx *gin.Context) {
	var lessonID uint
	if raw := ctx.Query("lesson_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			util.BadRequest(ctx, "invalid lesson_id")
			return
		}
		lessonID = uint(parsed)
	}

	challenges, err := c.ContentService.GetChallenges(lessonID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, challenges)
}

// GetChallenge godoc
// @Summary 挑战详情
// @Tags 内容
// @Produce  json
// @Param   id path int true "挑战ID"
// @Success 200 {object} util.Response{data=model.Challenge} "成功"
// @Failure 404 {object} util.Response "挑战不存在"
// @Router /api/challenges/{id} [get]
func (c *ContentController) GetChallenge(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid challenge id")
		return
	}

	challenge, err := c.ContentService.GetChallenge(id)
	if err != nil {
		if errors.Is(err, util.ErrChallengeNotFound) {
			util.NotFound(ctx, "Challenge not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, challenge)
}

// SeedData godoc
// @Summary 写入样例数据
// @Description 幂等：已有课程数据时不做任何事
// @Tags 内容
// @Produce  json
// @Success 200 {object} util.Response{data=object} "成功"
// @Router /api/seed-data [post]
func (c *ContentController) SeedData(ctx *gin.Context) {
	inserted, err := c.ContentService.SeedData(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	message := "Data already exists"
	if inserted {
		message = "Sample data inserted successfully"
	}
	util.Success(ctx, gin.H{"message": message})
}

func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	return uint(id), err
}
