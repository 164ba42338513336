package app

import (
	"pylearn_backend/docs"
	"pylearn_backend/internal/config"
	"pylearn_backend/internal/middleware"
	"pylearn_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerAuthorizedRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		// 课程目录只读，游客可访问
		public.GET("/lessons", c.content.GetLessons)
		public.GET("/lessons/:id", c.content.GetLesson)
		public.GET("/courses", c.content.GetCourses)
		public.GET("/courses/:id", c.content.GetCourse)
		public.GET("/articles/:id", c.content.GetArticle)
		public.GET("/articles/:id/quizzes", c.quiz.GetArticleQuizzes)
		public.GET("/challenges", c.content.GetChallenges)
		public.GET("/challenges/:id", c.content.GetChallenge)
		public.POST("/seed-data", c.content.SeedData)

		// 进度/统计查询和模型参数不含敏感数据
		public.GET("/progress/:userId", c.progress.GetProgressByUserID)
		public.GET("/stats/:userId", c.progress.GetStatsByUserID)
		public.GET("/ml/model-info", c.insight.GetModelInfo)
	}
}

func (a *App) registerAuthorizedRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.GetProfile)

	// 挑战与代码执行
	rg.POST("/challenges/:id/submit", c.challenge.SubmitChallenge)
	rg.GET("/challenges/:id/progress", c.progress.GetChallengeProgressDetail)
	rg.POST("/code/execute", c.challenge.ExecuteCode)

	// 测验
	rg.POST("/quiz/submit", c.quiz.SubmitQuiz)

	// 进度
	rg.POST("/progress", c.progress.UpdateProgress)
	rg.GET("/user/progress", c.progress.GetUserProgress)
	rg.GET("/user/stats", c.progress.GetUserStats)

	// 启发式洞察
	rg.GET("/ml/user-analysis/:id", c.insight.GetUserAnalysis)
	rg.POST("/ml/predict-difficulty", c.insight.PredictDifficulty)
	rg.POST("/ai/code-assistant", c.insight.CodeAssistant)
}
