package app

import (
	"learning_assistant_backend/docs"
	"learning_assistant_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		// 课程生成任务
		api.POST("/generate-learning-content", c.learning.GenerateLearningContent)
		api.GET("/learning-jobs/:id", c.learning.GetJobStatus)

		// 课程内容
		api.GET("/course-content", c.course.ListCourses)
		api.GET("/course-content/:id", c.course.GetCourse)
		api.POST("/course-content/:id/read", c.course.MarkSubtopicRead)
		api.GET("/course-content/:id/export", c.course.ExportCourse)

		// 即时检索摘要
		api.POST("/search-summarize", c.search.SearchSummarize)
	}
}
