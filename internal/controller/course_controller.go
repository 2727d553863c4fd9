package controller

import (
	"errors"
	"strconv"

	"learning_assistant_backend/internal/service"
	"learning_assistant_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

// @Summary 课程列表
// @Description 分页列出已提交的课程生成任务
// @Tags 课程内容
// @Produce json
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(10)
// @Success 200 {object} util.Response
// @Router /api/course-content [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	courses, total, err := c.CourseService.List(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"courses": courses,
		"total":   total,
		"page":    page,
		"limit":   limit,
	})
}

// @Summary 课程详情
// @Description 获取单个课程的状态与正文，未完成的任务只返回状态
// @Tags 课程内容
// @Produce json
// @Param id path string true "课程ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/course-content/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	detail, err := c.CourseService.Get(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrJobNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, detail)
}

type markReadRequest struct {
	Subtopic string `json:"subtopic" binding:"required"`
}

// @Summary 标记子主题已读
// @Description 把课程中的某个子主题标记为已读
// @Tags 课程内容
// @Accept json
// @Produce json
// @Param id path string true "课程ID"
// @Param request body markReadRequest true "子主题名称"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/course-content/{id}/read [post]
func (c *CourseController) MarkSubtopicRead(ctx *gin.Context) {
	var req markReadRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.CourseService.MarkSubtopicRead(ctx.Param("id"), req.Subtopic)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrJobNotFound), errors.Is(err, util.ErrSubtopicNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrJobNotCompleted):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}

// @Summary 导出课程
// @Description 把完成的课程导出为markdown文件，返回下载地址
// @Tags 课程内容
// @Produce json
// @Param id path string true "课程ID"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/course-content/{id}/export [get]
func (c *CourseController) ExportCourse(ctx *gin.Context) {
	url, err := c.CourseService.ExportMarkdown(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrJobNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrJobNotCompleted):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"url": url})
}
