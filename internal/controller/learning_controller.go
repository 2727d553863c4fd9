package controller

import (
	"errors"

	"learning_assistant_backend/internal/model"
	"learning_assistant_backend/internal/service"
	"learning_assistant_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LearningController struct {
	JobService *service.JobService
}

func NewLearningController(jobService *service.JobService) *LearningController {
	return &LearningController{JobService: jobService}
}

// @Summary 提交课程生成任务
// @Description 受理课程生成请求，立即返回任务ID，内容在后台异步生成
// @Tags 课程生成
// @Accept json
// @Produce json
// @Param request body model.LearningRequest true "课程生成请求"
// @Success 202 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/generate-learning-content [post]
func (c *LearningController) GenerateLearningContent(ctx *gin.Context) {
	var req model.LearningRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	jobID, err := c.JobService.Submit(req)
	if err != nil {
		if isValidationError(err) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Accepted(ctx, gin.H{
		"job_id": jobID,
		"status": model.JobStatusPending,
	})
}

// @Summary 查询任务状态
// @Description 轮询课程生成任务的状态与当前阶段
// @Tags 课程生成
// @Produce json
// @Param id path string true "任务ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/learning-jobs/{id} [get]
func (c *LearningController) GetJobStatus(ctx *gin.Context) {
	status, err := c.JobService.GetStatus(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrJobNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, status)
}

func isValidationError(err error) bool {
	return errors.Is(err, util.ErrEmptyTopic) ||
		errors.Is(err, util.ErrSubtopicCount) ||
		errors.Is(err, util.ErrEmptySubtopic) ||
		errors.Is(err, util.ErrInvalidDifficulty)
}
