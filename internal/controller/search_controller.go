package controller

import (
	"errors"
	"net/http"

	"learning_assistant_backend/internal/service"
	"learning_assistant_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SearchController struct {
	SummarizerService *service.SummarizerService
}

func NewSearchController(summarizerService *service.SummarizerService) *SearchController {
	return &SearchController{SummarizerService: summarizerService}
}

// @Summary 检索并摘要
// @Description 搜索指定查询，抽取网页正文并生成摘要，同步返回
// @Tags 检索
// @Accept json
// @Produce json
// @Param request body service.SummarizeRequest true "检索摘要请求"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 502 {object} util.Response
// @Router /api/search-summarize [post]
func (c *SearchController) SearchSummarize(ctx *gin.Context) {
	var req service.SummarizeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resp, err := c.SummarizerService.Summarize(ctx.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrEmptyTopic):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrSearchUnavailable), errors.Is(err, util.ErrNoSearchResults):
			util.Error(ctx, http.StatusBadGateway, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, resp)
}
