package controller

import (
	"errors"
	"strconv"

	"learnpath_backend/internal/repository"
	"learnpath_backend/internal/service"
	"learnpath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ResourceController struct {
	ResourceService *service.ResourceService
}

func NewResourceController(resourceService *service.ResourceService) *ResourceController {
	return &ResourceController{ResourceService: resourceService}
}

// ListResources godoc
// @Summary 获取资源库列表
// @Description 按关键词/类型/难度/标签筛选，条件之间 AND，无条件返回全量
// @Tags 资源
// @Produce  json
// @Param   search query string false "标题或描述关键词"
// @Param   type query string false "资源类型" Enums(video, article, course, book, tutorial, other)
// @Param   difficulty query string false "难度" Enums(Beginner, Intermediate, Advanced, All)
// @Param   tag query string false "主题标签"
// @Success 200 {array} model.Resource "成功"
// @Failure 500 {object} util.ErrorResponse "服务器内部错误"
// @Router /api/resources [get]
func (c *ResourceController) ListResources(ctx *gin.Context) {
	q := repository.ResourceQuery{
		Search:     ctx.Query("search"),
		Type:       ctx.Query("type"),
		Difficulty: ctx.Query("difficulty"),
		Tag:        ctx.Query("tag"),
	}

	resources, err := c.ResourceService.List(q)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.OK(ctx, resources)
}

// GetResource godoc
// @Summary 获取单个资源
// @Tags 资源
// @Produce  json
// @Param   id path int true "资源ID"
// @Success 200 {object} model.Resource "成功"
// @Failure 400 {object} util.ErrorResponse "ID格式错误"
// @Failure 404 {object} util.ErrorResponse "资源不存在"
// @Router /api/resources/{id} [get]
func (c *ResourceController) GetResource(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid resource ID format")
		return
	}

	resource, err := c.ResourceService.Get(uint(id))
	if err != nil {
		if errors.Is(err, util.ErrResourceNotFound) {
			util.NotFound(ctx, "Resource not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.OK(ctx, resource)
}
