package controller

import (
	"errors"

	"learnpath_backend/internal/service"
	"learnpath_backend/internal/util"
	"learnpath_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type PathController struct {
	PathService     *service.PathService
	ProgressService *service.ProgressService
}

func NewPathController(pathService *service.PathService, progressService *service.ProgressService) *PathController {
	return &PathController{
		PathService:     pathService,
		ProgressService: progressService,
	}
}

// GeneratePath godoc
// @Summary 生成个性化学习路径
// @Description 依据兴趣标签匹配资源并生成路径；旧激活路径被置为非激活
// @Tags 学习路径
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.GeneratePathRequest false "可选的标题/描述/目标"
// @Success 201 {object} service.PathResponse "创建成功"
// @Failure 404 {object} util.ErrorResponse "用户不存在或无匹配资源"
// @Router /api/paths/generate [post]
func (c *PathController) GeneratePath(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.GeneratePathRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.PathService.Generate(claims.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx, "User not found")
		case errors.Is(err, util.ErrNoResourcesFound):
			util.NotFound(ctx, "No relevant resources found for your interests.")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	monitoring.PathsGenerated.Inc()
	util.Created(ctx, result)
}

// GetActivePath godoc
// @Summary 获取当前激活路径
// @Description 返回激活路径、全部节点（按 sequence 排序）及派生进度
// @Tags 学习路径
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} service.PathResponse "成功"
// @Failure 404 {object} util.ErrorResponse "无激活路径"
// @Router /api/paths/active [get]
func (c *PathController) GetActivePath(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.PathService.GetActive(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrPathNotFound) {
			util.NotFound(ctx, "No active learning path found. Generate one?")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.OK(ctx, result)
}

// UpdateNode godoc
// @Summary 更新路径节点状态
// @Description 修改完成状态与备注并派生开始/完成时间；仅路径属主可操作
// @Tags 学习路径
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   nodeId path string true "节点ID"
// @Param   body body service.UpdateNodeRequest true "状态与备注"
// @Success 200 {object} service.NodeResponse "成功"
// @Failure 400 {object} util.ErrorResponse "非法状态"
// @Failure 403 {object} util.ErrorResponse "非路径属主"
// @Failure 404 {object} util.ErrorResponse "节点不存在"
// @Router /api/paths/nodes/{nodeId} [put]
func (c *PathController) UpdateNode(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.UpdateNodeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	node, err := c.ProgressService.UpdateNode(ctx.Param("nodeId"), claims.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrNodeNotFound):
			util.NotFound(ctx, "Learning path node not found")
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx, "User not authorized to update this path node")
		case errors.Is(err, util.ErrInvalidStatus):
			util.BadRequest(ctx, "Invalid completion status")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.OK(ctx, node)
}
