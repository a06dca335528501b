package controller

import (
	"errors"

	"learnpath_backend/internal/service"
	"learnpath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// UpdateProfile godoc
// @Summary 更新当前用户档案
// @Description 部分更新学习档案；缺省字段保持不变
// @Tags 用户
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.UpdateProfileRequest true "待更新字段"
// @Success 200 {object} model.User "成功"
// @Failure 400 {object} util.ErrorResponse "参数错误或邮箱已被占用"
// @Failure 401 {object} util.ErrorResponse "未授权"
// @Router /api/users/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, err)
		return
	}

	user, err := c.UserService.UpdateProfile(claims.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrEmailRegistered):
			util.BadRequest(ctx, "Email already in use")
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx, "User not found")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.OK(ctx, user)
}
