package controller

import (
	"errors"

	"learnpath_backend/internal/model"
	"learnpath_backend/internal/service"
	"learnpath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// RegisterRequest 注册请求，学习档案字段可在注册时一并提交
// swagger:model RegisterRequest
type RegisterRequest struct {
	Name                string                     `json:"name" binding:"required"`
	Email               string                     `json:"email" binding:"required,email"`
	Password            string                     `json:"password" binding:"required,min=6"`
	Goals               string                     `json:"goals"`
	Interests           []string                   `json:"interests"`
	CurrentLevel        string                     `json:"currentLevel" binding:"omitempty,oneof=Beginner Intermediate Advanced"`
	TimeCommitment      float64                    `json:"timeCommitment" binding:"omitempty,gt=0"`
	LearningPreferences *model.LearningPreferences `json:"learningPreferences"`
}

// Register godoc
// @Summary 注册新用户
// @Description 使用提供的信息注册新用户并返回令牌
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body RegisterRequest true "用户注册信息"
// @Success 201 {object} object "创建成功"
// @Failure 400 {object} util.ErrorResponse "请求参数错误或邮箱已被注册"
// @Router /api/auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, err)
		return
	}

	user := &model.User{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		Goals:          req.Goals,
		Interests:      model.StringList(req.Interests),
		CurrentLevel:   model.SkillLevel(req.CurrentLevel),
		TimeCommitment: req.TimeCommitment,
	}
	if req.LearningPreferences != nil {
		user.LearningPreferences = *req.LearningPreferences
	}

	token, err := c.AuthService.Register(user)
	if err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			util.BadRequest(ctx, "User already exists")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"token": token,
	})
}

// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary 用户登录
// @Description 验证用户身份并返回JWT令牌
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "用户登录凭据"
// @Success 200 {object} object "成功"
// @Failure 400 {object} util.ValidationResponse "请求参数错误"
// @Failure 401 {object} util.ErrorResponse "未授权"
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, err)
		return
	}

	user, token, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		util.Error(ctx, 401, "Invalid credentials")
		return
	}

	util.OK(ctx, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"token": token,
	})
}

// Logout godoc
// @Summary 登出
// @Description 吊销当前令牌
// @Tags 认证
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} object "成功"
// @Router /api/auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.AuthService.Logout(ctx.Request.Context(), claims); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.OK(ctx, gin.H{"message": "logged out"})
}

// GetProfile godoc
// @Summary 获取当前用户资料
// @Description 获取当前已认证用户的完整档案（不含口令散列）
// @Tags 认证
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} model.User "Success"
// @Failure 401 {object} util.ErrorResponse "Unauthorized"
// @Failure 404 {object} util.ErrorResponse "用户不存在"
// @Router /api/auth/profile [get]
func (c *AuthController) GetProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	user, err := c.AuthService.Profile(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "User not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.OK(ctx, user)
}
