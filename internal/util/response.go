package util

import (
	"errors"
	"net/http"

	"learnpath_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ErrorResponse 统一错误响应结构
type ErrorResponse struct {
	Message string `json:"message"`
}

// FieldError 单字段校验错误
type FieldError struct {
	Msg   string `json:"msg"`
	Param string `json:"param,omitempty"`
}

// ValidationResponse 多字段校验错误响应结构
type ValidationResponse struct {
	Errors []FieldError `json:"errors"`
}

func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Message: message})
}

// ValidationFailed 将绑定错误展开为逐字段的 errors 数组；
// 非校验类错误（如 JSON 语法错误）退化为单条 message
func ValidationFailed(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, FieldError{
				Msg:   validationMessage(fe),
				Param: fe.Field(),
			})
		}
		c.JSON(http.StatusBadRequest, ValidationResponse{Errors: fields})
		return
	}
	Error(c, http.StatusBadRequest, err.Error())
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "please include a valid email"
	case "min":
		return fe.Field() + " must be " + fe.Param() + " or more characters"
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	case "gt":
		return fe.Field() + " must be greater than " + fe.Param()
	default:
		return fe.Field() + " is invalid"
	}
}

func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, "Not authorized")
}

func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}

func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("Internal server error",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	InternalServerError(c)
}
