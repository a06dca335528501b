package util

import "errors"

var (
	ErrUserNotFound       = errors.New("用户不存在")
	ErrEmailRegistered    = errors.New("该邮箱已被注册")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoResourcesFound   = errors.New("no relevant resources found")
	ErrResourceNotFound   = errors.New("resource not found")
	ErrPathNotFound       = errors.New("no active learning path")
	ErrNodeNotFound       = errors.New("path node not found")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrInvalidStatus      = errors.New("invalid completion status")
)
