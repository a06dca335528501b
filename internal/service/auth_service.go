package service

import (
	"context"
	"errors"
	"strings"

	"learnpath_backend/internal/config"
	"learnpath_backend/internal/model"
	"learnpath_backend/internal/repository"
	"learnpath_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Sessions *SessionService
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, sessions *SessionService, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Sessions: sessions,
		Cfg:      cfg,
	}
}

// Register 创建用户并签发令牌。邮箱统一小写；重复邮箱返回 ErrEmailRegistered
func (s *AuthService) Register(user *model.User) (string, error) {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	_, err := s.UserRepo.FindByEmail(user.Email)
	if err == nil {
		return "", util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	user.Password = string(hashedPassword)

	if user.CurrentLevel == "" {
		user.CurrentLevel = model.LevelBeginner
	}
	if user.TimeCommitment <= 0 {
		user.TimeCommitment = 5
	}

	if err := s.UserRepo.Create(user); err != nil {
		// 并发注册可能越过上面的查重，由唯一索引兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", util.ErrEmailRegistered
		}
		return "", err
	}

	return util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}

func (s *AuthService) Login(email, password string) (*model.User, string, error) {
	user, err := s.UserRepo.FindByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", util.ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Logout 吊销当前令牌
func (s *AuthService) Logout(ctx context.Context, claims *util.Claims) error {
	if s.Sessions == nil {
		return nil
	}
	return s.Sessions.Revoke(ctx, claims)
}

// Profile 按用户 ID 取完整档案；用户不存在与基础设施故障分开上报
func (s *AuthService) Profile(userID uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
