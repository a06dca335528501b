package service

import (
	"context"
	"time"

	"learnpath_backend/internal/util"

	"github.com/go-redis/redis/v8"
)

const revokedKeyPrefix = "learnpath:revoked:"

// SessionService 维护令牌生命周期的服务端事实来源：
// 登出时按 jti 写入吊销名单，TTL 为令牌剩余有效期
type SessionService struct {
	Redis *redis.Client
}

func NewSessionService(rdb *redis.Client) *SessionService {
	return &SessionService{Redis: rdb}
}

// Revoke 吊销一枚令牌；已过期的令牌无需写入
func (s *SessionService) Revoke(ctx context.Context, claims *util.Claims) error {
	if claims.ExpiresAt == nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return s.Redis.Set(ctx, revokedKeyPrefix+claims.ID, "1", ttl).Err()
}

func (s *SessionService) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if jti == "" {
		return false, nil
	}
	n, err := s.Redis.Exists(ctx, revokedKeyPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
