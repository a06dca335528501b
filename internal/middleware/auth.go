package middleware

import (
	"strings"

	"learnpath_backend/internal/config"
	"learnpath_backend/internal/service"
	"learnpath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 解析 Bearer 令牌并校验吊销名单，通过后将 claims 写入上下文
func AuthMiddleware(cfg *config.Config, sessions *service.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		if sessions != nil {
			revoked, err := sessions.IsRevoked(c.Request.Context(), claims.ID)
			if err != nil || revoked {
				util.Unauthorized(c)
				c.Abort()
				return
			}
		}

		c.Set("user", claims)
		c.Next()
	}
}
