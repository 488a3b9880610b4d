package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/etraffic/internal/config"
	"github.com/shenikar/etraffic/internal/models"
	"github.com/shenikar/etraffic/internal/service"
	"github.com/sirupsen/logrus"
)

const userContextKey = "user"

// APIKeyAuthMiddleware - middleware для аутентификации по API-ключу
func APIKeyAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			log.Warn("API key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
			return
		}

		isValid := false
		for _, key := range cfg.APIKeys {
			if key == apiKey {
				isValid = true
				break
			}
		}

		if !isValid {
			log.Warn("Invalid API key provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		c.Next()
	}
}

// AuthMiddleware проверяет Bearer JWT и кладёт пользователя в контекст.
// Заблокированный пользователь получает 403.
func AuthMiddleware(accounts service.AccountService, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		user, err := accounts.Authenticate(c.Request.Context(), strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			log.WithError(err).Debug("Rejected access token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		if user.IsBanned {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":     "account is banned",
				"banned":    true,
				"banReason": user.BanReason,
			})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// OptionalAuthMiddleware кладёт пользователя в контекст, если передан действующий токен
// незаблокированного пользователя; иначе запрос продолжается анонимно
func OptionalAuthMiddleware(accounts service.AccountService, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}

		user, err := accounts.Authenticate(c.Request.Context(), strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			log.WithError(err).Debug("Ignoring invalid access token")
		} else if !user.IsBanned {
			c.Set(userContextKey, user)
		}
		c.Next()
	}
}

// RequireVerified пропускает только подтверждённых пользователей
func RequireVerified() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil || !user.IsVerified {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "account verification required"})
			return
		}
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil || !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

func currentUser(c *gin.Context) *models.User {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}
