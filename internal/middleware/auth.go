package middleware

import (
	"fitness_backend/internal/auth"
	"fitness_backend/internal/logger"
	"fitness_backend/internal/models"
	"fitness_backend/internal/services"
	"fitness_backend/pkg/apperrors"
	"fitness_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthMiddleware - проверка JWT и загрузка текущего пользователя.
// Должен стоять после DBMiddleware.
func AuthMiddleware(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			apperrors.HandleError(c, apperrors.ErrMissingAuthHeader)
			return
		}

		token, ok := auth.ExtractBearerToken(header)
		if !ok {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			return
		}

		db := c.MustGet(string(contextkeys.DBContextKey)).(*gorm.DB)
		user, err := authService.Authenticate(c.Request.Context(), db, token)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), user.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Set("userID", user.ID)
		c.Set("role", user.Role)
		c.Set(string(contextkeys.CurrentUserKey), user)
		c.Next()
	}
}

// RequireRoles - пропускает только перечисленные роли
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := GetCurrentUser(c)
		if user == nil {
			apperrors.HandleError(c, apperrors.ErrMissingAuthHeader)
			return
		}
		if err := auth.RequireRoles(user, roles...); err != nil {
			apperrors.HandleError(c, err)
			return
		}
		c.Next()
	}
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(c *gin.Context) string {
	return c.GetString("userID")
}

// GetCurrentUser - пользователь, загруженный AuthMiddleware (nil для публичных маршрутов)
func GetCurrentUser(c *gin.Context) *models.User {
	val, exists := c.Get(string(contextkeys.CurrentUserKey))
	if !exists {
		return nil
	}
	user, _ := val.(*models.User)
	return user
}
