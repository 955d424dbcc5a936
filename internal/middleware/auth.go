package middleware

import (
	"strings"

	"mentorhub_backend/internal/auth"
	"mentorhub_backend/internal/logger"
	"mentorhub_backend/internal/models"
	"mentorhub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware - middleware проверки JWT
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			// Отсутствующий/кривой заголовок - отдельное сообщение,
			// чтобы отличать от невалидного токена
			abortWithError(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			switch err {
			case auth.ErrTokenExpired:
				abortWithError(c, apperrors.New(apperrors.CodeTokenExpired, "auth", "Token expired", 401))
			case auth.ErrNoSecret:
				abortWithError(c, apperrors.ConfigurationError(err))
			default:
				abortWithError(c, apperrors.New(apperrors.CodeInvalidToken, "auth", "Invalid token", 401))
			}
			return
		}

		// Сохраняем claims в контекст
		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRoles - middleware для проверки нескольких возможных ролей.
// Пустой список ролей пропускает любого аутентифицированного пользователя.
// При отказе ответ перечисляет требуемые роли.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool)
	required := make([]string, 0, len(roles))
	for _, r := range roles {
		roleSet[r] = true
		required = append(required, string(r))
	}

	return func(c *gin.Context) {
		if len(roleSet) == 0 {
			c.Next()
			return
		}

		roleVal, exists := c.Get("role")
		if !exists {
			abortWithError(c, apperrors.NewForbiddenError("Access denied: no role"))
			return
		}

		role, ok := roleVal.(string)
		if !ok {
			abortWithError(c, apperrors.NewForbiddenError("Access denied: invalid role type"))
			return
		}

		if !roleSet[models.UserRole(role)] {
			err := apperrors.NewForbiddenError("Access denied: insufficient role").
				WithDetails(gin.H{"required_roles": required})
			abortWithError(c, err)
			return
		}

		c.Next()
	}
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get("userID")
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}

	return id
}

func abortWithError(c *gin.Context, err *apperrors.AppError) {
	apperrors.HandleError(c, err)
	c.Abort()
}
