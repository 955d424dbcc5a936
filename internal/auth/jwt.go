package auth

import (
	"errors"
	"time"

	"mentorhub_backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrNoSecret - секрет подписи не сконфигурирован (ошибка сервера, не клиента)
	ErrNoSecret = errors.New("jwt signing secret is not configured")
	// ErrTokenExpired - срок действия токена истек
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid - токен не прошел проверку подписи или структуры
	ErrTokenInvalid = errors.New("invalid token")
)

// Claims - полезная нагрузка access-токена: {userId, role}
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken выпускает access-токен для пользователя
func GenerateToken(userID, role string) (string, error) {
	cfg := config.GetConfig()
	if cfg.JWT.Secret == "" {
		return "", ErrNoSecret
	}

	ttl := time.Duration(cfg.JWT.TTL) * time.Minute
	now := time.Now()

	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.Secret))
}

// ParseToken проверяет подпись и срок действия токена и возвращает claims
func ParseToken(tokenStr string) (*Claims, error) {
	cfg := config.GetConfig()
	if cfg.JWT.Secret == "" {
		return nil, ErrNoSecret
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	if !token.Valid || claims.UserID == "" {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
