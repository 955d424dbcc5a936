package handlers

import (
	"mentorhub_backend/internal/services"
	"mentorhub_backend/internal/validator"
)

// AppHandlers содержит все HTTP-обработчики приложения
type AppHandlers struct {
	Auth    *AuthHandler
	User    *UserHandler
	Admin   *AdminHandler
	Request *RequestHandler
}

// NewAppHandlers собирает обработчики поверх контейнера сервисов
func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:    NewAuthHandler(base, sc.AuthService),
		User:    NewUserHandler(base, sc.UserService),
		Admin:   NewAdminHandler(base, sc.AdminService),
		Request: NewRequestHandler(base, sc.RequestService),
	}
}
