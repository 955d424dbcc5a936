package services

import "mentorhub_backend/internal/email"

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService    AuthService
	UserService    UserService
	AdminService   AdminService
	RequestService RequestService
	EmailService   email.Provider
}
