package services

import (
	"strings"
	"time"

	"mentorhub_backend/internal/auth"
	"mentorhub_backend/internal/email"
	"mentorhub_backend/internal/logger"
	"mentorhub_backend/internal/models"
	"mentorhub_backend/internal/repositories"
	"mentorhub_backend/internal/services/dto"
	"mentorhub_backend/pkg/apperrors"

	"github.com/google/uuid"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (dto.UserDTO, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
	RefreshToken(refreshToken string) (*dto.AuthResponse, error)
	Logout(refreshToken string) error
	ChangePassword(userID, currentPassword, newPassword string) error
}

type AuthServiceImpl struct {
	userRepo         repositories.UserRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	emailProvider    email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	emailProvider email.Provider,
) AuthService {
	return &AuthServiceImpl{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		emailProvider:    emailProvider,
	}
}

// Register - регистрация нового пользователя.
// Роль по умолчанию student; заявка ментора уходит на модерацию (pending);
// админ одобрен неявно.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (dto.UserDTO, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return dto.UserDTO{}, apperrors.ErrWeakPassword
	}

	role := models.UserRole(req.Role)
	if role == "" {
		role = models.UserRoleStudent
	}
	switch role {
	case models.UserRoleStudent, models.UserRoleMentor, models.UserRoleAdmin:
	default:
		return dto.UserDTO{}, apperrors.ErrInvalidUserRole
	}

	mentorStatus := models.MentorStatusPending
	if role == models.UserRoleAdmin {
		// Админам модерация не нужна
		mentorStatus = models.MentorStatusApproved
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return dto.UserDTO{}, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        normalizeEmail(req.Email),
		PasswordHash: hashedPassword,
		Role:         role,
		MentorStatus: mentorStatus,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return dto.UserDTO{}, apperrors.ErrEmailAlreadyExists
		}
		return dto.UserDTO{}, apperrors.InternalError(err)
	}

	s.sendWelcomeEmail(user)

	return dto.NewUserDTO(user), nil
}

// Login - аутентификация пользователя
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(normalizeEmail(req.Email))
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.buildAuthResponse(user)
}

// RefreshToken - обновление access token по refresh token (с ротацией)
func (s *AuthServiceImpl) RefreshToken(refreshToken string) (*dto.AuthResponse, error) {
	token, err := s.refreshTokenRepo.FindByToken(refreshToken)
	if err != nil {
		// Неважно, какая ошибка (не найден или другая) - токен невалиден
		return nil, apperrors.ErrInvalidToken
	}

	if time.Now().After(token.ExpiresAt) {
		if err := s.refreshTokenRepo.DeleteByToken(refreshToken); err != nil {
			logger.Warn("failed to delete expired refresh token", "error", err, "user_id", token.UserID)
		}
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(token.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if err := s.refreshTokenRepo.DeleteByToken(refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.buildAuthResponse(user)
}

// Logout - выход (удаление refresh token)
func (s *AuthServiceImpl) Logout(refreshToken string) error {
	return s.refreshTokenRepo.DeleteByToken(refreshToken)
}

// ChangePassword - смена пароля (когда пользователь знает текущий)
func (s *AuthServiceImpl) ChangePassword(userID, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.NewNotFoundError("auth", "User not found")
		}
		return apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}

	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdatePassword(user.ID, hashedPassword); err != nil {
		return apperrors.InternalError(err)
	}

	// Все сессии, кроме текущей, должны перелогиниться.
	// Смена пароля уже состоялась, поэтому ошибка отзыва не фатальна,
	// но след в логах обязателен
	if err := s.refreshTokenRepo.DeleteByUserID(user.ID); err != nil {
		logger.Warn("failed to revoke sessions after password change", "error", err, "user_id", user.ID)
	}

	return nil
}

// --- Helper functions ---

// buildAuthResponse выпускает пару токенов и строит ответ
func (s *AuthServiceImpl) buildAuthResponse(user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		if apperrors.Is(err, auth.ErrNoSecret) {
			return nil, apperrors.ConfigurationError(err)
		}
		return nil, apperrors.InternalError(err)
	}

	refreshToken, err := s.createRefreshToken(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         dto.NewUserDTO(user),
	}, nil
}

// createRefreshToken создает и сохраняет refresh token
func (s *AuthServiceImpl) createRefreshToken(userID string) (string, error) {
	refreshToken := uuid.NewString()

	refreshTokenModel := &models.RefreshToken{
		UserID:    userID,
		Token:     refreshToken,
		ExpiresAt: time.Now().Add(7 * 24 * time.Hour), // 7 дней
	}

	if err := s.refreshTokenRepo.Create(refreshTokenModel); err != nil {
		return "", err
	}

	return refreshToken, nil
}

// sendWelcomeEmail отправляет приветственное письмо (fire-and-forget)
func (s *AuthServiceImpl) sendWelcomeEmail(user *models.User) {
	if s.emailProvider == nil {
		return
	}

	data := map[string]interface{}{
		"Name":     user.Name,
		"IsMentor": user.Role == models.UserRoleMentor,
	}

	go func() {
		if err := s.emailProvider.SendTemplate([]string{user.Email}, "Добро пожаловать", "welcome", data); err != nil {
			logger.Warn("failed to send welcome email", "error", err, "email", user.Email)
		}
	}()
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
