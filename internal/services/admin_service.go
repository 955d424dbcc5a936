package services

import (
	"mentorhub_backend/internal/email"
	"mentorhub_backend/internal/logger"
	"mentorhub_backend/internal/models"
	"mentorhub_backend/internal/repositories"
	"mentorhub_backend/internal/services/dto"
	"mentorhub_backend/pkg/apperrors"
)

// AdminService - модерация заявок менторов.
// Машина состояний: pending -> approved | rejected, терминальные статусы неизменяемы.
type AdminService interface {
	ListMentorsByStatus(status models.MentorStatus) ([]dto.UserDTO, error)
	SetMentorStatus(mentorID string, newStatus models.MentorStatus) (*dto.UserDTO, error)
}

type AdminServiceImpl struct {
	userRepo      repositories.UserRepository
	emailProvider email.Provider
}

func NewAdminService(userRepo repositories.UserRepository, emailProvider email.Provider) AdminService {
	return &AdminServiceImpl{
		userRepo:      userRepo,
		emailProvider: emailProvider,
	}
}

// ListMentorsByStatus - проекция менторов в заданном статусе (без хеша пароля)
func (s *AdminServiceImpl) ListMentorsByStatus(status models.MentorStatus) ([]dto.UserDTO, error) {
	mentors, err := s.userRepo.FindMentorsByStatus(status)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.UserDTO, 0, len(mentors))
	for i := range mentors {
		out = append(out, dto.NewUserDTO(&mentors[i]))
	}
	return out, nil
}

// SetMentorStatus - решение по заявке ментора.
// Повторное решение по уже рассмотренной заявке - всегда ошибка,
// а не тихий успех.
func (s *AdminServiceImpl) SetMentorStatus(mentorID string, newStatus models.MentorStatus) (*dto.UserDTO, error) {
	if newStatus != models.MentorStatusApproved && newStatus != models.MentorStatusRejected {
		return nil, apperrors.ErrInvalidStatus("mentor", "Status must be approved or rejected")
	}

	user, err := s.userRepo.FindByID(mentorID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("mentor", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if user.Role != models.UserRoleMentor {
		return nil, apperrors.ErrUserNotMentor
	}

	if user.MentorStatus != models.MentorStatusPending {
		return nil, apperrors.ErrMentorAlreadyResolved(string(user.MentorStatus))
	}

	if err := s.userRepo.UpdateMentorStatus(user.ID, newStatus); err != nil {
		return nil, apperrors.InternalError(err)
	}
	user.MentorStatus = newStatus

	s.sendDecisionEmail(user, newStatus)

	result := dto.NewUserDTO(user)
	return &result, nil
}

// sendDecisionEmail уведомляет ментора о решении (fire-and-forget)
func (s *AdminServiceImpl) sendDecisionEmail(user *models.User, status models.MentorStatus) {
	if s.emailProvider == nil {
		return
	}

	data := map[string]interface{}{
		"Name":     user.Name,
		"Approved": status == models.MentorStatusApproved,
	}

	go func() {
		if err := s.emailProvider.SendTemplate([]string{user.Email}, "Решение по вашей заявке ментора", "mentor_decision", data); err != nil {
			logger.Warn("failed to send mentor decision email", "error", err, "email", user.Email)
		}
	}()
}
