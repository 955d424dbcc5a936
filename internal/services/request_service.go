package services

import (
	"mentorhub_backend/internal/email"
	"mentorhub_backend/internal/logger"
	"mentorhub_backend/internal/models"
	"mentorhub_backend/internal/repositories"
	"mentorhub_backend/internal/services/dto"
	"mentorhub_backend/pkg/apperrors"
)

// RequestService - машина состояний заявок на менторство.
// Переходы: pending -> accepted | rejected; терминальные статусы неизменяемы.
// Все проверки выполняются до единственной записи: неуспешный вызов
// не оставляет частичных эффектов.
type RequestService interface {
	Create(studentID string, req *dto.CreateRequestRequest) (*dto.RequestResponse, error)
	ListForMentor(mentorID string, status models.RequestStatus) ([]dto.RequestResponse, error)
	ListForStudent(studentID string, status models.RequestStatus) ([]dto.RequestResponse, error)
	UpdateStatus(requestID, actingMentorID string, newStatus models.RequestStatus) (*dto.RequestResponse, error)
}

type RequestServiceImpl struct {
	requestRepo   repositories.RequestRepository
	userRepo      repositories.UserRepository
	emailProvider email.Provider
}

func NewRequestService(
	requestRepo repositories.RequestRepository,
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
) RequestService {
	return &RequestServiceImpl{
		requestRepo:   requestRepo,
		userRepo:      userRepo,
		emailProvider: emailProvider,
	}
}

// Create - заявка студента одобренному ментору.
// Повторная заявка запрещена, пока существует активная (pending/accepted);
// отклоненная заявка новую не блокирует - эта асимметрия намеренная.
func (s *RequestServiceImpl) Create(studentID string, req *dto.CreateRequestRequest) (*dto.RequestResponse, error) {
	if req.MentorID == "" {
		return nil, apperrors.NewBadRequestError("Mentor id is required")
	}

	mentor, err := s.userRepo.FindByID(req.MentorID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("request", "Mentor not found")
		}
		return nil, apperrors.InternalError(err)
	}

	// Админ может выступать ментором для заявок
	if mentor.Role != models.UserRoleMentor && mentor.Role != models.UserRoleAdmin {
		return nil, apperrors.ErrUserNotMentor
	}

	if mentor.MentorStatus != models.MentorStatusApproved {
		return nil, apperrors.ErrMentorNotAvailable
	}

	existing, err := s.requestRepo.FindActiveByPair(studentID, req.MentorID)
	if err != nil && !apperrors.Is(err, repositories.ErrRequestNotFound) {
		return nil, apperrors.InternalError(err)
	}
	if existing != nil {
		if existing.Status == models.RequestStatusAccepted {
			return nil, apperrors.ErrRequestAlreadyAccepted
		}
		return nil, apperrors.ErrRequestAlreadyPending
	}

	request := &models.MentorshipRequest{
		StudentID: studentID,
		MentorID:  req.MentorID,
		Status:    models.RequestStatusPending,
	}

	if err := s.requestRepo.Create(request); err != nil {
		return nil, apperrors.InternalError(err)
	}

	expanded, err := s.requestRepo.FindByIDExpanded(request.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := dto.NewRequestResponse(expanded, false)
	return &result, nil
}

// ListForMentor - очередь заявок ментора, новые первыми.
// mentorID всегда берется из токена, чужую очередь запросить нельзя.
func (s *RequestServiceImpl) ListForMentor(mentorID string, status models.RequestStatus) ([]dto.RequestResponse, error) {
	requests, err := s.requestRepo.FindByMentor(mentorID, status)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewRequestResponseList(requests, false), nil
}

// ListForStudent - заявки студента, новые первыми.
// Проекция ментора дополнительно включает роль.
func (s *RequestServiceImpl) ListForStudent(studentID string, status models.RequestStatus) ([]dto.RequestResponse, error) {
	requests, err := s.requestRepo.FindByStudent(studentID, status)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewRequestResponseList(requests, true), nil
}

// UpdateStatus - решение ментора по заявке.
// Мутировать заявку может только адресованный ментор, и только один раз.
func (s *RequestServiceImpl) UpdateStatus(requestID, actingMentorID string, newStatus models.RequestStatus) (*dto.RequestResponse, error) {
	if newStatus != models.RequestStatusAccepted && newStatus != models.RequestStatusRejected {
		return nil, apperrors.ErrInvalidStatus("request", "Status must be accepted or rejected")
	}

	request, err := s.requestRepo.FindByID(requestID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRequestNotFound) {
			return nil, apperrors.NewNotFoundError("request", "Request not found")
		}
		return nil, apperrors.InternalError(err)
	}

	// Авторизация на уровне данных: роль ментора до этого места
	// пускает любого ментора, но мутация - только адресату
	if request.MentorID != actingMentorID {
		return nil, apperrors.ErrRequestNotOwned
	}

	if request.Status != models.RequestStatusPending {
		return nil, apperrors.ErrRequestNotPending(string(request.Status))
	}

	if err := s.requestRepo.UpdateStatus(request.ID, newStatus); err != nil {
		return nil, apperrors.InternalError(err)
	}

	expanded, err := s.requestRepo.FindByIDExpanded(request.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.sendDecisionEmail(expanded, newStatus)

	result := dto.NewRequestResponse(expanded, false)
	return &result, nil
}

// sendDecisionEmail уведомляет студента о решении ментора (fire-and-forget)
func (s *RequestServiceImpl) sendDecisionEmail(request *models.MentorshipRequest, status models.RequestStatus) {
	if s.emailProvider == nil || request.Student == nil || request.Mentor == nil {
		return
	}

	data := map[string]interface{}{
		"StudentName": request.Student.Name,
		"MentorName":  request.Mentor.Name,
		"Accepted":    status == models.RequestStatusAccepted,
	}
	to := request.Student.Email

	go func() {
		if err := s.emailProvider.SendTemplate([]string{to}, "Решение по вашей заявке на менторство", "request_decision", data); err != nil {
			logger.Warn("failed to send request decision email", "error", err, "email", to)
		}
	}()
}
