package dto

import (
	"encoding/json"
	"time"

	"mentorhub_backend/internal/models"
)

// CreateRequestRequest - заявка студента на менторство.
// Пустой mentor_id отклоняет сервис со своим сообщением,
// поэтому binding-правила здесь не нужны.
type CreateRequestRequest struct {
	MentorID string `json:"mentor_id"`
}

// UpdateRequestStatusRequest - решение ментора по заявке.
// pending выставить нельзя - это только начальное состояние.
type UpdateRequestStatusRequest struct {
	Status models.RequestStatus `json:"status" binding:"required,oneof=accepted rejected"`
}

// RequestStatusFilter - опциональный фильтр списков заявок
type RequestStatusFilter struct {
	Status models.RequestStatus `form:"status" validate:"omitempty,is-request-status"`
}

// StudentRef - проекция студента внутри заявки
// (включает поля заполненности профиля)
type StudentRef struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Bio         string          `json:"bio"`
	DateOfBirth *time.Time      `json:"date_of_birth,omitempty"`
	Location    string          `json:"location"`
	CurrentRole string          `json:"current_role"`
	Skills      json.RawMessage `json:"skills,omitempty"`
	Goals       string          `json:"goals"`
}

// MentorRef - проекция ментора внутри заявки (имя + email; роль
// добавляется только в списке заявок студента)
type MentorRef struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Role  models.UserRole `json:"role,omitempty"`
}

// RequestResponse - заявка с развернутыми участниками
type RequestResponse struct {
	ID        string               `json:"id"`
	Status    models.RequestStatus `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
	Student   *StudentRef          `json:"student,omitempty"`
	Mentor    *MentorRef           `json:"mentor,omitempty"`
}

func newStudentRef(u *models.User) *StudentRef {
	if u == nil {
		return nil
	}
	return &StudentRef{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Bio:         u.Bio,
		DateOfBirth: u.DateOfBirth,
		Location:    u.Location,
		CurrentRole: u.CurrentRole,
		Skills:      json.RawMessage(u.Skills),
		Goals:       u.Goals,
	}
}

func newMentorRef(u *models.User, withRole bool) *MentorRef {
	if u == nil {
		return nil
	}
	ref := &MentorRef{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
	if withRole {
		ref.Role = u.Role
	}
	return ref
}

// NewRequestResponse строит проекцию заявки.
// withMentorRole=true используется для списка заявок студента.
func NewRequestResponse(req *models.MentorshipRequest, withMentorRole bool) RequestResponse {
	return RequestResponse{
		ID:        req.ID,
		Status:    req.Status,
		CreatedAt: req.CreatedAt,
		Student:   newStudentRef(req.Student),
		Mentor:    newMentorRef(req.Mentor, withMentorRole),
	}
}

// NewRequestResponseList строит проекции списка заявок
func NewRequestResponseList(requests []models.MentorshipRequest, withMentorRole bool) []RequestResponse {
	out := make([]RequestResponse, 0, len(requests))
	for i := range requests {
		out = append(out, NewRequestResponse(&requests[i], withMentorRole))
	}
	return out
}
