package dto

import (
	"encoding/json"
	"time"

	"mentorhub_backend/internal/models"
)

// UserDTO - публичная проекция пользователя (хеш пароля никогда не попадает наружу)
type UserDTO struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Email        string              `json:"email"`
	Role         models.UserRole     `json:"role"`
	MentorStatus models.MentorStatus `json:"mentor_status"`
	CreatedAt    time.Time           `json:"created_at"`
}

// UserProfileDTO - полная проекция с профильными полями.
// Используется для /users/me, /users/:id и каталога менторов.
type UserProfileDTO struct {
	UserDTO
	Bio         string          `json:"bio"`
	DateOfBirth *time.Time      `json:"date_of_birth,omitempty"`
	Location    string          `json:"location"`
	CurrentRole string          `json:"current_role"`
	Skills      json.RawMessage `json:"skills,omitempty"`
	Goals       string          `json:"goals"`
}

// UpdateProfileRequest - частичное обновление собственного профиля.
// nil-поля не трогаются.
type UpdateProfileRequest struct {
	Name        *string    `json:"name,omitempty"`
	Bio         *string    `json:"bio,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Location    *string    `json:"location,omitempty"`
	CurrentRole *string    `json:"current_role,omitempty"`
	Skills      []string   `json:"skills,omitempty"`
	Goals       *string    `json:"goals,omitempty"`
}

// NewUserDTO строит публичную проекцию пользователя
func NewUserDTO(u *models.User) UserDTO {
	return UserDTO{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role,
		MentorStatus: u.MentorStatus,
		CreatedAt:    u.CreatedAt,
	}
}

// NewUserProfileDTO строит полную проекцию пользователя
func NewUserProfileDTO(u *models.User) UserProfileDTO {
	return UserProfileDTO{
		UserDTO:     NewUserDTO(u),
		Bio:         u.Bio,
		DateOfBirth: u.DateOfBirth,
		Location:    u.Location,
		CurrentRole: u.CurrentRole,
		Skills:      json.RawMessage(u.Skills),
		Goals:       u.Goals,
	}
}
