package models

import (
	"time"

	"gorm.io/datatypes"
)

type User struct {
	BaseModel
	Name         string       `gorm:"not null" json:"name"`
	Email        string       `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string       `gorm:"not null" json:"-"`
	Role         UserRole     `gorm:"type:varchar(20);not null;default:'student'" json:"role"`
	MentorStatus MentorStatus `gorm:"type:varchar(20);default:'pending'" json:"mentor_status"`

	// Профильные поля (все опциональные, пустые по умолчанию)
	Bio         string         `json:"bio"`
	DateOfBirth *time.Time     `json:"date_of_birth,omitempty"`
	Location    string         `json:"location"`
	CurrentRole string         `json:"current_role"`
	Skills      datatypes.JSON `gorm:"type:jsonb" json:"skills,omitempty"`
	Goals       string         `json:"goals"`

	// Relations
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID" json:"-"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}
