package database

import (
	"mentorhub_backend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate выполняет миграцию всех моделей
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.MentorshipRequest{},
		&models.RequestMessage{},
	)
}
