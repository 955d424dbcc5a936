package validator

import (
	"log"

	"mentorhub_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует все кастомные функции валидации в
// переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Если правило не удалось зарегистрировать, приложение
			// не должно запускаться, так как это критическая ошибка.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// Правила, основанные на statuses.go
	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-mentor-status", validateMentorStatus)
	mustRegister("is-request-status", validateRequestStatus)
}

// --- Функции валидации ---

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // Не проверяем пустые значения, для этого есть 'required'
	}

	switch models.UserRole(value) {
	case models.UserRoleStudent, models.UserRoleMentor, models.UserRoleAdmin:
		return true
	}
	return false
}

func validateMentorStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}

	switch models.MentorStatus(value) {
	case models.MentorStatusPending, models.MentorStatusApproved, models.MentorStatusRejected:
		return true
	}
	return false
}

func validateRequestStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}

	switch models.RequestStatus(value) {
	case models.RequestStatusPending, models.RequestStatusAccepted, models.RequestStatusRejected:
		return true
	}
	return false
}
