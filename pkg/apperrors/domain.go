package apperrors

import (
	"fmt"
	"net/http"
)

/*
Этот файл содержит фабрики и предопределенные переменные
для общих ошибок бизнес-логики и домена менторства.
*/

// =========================================================================
// Фабричные ФУНКЦИИ
// =========================================================================

// ErrNotFound - фабрика для ошибки "не найдено" (404)
// Используется, когда ошибка репозитория (типа gorm.ErrRecordNotFound)
// должна быть преобразована в AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrConflict - общая фабрика для конфликтов
func ErrConflict(domain, message string) *AppError {
	return New(CodeConflict, domain, message, http.StatusBadRequest)
}

// ErrInvalidOperation - фабрика для невалидных операций (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidStatus - фабрика для невалидных статусов (400)
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// =========================================================================
// Предопределенные ПЕРЕМЕННЫЕ (Для частых, статичных ошибок)
// =========================================================================

// --- Auth ---

// ErrWeakPassword - пароль слишком слабый.
var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 6 characters required.",
	http.StatusBadRequest,
)

// ErrEmailAlreadyExists - email уже используется.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

// ErrInvalidCredentials - неверный email или пароль.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrInvalidToken - неверный или просроченный токен.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrInvalidUserRole - операция не предусмотрена для роли пользователя.
var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"business_logic",
	"Invalid user role for this operation",
	http.StatusBadRequest, // 400 - это логическая ошибка, а не ошибка прав
)

// --- Mentor approval ---

// ErrUserNotMentor - целевой пользователь не является ментором.
var ErrUserNotMentor = New(
	CodeInvalidOperation,
	"mentor",
	"User is not a mentor",
	http.StatusBadRequest,
)

// ErrMentorAlreadyResolved - фабрика: статус ментора уже установлен (approved/rejected).
// Повторное решение по заявке всегда ошибка, а не тихий успех.
func ErrMentorAlreadyResolved(status string) *AppError {
	return ErrInvalidOperation("mentor", fmt.Sprintf("Mentor is already %s", status))
}

// --- Mentorship requests ---

// ErrMentorNotAvailable - ментор не одобрен и недоступен для заявок.
var ErrMentorNotAvailable = New(
	CodeInvalidOperation,
	"request",
	"This mentor is not available for mentorship requests",
	http.StatusBadRequest,
)

// ErrRequestAlreadyAccepted - студент уже является менти этого ментора.
var ErrRequestAlreadyAccepted = ErrConflict(
	"request",
	"You are already mentored by this mentor",
)

// ErrRequestAlreadyPending - активная заявка к этому ментору уже есть.
var ErrRequestAlreadyPending = ErrConflict(
	"request",
	"You already have a pending request with this mentor",
)

// ErrRequestNotOwned - заявка адресована другому ментору.
var ErrRequestNotOwned = New(
	CodeForbidden,
	"request",
	"You are not authorized to update this request",
	http.StatusForbidden,
)

// ErrRequestNotPending - фабрика: заявка уже в терминальном статусе.
func ErrRequestNotPending(status string) *AppError {
	return ErrInvalidOperation("request", fmt.Sprintf("Cannot update %s request", status))
}
