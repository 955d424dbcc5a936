package dto

import "mentorhub_backend/internal/models"

// UpdateMentorStatusRequest - решение админа по заявке ментора.
// pending выставить нельзя - заявка решается только в approved/rejected.
type UpdateMentorStatusRequest struct {
	Status models.MentorStatus `json:"status" binding:"required,oneof=approved rejected"`
}
