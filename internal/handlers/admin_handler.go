package handlers

import (
	"net/http"

	"mentorhub_backend/internal/middleware"
	"mentorhub_backend/internal/models"
	"mentorhub_backend/internal/services"
	"mentorhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	*BaseHandler
	adminService services.AdminService
}

func NewAdminHandler(base *BaseHandler, adminService services.AdminService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  base,
		adminService: adminService,
	}
}

func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("/pending-mentors", h.ListPendingMentors)
		admin.GET("/approved-mentors", h.ListApprovedMentors)
		admin.GET("/rejected-mentors", h.ListRejectedMentors)
		admin.PATCH("/mentor/:id", h.SetMentorStatus)
	}
}

// ListPendingMentors - менторы, ожидающие модерации
func (h *AdminHandler) ListPendingMentors(c *gin.Context) {
	h.listMentors(c, models.MentorStatusPending)
}

// ListApprovedMentors - одобренные менторы
func (h *AdminHandler) ListApprovedMentors(c *gin.Context) {
	h.listMentors(c, models.MentorStatusApproved)
}

// ListRejectedMentors - отклоненные менторы
func (h *AdminHandler) ListRejectedMentors(c *gin.Context) {
	h.listMentors(c, models.MentorStatusRejected)
}

func (h *AdminHandler) listMentors(c *gin.Context, status models.MentorStatus) {
	mentors, err := h.adminService.ListMentorsByStatus(status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, "Mentors retrieved successfully", mentors)
}

// SetMentorStatus - решение админа по заявке ментора (approve/reject)
func (h *AdminHandler) SetMentorStatus(c *gin.Context) {
	mentorID := c.Param("id")

	var req dto.UpdateMentorStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	mentor, err := h.adminService.SetMentorStatus(mentorID, req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, "Mentor status updated successfully", mentor)
}
