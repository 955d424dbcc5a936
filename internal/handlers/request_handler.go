package handlers

import (
	"net/http"

	"mentorhub_backend/internal/middleware"
	"mentorhub_backend/internal/models"
	"mentorhub_backend/internal/services"
	"mentorhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	*BaseHandler
	requestService services.RequestService
}

func NewRequestHandler(base *BaseHandler, requestService services.RequestService) *RequestHandler {
	return &RequestHandler{
		BaseHandler:    base,
		requestService: requestService,
	}
}

func (h *RequestHandler) RegisterRoutes(rg *gin.RouterGroup) {
	requests := rg.Group("/requests")
	requests.Use(middleware.AuthMiddleware())
	{
		student := requests.Group("")
		student.Use(middleware.RequireRoles(models.UserRoleStudent))
		{
			student.POST("", h.Create)
			student.GET("/my-requests", h.ListMyRequests)
		}

		mentor := requests.Group("")
		mentor.Use(middleware.RequireRoles(models.UserRoleMentor, models.UserRoleAdmin))
		{
			mentor.GET("", h.ListIncoming)
			mentor.PATCH("/:id", h.UpdateStatus)
		}
	}
}

// Create - заявка студента выбранному ментору
func (h *RequestHandler) Create(c *gin.Context) {
	studentID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateRequestRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	request, err := h.requestService.Create(studentID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusCreated, "Mentorship request created successfully", request)
}

// ListIncoming - входящие заявки ментора (опционально по статусу)
func (h *RequestHandler) ListIncoming(c *gin.Context) {
	mentorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var filter dto.RequestStatusFilter
	if !h.BindAndValidate_Query(c, &filter) {
		return
	}

	requests, err := h.requestService.ListForMentor(mentorID, filter.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, "Requests retrieved successfully", requests)
}

// ListMyRequests - заявки текущего студента (опционально по статусу)
func (h *RequestHandler) ListMyRequests(c *gin.Context) {
	studentID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var filter dto.RequestStatusFilter
	if !h.BindAndValidate_Query(c, &filter) {
		return
	}

	requests, err := h.requestService.ListForStudent(studentID, filter.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, "Requests retrieved successfully", requests)
}

// UpdateStatus - решение ментора по заявке (accept/reject)
func (h *RequestHandler) UpdateStatus(c *gin.Context) {
	mentorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	requestID := c.Param("id")

	var req dto.UpdateRequestStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	request, err := h.requestService.UpdateStatus(requestID, mentorID, req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, "Request status updated successfully", request)
}
