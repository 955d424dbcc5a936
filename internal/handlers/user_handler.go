package handlers

import (
	"net/http"

	"mentorhub_backend/internal/middleware"
	"mentorhub_backend/internal/services"
	"mentorhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		// Каталог до /:id, иначе gin сматчит "mentors" как id
		users.GET("/mentors", h.ListMentors)
		users.GET("/me", h.GetMe)
		users.PUT("/profile", h.UpdateProfile)
		users.GET("/:id", h.GetByID)
	}
}

// ListMentors - каталог одобренных менторов
func (h *UserHandler) ListMentors(c *gin.Context) {
	mentors, err := h.userService.ListApprovedMentors()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, "Mentors retrieved successfully", mentors)
}

// GetMe - профиль текущего пользователя
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile, err := h.userService.GetByID(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, "Profile retrieved successfully", profile)
}

// GetByID - публичный профиль пользователя по ID.
// Доступ ограничен только аутентификацией, роль не проверяется.
func (h *UserHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	profile, err := h.userService.GetByID(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, "User retrieved successfully", profile)
}

// UpdateProfile - частичное обновление собственного профиля
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.userService.UpdateProfile(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, "Profile updated successfully", profile)
}
