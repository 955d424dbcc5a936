package services

import (
	"encoding/json"
	"strings"

	"mentorhub_backend/internal/models"
	"mentorhub_backend/internal/repositories"
	"mentorhub_backend/internal/services/dto"
	"mentorhub_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type UserService interface {
	GetByID(id string) (*dto.UserProfileDTO, error)
	ListApprovedMentors() ([]dto.UserProfileDTO, error)
	UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*dto.UserProfileDTO, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// GetByID возвращает публичный профиль любого пользователя.
// Доступ ограничен только аутентификацией - так ведет себя продакшен,
// и это поведение сохранено намеренно.
func (s *UserServiceImpl) GetByID(id string) (*dto.UserProfileDTO, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	profile := dto.NewUserProfileDTO(user)
	return &profile, nil
}

// ListApprovedMentors - каталог менторов, видимый студентам.
// Только role=mentor и mentor_status=approved.
func (s *UserServiceImpl) ListApprovedMentors() ([]dto.UserProfileDTO, error) {
	mentors, err := s.userRepo.FindMentorsByStatus(models.MentorStatusApproved)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.UserProfileDTO, 0, len(mentors))
	for i := range mentors {
		out = append(out, dto.NewUserProfileDTO(&mentors[i]))
	}
	return out, nil
}

// UpdateProfile - частичное обновление собственного профиля.
// Роль, статус ментора и учетные данные здесь не меняются.
func (s *UserServiceImpl) UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*dto.UserProfileDTO, error) {
	fields := make(map[string]interface{})

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewBadRequestError("Name cannot be empty")
		}
		fields["name"] = name
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if req.DateOfBirth != nil {
		fields["date_of_birth"] = *req.DateOfBirth
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.CurrentRole != nil {
		fields["current_role"] = *req.CurrentRole
	}
	if req.Skills != nil {
		raw, err := json.Marshal(req.Skills)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		fields["skills"] = datatypes.JSON(raw)
	}
	if req.Goals != nil {
		fields["goals"] = *req.Goals
	}

	if err := s.userRepo.UpdateProfile(userID, fields); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	return s.GetByID(userID)
}
