package repositories

import (
	"errors"
	"time"

	"mentorhub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrRequestNotFound = errors.New("mentorship request not found")

type RequestRepository interface {
	Create(req *models.MentorshipRequest) error
	FindByID(id string) (*models.MentorshipRequest, error)
	FindByIDExpanded(id string) (*models.MentorshipRequest, error)
	FindActiveByPair(studentID, mentorID string) (*models.MentorshipRequest, error)
	FindByMentor(mentorID string, status models.RequestStatus) ([]models.MentorshipRequest, error)
	FindByStudent(studentID string, status models.RequestStatus) ([]models.MentorshipRequest, error)
	UpdateStatus(id string, status models.RequestStatus) error
}

type RequestRepositoryImpl struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &RequestRepositoryImpl{db: db}
}

func (r *RequestRepositoryImpl) Create(req *models.MentorshipRequest) error {
	return r.db.Create(req).Error
}

func (r *RequestRepositoryImpl) FindByID(id string) (*models.MentorshipRequest, error) {
	var req models.MentorshipRequest
	err := r.db.First(&req, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *RequestRepositoryImpl) FindByIDExpanded(id string) (*models.MentorshipRequest, error) {
	var req models.MentorshipRequest
	err := r.db.Preload("Student").Preload("Mentor").First(&req, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

// FindActiveByPair ищет активную (pending или accepted) заявку пары студент-ментор.
// Отклоненные заявки не блокируют новые, поэтому здесь не учитываются.
func (r *RequestRepositoryImpl) FindActiveByPair(studentID, mentorID string) (*models.MentorshipRequest, error) {
	var req models.MentorshipRequest
	err := r.db.
		Where("student_id = ? AND mentor_id = ? AND status IN ?",
			studentID, mentorID,
			[]models.RequestStatus{models.RequestStatusPending, models.RequestStatusAccepted}).
		First(&req).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *RequestRepositoryImpl) FindByMentor(mentorID string, status models.RequestStatus) ([]models.MentorshipRequest, error) {
	var requests []models.MentorshipRequest
	query := r.db.Preload("Student").Preload("Mentor").Where("mentor_id = ?", mentorID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("created_at DESC").Find(&requests).Error
	return requests, err
}

func (r *RequestRepositoryImpl) FindByStudent(studentID string, status models.RequestStatus) ([]models.MentorshipRequest, error) {
	var requests []models.MentorshipRequest
	query := r.db.Preload("Student").Preload("Mentor").Where("student_id = ?", studentID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("created_at DESC").Find(&requests).Error
	return requests, err
}

func (r *RequestRepositoryImpl) UpdateStatus(id string, status models.RequestStatus) error {
	result := r.db.Model(&models.MentorshipRequest{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRequestNotFound
	}
	return nil
}
