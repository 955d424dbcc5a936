package services

import (
	"sort"
	"time"

	"mentorhub_backend/internal/models"
	"mentorhub_backend/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// In-memory реализации репозиториев для юнит-тестов сервисов.
// Поведение повторяет контракт gorm-реализаций: те же sentinel-ошибки,
// та же сортировка списков (новые первыми).

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) add(u *models.User) *models.User {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	r.users[u.ID] = u
	return u
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(user *models.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	r.add(user)
	return nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) UpdateProfile(userID string, fields map[string]interface{}) error {
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	if name, ok := fields["name"].(string); ok {
		u.Name = name
	}
	if bio, ok := fields["bio"].(string); ok {
		u.Bio = bio
	}
	if dob, ok := fields["date_of_birth"].(time.Time); ok {
		u.DateOfBirth = &dob
	}
	if location, ok := fields["location"].(string); ok {
		u.Location = location
	}
	if currentRole, ok := fields["current_role"].(string); ok {
		u.CurrentRole = currentRole
	}
	if skills, ok := fields["skills"].(datatypes.JSON); ok {
		u.Skills = skills
	}
	if goals, ok := fields["goals"].(string); ok {
		u.Goals = goals
	}
	return nil
}

func (r *fakeUserRepo) UpdatePassword(userID string, passwordHash string) error {
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (r *fakeUserRepo) UpdateMentorStatus(userID string, status models.MentorStatus) error {
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.MentorStatus = status
	return nil
}

func (r *fakeUserRepo) FindMentorsByStatus(status models.MentorStatus) ([]models.User, error) {
	out := make([]models.User, 0)
	for _, u := range r.users {
		if u.Role == models.UserRoleMentor && u.MentorStatus == status {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type fakeRequestRepo struct {
	requests map[string]*models.MentorshipRequest
	users    *fakeUserRepo
}

func newFakeRequestRepo(users *fakeUserRepo) *fakeRequestRepo {
	return &fakeRequestRepo{
		requests: make(map[string]*models.MentorshipRequest),
		users:    users,
	}
}

func (r *fakeRequestRepo) Create(req *models.MentorshipRequest) error {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now()
	}
	r.requests[req.ID] = req
	return nil
}

func (r *fakeRequestRepo) FindByID(id string) (*models.MentorshipRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, repositories.ErrRequestNotFound
	}
	copied := *req
	return &copied, nil
}

func (r *fakeRequestRepo) FindByIDExpanded(id string) (*models.MentorshipRequest, error) {
	req, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	r.expand(req)
	return req, nil
}

func (r *fakeRequestRepo) FindActiveByPair(studentID, mentorID string) (*models.MentorshipRequest, error) {
	for _, req := range r.requests {
		if req.StudentID == studentID && req.MentorID == mentorID &&
			(req.Status == models.RequestStatusPending || req.Status == models.RequestStatusAccepted) {
			copied := *req
			return &copied, nil
		}
	}
	return nil, repositories.ErrRequestNotFound
}

func (r *fakeRequestRepo) FindByMentor(mentorID string, status models.RequestStatus) ([]models.MentorshipRequest, error) {
	return r.list(func(req *models.MentorshipRequest) bool {
		return req.MentorID == mentorID && (status == "" || req.Status == status)
	}), nil
}

func (r *fakeRequestRepo) FindByStudent(studentID string, status models.RequestStatus) ([]models.MentorshipRequest, error) {
	return r.list(func(req *models.MentorshipRequest) bool {
		return req.StudentID == studentID && (status == "" || req.Status == status)
	}), nil
}

func (r *fakeRequestRepo) UpdateStatus(id string, status models.RequestStatus) error {
	req, ok := r.requests[id]
	if !ok {
		return repositories.ErrRequestNotFound
	}
	req.Status = status
	return nil
}

func (r *fakeRequestRepo) list(match func(*models.MentorshipRequest) bool) []models.MentorshipRequest {
	out := make([]models.MentorshipRequest, 0)
	for _, req := range r.requests {
		if match(req) {
			copied := *req
			r.expand(&copied)
			out = append(out, copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *fakeRequestRepo) expand(req *models.MentorshipRequest) {
	if student, err := r.users.FindByID(req.StudentID); err == nil {
		req.Student = student
	}
	if mentor, err := r.users.FindByID(req.MentorID); err == nil {
		req.Mentor = mentor
	}
}

type fakeRefreshTokenRepo struct {
	tokens map[string]*models.RefreshToken
}

func newFakeRefreshTokenRepo() *fakeRefreshTokenRepo {
	return &fakeRefreshTokenRepo{tokens: make(map[string]*models.RefreshToken)}
}

func (r *fakeRefreshTokenRepo) Create(token *models.RefreshToken) error {
	if token.ID == "" {
		token.ID = uuid.NewString()
	}
	r.tokens[token.Token] = token
	return nil
}

func (r *fakeRefreshTokenRepo) FindByToken(token string) (*models.RefreshToken, error) {
	t, ok := r.tokens[token]
	if !ok {
		return nil, repositories.ErrRefreshTokenNotFound
	}
	copied := *t
	return &copied, nil
}

func (r *fakeRefreshTokenRepo) DeleteByToken(token string) error {
	delete(r.tokens, token)
	return nil
}

func (r *fakeRefreshTokenRepo) DeleteByUserID(userID string) error {
	for key, t := range r.tokens {
		if t.UserID == userID {
			delete(r.tokens, key)
		}
	}
	return nil
}

func (r *fakeRefreshTokenRepo) DeleteExpired() (int64, error) {
	var deleted int64
	now := time.Now()
	for key, t := range r.tokens {
		if t.ExpiresAt.Before(now) {
			delete(r.tokens, key)
			deleted++
		}
	}
	return deleted, nil
}
