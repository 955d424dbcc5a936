package services

import (
	"testing"
	"time"

	"mentorhub_backend/internal/models"
	"mentorhub_backend/internal/services/dto"
	"mentorhub_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequestServiceForTest() (RequestService, *fakeUserRepo, *fakeRequestRepo) {
	userRepo := newFakeUserRepo()
	requestRepo := newFakeRequestRepo(userRepo)
	svc := NewRequestService(requestRepo, userRepo, nil)
	return svc, userRepo, requestRepo
}

func seedStudent(userRepo *fakeUserRepo) *models.User {
	return userRepo.add(&models.User{
		Name:         "Айгерим Студент",
		Email:        "student@test.kz",
		Role:         models.UserRoleStudent,
		MentorStatus: models.MentorStatusPending,
	})
}

func seedMentor(userRepo *fakeUserRepo, status models.MentorStatus) *models.User {
	return userRepo.add(&models.User{
		Name:         "Данияр Ментор",
		Email:        "mentor@test.kz",
		Role:         models.UserRoleMentor,
		MentorStatus: status,
	})
}

func TestRequestService_Create_Success(t *testing.T) {
	t.Parallel()

	// 1. Подготовка
	svc, userRepo, _ := newRequestServiceForTest()
	student := seedStudent(userRepo)
	dob := time.Date(2000, time.March, 14, 0, 0, 0, 0, time.UTC)
	student.DateOfBirth = &dob
	student.Goals = "Выйти на senior-уровень"
	mentor := seedMentor(userRepo, models.MentorStatusApproved)

	// 2. Действие
	resp, err := svc.Create(student.ID, &dto.CreateRequestRequest{MentorID: mentor.ID})

	// 3. Проверка
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusPending, resp.Status)
	require.NotNil(t, resp.Student)
	require.NotNil(t, resp.Mentor)
	assert.Equal(t, student.ID, resp.Student.ID)
	assert.Equal(t, mentor.ID, resp.Mentor.ID)
	// Проекция студента несет профильные поля целиком
	require.NotNil(t, resp.Student.DateOfBirth)
	assert.True(t, dob.Equal(*resp.Student.DateOfBirth))
	assert.Equal(t, "Выйти на senior-уровень", resp.Student.Goals)
	// В ответе на создание роль ментора не раскрывается
	assert.Empty(t, resp.Mentor.Role)
}

func TestRequestService_Create_MentorNotFound(t *testing.T) {
	t.Parallel()

	svc, userRepo, _ := newRequestServiceForTest()
	student := seedStudent(userRepo)

	_, err := svc.Create(student.ID, &dto.CreateRequestRequest{MentorID: "missing-id"})

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode)
	assert.Equal(t, "Mentor not found", appErr.Message)
}

func TestRequestService_Create_EmptyMentorID(t *testing.T) {
	t.Parallel()

	svc, userRepo, _ := newRequestServiceForTest()
	student := seedStudent(userRepo)

	_, err := svc.Create(student.ID, &dto.CreateRequestRequest{MentorID: ""})

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode)
	assert.Equal(t, "Mentor id is required", appErr.Message)
}

func TestRequestService_Create_TargetNotMentor(t *testing.T) {
	t.Parallel()

	svc, userRepo, _ := newRequestServiceForTest()
	student := seedStudent(userRepo)
	otherStudent := userRepo.add(&models.User{
		Name:  "Второй Студент",
		Email: "student2@test.kz",
		Role:  models.UserRoleStudent,
	})

	_, err := svc.Create(student.ID, &dto.CreateRequestRequest{MentorID: otherStudent.ID})

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "User is not a mentor", appErr.Message)
}

func TestRequestService_Create_MentorNotApproved(t *testing.T) {
	t.Parallel()

	// Заявки принимают только одобренные менторы:
	// pending и rejected отклоняются одинаково
	for _, status := range []models.MentorStatus{models.MentorStatusPending, models.MentorStatusRejected} {
		svc, userRepo, _ := newRequestServiceForTest()
		student := seedStudent(userRepo)
		mentor := seedMentor(userRepo, status)

		_, err := svc.Create(student.ID, &dto.CreateRequestRequest{MentorID: mentor.ID})

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr, "mentor status %s", status)
		assert.Equal(t, "This mentor is not available for mentorship requests", appErr.Message)
	}
}

func TestRequestService_Create_DuplicatePending(t *testing.T) {
	t.Parallel()

	svc, userRepo, _ := newRequestServiceForTest()
	student := seedStudent(userRepo)
	mentor := seedMentor(userRepo, models.MentorStatusApproved)

	_, err := svc.Create(student.ID, &dto.CreateRequestRequest{MentorID: mentor.ID})
	require.NoError(t, err)

	// Повторная заявка при активной pending запрещена
	_, err = svc.Create(student.ID, &dto.CreateRequestRequest{MentorID: mentor.ID})

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "You already have a pending request with this mentor", appErr.Message)
}

func TestRequestService_Create_DuplicateAccepted(t *testing.T) {
	t.Parallel()

	svc, userRepo, _ := newRequestServiceForTest()
	student := seedStudent(userRepo)
	mentor := seedMentor(userRepo, models.MentorStatusApproved)

	resp, err := svc.Create(student.ID, &dto.CreateRequestRequest{MentorID: mentor.ID})
	require.NoError(t, err)
	_, err = svc.UpdateStatus(resp.ID, mentor.ID, models.RequestStatusAccepted)
	require.NoError(t, err)

	// Принятая заявка тоже активна - новая запрещена
	_, err = svc.Create(student.ID, &dto.CreateRequestRequest{MentorID: mentor.ID})

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "You are already mentored by this mentor", appErr.Message)
}

func TestRequestService_Create_AfterRejectionAllowed(t *testing.T) {
	t.Parallel()

	svc, userRepo, _ := newRequestServiceForTest()
	student := seedStudent(userRepo)
	mentor := seedMentor(userRepo, models.MentorStatusApproved)

	resp, err := svc.Create(student.ID, &dto.CreateRequestRequest{MentorID: mentor.ID})
	require.NoError(t, err)
	_, err = svc.UpdateStatus(resp.ID, mentor.ID, models.RequestStatusRejected)
	require.NoError(t, err)

	// Отклоненная заявка не блокирует повторную попытку
	resp2, err := svc.Create(student.ID, &dto.CreateRequestRequest{MentorID: mentor.ID})
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusPending, resp2.Status)
	assert.NotEqual(t, resp.ID, resp2.ID)
}

func TestRequestService_UpdateStatus_OnlyAddressedMentor(t *testing.T) {
	t.Parallel()

	svc, userRepo, _ := newRequestServiceForTest()
	student := seedStudent(userRepo)
	mentor := seedMentor(userRepo, models.MentorStatusApproved)
	otherMentor := userRepo.add(&models.User{
		Name:         "Чужой Ментор",
		Email:        "other-mentor@test.kz",
		Role:         models.UserRoleMentor,
		MentorStatus: models.MentorStatusApproved,
	})

	resp, err := svc.Create(student.ID, &dto.CreateRequestRequest{MentorID: mentor.ID})
	require.NoError(t, err)

	// Чужой ментор не может решать не свою заявку
	_, err = svc.UpdateStatus(resp.ID, otherMentor.ID, models.RequestStatusAccepted)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.HTTPCode)
	assert.Equal(t, "You are not authorized to update this request", appErr.Message)
}

func TestRequestService_UpdateStatus_TerminalIsImmutable(t *testing.T) {
	t.Parallel()

	svc, userRepo, _ := newRequestServiceForTest()
	student := seedStudent(userRepo)
	mentor := seedMentor(userRepo, models.MentorStatusApproved)

	resp, err := svc.Create(student.ID, &dto.CreateRequestRequest{MentorID: mentor.ID})
	require.NoError(t, err)
	_, err = svc.UpdateStatus(resp.ID, mentor.ID, models.RequestStatusAccepted)
	require.NoError(t, err)

	// Повторное решение по уже принятой заявке - ошибка, не тихий успех
	_, err = svc.UpdateStatus(resp.ID, mentor.ID, models.RequestStatusRejected)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Cannot update accepted request", appErr.Message)
}

func TestRequestService_UpdateStatus_InvalidTarget(t *testing.T) {
	t.Parallel()

	svc, userRepo, _ := newRequestServiceForTest()
	student := seedStudent(userRepo)
	mentor := seedMentor(userRepo, models.MentorStatusApproved)

	resp, err := svc.Create(student.ID, &dto.CreateRequestRequest{MentorID: mentor.ID})
	require.NoError(t, err)

	// pending нельзя выставить явно
	_, err = svc.UpdateStatus(resp.ID, mentor.ID, models.RequestStatusPending)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Status must be accepted or rejected", appErr.Message)
}

func TestRequestService_UpdateStatus_NotFound(t *testing.T) {
	t.Parallel()

	svc, userRepo, _ := newRequestServiceForTest()
	mentor := seedMentor(userRepo, models.MentorStatusApproved)

	_, err := svc.UpdateStatus("missing-id", mentor.ID, models.RequestStatusAccepted)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode)
	assert.Equal(t, "Request not found", appErr.Message)
}

func TestRequestService_Listings(t *testing.T) {
	t.Parallel()

	// 1. Подготовка: два студента, один ментор, три заявки
	svc, userRepo, requestRepo := newRequestServiceForTest()
	mentor := seedMentor(userRepo, models.MentorStatusApproved)
	student1 := seedStudent(userRepo)
	student2 := userRepo.add(&models.User{
		Name:  "Второй Студент",
		Email: "student2@test.kz",
		Role:  models.UserRoleStudent,
	})

	now := time.Now()
	older := &models.MentorshipRequest{
		StudentID: student1.ID, MentorID: mentor.ID,
		Status: models.RequestStatusRejected,
	}
	older.CreatedAt = now.Add(-2 * time.Hour)
	require.NoError(t, requestRepo.Create(older))

	newer := &models.MentorshipRequest{
		StudentID: student1.ID, MentorID: mentor.ID,
		Status: models.RequestStatusPending,
	}
	newer.CreatedAt = now.Add(-1 * time.Hour)
	require.NoError(t, requestRepo.Create(newer))

	fromOther := &models.MentorshipRequest{
		StudentID: student2.ID, MentorID: mentor.ID,
		Status: models.RequestStatusPending,
	}
	fromOther.CreatedAt = now
	require.NoError(t, requestRepo.Create(fromOther))

	// 2. Действие + проверка: очередь ментора, новые первыми
	incoming, err := svc.ListForMentor(mentor.ID, "")
	require.NoError(t, err)
	require.Len(t, incoming, 3)
	assert.Equal(t, fromOther.ID, incoming[0].ID)
	assert.Equal(t, newer.ID, incoming[1].ID)
	assert.Equal(t, older.ID, incoming[2].ID)
	// В очереди ментора роль ментора не раскрывается
	require.NotNil(t, incoming[0].Mentor)
	assert.Empty(t, incoming[0].Mentor.Role)

	// 3. Фильтр по статусу
	pendingOnly, err := svc.ListForMentor(mentor.ID, models.RequestStatusPending)
	require.NoError(t, err)
	assert.Len(t, pendingOnly, 2)

	// 4. Заявки студента: только свои, с ролью ментора в проекции
	mine, err := svc.ListForStudent(student1.ID, "")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, newer.ID, mine[0].ID)
	require.NotNil(t, mine[0].Mentor)
	assert.Equal(t, models.UserRoleMentor, mine[0].Mentor.Role)
}
