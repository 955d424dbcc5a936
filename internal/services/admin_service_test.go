package services

import (
	"testing"

	"mentorhub_backend/internal/models"
	"mentorhub_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminServiceForTest() (AdminService, *fakeUserRepo) {
	userRepo := newFakeUserRepo()
	return NewAdminService(userRepo, nil), userRepo
}

func TestAdminService_SetMentorStatus_Approve(t *testing.T) {
	t.Parallel()

	// 1. Подготовка
	svc, userRepo := newAdminServiceForTest()
	mentor := seedMentor(userRepo, models.MentorStatusPending)

	// 2. Действие
	result, err := svc.SetMentorStatus(mentor.ID, models.MentorStatusApproved)

	// 3. Проверка
	require.NoError(t, err)
	assert.Equal(t, models.MentorStatusApproved, result.MentorStatus)

	stored, err := userRepo.FindByID(mentor.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MentorStatusApproved, stored.MentorStatus)
}

func TestAdminService_SetMentorStatus_DecisionIsTerminal(t *testing.T) {
	t.Parallel()

	svc, userRepo := newAdminServiceForTest()
	mentor := seedMentor(userRepo, models.MentorStatusPending)

	_, err := svc.SetMentorStatus(mentor.ID, models.MentorStatusApproved)
	require.NoError(t, err)

	// Любое повторное решение по рассмотренной заявке - ошибка,
	// даже если статус тот же
	for _, status := range []models.MentorStatus{models.MentorStatusApproved, models.MentorStatusRejected} {
		_, err = svc.SetMentorStatus(mentor.ID, status)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr, "re-resolution to %s", status)
		assert.Equal(t, "Mentor is already approved", appErr.Message)
	}
}

func TestAdminService_SetMentorStatus_PendingNotAllowed(t *testing.T) {
	t.Parallel()

	svc, userRepo := newAdminServiceForTest()
	mentor := seedMentor(userRepo, models.MentorStatusPending)

	_, err := svc.SetMentorStatus(mentor.ID, models.MentorStatusPending)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Status must be approved or rejected", appErr.Message)
}

func TestAdminService_SetMentorStatus_NotFound(t *testing.T) {
	t.Parallel()

	svc, _ := newAdminServiceForTest()

	_, err := svc.SetMentorStatus("missing-id", models.MentorStatusApproved)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode)
	assert.Equal(t, "User not found", appErr.Message)
}

func TestAdminService_SetMentorStatus_TargetNotMentor(t *testing.T) {
	t.Parallel()

	svc, userRepo := newAdminServiceForTest()
	student := seedStudent(userRepo)

	_, err := svc.SetMentorStatus(student.ID, models.MentorStatusApproved)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "User is not a mentor", appErr.Message)
}

func TestAdminService_ListMentorsByStatus(t *testing.T) {
	t.Parallel()

	svc, userRepo := newAdminServiceForTest()
	seedMentor(userRepo, models.MentorStatusPending)
	userRepo.add(&models.User{
		Name: "Одобренный", Email: "approved@test.kz",
		Role: models.UserRoleMentor, MentorStatus: models.MentorStatusApproved,
	})
	// Студенты в списки менторов не попадают независимо от mentor_status
	userRepo.add(&models.User{
		Name: "Студент", Email: "student-x@test.kz",
		Role: models.UserRoleStudent, MentorStatus: models.MentorStatusPending,
	})

	pending, err := svc.ListMentorsByStatus(models.MentorStatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "mentor@test.kz", pending[0].Email)

	approved, err := svc.ListMentorsByStatus(models.MentorStatusApproved)
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, "approved@test.kz", approved[0].Email)
}
