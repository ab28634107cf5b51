package leavescheme_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-hris-leave/internal/leavescheme"
	leaveschemeerrors "go-hris-leave/internal/leavescheme/errors"
	leaveschemeMock "go-hris-leave/internal/leavescheme/mock"
	"go-hris-leave/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service leavescheme.Service
	repo    *leaveschemeMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	db, sqlMock, _ := sqlmock.New()
	repo := leaveschemeMock.NewMockRepository(ctrl)
	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: leavescheme.NewService(db, repo),
		repo:    repo,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func strPtr(s string) *string { return &s }

func TestLeaveSchemeService_AssignScheme(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	employeeID := uuid.New().String()
	schemeA := uuid.New()
	schemeB := uuid.New()

	existing := leavescheme.EmployeeLeaveScheme{
		ID:            uuid.New(),
		EmployeeID:    uuid.MustParse(employeeID),
		SchemeID:      schemeA,
		EffectiveFrom: day("2025-01-01"),
		EffectiveTo:   dayPtr("2025-06-30"),
	}

	t.Run("open ended window overlapping existing assignment is rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindSchemeByID(ctx, companyID, schemeB.String()).
			Return(&leavescheme.LeaveScheme{ID: schemeB, Name: "Senior Staff", IsActive: true}, nil)
		deps.repo.EXPECT().EmployeeExists(ctx, companyID, employeeID).Return(true, nil)
		deps.repo.EXPECT().LockEmployeeAssignments(ctx, employeeID).Return(nil)
		deps.repo.EXPECT().
			FindAssignmentsByEmployee(ctx, companyID, employeeID).
			Return([]leavescheme.EmployeeLeaveScheme{existing}, nil)

		_, err := deps.service.AssignScheme(ctx, companyID, "", schemeB.String(), leavescheme.AssignSchemeRequest{
			EmployeeID:    employeeID,
			EffectiveFrom: "2025-04-01",
		})

		assert.ErrorIs(t, err, leaveschemeerrors.ErrAssignmentOverlap)
		assert.Equal(t, apperror.CodeInvalidInput, apperror.ToHTTP(err).Code)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("window after the existing one is accepted", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindSchemeByID(ctx, companyID, schemeB.String()).
			Return(&leavescheme.LeaveScheme{ID: schemeB, IsActive: true}, nil)
		deps.repo.EXPECT().EmployeeExists(ctx, companyID, employeeID).Return(true, nil)
		deps.repo.EXPECT().LockEmployeeAssignments(ctx, employeeID).Return(nil)
		deps.repo.EXPECT().
			FindAssignmentsByEmployee(ctx, companyID, employeeID).
			Return([]leavescheme.EmployeeLeaveScheme{existing}, nil)
		deps.repo.EXPECT().
			CreateAssignment(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, a *leavescheme.EmployeeLeaveScheme) error {
				assert.Equal(t, schemeB, a.SchemeID)
				assert.Nil(t, a.EffectiveTo)
				return nil
			})

		resp, err := deps.service.AssignScheme(ctx, companyID, "", schemeB.String(), leavescheme.AssignSchemeRequest{
			EmployeeID:    employeeID,
			EffectiveFrom: "2025-07-01",
		})

		assert.NoError(t, err)
		assert.Equal(t, "2025-07-01", resp.EffectiveFrom)
		assert.Nil(t, resp.EffectiveTo)
	})

	t.Run("end before start", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.AssignScheme(ctx, companyID, "", schemeB.String(), leavescheme.AssignSchemeRequest{
			EmployeeID:    employeeID,
			EffectiveFrom: "2025-07-01",
			EffectiveTo:   strPtr("2025-06-01"),
		})
		assert.ErrorIs(t, err, leaveschemeerrors.ErrInvalidWindow)
	})

	t.Run("unknown employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindSchemeByID(ctx, companyID, schemeB.String()).
			Return(&leavescheme.LeaveScheme{ID: schemeB, IsActive: true}, nil)
		deps.repo.EXPECT().EmployeeExists(ctx, companyID, employeeID).Return(false, nil)

		_, err := deps.service.AssignScheme(ctx, companyID, "", schemeB.String(), leavescheme.AssignSchemeRequest{
			EmployeeID:    employeeID,
			EffectiveFrom: "2025-07-01",
		})
		assert.ErrorIs(t, err, leaveschemeerrors.ErrEmployeeNotFound)
	})

	t.Run("unknown scheme", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindSchemeByID(ctx, companyID, schemeB.String()).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.AssignScheme(ctx, companyID, "", schemeB.String(), leavescheme.AssignSchemeRequest{
			EmployeeID:    employeeID,
			EffectiveFrom: "2025-07-01",
		})
		assert.ErrorIs(t, err, leaveschemeerrors.ErrSchemeNotFound)
	})
}

func TestLeaveSchemeService_UpdateAssignment_ExcludesItself(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	companyID := uuid.New().String()
	employeeID := uuid.New()
	current := leavescheme.EmployeeLeaveScheme{
		ID:            uuid.New(),
		EmployeeID:    employeeID,
		EffectiveFrom: day("2025-01-01"),
		EffectiveTo:   dayPtr("2025-06-30"),
	}

	expectTx(t, deps.sqlMock, true)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().FindAssignmentByID(ctx, companyID, current.ID.String()).Return(&current, nil)
	deps.repo.EXPECT().LockEmployeeAssignments(ctx, employeeID.String()).Return(nil)
	deps.repo.EXPECT().
		FindAssignmentsByEmployee(ctx, companyID, employeeID.String()).
		Return([]leavescheme.EmployeeLeaveScheme{current}, nil)
	deps.repo.EXPECT().UpdateAssignment(ctx, gomock.Any()).Return(nil)

	resp, err := deps.service.UpdateAssignment(ctx, companyID, current.ID.String(), leavescheme.UpdateAssignmentRequest{
		EffectiveFrom: "2025-01-01",
		EffectiveTo:   strPtr("2025-12-31"),
	})

	assert.NoError(t, err)
	assert.Equal(t, "2025-12-31", *resp.EffectiveTo)
}

func TestLeaveSchemeService_UpsertAllowance(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	schemeID := uuid.New()
	leaveTypeID := uuid.New().String()

	t.Run("negative days rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.UpsertAllowance(ctx, companyID, schemeID.String(), leaveTypeID, leavescheme.UpsertAllowanceRequest{DaysAllowed: -1})
		assert.ErrorIs(t, err, leaveschemeerrors.ErrInvalidDaysAllowed)
	})

	t.Run("upserts the pair", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindSchemeByID(ctx, companyID, schemeID.String()).
			Return(&leavescheme.LeaveScheme{ID: schemeID, IsActive: true}, nil)
		deps.repo.EXPECT().LeaveTypeExists(ctx, companyID, leaveTypeID).Return(true, nil)
		deps.repo.EXPECT().
			UpsertAllowance(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, a *leavescheme.SchemeLeaveType) error {
				assert.Equal(t, schemeID, a.SchemeID)
				assert.True(t, a.DaysAllowed.Equal(decimal.RequireFromString("12.5")))
				return nil
			})

		resp, err := deps.service.UpsertAllowance(ctx, companyID, schemeID.String(), leaveTypeID, leavescheme.UpsertAllowanceRequest{DaysAllowed: 12.5})

		assert.NoError(t, err)
		assert.Equal(t, 12.5, resp.DaysAllowed)
	})

	t.Run("unknown leave type", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindSchemeByID(ctx, companyID, schemeID.String()).
			Return(&leavescheme.LeaveScheme{ID: schemeID, IsActive: true}, nil)
		deps.repo.EXPECT().LeaveTypeExists(ctx, companyID, leaveTypeID).Return(false, nil)

		_, err := deps.service.UpsertAllowance(ctx, companyID, schemeID.String(), leaveTypeID, leavescheme.UpsertAllowanceRequest{DaysAllowed: 3})
		assert.ErrorIs(t, err, leaveschemeerrors.ErrLeaveTypeNotFound)
	})
}

func TestLeaveSchemeService_CreateScheme_DuplicateActiveName(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	companyID := uuid.New().String()

	expectTx(t, deps.sqlMock, false)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().ActiveNameExists(ctx, companyID, "Standard", "").Return(true, nil)

	_, err := deps.service.CreateScheme(ctx, companyID, "", leavescheme.CreateSchemeRequest{Name: "  Standard "})
	assert.ErrorIs(t, err, leaveschemeerrors.ErrSchemeNameExists)
}

func TestLeaveSchemeService_ActiveSchemeFor(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	employeeID := uuid.New().String()
	on := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("no assignment", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().FindActiveAssignment(ctx, companyID, employeeID, on).Return(nil, gorm.ErrRecordNotFound)

		active, err := deps.service.ActiveSchemeFor(ctx, companyID, employeeID, on)
		assert.NoError(t, err)
		assert.Nil(t, active)
	})

	t.Run("builds allowance map", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		schemeID := uuid.New()
		leaveTypeID := uuid.New()
		deps.repo.EXPECT().
			FindActiveAssignment(ctx, companyID, employeeID, on).
			Return(&leavescheme.EmployeeLeaveScheme{SchemeID: schemeID}, nil)
		deps.repo.EXPECT().
			FindSchemeByID(ctx, companyID, schemeID.String()).
			Return(&leavescheme.LeaveScheme{ID: schemeID, Name: "Senior Staff", IsActive: true}, nil)
		deps.repo.EXPECT().
			FindAllowances(ctx, schemeID.String()).
			Return([]leavescheme.SchemeLeaveType{{SchemeID: schemeID, LeaveTypeID: leaveTypeID, DaysAllowed: decimal.NewFromInt(20)}}, nil)

		active, err := deps.service.ActiveSchemeFor(ctx, companyID, employeeID, on)

		assert.NoError(t, err)
		assert.Equal(t, "Senior Staff", active.Name)
		assert.True(t, active.Allowances[leaveTypeID.String()].Days.Equal(decimal.NewFromInt(20)))
	})
}
