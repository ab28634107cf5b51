package leavebalance_test

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"go-hris-leave/internal/leavebalance"
	leavebalanceerrors "go-hris-leave/internal/leavebalance/errors"
	"go-hris-leave/internal/leavebalance/leavebalancetest"
	leavebalanceMock "go-hris-leave/internal/leavebalance/mock"
	"go-hris-leave/internal/leavescheme"
	"go-hris-leave/internal/leavetype"
	"go-hris-leave/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeCatalog struct {
	types []leavetype.LeaveType
}

func (f fakeCatalog) ListActive(ctx context.Context, companyID string) ([]leavetype.LeaveType, error) {
	return f.types, nil
}

func (f fakeCatalog) Lookup(ctx context.Context, companyID, id string) (*leavetype.LeaveType, error) {
	for _, lt := range f.types {
		if lt.ID.String() == id {
			return &lt, nil
		}
	}
	return nil, errors.New("not found")
}

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	repo      *leavebalancetest.MemoryRepository
	configs   *leavebalanceMock.MockYearConfigSource
	schemes   *leavebalanceMock.MockSchemeResolver
	directory *leavebalanceMock.MockEmployeeDirectory
	service   leavebalance.Service
}

func setupServiceTest(t *testing.T, types []leavetype.LeaveType, seed ...leavebalance.LeaveBalance) *serviceDeps {
	ctrl := gomock.NewController(t)
	db, sqlMock, _ := sqlmock.New()
	deps := &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		repo:      leavebalancetest.NewMemoryRepository(seed...),
		configs:   leavebalanceMock.NewMockYearConfigSource(ctrl),
		schemes:   leavebalanceMock.NewMockSchemeResolver(ctrl),
		directory: leavebalanceMock.NewMockEmployeeDirectory(ctrl),
	}
	deps.service = leavebalance.NewService(db, deps.repo, fakeCatalog{types: types}, deps.configs, deps.schemes, deps.directory)
	return deps
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

func days(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func TestLeaveBalanceService_PopulateForYear(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	alice := uuid.New().String()
	bob := uuid.New().String()
	casual := leavetype.LeaveType{ID: uuid.New(), Name: "Casual Leave", MaxDays: days(6), IsActive: true}
	sick := leavetype.LeaveType{ID: uuid.New(), Name: "Sick Leave", MaxDays: days(10), IsActive: true}
	types := []leavetype.LeaveType{casual, sick}

	t.Run("second run skips every existing row and keeps used days", func(t *testing.T) {
		deps := setupServiceTest(t, types)
		defer deps.db.Close()

		deps.directory.EXPECT().ActiveEmployeeIDs(ctx, companyID).Return([]string{alice, bob}, nil).Times(2)
		deps.configs.EXPECT().YearAllocations(ctx, companyID, 2025).Return(nil, false, nil).Times(2)
		deps.schemes.EXPECT().ActiveSchemeFor(ctx, companyID, gomock.Any(), gomock.Any()).Return(nil, nil).Times(4)

		expectTx(t, deps.sqlMock, true)
		expectTx(t, deps.sqlMock, true)
		first, err := deps.service.PopulateForYear(ctx, companyID, 2025)
		require.NoError(t, err)
		assert.Equal(t, leavebalance.PopulateResult{Year: 2025, Employees: 2, Created: 4}, first)

		expectTx(t, deps.sqlMock, true)
		_, err = deps.service.AdjustUsed(ctx, nil, companyID, alice, casual.ID.String(), 2025, days(2))
		require.NoError(t, err)

		expectTx(t, deps.sqlMock, true)
		expectTx(t, deps.sqlMock, true)
		second, err := deps.service.PopulateForYear(ctx, companyID, 2025)
		require.NoError(t, err)
		assert.Equal(t, leavebalance.PopulateResult{Year: 2025, Employees: 2, Skipped: 4}, second)

		assert.Equal(t, 4, deps.repo.Len())
		b, ok := deps.repo.Get(alice, casual.ID.String(), 2025)
		require.True(t, ok)
		assert.Equal(t, "2", b.UsedDays.String())
		assert.Equal(t, "6", b.AllocatedDays.String())
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("scheme and year config decide allocations", func(t *testing.T) {
		deps := setupServiceTest(t, types)
		defer deps.db.Close()

		schemeID := uuid.New()
		deps.directory.EXPECT().ActiveEmployeeIDs(ctx, companyID).Return([]string{alice, bob}, nil)
		deps.configs.EXPECT().
			YearAllocations(ctx, companyID, 2025).
			Return(map[string]decimal.Decimal{casual.ID.String(): days(8)}, true, nil)
		deps.schemes.EXPECT().
			ActiveSchemeFor(ctx, companyID, alice, gomock.Any()).
			Return(&leavescheme.ActiveScheme{
				SchemeID:   schemeID,
				Name:       "Senior Staff",
				Allowances: map[string]leavescheme.Allowance{sick.ID.String(): {Days: days(15)}},
			}, nil)
		deps.schemes.EXPECT().ActiveSchemeFor(ctx, companyID, bob, gomock.Any()).Return(nil, nil)

		expectTx(t, deps.sqlMock, true)
		expectTx(t, deps.sqlMock, true)
		result, err := deps.service.PopulateForYear(ctx, companyID, 2025)

		require.NoError(t, err)
		assert.Equal(t, 3, result.Created)

		_, ok := deps.repo.Get(alice, casual.ID.String(), 2025)
		assert.False(t, ok)
		aliceSick, _ := deps.repo.Get(alice, sick.ID.String(), 2025)
		assert.Equal(t, "15", aliceSick.AllocatedDays.String())
		assert.Equal(t, leavebalance.SourceScheme, aliceSick.Source)

		bobCasual, _ := deps.repo.Get(bob, casual.ID.String(), 2025)
		assert.Equal(t, "8", bobCasual.AllocatedDays.String())
		assert.Equal(t, leavebalance.SourceGlobal, bobCasual.Source)
		bobSick, _ := deps.repo.Get(bob, sick.ID.String(), 2025)
		assert.Equal(t, "10", bobSick.AllocatedDays.String())
		assert.Equal(t, leavebalance.SourceLeaveType, bobSick.Source)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("one failing employee does not stop the others", func(t *testing.T) {
		deps := setupServiceTest(t, types)
		defer deps.db.Close()

		deps.directory.EXPECT().ActiveEmployeeIDs(ctx, companyID).Return([]string{alice, bob}, nil)
		deps.configs.EXPECT().YearAllocations(ctx, companyID, 2025).Return(nil, false, nil)
		deps.schemes.EXPECT().ActiveSchemeFor(ctx, companyID, alice, gomock.Any()).Return(nil, errors.New("db down"))
		deps.schemes.EXPECT().ActiveSchemeFor(ctx, companyID, bob, gomock.Any()).Return(nil, nil)

		expectTx(t, deps.sqlMock, true)
		result, err := deps.service.PopulateForYear(ctx, companyID, 2025)

		require.NoError(t, err)
		assert.Equal(t, 2, result.Created)
		assert.Equal(t, 1, result.Failed)
		assert.Equal(t, []string{alice}, result.FailedEmployeeIDs)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("invalid year", func(t *testing.T) {
		deps := setupServiceTest(t, types)
		defer deps.db.Close()

		_, err := deps.service.PopulateForYear(ctx, companyID, 1999)
		assert.ErrorIs(t, err, leavebalanceerrors.ErrInvalidYear)
	})
}

func TestLeaveBalanceService_GetBalance(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	employeeID := uuid.New()
	leaveTypeID := uuid.New()

	deps := setupServiceTest(t, nil, leavebalance.LeaveBalance{
		CompanyID:     companyID,
		EmployeeID:    employeeID,
		LeaveTypeID:   leaveTypeID,
		Year:          2025,
		AllocatedDays: days(6),
		UsedDays:      days(1.5),
		Source:        leavebalance.SourceGlobal,
	})
	defer deps.db.Close()

	t.Run("derives remaining days", func(t *testing.T) {
		resp, err := deps.service.GetBalance(ctx, companyID.String(), employeeID.String(), leaveTypeID.String(), 2025)

		require.NoError(t, err)
		assert.Equal(t, 6.0, resp.AllocatedDays)
		assert.Equal(t, 1.5, resp.UsedDays)
		assert.Equal(t, 4.5, resp.RemainingDays)
	})

	t.Run("missing row is not found", func(t *testing.T) {
		_, err := deps.service.GetBalance(ctx, companyID.String(), employeeID.String(), leaveTypeID.String(), 2026)

		assert.ErrorIs(t, err, leavebalanceerrors.ErrBalanceNotFound)
		assert.Equal(t, apperror.CodeNotFound, apperror.ToHTTP(err).Code)
	})

	t.Run("invalid employee id", func(t *testing.T) {
		_, err := deps.service.GetBalance(ctx, companyID.String(), "nope", leaveTypeID.String(), 2025)
		assert.ErrorIs(t, err, leavebalanceerrors.ErrInvalidEmployeeID)
	})
}

func TestLeaveBalanceService_AdjustUsed(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	employeeID := uuid.New()
	leaveTypeID := uuid.New()
	seed := leavebalance.LeaveBalance{
		CompanyID:     companyID,
		EmployeeID:    employeeID,
		LeaveTypeID:   leaveTypeID,
		Year:          2025,
		AllocatedDays: days(6),
		UsedDays:      days(5),
	}

	t.Run("overdraw rolls back and leaves used days untouched", func(t *testing.T) {
		deps := setupServiceTest(t, nil, seed)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		_, err := deps.service.AdjustUsed(ctx, nil, companyID.String(), employeeID.String(), leaveTypeID.String(), 2025, days(2))

		assert.ErrorIs(t, err, leavebalanceerrors.ErrInsufficientBalance)
		assert.Equal(t, apperror.CodeInsufficientBalance, apperror.ToHTTP(err).Code)
		b, _ := deps.repo.Get(employeeID.String(), leaveTypeID.String(), 2025)
		assert.Equal(t, "5", b.UsedDays.String())
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("restore below zero is refused", func(t *testing.T) {
		deps := setupServiceTest(t, nil, seed)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		_, err := deps.service.AdjustUsed(ctx, nil, companyID.String(), employeeID.String(), leaveTypeID.String(), 2025, days(-6))

		assert.ErrorIs(t, err, leavebalanceerrors.ErrBalanceUnderflow)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown balance", func(t *testing.T) {
		deps := setupServiceTest(t, nil)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		_, err := deps.service.AdjustUsed(ctx, nil, companyID.String(), employeeID.String(), leaveTypeID.String(), 2025, days(1))

		assert.ErrorIs(t, err, leavebalanceerrors.ErrBalanceNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestLeaveBalanceService_ConcurrentConsumeAllowsOnlyOne(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	employeeID := uuid.New()
	leaveTypeID := uuid.New()

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	sqlMock.MatchExpectationsInOrder(false)
	sqlMock.ExpectBegin()
	sqlMock.ExpectBegin()
	sqlMock.ExpectCommit()
	sqlMock.ExpectRollback()

	repo := leavebalancetest.NewMemoryRepository(leavebalance.LeaveBalance{
		CompanyID:     companyID,
		EmployeeID:    employeeID,
		LeaveTypeID:   leaveTypeID,
		Year:          2025,
		AllocatedDays: days(6),
		UsedDays:      days(2),
	})
	service := leavebalance.NewService(db, repo, fakeCatalog{}, nil, nil, nil)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = service.AdjustUsed(ctx, nil, companyID.String(), employeeID.String(), leaveTypeID.String(), 2025, days(3))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, leavebalanceerrors.ErrInsufficientBalance)
	}
	assert.Equal(t, 1, succeeded)

	b, _ := repo.Get(employeeID.String(), leaveTypeID.String(), 2025)
	assert.Equal(t, "5", b.UsedDays.String())
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestLeaveBalanceService_AdjustAllocation(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	id := uuid.New()
	seed := leavebalance.LeaveBalance{
		ID:            id,
		CompanyID:     companyID,
		EmployeeID:    uuid.New(),
		LeaveTypeID:   uuid.New(),
		Year:          2025,
		AllocatedDays: days(6),
		UsedDays:      days(4),
	}
	f := func(v float64) *float64 { return &v }

	t.Run("raises allocation", func(t *testing.T) {
		deps := setupServiceTest(t, nil, seed)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		resp, err := deps.service.AdjustAllocation(ctx, companyID.String(), id.String(), leavebalance.AdjustAllocationRequest{AllocatedDays: f(8)})

		require.NoError(t, err)
		assert.Equal(t, 8.0, resp.AllocatedDays)
		assert.Equal(t, 4.0, resp.RemainingDays)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("refuses allocation below used days", func(t *testing.T) {
		deps := setupServiceTest(t, nil, seed)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		_, err := deps.service.AdjustAllocation(ctx, companyID.String(), id.String(), leavebalance.AdjustAllocationRequest{AllocatedDays: f(3)})

		assert.ErrorIs(t, err, leavebalanceerrors.ErrAllocationBelowUsed)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("refuses quarter days", func(t *testing.T) {
		deps := setupServiceTest(t, nil, seed)
		defer deps.db.Close()

		_, err := deps.service.AdjustAllocation(ctx, companyID.String(), id.String(), leavebalance.AdjustAllocationRequest{AllocatedDays: f(6.25)})
		assert.ErrorIs(t, err, leavebalanceerrors.ErrInvalidAllocation)
	})
}

func TestReferenceDateIsInsideYear(t *testing.T) {
	on := leavebalance.ReferenceDate(2030, time.Now())
	assert.Equal(t, 2030, on.Year())
}
