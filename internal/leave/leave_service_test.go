package leave_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"go-hris-leave/internal/domain"
	"go-hris-leave/internal/events"
	"go-hris-leave/internal/leave"
	leaveerrors "go-hris-leave/internal/leave/errors"
	leaveMock "go-hris-leave/internal/leave/mock"
	"go-hris-leave/internal/leavebalance"
	leavebalanceerrors "go-hris-leave/internal/leavebalance/errors"
	"go-hris-leave/internal/leavebalance/leavebalancetest"
	"go-hris-leave/internal/leavetype"
	"go-hris-leave/internal/messaging/kafka"
	kafkaMock "go-hris-leave/internal/messaging/kafka/mock"
	"go-hris-leave/internal/shared/apperror"
	"go-hris-leave/internal/shared/contextutil"
	counterMock "go-hris-leave/internal/shared/counter/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
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
	return nil, errors.New("leave type not found")
}

// memoryLeaveRepo keeps applications in a map keyed by id.
type memoryLeaveRepo struct {
	mu   sync.Mutex
	apps map[uuid.UUID]leave.LeaveApplication
}

func newMemoryLeaveRepo(seed ...leave.LeaveApplication) *memoryLeaveRepo {
	r := &memoryLeaveRepo{apps: map[uuid.UUID]leave.LeaveApplication{}}
	for _, l := range seed {
		r.apps[l.ID] = l
	}
	return r
}

func (r *memoryLeaveRepo) WithTx(tx *sql.Tx) leave.Repository { return r }

func (r *memoryLeaveRepo) Create(ctx context.Context, l *leave.LeaveApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l.CreatedAt = time.Now().UTC()
	r.apps[l.ID] = *l
	return nil
}

func (r *memoryLeaveRepo) Update(ctx context.Context, l *leave.LeaveApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.apps[l.ID] = *l
	return nil
}

func (r *memoryLeaveRepo) FindByIDAndCompany(ctx context.Context, companyID, id string) (*leave.LeaveApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.apps[uuid.MustParse(id)]
	if !ok || l.CompanyID.String() != companyID {
		return nil, gorm.ErrRecordNotFound
	}
	return &l, nil
}

func (r *memoryLeaveRepo) LockByIDAndCompany(ctx context.Context, companyID, id string) (*leave.LeaveApplication, error) {
	return r.FindByIDAndCompany(ctx, companyID, id)
}

func (r *memoryLeaveRepo) FindAll(ctx context.Context, companyID string, filter leave.ListFilter) ([]leave.LeaveApplication, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []leave.LeaveApplication
	for _, l := range r.apps {
		if filter.Status != "" && l.Status != filter.Status {
			continue
		}
		out = append(out, l)
	}
	return out, int64(len(out)), nil
}

func (r *memoryLeaveRepo) FindApprovedInRange(ctx context.Context, companyID, employeeID string, from, to time.Time) ([]leave.LeaveApplication, error) {
	return nil, nil
}

func (r *memoryLeaveRepo) HasOverlappingPeriod(ctx context.Context, companyID, employeeID string, startDate, endDate time.Time, excludeID *string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.apps {
		if l.EmployeeID.String() != employeeID {
			continue
		}
		if l.Status != leave.StatusPending && l.Status != leave.StatusApproved {
			continue
		}
		if !(l.EndDate.Before(startDate) || l.StartDate.After(endDate)) {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryLeaveRepo) get(id string) leave.LeaveApplication {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.apps[uuid.MustParse(id)]
}

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	repo      *memoryLeaveRepo
	balances  *leavebalancetest.MemoryRepository
	directory *leaveMock.MockEmployeeDirectory
	counter   *counterMock.MockRepository
	outbox    *kafkaMock.MockOutboxRepository
	service   leave.Service

	companyID string
	employee  string
	manager   string
	casual    leavetype.LeaveType
}

func setupServiceTest(t *testing.T, usedDays float64, apps ...leave.LeaveApplication) *serviceDeps {
	ctrl := gomock.NewController(t)
	db, sqlMock, _ := sqlmock.New()

	deps := &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		repo:      newMemoryLeaveRepo(apps...),
		directory: leaveMock.NewMockEmployeeDirectory(ctrl),
		counter:   counterMock.NewMockRepository(ctrl),
		outbox:    kafkaMock.NewMockOutboxRepository(ctrl),
		companyID: companyID,
		employee:  employeeID,
		manager:   uuid.New().String(),
		casual:    casualLeave,
	}
	deps.balances = leavebalancetest.NewMemoryRepository(leavebalance.LeaveBalance{
		ID:            uuid.New(),
		CompanyID:     uuid.MustParse(companyID),
		EmployeeID:    uuid.MustParse(employeeID),
		LeaveTypeID:   casualLeave.ID,
		Year:          2025,
		AllocatedDays: decimal.NewFromInt(6),
		UsedDays:      decimal.NewFromFloat(usedDays),
		Source:        leavebalance.SourceGlobal,
	})

	catalog := fakeCatalog{types: []leavetype.LeaveType{casualLeave, inactiveLeave}}
	ledger := leavebalance.NewService(db, deps.balances, catalog, nil, nil, nil)
	deps.service = leave.NewService(db, deps.repo, catalog, ledger, deps.directory, deps.counter, deps.outbox)
	return deps
}

var (
	companyID     = uuid.New().String()
	employeeID    = uuid.New().String()
	casualLeave   = leavetype.LeaveType{ID: uuid.New(), Name: "Casual Leave", MaxDays: decimal.NewFromInt(6), IsPaid: true, IsActive: true}
	inactiveLeave = leavetype.LeaveType{ID: uuid.New(), Name: "Retired Leave", MaxDays: decimal.NewFromInt(3), IsActive: false}
)

func (d *serviceDeps) remaining(t *testing.T) (string, string) {
	t.Helper()
	b, ok := d.balances.Get(d.employee, d.casual.ID.String(), 2025)
	require.True(t, ok)
	return b.UsedDays.String(), b.RemainingDays().String()
}

func (d *serviceDeps) expectOutbox(captured *[]kafka.OutboxEvent) {
	d.outbox.EXPECT().WithTx(gomock.Any()).Return(d.outbox)
	d.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, e kafka.OutboxEvent) error {
		*captured = append(*captured, e)
		return nil
	})
}

func pendingApp(status string, start, end string, workingDays float64) leave.LeaveApplication {
	s, _ := time.Parse("2006-01-02", start)
	e, _ := time.Parse("2006-01-02", end)
	return leave.LeaveApplication{
		ID:           uuid.New(),
		CompanyID:    uuid.MustParse(companyID),
		ReferenceNo:  "LV-2025-000009",
		EmployeeID:   uuid.MustParse(employeeID),
		LeaveTypeID:  casualLeave.ID,
		StartDate:    s,
		EndDate:      e,
		DurationType: leave.DurationFullDay,
		WorkingDays:  decimal.NewFromFloat(workingDays),
		Status:       status,
		CreatedBy:    uuid.MustParse(employeeID),
	}
}

func TestLeaveService_CasualLeaveLifecycle(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "req-1")
	deps := setupServiceTest(t, 0)
	defer deps.db.Close()

	deps.directory.EXPECT().IsActive(gomock.Any(), companyID, employeeID).Return(true, nil)
	deps.counter.EXPECT().WithTx(gomock.Any()).Return(deps.counter)
	deps.counter.EXPECT().GetNextValue(gomock.Any(), companyID, leave.ReferencePrefix).Return(int64(1), nil)

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()
	submitted, err := deps.service.Submit(ctx, companyID, employeeID, leave.SubmitLeaveRequest{
		LeaveTypeID: casualLeave.ID.String(),
		StartDate:   "2025-03-10",
		EndDate:     "2025-03-11",
		Reason:      "family visit",
	})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusPending, submitted.Status)
	assert.Equal(t, "LV-2025-000001", submitted.ReferenceNo)
	assert.Equal(t, 2.0, submitted.WorkingDays)
	assert.Equal(t, leave.DurationFullDay, submitted.LeaveDurationType)
	used, remaining := deps.remaining(t)
	assert.Equal(t, "0", used)
	assert.Equal(t, "6", remaining)

	var queued []kafka.OutboxEvent
	deps.expectOutbox(&queued)
	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()
	approved, err := deps.service.Approve(ctx, companyID, deps.manager, submitted.ID, leave.ApproveLeaveRequest{Comments: "enjoy"})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, approved.Status)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, deps.manager, *approved.ApprovedBy)
	used, remaining = deps.remaining(t)
	assert.Equal(t, "2", used)
	assert.Equal(t, "4", remaining)

	deps.expectOutbox(&queued)
	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()
	cancelled, err := deps.service.Cancel(ctx, companyID, employeeID, submitted.ID, leave.CancelLeaveRequest{CancellationReason: "plans changed"})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusCancelled, cancelled.Status)
	used, remaining = deps.remaining(t)
	assert.Equal(t, "0", used)
	assert.Equal(t, "6", remaining)

	require.Len(t, queued, 2)
	assert.Equal(t, events.LeaveApplicationApproved, queued[0].EventType)
	assert.Equal(t, events.LeaveApplicationTopic, queued[0].Topic)
	assert.Equal(t, "req-1", queued[0].RequestID)
	assert.Equal(t, submitted.ID, queued[0].AggregateID)
	assert.Equal(t, events.LeaveApplicationCancelled, queued[1].EventType)

	var payload events.LeaveApplicationEvent
	require.NoError(t, json.Unmarshal(queued[1].Payload, &payload))
	assert.Equal(t, submitted.ID, payload.ApplicationID)
	assert.Equal(t, 2.0, payload.WorkingDays)
	assert.Equal(t, leave.StatusCancelled, payload.Status)

	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestLeaveService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("more days than remaining is refused before any transaction", func(t *testing.T) {
		deps := setupServiceTest(t, 2)
		defer deps.db.Close()
		deps.directory.EXPECT().IsActive(gomock.Any(), companyID, employeeID).Return(true, nil)

		_, err := deps.service.Submit(ctx, companyID, employeeID, leave.SubmitLeaveRequest{
			LeaveTypeID: casualLeave.ID.String(),
			StartDate:   "2025-05-05",
			EndDate:     "2025-05-09",
		})

		assert.ErrorIs(t, err, leavebalanceerrors.ErrInsufficientBalance)
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, map[string]float64{"remaining_days": 4, "requested_days": 5}, appErr.Details)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("overlapping pending application", func(t *testing.T) {
		existing := pendingApp(leave.StatusPending, "2025-03-11", "2025-03-12", 2)
		deps := setupServiceTest(t, 0, existing)
		defer deps.db.Close()
		deps.directory.EXPECT().IsActive(gomock.Any(), companyID, employeeID).Return(true, nil)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Submit(ctx, companyID, employeeID, leave.SubmitLeaveRequest{
			LeaveTypeID: casualLeave.ID.String(),
			StartDate:   "2025-03-10",
			EndDate:     "2025-03-11",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrOverlappingLeave)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("cancelled application does not block the same dates", func(t *testing.T) {
		existing := pendingApp(leave.StatusCancelled, "2025-03-10", "2025-03-10", 1)
		deps := setupServiceTest(t, 0, existing)
		defer deps.db.Close()
		deps.directory.EXPECT().IsActive(gomock.Any(), companyID, employeeID).Return(true, nil)
		deps.counter.EXPECT().WithTx(gomock.Any()).Return(deps.counter)
		deps.counter.EXPECT().GetNextValue(gomock.Any(), companyID, leave.ReferencePrefix).Return(int64(7), nil)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.Submit(ctx, companyID, employeeID, leave.SubmitLeaveRequest{
			LeaveTypeID:       casualLeave.ID.String(),
			StartDate:         "2025-03-10",
			EndDate:           "2025-03-10",
			LeaveDurationType: leave.DurationHalfDayAfternoon,
		})

		require.NoError(t, err)
		assert.Equal(t, 0.5, resp.WorkingDays)
		assert.Equal(t, "LV-2025-000007", resp.ReferenceNo)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("filing for someone else needs the manage capability", func(t *testing.T) {
		deps := setupServiceTest(t, 0)
		defer deps.db.Close()

		_, err := deps.service.Submit(ctx, companyID, deps.manager, leave.SubmitLeaveRequest{
			LeaveTypeID: casualLeave.ID.String(),
			EmployeeID:  employeeID,
			StartDate:   "2025-03-10",
			EndDate:     "2025-03-10",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrFileOnBehalfForbidden)
	})

	t.Run("manager files on behalf", func(t *testing.T) {
		deps := setupServiceTest(t, 0)
		defer deps.db.Close()
		capCtx := contextutil.WithCapabilities(ctx, domain.NewCapabilities(
			domain.CapabilityKey(domain.ResourceLeaveApplication, domain.ActionManage),
		))
		deps.directory.EXPECT().IsActive(gomock.Any(), companyID, employeeID).Return(true, nil)
		deps.counter.EXPECT().WithTx(gomock.Any()).Return(deps.counter)
		deps.counter.EXPECT().GetNextValue(gomock.Any(), companyID, leave.ReferencePrefix).Return(int64(2), nil)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.Submit(capCtx, companyID, deps.manager, leave.SubmitLeaveRequest{
			LeaveTypeID: casualLeave.ID.String(),
			EmployeeID:  employeeID,
			StartDate:   "2025-03-10",
			EndDate:     "2025-03-10",
		})

		require.NoError(t, err)
		assert.Equal(t, employeeID, resp.EmployeeID)
		assert.Equal(t, deps.manager, resp.CreatedBy)
	})

	t.Run("inactive leave type", func(t *testing.T) {
		deps := setupServiceTest(t, 0)
		defer deps.db.Close()

		_, err := deps.service.Submit(ctx, companyID, employeeID, leave.SubmitLeaveRequest{
			LeaveTypeID: inactiveLeave.ID.String(),
			StartDate:   "2025-03-10",
			EndDate:     "2025-03-10",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveTypeInactive)
	})

	t.Run("inactive employee", func(t *testing.T) {
		deps := setupServiceTest(t, 0)
		defer deps.db.Close()
		deps.directory.EXPECT().IsActive(gomock.Any(), companyID, employeeID).Return(false, nil)

		_, err := deps.service.Submit(ctx, companyID, employeeID, leave.SubmitLeaveRequest{
			LeaveTypeID: casualLeave.ID.String(),
			StartDate:   "2025-03-10",
			EndDate:     "2025-03-10",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrEmployeeNotFound)
	})

	t.Run("range crossing new year", func(t *testing.T) {
		deps := setupServiceTest(t, 0)
		defer deps.db.Close()

		_, err := deps.service.Submit(ctx, companyID, employeeID, leave.SubmitLeaveRequest{
			LeaveTypeID: casualLeave.ID.String(),
			StartDate:   "2025-12-31",
			EndDate:     "2026-01-01",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrCrossYearRange)
	})
}

func TestLeaveService_IllegalTransitions(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		status  string
		act     func(s leave.Service, id, actor string) error
		current string
		attempt string
	}{
		{
			name:   "reject an approved application",
			status: leave.StatusApproved,
			act: func(s leave.Service, id, actor string) error {
				_, err := s.Reject(ctx, companyID, actor, id, leave.RejectLeaveRequest{})
				return err
			},
			current: leave.StatusApproved,
			attempt: leave.StatusRejected,
		},
		{
			name:   "cancel a rejected application",
			status: leave.StatusRejected,
			act: func(s leave.Service, id, actor string) error {
				_, err := s.Cancel(ctx, companyID, employeeID, id, leave.CancelLeaveRequest{})
				return err
			},
			current: leave.StatusRejected,
			attempt: leave.StatusCancelled,
		},
		{
			name:   "approve twice",
			status: leave.StatusApproved,
			act: func(s leave.Service, id, actor string) error {
				_, err := s.Approve(ctx, companyID, actor, id, leave.ApproveLeaveRequest{})
				return err
			},
			current: leave.StatusApproved,
			attempt: leave.StatusApproved,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := pendingApp(tt.status, "2025-03-10", "2025-03-11", 2)
			deps := setupServiceTest(t, 2, app)
			defer deps.db.Close()
			deps.sqlMock.ExpectBegin()
			deps.sqlMock.ExpectRollback()

			err := tt.act(deps.service, app.ID.String(), deps.manager)

			assert.True(t, apperror.IsKind(err, apperror.CodeInvalidState))
			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, map[string]string{"current_status": tt.current, "attempted_status": tt.attempt}, appErr.Details)
			assert.Equal(t, tt.status, deps.repo.get(app.ID.String()).Status)
			used, _ := deps.remaining(t)
			assert.Equal(t, "2", used)
			assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		})
	}
}

func TestLeaveService_Approve(t *testing.T) {
	ctx := context.Background()

	t.Run("balance spent since submission rolls back", func(t *testing.T) {
		app := pendingApp(leave.StatusPending, "2025-03-10", "2025-03-11", 2)
		deps := setupServiceTest(t, 5, app)
		defer deps.db.Close()
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Approve(ctx, companyID, deps.manager, app.ID.String(), leave.ApproveLeaveRequest{})

		assert.ErrorIs(t, err, leavebalanceerrors.ErrInsufficientBalance)
		assert.Equal(t, leave.StatusPending, deps.repo.get(app.ID.String()).Status)
		used, _ := deps.remaining(t)
		assert.Equal(t, "5", used)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown application", func(t *testing.T) {
		deps := setupServiceTest(t, 0)
		defer deps.db.Close()
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Approve(ctx, companyID, deps.manager, uuid.New().String(), leave.ApproveLeaveRequest{})

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		deps := setupServiceTest(t, 0)
		defer deps.db.Close()

		_, err := deps.service.Approve(ctx, companyID, deps.manager, "nope", leave.ApproveLeaveRequest{})

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidApplicationID)
	})
}

func TestLeaveService_RejectAndCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("reject keeps the balance untouched", func(t *testing.T) {
		app := pendingApp(leave.StatusPending, "2025-03-10", "2025-03-11", 2)
		deps := setupServiceTest(t, 0, app)
		defer deps.db.Close()
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.Reject(ctx, companyID, deps.manager, app.ID.String(), leave.RejectLeaveRequest{RejectionReason: "peak season"})

		require.NoError(t, err)
		assert.Equal(t, leave.StatusRejected, resp.Status)
		require.NotNil(t, resp.RejectionReason)
		assert.Equal(t, "peak season", *resp.RejectionReason)
		used, _ := deps.remaining(t)
		assert.Equal(t, "0", used)
	})

	t.Run("owner withdraws a pending application without events", func(t *testing.T) {
		app := pendingApp(leave.StatusPending, "2025-03-10", "2025-03-11", 2)
		deps := setupServiceTest(t, 0, app)
		defer deps.db.Close()
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.Cancel(ctx, companyID, employeeID, app.ID.String(), leave.CancelLeaveRequest{})

		require.NoError(t, err)
		assert.Equal(t, leave.StatusCancelled, resp.Status)
		assert.Nil(t, resp.CancellationReason)
	})

	t.Run("someone else cannot cancel without approve capability", func(t *testing.T) {
		app := pendingApp(leave.StatusApproved, "2025-03-10", "2025-03-11", 2)
		deps := setupServiceTest(t, 2, app)
		defer deps.db.Close()
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Cancel(ctx, companyID, deps.manager, app.ID.String(), leave.CancelLeaveRequest{})

		assert.ErrorIs(t, err, leaveerrors.ErrCancelForbidden)
		used, _ := deps.remaining(t)
		assert.Equal(t, "2", used)
	})
}

func TestLeaveService_GetAll(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t, 0,
		pendingApp(leave.StatusPending, "2025-03-10", "2025-03-10", 1),
		pendingApp(leave.StatusApproved, "2025-04-10", "2025-04-10", 1),
	)
	defer deps.db.Close()

	resp, total, err := deps.service.GetAll(ctx, companyID, leave.ListFilter{Status: leave.StatusApproved})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, resp, 1)
	assert.Equal(t, leave.StatusApproved, resp[0].Status)

	_, _, err = deps.service.GetAll(ctx, companyID, leave.ListFilter{Status: "archived"})
	assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusFilter)
}
