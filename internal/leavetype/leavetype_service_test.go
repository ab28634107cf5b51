package leavetype_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-hris-leave/internal/leavetype"
	leavetypeerrors "go-hris-leave/internal/leavetype/errors"
	leavetypeMock "go-hris-leave/internal/leavetype/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   leavetype.Service
	repo      *leavetypeMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	rdb, redisMock := redismock.NewClientMock()
	repo := leavetypeMock.NewMockRepository(ctrl)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   leavetype.NewService(db, repo, rdb),
		repo:      repo,
		redismock: redisMock,
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

func TestLeaveTypeService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	actorID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, lt *leavetype.LeaveType) error {
				assert.Equal(t, "Casual Leave", lt.Name)
				assert.True(t, lt.MaxDays.Equal(decimal.NewFromInt(6)))
				assert.True(t, lt.IsPaid)
				assert.True(t, lt.IsActive)
				assert.Equal(t, actorID, lt.CreatedBy.String())
				return nil
			})
		deps.redismock.ExpectDel(
			leavetype.GetListKey(companyID, false),
			leavetype.GetListKey(companyID, true),
		).SetVal(2)

		resp, err := deps.service.Create(ctx, companyID, actorID, leavetype.CreateLeaveTypeRequest{
			Name:    "Casual Leave",
			MaxDays: 6,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Casual Leave", resp.Name)
		assert.Equal(t, float64(6), resp.MaxDays)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("duplicate name maps to conflict", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_leave_types_company_name"})

		_, err := deps.service.Create(ctx, companyID, actorID, leavetype.CreateLeaveTypeRequest{
			Name:    "Casual Leave",
			MaxDays: 6,
		})

		assert.ErrorIs(t, err, leavetypeerrors.ErrLeaveTypeNameExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("max days must be a whole or half day", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, companyID, actorID, leavetype.CreateLeaveTypeRequest{
			Name:    "Odd Leave",
			MaxDays: 1.3,
		})

		assert.ErrorIs(t, err, leavetypeerrors.ErrInvalidMaxDays)
	})

	t.Run("invalid company id", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, "not-a-uuid", actorID, leavetype.CreateLeaveTypeRequest{Name: "X"})
		assert.ErrorIs(t, err, leavetypeerrors.ErrInvalidCompanyID)
	})
}

func TestLeaveTypeService_GetAll(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("served from cache", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		cached := []leavetype.LeaveTypeResponse{{ID: uuid.New().String(), Name: "Sick Leave", MaxDays: 10}}
		data, _ := json.Marshal(cached)
		deps.redismock.ExpectGet(leavetype.GetListKey(companyID, true)).SetVal(string(data))

		resp, err := deps.service.GetAll(ctx, companyID, true)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Sick Leave", resp[0].Name)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("cache miss loads from repository", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		key := leavetype.GetListKey(companyID, false)
		deps.redismock.ExpectGet(key).RedisNil()
		deps.repo.EXPECT().
			FindAllByCompany(ctx, companyID, false).
			Return([]leavetype.LeaveType{
				{ID: uuid.New(), Name: "Annual Leave", MaxDays: decimal.NewFromInt(14), IsPaid: true, IsActive: true},
				{ID: uuid.New(), Name: "Unpaid Leave", MaxDays: decimal.Zero, IsActive: false},
			}, nil)
		deps.redismock.Regexp().ExpectSet(key, `.*`, 30*time.Minute).SetVal("OK")

		resp, err := deps.service.GetAll(ctx, companyID, false)

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, float64(14), resp[0].MaxDays)
		assert.False(t, resp[1].IsActive)
	})
}

func TestLeaveTypeService_Deactivate(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	id := uuid.New()

	t.Run("soft disables instead of deleting", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByIDAndCompany(ctx, companyID, id.String()).
			Return(&leavetype.LeaveType{ID: id, Name: "Casual Leave", IsActive: true}, nil)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, lt *leavetype.LeaveType) error {
				assert.False(t, lt.IsActive)
				return nil
			})
		deps.redismock.ExpectDel(
			leavetype.GetListKey(companyID, false),
			leavetype.GetListKey(companyID, true),
		).SetVal(1)

		resp, err := deps.service.Deactivate(ctx, companyID, uuid.New().String(), id.String())

		assert.NoError(t, err)
		assert.False(t, resp.IsActive)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByIDAndCompany(ctx, companyID, id.String()).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Deactivate(ctx, companyID, uuid.New().String(), id.String())
		assert.ErrorIs(t, err, leavetypeerrors.ErrLeaveTypeNotFound)
	})
}

func TestLeaveTypeService_Lookup(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	companyID := uuid.New().String()

	_, err := deps.service.Lookup(ctx, companyID, "bad-id")
	assert.ErrorIs(t, err, leavetypeerrors.ErrInvalidLeaveTypeID)

	id := uuid.New().String()
	deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, id).Return(nil, errors.New("connection reset"))
	_, err = deps.service.Lookup(ctx, companyID, id)
	assert.EqualError(t, err, "connection reset")
}
