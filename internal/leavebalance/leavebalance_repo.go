package leavebalance

import (
	"context"
	"database/sql"

	"go-hris-leave/internal/shared/connection"
	"go-hris-leave/internal/tenant"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=leavebalance_repo.go -destination=mock/leavebalance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	FindByID(ctx context.Context, companyID, id string) (*LeaveBalance, error)
	FindByKey(ctx context.Context, companyID, employeeID, leaveTypeID string, year int) (*LeaveBalance, error)
	// LockByKey reads the row with SELECT ... FOR UPDATE; only meaningful inside a tx.
	LockByKey(ctx context.Context, companyID, employeeID, leaveTypeID string, year int) (*LeaveBalance, error)
	LockByID(ctx context.Context, companyID, id string) (*LeaveBalance, error)
	FindByEmployee(ctx context.Context, companyID, employeeID string, year int) ([]LeaveBalance, error)
	FindExportRows(ctx context.Context, companyID string, year int) ([]ExportRow, error)

	// InsertIfAbsent reports false when the (employee, leave type, year) row already exists.
	InsertIfAbsent(ctx context.Context, b *LeaveBalance) (bool, error)
	// IncrementUsed applies delta only while 0 <= used_days+delta <= allocated_days.
	IncrementUsed(ctx context.Context, id string, delta decimal.Decimal) (int64, error)
	// UpdateAllocated applies only while allocated >= used_days.
	UpdateAllocated(ctx context.Context, id string, allocated decimal.Decimal) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.BindTx(r.db, tx)}
}

func (r *repository) FindByID(ctx context.Context, companyID, id string) (*LeaveBalance, error) {
	var b LeaveBalance
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&b, "id = ?", id).Error
	return &b, err
}

func (r *repository) FindByKey(ctx context.Context, companyID, employeeID, leaveTypeID string, year int) (*LeaveBalance, error) {
	var b LeaveBalance
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ? AND leave_type_id = ? AND year = ?", employeeID, leaveTypeID, year).
		First(&b).Error
	return &b, err
}

func (r *repository) LockByKey(ctx context.Context, companyID, employeeID, leaveTypeID string, year int) (*LeaveBalance, error) {
	var b LeaveBalance
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ? AND leave_type_id = ? AND year = ?", employeeID, leaveTypeID, year).
		First(&b).Error
	return &b, err
}

func (r *repository) LockByID(ctx context.Context, companyID, id string) (*LeaveBalance, error) {
	var b LeaveBalance
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(companyID)).
		First(&b, "id = ?", id).Error
	return &b, err
}

func (r *repository) FindByEmployee(ctx context.Context, companyID, employeeID string, year int) ([]LeaveBalance, error) {
	var balances []LeaveBalance
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ? AND year = ?", employeeID, year).
		Order("leave_type_id ASC").
		Find(&balances).Error
	return balances, err
}

func (r *repository) FindExportRows(ctx context.Context, companyID string, year int) ([]ExportRow, error) {
	var rows []ExportRow
	err := r.db.WithContext(ctx).
		Table("leave_balances AS lb").
		Select(`COALESCE(e.employee_number, '') AS employee_number,
			e.full_name AS employee_name,
			lt.name AS leave_type_name,
			lb.year, lb.allocated_days, lb.used_days, lb.source`).
		Joins("JOIN employees e ON e.id = lb.employee_id").
		Joins("JOIN leave_types lt ON lt.id = lb.leave_type_id").
		Where("lb.company_id = ? AND lb.year = ?", companyID, year).
		Order("e.full_name ASC, lt.name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) InsertIfAbsent(ctx context.Context, b *LeaveBalance) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "leave_type_id"}, {Name: "year"}},
			DoNothing: true,
		}).
		Create(b)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repository) IncrementUsed(ctx context.Context, id string, delta decimal.Decimal) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&LeaveBalance{}).
		Where("id = ?", id).
		Where("used_days + ? >= 0 AND used_days + ? <= allocated_days", delta, delta).
		Updates(map[string]any{
			"used_days":  gorm.Expr("used_days + ?", delta),
			"updated_at": gorm.Expr("NOW()"),
		})
	return res.RowsAffected, res.Error
}

func (r *repository) UpdateAllocated(ctx context.Context, id string, allocated decimal.Decimal) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&LeaveBalance{}).
		Where("id = ? AND used_days <= ?", id, allocated).
		Updates(map[string]any{
			"allocated_days": allocated,
			"updated_at":     gorm.Expr("NOW()"),
		})
	return res.RowsAffected, res.Error
}
