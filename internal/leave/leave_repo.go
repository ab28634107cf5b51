package leave

import (
	"context"
	"database/sql"
	"time"

	"go-hris-leave/internal/shared/connection"
	"go-hris-leave/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *LeaveApplication) error
	Update(ctx context.Context, l *LeaveApplication) error
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*LeaveApplication, error)
	// LockByIDAndCompany reads the row with SELECT ... FOR UPDATE.
	LockByIDAndCompany(ctx context.Context, companyID, id string) (*LeaveApplication, error)
	FindAll(ctx context.Context, companyID string, filter ListFilter) ([]LeaveApplication, int64, error)
	FindApprovedInRange(ctx context.Context, companyID, employeeID string, from, to time.Time) ([]LeaveApplication, error)
	HasOverlappingPeriod(ctx context.Context, companyID, employeeID string, startDate, endDate time.Time, excludeID *string) (bool, error)
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

func (r *repository) Create(ctx context.Context, l *LeaveApplication) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) Update(ctx context.Context, l *LeaveApplication) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*LeaveApplication, error) {
	var l LeaveApplication
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&l, "id = ?", id).Error
	return &l, err
}

func (r *repository) LockByIDAndCompany(ctx context.Context, companyID, id string) (*LeaveApplication, error) {
	var l LeaveApplication
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(companyID)).
		First(&l, "id = ?", id).Error
	return &l, err
}

func (r *repository) FindAll(ctx context.Context, companyID string, filter ListFilter) ([]LeaveApplication, int64, error) {
	db := r.db.WithContext(ctx).
		Model(&LeaveApplication{}).
		Scopes(tenant.Scope(companyID))
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.EmployeeID != "" {
		db = db.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.Year > 0 {
		db = db.Where("EXTRACT(YEAR FROM start_date) = ?", filter.Year)
	}

	var total int64
	if err := db.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var apps []LeaveApplication
	q := db.Session(&gorm.Session{}).Order("start_date DESC, created_at DESC")
	if filter.PageSize > 0 {
		q = q.Limit(filter.PageSize).Offset((filter.Page - 1) * filter.PageSize)
	}
	err := q.Find(&apps).Error
	return apps, total, err
}

func (r *repository) FindApprovedInRange(ctx context.Context, companyID, employeeID string, from, to time.Time) ([]LeaveApplication, error) {
	db := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("status = ?", StatusApproved).
		Where("NOT (end_date < ? OR start_date > ?)", from, to)
	if employeeID != "" {
		db = db.Where("employee_id = ?", employeeID)
	}
	var apps []LeaveApplication
	err := db.Order("start_date ASC").Find(&apps).Error
	return apps, err
}

func (r *repository) HasOverlappingPeriod(ctx context.Context, companyID, employeeID string, startDate, endDate time.Time, excludeID *string) (bool, error) {
	db := r.db.WithContext(ctx).
		Model(&LeaveApplication{}).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("status IN ?", []string{StatusPending, StatusApproved}).
		Where("NOT (end_date < ? OR start_date > ?)", startDate, endDate)

	if excludeID != nil && *excludeID != "" {
		db = db.Where("id <> ?", *excludeID)
	}

	var count int64
	err := db.Count(&count).Error
	return count > 0, err
}
