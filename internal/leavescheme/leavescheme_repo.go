package leavescheme

import (
	"context"
	"database/sql"
	"time"

	"go-hris-leave/internal/shared/connection"
	"go-hris-leave/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=leavescheme_repo.go -destination=mock/leavescheme_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreateScheme(ctx context.Context, s *LeaveScheme) error
	UpdateScheme(ctx context.Context, s *LeaveScheme) error
	FindSchemeByID(ctx context.Context, companyID, id string) (*LeaveScheme, error)
	FindAllSchemes(ctx context.Context, companyID string) ([]LeaveScheme, error)
	ActiveNameExists(ctx context.Context, companyID, name, excludeID string) (bool, error)

	FindAllowances(ctx context.Context, schemeID string) ([]SchemeLeaveType, error)
	UpsertAllowance(ctx context.Context, a *SchemeLeaveType) error
	DeleteAllowance(ctx context.Context, schemeID, leaveTypeID string) (int64, error)
	LeaveTypeExists(ctx context.Context, companyID, leaveTypeID string) (bool, error)

	EmployeeExists(ctx context.Context, companyID, employeeID string) (bool, error)
	LockEmployeeAssignments(ctx context.Context, employeeID string) error
	CreateAssignment(ctx context.Context, a *EmployeeLeaveScheme) error
	UpdateAssignment(ctx context.Context, a *EmployeeLeaveScheme) error
	DeleteAssignment(ctx context.Context, companyID, id string) (int64, error)
	FindAssignmentByID(ctx context.Context, companyID, id string) (*EmployeeLeaveScheme, error)
	FindAssignmentsByEmployee(ctx context.Context, companyID, employeeID string) ([]EmployeeLeaveScheme, error)
	FindActiveAssignment(ctx context.Context, companyID, employeeID string, on time.Time) (*EmployeeLeaveScheme, error)
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

func (r *repository) CreateScheme(ctx context.Context, s *LeaveScheme) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) UpdateScheme(ctx context.Context, s *LeaveScheme) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *repository) FindSchemeByID(ctx context.Context, companyID, id string) (*LeaveScheme, error) {
	var s LeaveScheme
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&s, "id = ?", id).Error
	return &s, err
}

func (r *repository) FindAllSchemes(ctx context.Context, companyID string) ([]LeaveScheme, error) {
	var schemes []LeaveScheme
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("name ASC").
		Find(&schemes).Error
	return schemes, err
}

func (r *repository) ActiveNameExists(ctx context.Context, companyID, name, excludeID string) (bool, error) {
	db := r.db.WithContext(ctx).
		Model(&LeaveScheme{}).
		Scopes(tenant.Scope(companyID)).
		Where("is_active = ?", true).
		Where("LOWER(name) = LOWER(?)", name)
	if excludeID != "" {
		db = db.Where("id <> ?", excludeID)
	}
	var count int64
	err := db.Count(&count).Error
	return count > 0, err
}

func (r *repository) FindAllowances(ctx context.Context, schemeID string) ([]SchemeLeaveType, error) {
	var rows []SchemeLeaveType
	err := r.db.WithContext(ctx).
		Where("scheme_id = ?", schemeID).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

// UpsertAllowance keeps a single row per (scheme, leave type).
func (r *repository) UpsertAllowance(ctx context.Context, a *SchemeLeaveType) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "scheme_id"}, {Name: "leave_type_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"days_allowed", "is_paid", "updated_at"}),
		}).
		Create(a).Error
}

func (r *repository) DeleteAllowance(ctx context.Context, schemeID, leaveTypeID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("scheme_id = ? AND leave_type_id = ?", schemeID, leaveTypeID).
		Delete(&SchemeLeaveType{})
	return res.RowsAffected, res.Error
}

func (r *repository) LeaveTypeExists(ctx context.Context, companyID, leaveTypeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("leave_types").
		Where("id = ?", leaveTypeID).
		Where("company_id = ?", companyID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) EmployeeExists(ctx context.Context, companyID, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Where("company_id = ?", companyID).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count > 0, err
}

// LockEmployeeAssignments serialises assignment writes of one employee for
// the rest of the transaction, including the first insert when no row
// exists yet to lock.
func (r *repository) LockEmployeeAssignments(ctx context.Context, employeeID string) error {
	return r.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtext(?))", "employee_leave_schemes:"+employeeID).Error
}

func (r *repository) CreateAssignment(ctx context.Context, a *EmployeeLeaveScheme) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) UpdateAssignment(ctx context.Context, a *EmployeeLeaveScheme) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *repository) DeleteAssignment(ctx context.Context, companyID, id string) (int64, error) {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&EmployeeLeaveScheme{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *repository) FindAssignmentByID(ctx context.Context, companyID, id string) (*EmployeeLeaveScheme, error) {
	var a EmployeeLeaveScheme
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&a, "id = ?", id).Error
	return &a, err
}

func (r *repository) FindAssignmentsByEmployee(ctx context.Context, companyID, employeeID string) ([]EmployeeLeaveScheme, error) {
	var rows []EmployeeLeaveScheme
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Order("effective_from ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindActiveAssignment(ctx context.Context, companyID, employeeID string, on time.Time) (*EmployeeLeaveScheme, error) {
	var a EmployeeLeaveScheme
	err := r.db.WithContext(ctx).
		Table("employee_leave_schemes AS els").
		Select("els.*").
		Joins("JOIN leave_schemes ls ON ls.id = els.scheme_id AND ls.is_active").
		Where("els.company_id = ?", companyID).
		Where("els.employee_id = ?", employeeID).
		Where("els.effective_from <= ?", on).
		Where("(els.effective_to IS NULL OR els.effective_to >= ?)", on).
		Order("els.effective_from DESC").
		Take(&a).Error
	return &a, err
}
