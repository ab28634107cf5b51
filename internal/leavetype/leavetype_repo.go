package leavetype

import (
	"context"
	"database/sql"

	"go-hris-leave/internal/shared/connection"
	"go-hris-leave/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leavetype_repo.go -destination=mock/leavetype_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, lt *LeaveType) error
	Update(ctx context.Context, lt *LeaveType) error
	FindAllByCompany(ctx context.Context, companyID string, activeOnly bool) ([]LeaveType, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*LeaveType, error)
	FindByNameAndCompany(ctx context.Context, companyID, name string) (*LeaveType, error)
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

func (r *repository) Create(ctx context.Context, lt *LeaveType) error {
	return r.db.WithContext(ctx).Create(lt).Error
}

func (r *repository) Update(ctx context.Context, lt *LeaveType) error {
	return r.db.WithContext(ctx).Save(lt).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string, activeOnly bool) ([]LeaveType, error) {
	var types []LeaveType
	db := r.db.WithContext(ctx).Scopes(tenant.Scope(companyID))
	if activeOnly {
		db = db.Where("is_active = ?", true)
	}
	err := db.Order("name ASC").Find(&types).Error
	return types, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*LeaveType, error) {
	var lt LeaveType
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&lt, "id = ?", id).Error
	return &lt, err
}

func (r *repository) FindByNameAndCompany(ctx context.Context, companyID, name string) (*LeaveType, error) {
	var lt LeaveType
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("LOWER(name) = LOWER(?)", name).
		First(&lt).Error
	return &lt, err
}
