package leaveconfig

import (
	"context"
	"database/sql"

	"go-hris-leave/internal/shared/connection"
	"go-hris-leave/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=leaveconfig_repo.go -destination=mock/leaveconfig_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, cfg *GlobalLeaveConfig) error
	Upsert(ctx context.Context, cfg *GlobalLeaveConfig) error
	FindByKey(ctx context.Context, companyID, key string) (*GlobalLeaveConfig, error)
	FindAllByCompany(ctx context.Context, companyID string) ([]GlobalLeaveConfig, error)
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

func (r *repository) Create(ctx context.Context, cfg *GlobalLeaveConfig) error {
	return r.db.WithContext(ctx).Create(cfg).Error
}

// Upsert replaces the value of an existing (company, key) row in place.
func (r *repository) Upsert(ctx context.Context, cfg *GlobalLeaveConfig) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "company_id"}, {Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_by", "updated_at"}),
		}).
		Create(cfg).Error
}

func (r *repository) FindByKey(ctx context.Context, companyID, key string) (*GlobalLeaveConfig, error) {
	var cfg GlobalLeaveConfig
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("key = ?", key).
		First(&cfg).Error
	return &cfg, err
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]GlobalLeaveConfig, error) {
	var cfgs []GlobalLeaveConfig
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("key ASC").
		Find(&cfgs).Error
	return cfgs, err
}
