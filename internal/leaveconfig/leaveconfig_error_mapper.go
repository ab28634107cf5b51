package leaveconfig

import (
	"errors"

	leaveconfigerrors "go-hris-leave/internal/leaveconfig/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return leaveconfigerrors.ErrConfigNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_global_leave_configs_company_key" {
		return leaveconfigerrors.ErrConfigKeyExists
	}
	return err
}
