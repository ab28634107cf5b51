package leavebalance

import (
	"errors"

	leavebalanceerrors "go-hris-leave/internal/leavebalance/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return leavebalanceerrors.ErrBalanceNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23514" && pgErr.ConstraintName == "ck_leave_balances_used" {
		return leavebalanceerrors.ErrInsufficientBalance
	}
	return err
}
