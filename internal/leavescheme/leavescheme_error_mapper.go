package leavescheme

import (
	"errors"

	leaveschemeerrors "go-hris-leave/internal/leavescheme/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_leave_schemes_active_name":
			return leaveschemeerrors.ErrSchemeNameExists
		case "uq_scheme_leave_types_pair":
			return leaveschemeerrors.ErrAllowanceExists
		}
	}
	return err
}
