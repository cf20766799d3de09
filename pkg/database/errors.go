package database

import (
	"context"
	"errors"
	"io"
	"net"

	"cinema-manager/pkg/apperror"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Classify maps a driver failure onto an apperror kind. Errors that are
// already classified pass through unchanged.
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return err
	}

	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return apperror.Wrap(apperror.KindNotFound, op, err)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled), pgconn.Timeout(err):
		return apperror.Wrap(apperror.KindConnectivity, op, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return apperror.Wrap(kindOfCode(pgErr.Code), op, err)
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return apperror.Wrap(apperror.KindConnectivity, op, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return apperror.Wrap(apperror.KindConnectivity, op, err)
	}

	return apperror.Wrap(apperror.KindInternal, op, err)
}

func kindOfCode(code string) apperror.Kind {
	switch {
	case code == pgerrcode.UniqueViolation:
		return apperror.KindConflict
	case pgerrcode.IsIntegrityConstraintViolation(code):
		return apperror.KindConstraint
	case pgerrcode.IsConnectionException(code),
		code == pgerrcode.AdminShutdown,
		code == pgerrcode.CrashShutdown,
		code == pgerrcode.CannotConnectNow,
		code == pgerrcode.QueryCanceled:
		return apperror.KindConnectivity
	case pgerrcode.IsDataException(code):
		return apperror.KindValidation
	default:
		return apperror.KindInternal
	}
}

// ConstraintName returns the violated constraint, or "" for other failures.
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}
