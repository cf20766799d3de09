package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"cinema-manager/pkg/apperror"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want apperror.Kind
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: apperror.KindNotFound},
		{name: "deadline", err: context.DeadlineExceeded, want: apperror.KindConnectivity},
		{name: "cancelled", err: fmt.Errorf("query: %w", context.Canceled), want: apperror.KindConnectivity},
		{name: "unique violation", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: apperror.KindConflict},
		{name: "foreign key violation", err: &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, want: apperror.KindConstraint},
		{name: "check violation", err: &pgconn.PgError{Code: pgerrcode.CheckViolation}, want: apperror.KindConstraint},
		{name: "connection failure", err: &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, want: apperror.KindConnectivity},
		{name: "admin shutdown", err: &pgconn.PgError{Code: pgerrcode.AdminShutdown}, want: apperror.KindConnectivity},
		{name: "bad time literal", err: &pgconn.PgError{Code: pgerrcode.InvalidDatetimeFormat}, want: apperror.KindValidation},
		{name: "syntax error", err: &pgconn.PgError{Code: pgerrcode.SyntaxError}, want: apperror.KindInternal},
		{name: "unknown", err: errors.New("boom"), want: apperror.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Classify("op", tt.err)
			require.Error(t, err)
			assert.Equal(t, tt.want, apperror.KindOf(err))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestClassifyPassesThrough(t *testing.T) {
	assert.NoError(t, Classify("op", nil))

	classified := apperror.New(apperror.KindConflict, "ticket.book", "seat already booked")
	assert.Same(t, classified, Classify("op", classified))
}

func TestConstraintName(t *testing.T) {
	err := fmt.Errorf("insert ticket: %w", &pgconn.PgError{
		Code:           pgerrcode.UniqueViolation,
		ConstraintName: "tickets_active_seat_key",
	})

	assert.Equal(t, "tickets_active_seat_key", ConstraintName(err))
	assert.Empty(t, ConstraintName(errors.New("x")))
}
