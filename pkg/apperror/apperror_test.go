package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	seatTaken := New(KindConflict, "ticket.book", "seat already booked")

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "plain error is internal", err: errors.New("boom"), want: KindInternal},
		{name: "direct classified error", err: seatTaken, want: KindConflict},
		{name: "wrapped classified error", err: fmt.Errorf("book seat C3: %w", seatTaken), want: KindConflict},
		{name: "wrapped cause keeps outer kind", err: Wrap(KindConnectivity, "db.ping", errors.New("dial tcp")), want: KindConnectivity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestErrorMessage(t *testing.T) {
	err := Wrap(KindConnectivity, "db.query", errors.New("connection refused"))
	assert.Equal(t, "db.query: connection refused", err.Error())
	assert.Empty(t, MessageOf(err))

	notFound := New(KindNotFound, "", "screening not found")
	assert.Equal(t, "screening not found", notFound.Error())
	assert.Equal(t, "screening not found", MessageOf(fmt.Errorf("load: %w", notFound)))
}

func TestValidationFields(t *testing.T) {
	err := Validation("booking.book", map[string]string{"SeatLabel": "Must be a seat label like C3"})

	assert.True(t, Is(err, KindValidation))
	assert.Equal(t, "Must be a seat label like C3", FieldsOf(err)["SeatLabel"])
	assert.Nil(t, FieldsOf(errors.New("x")))
	assert.False(t, Is(nil, KindInternal))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "conflict", KindConflict.String())
	assert.Equal(t, "internal", Kind(200).String())
}
