package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeatLabel(t *testing.T) {
	tests := []struct {
		in      string
		want    SeatLabel
		wantErr bool
	}{
		{in: "C3", want: SeatLabel{Row: 'C', Column: 3}},
		{in: " c3 ", want: SeatLabel{Row: 'C', Column: 3}},
		{in: "H10", want: SeatLabel{Row: 'H', Column: 10}},
		{in: "Z1", want: SeatLabel{Row: 'Z', Column: 1}},
		{in: "", wantErr: true},
		{in: "C", wantErr: true},
		{in: "3C", wantErr: true},
		{in: "C0", wantErr: true},
		{in: "C03", wantErr: true},
		{in: "C-1", wantErr: true},
		{in: "CC3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSeatLabel(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSeatLabel)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.String(), got.String())
		})
	}
}

func TestSeatGrid(t *testing.T) {
	// Hall A: ten seats sold from an eight-row layout
	grid := NewSeatGrid(10, 8, 10)

	assert.Equal(t, 8, grid.Rows())
	assert.Equal(t, 80, grid.Size())
	assert.Equal(t, 10, grid.Capacity)

	assert.True(t, grid.Contains(SeatLabel{Row: 'A', Column: 1}))
	assert.True(t, grid.Contains(SeatLabel{Row: 'C', Column: 3}))
	assert.True(t, grid.Contains(SeatLabel{Row: 'H', Column: 10}))
	assert.False(t, grid.Contains(SeatLabel{Row: 'I', Column: 1}))
	assert.False(t, grid.Contains(SeatLabel{Row: 'A', Column: 11}))

	assert.Equal(t, 0, grid.Ordinal(SeatLabel{Row: 'A', Column: 1}))
	assert.Equal(t, 22, grid.Ordinal(SeatLabel{Row: 'C', Column: 3}))
	assert.Equal(t, -1, grid.Ordinal(SeatLabel{Row: 'Z', Column: 1}))

	labels := grid.Labels()
	require.Len(t, labels, 80)
	assert.Equal(t, "A1", labels[0].String())
	assert.Equal(t, "H10", labels[79].String())
}

func TestSeatGridGrowsWithCapacity(t *testing.T) {
	grid := NewSeatGrid(125, 8, 10)
	assert.Equal(t, 13, grid.Rows())
	assert.Equal(t, 125, grid.Capacity)
	assert.True(t, grid.Contains(SeatLabel{Row: 'M', Column: 10}))
	assert.False(t, grid.Contains(SeatLabel{Row: 'N', Column: 1}))
}

func TestSeatGridDefaults(t *testing.T) {
	grid := NewSeatGrid(10, 0, 0)
	assert.Equal(t, DefaultSeatColumns, grid.Columns)
	assert.Equal(t, DefaultSeatRows, grid.Rows())

	capped := NewSeatGrid(1000, 8, 10)
	assert.Equal(t, MaxSeatRows, capped.Rows())
	assert.Equal(t, MaxSeatRows*10, capped.Capacity)
}

func TestParseStatusFilter(t *testing.T) {
	for in, want := range map[string]StatusFilter{
		"":          StatusFilterAll,
		"All":       StatusFilterAll,
		"ACTIVE":    StatusFilterActive,
		"cancelled": StatusFilterCancelled,
	} {
		got, ok := ParseStatusFilter(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := ParseStatusFilter("refunded")
	assert.False(t, ok)

	assert.Equal(t, "Active", TicketStatusActive.Label())
	assert.Equal(t, "Cancelled", TicketStatusCancelled.Label())
}
