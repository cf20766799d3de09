package entity

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	DefaultSeatColumns = 10
	DefaultSeatRows    = 8
	MaxSeatRows        = 26
)

var ErrInvalidSeatLabel = errors.New("invalid seat label")

// SeatLabel addresses a seat by row letter and 1-based column, e.g. C3.
type SeatLabel struct {
	Row    byte
	Column int
}

// ParseSeatLabel accepts any case and surrounding whitespace.
func ParseSeatLabel(s string) (SeatLabel, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 || s[0] < 'A' || s[0] > 'Z' {
		return SeatLabel{}, fmt.Errorf("%w: %q", ErrInvalidSeatLabel, s)
	}

	digits := s[1:]
	if digits[0] == '0' {
		return SeatLabel{}, fmt.Errorf("%w: %q", ErrInvalidSeatLabel, s)
	}
	column, err := strconv.Atoi(digits)
	if err != nil || column < 1 {
		return SeatLabel{}, fmt.Errorf("%w: %q", ErrInvalidSeatLabel, s)
	}

	return SeatLabel{Row: s[0], Column: column}, nil
}

func (l SeatLabel) String() string {
	return fmt.Sprintf("%c%d", l.Row, l.Column)
}

// SeatGrid is the physical seat layout of a room: RowCount lettered rows
// of Columns seats each. Capacity limits how many seats may be sold at once
// and never exceeds the layout size.
type SeatGrid struct {
	RowCount int
	Columns  int
	Capacity int
}

// NewSeatGrid lays out at least minRows rows, growing the layout when the
// capacity needs more, up to MaxSeatRows.
func NewSeatGrid(capacity, minRows, columns int) SeatGrid {
	if columns < 1 {
		columns = DefaultSeatColumns
	}
	if minRows < 1 {
		minRows = DefaultSeatRows
	}
	if capacity < 0 {
		capacity = 0
	}

	rows := max(minRows, (capacity+columns-1)/columns)
	rows = min(rows, MaxSeatRows)
	capacity = min(capacity, rows*columns)

	return SeatGrid{RowCount: rows, Columns: columns, Capacity: capacity}
}

func (g SeatGrid) Rows() int {
	return g.RowCount
}

// Size is the number of seats in the layout.
func (g SeatGrid) Size() int {
	return g.RowCount * g.Columns
}

// Ordinal is the 0-based position of a seat in grid order, or -1 when the
// seat lies outside the grid.
func (g SeatGrid) Ordinal(l SeatLabel) int {
	row := int(l.Row) - 'A'
	if row < 0 || row >= g.RowCount || l.Column < 1 || l.Column > g.Columns {
		return -1
	}
	return row*g.Columns + l.Column - 1
}

func (g SeatGrid) Contains(l SeatLabel) bool {
	return g.Ordinal(l) >= 0
}

// Labels lists every seat in grid order.
func (g SeatGrid) Labels() []SeatLabel {
	labels := make([]SeatLabel, 0, g.Size())
	for row := 0; row < g.RowCount; row++ {
		for col := 1; col <= g.Columns; col++ {
			labels = append(labels, SeatLabel{Row: byte('A' + row), Column: col})
		}
	}
	return labels
}
