package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingConfigValidate(t *testing.T) {
	valid := BookingConfig{SeatRows: 8, SeatColumns: 10, TicketPrice: decimal.RequireFromString("10.00")}

	tests := []struct {
		name    string
		mutate  func(c *BookingConfig)
		wantErr string
	}{
		{name: "defaults"},
		{name: "full alphabet", mutate: func(c *BookingConfig) { c.SeatRows = 26 }},
		{name: "free tickets", mutate: func(c *BookingConfig) { c.TicketPrice = decimal.Zero }},
		{name: "no columns", mutate: func(c *BookingConfig) { c.SeatColumns = 0 }, wantErr: "BOOKING_SEAT_COLUMNS"},
		{name: "no rows", mutate: func(c *BookingConfig) { c.SeatRows = 0 }, wantErr: "BOOKING_SEAT_ROWS"},
		{name: "past Z", mutate: func(c *BookingConfig) { c.SeatRows = 27 }, wantErr: "BOOKING_SEAT_ROWS"},
		{name: "negative price", mutate: func(c *BookingConfig) { c.TicketPrice = decimal.NewFromInt(-1) }, wantErr: "BOOKING_TICKET_PRICE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := valid
			if tt.mutate != nil {
				tt.mutate(&config)
			}

			err := config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Cleanup(viper.Reset)

	t.Setenv("BOOKING_SEAT_COLUMNS", "12")
	t.Setenv("BOOKING_TICKET_PRICE", "7.50")

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 12, config.Booking.SeatColumns)
	assert.Equal(t, 8, config.Booking.SeatRows)
	assert.Equal(t, "7.50", config.Booking.TicketPrice.StringFixed(2))
}

func TestLoadConfigRejectsBadLayout(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Cleanup(viper.Reset)

	t.Setenv("BOOKING_SEAT_ROWS", "30")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BOOKING_SEAT_ROWS")
}
