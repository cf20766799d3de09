package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Session   SessionConfig
	Admin     AdminConfig
	Booking   BookingConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Broker    BrokerConfig
	Telemetry TelemetryConfig
}

type AppConfig struct {
	Name            string
	Env             string
	Port            string
	Debug           bool
	LogPath         string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Host         string
	Port         string
	Name         string
	User         string
	Password     string
	SSLMode      string
	MaxConns     int32
	MinConns     int32
	QueryTimeout time.Duration
	AutoMigrate  bool
}

// DSN renders the connection URL shared by the pool and the migrator.
func (c DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, c.Port),
		Path:     c.Name,
		RawQuery: url.Values{"sslmode": []string{c.SSLMode}}.Encode(),
	}
	return u.String()
}

type SessionConfig struct {
	ExpiryHours int
}

// AdminConfig seeds the first operator when none exists.
type AdminConfig struct {
	Username string
	Password string
}

// BookingConfig describes the seat layout shared by every room. Rooms grow
// past SeatRows when their capacity needs more rows.
type BookingConfig struct {
	SeatRows    int
	SeatColumns int
	TicketPrice decimal.Decimal
	AuditLimit  int
}

// maxSeatRows follows the row letters A..Z.
const maxSeatRows = 26

// Validate rejects a seat layout no room could use.
func (c BookingConfig) Validate() error {
	if c.SeatColumns < 1 {
		return fmt.Errorf("BOOKING_SEAT_COLUMNS must be positive, got %d", c.SeatColumns)
	}
	if c.SeatRows < 1 || c.SeatRows > maxSeatRows {
		return fmt.Errorf("BOOKING_SEAT_ROWS must be between 1 and %d, got %d", maxSeatRows, c.SeatRows)
	}
	if c.TicketPrice.IsNegative() {
		return fmt.Errorf("BOOKING_TICKET_PRICE must not be negative, got %s", c.TicketPrice)
	}
	return nil
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type RateLimitConfig struct {
	Enabled  bool
	Requests int64
	Window   time.Duration
	Prefix   string
}

type BrokerConfig struct {
	URL   string
	Queue string
}

type TelemetryConfig struct {
	Endpoint string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "cinema-manager")
	viper.SetDefault("APP_ENV", "dev")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("REQUEST_TIMEOUT", "15s")
	viper.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("DB_MIN_CONNS", 2)
	viper.SetDefault("DB_QUERY_TIMEOUT", "5s")
	viper.SetDefault("DB_AUTO_MIGRATE", true)
	viper.SetDefault("SESSION_EXPIRY_HOURS", 12)
	viper.SetDefault("BOOKING_SEAT_ROWS", 8)
	viper.SetDefault("BOOKING_SEAT_COLUMNS", 10)
	viper.SetDefault("BOOKING_TICKET_PRICE", "10.00")
	viper.SetDefault("BOOKING_AUDIT_LIMIT", 100)
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("RATE_LIMIT_ENABLED", true)
	viper.SetDefault("RATE_LIMIT_REQUESTS", 30)
	viper.SetDefault("RATE_LIMIT_WINDOW", "1m")
	viper.SetDefault("RATE_LIMIT_PREFIX", "ratelimit")
	viper.SetDefault("BROKER_QUEUE", "booking.events")

	// .env opsional, environment saja sudah cukup
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	ticketPrice, err := decimal.NewFromString(viper.GetString("BOOKING_TICKET_PRICE"))
	if err != nil {
		return nil, fmt.Errorf("parse BOOKING_TICKET_PRICE: %w", err)
	}

	config := &Config{
		App: AppConfig{
			Name:            viper.GetString("APP_NAME"),
			Env:             viper.GetString("APP_ENV"),
			Port:            viper.GetString("PORT"),
			Debug:           viper.GetBool("DEBUG"),
			LogPath:         viper.GetString("LOG_PATH"),
			RequestTimeout:  viper.GetDuration("REQUEST_TIMEOUT"),
			ShutdownTimeout: viper.GetDuration("SHUTDOWN_TIMEOUT"),
		},
		Database: DatabaseConfig{
			Host:         viper.GetString("DB_HOST"),
			Port:         viper.GetString("DB_PORT"),
			Name:         viper.GetString("DB_NAME"),
			User:         viper.GetString("DB_USER"),
			Password:     viper.GetString("DB_PASS"),
			SSLMode:      viper.GetString("DB_SSLMODE"),
			MaxConns:     viper.GetInt32("DB_MAX_CONNS"),
			MinConns:     viper.GetInt32("DB_MIN_CONNS"),
			QueryTimeout: viper.GetDuration("DB_QUERY_TIMEOUT"),
			AutoMigrate:  viper.GetBool("DB_AUTO_MIGRATE"),
		},
		Session: SessionConfig{
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
		},
		Admin: AdminConfig{
			Username: viper.GetString("ADMIN_USERNAME"),
			Password: viper.GetString("ADMIN_PASSWORD"),
		},
		Booking: BookingConfig{
			SeatRows:    viper.GetInt("BOOKING_SEAT_ROWS"),
			SeatColumns: viper.GetInt("BOOKING_SEAT_COLUMNS"),
			TicketPrice: ticketPrice,
			AuditLimit:  viper.GetInt("BOOKING_AUDIT_LIMIT"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		RateLimit: RateLimitConfig{
			Enabled:  viper.GetBool("RATE_LIMIT_ENABLED"),
			Requests: viper.GetInt64("RATE_LIMIT_REQUESTS"),
			Window:   viper.GetDuration("RATE_LIMIT_WINDOW"),
			Prefix:   viper.GetString("RATE_LIMIT_PREFIX"),
		},
		Broker: BrokerConfig{
			URL:   viper.GetString("RABBITMQ_URL"),
			Queue: viper.GetString("BROKER_QUEUE"),
		},
		Telemetry: TelemetryConfig{
			Endpoint: viper.GetString("OTEL_COLLECTOR_URL"),
		},
	}

	if err := config.Booking.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}
