//go:build integration

package integration_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"cinema-manager/internal/data/repository"
	"cinema-manager/internal/dto/request"
	"cinema-manager/internal/event"
	"cinema-manager/internal/usecase"
	"cinema-manager/pkg/database"
	"cinema-manager/pkg/utils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"go.uber.org/zap"
)

const (
	dbName      = "cinema_manager"
	dbUser      = "test_user"
	dbPassword  = "test_password"
	dbImageName = "postgres:17-alpine"
)

type BaseSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        database.PgxIface
	repo      *repository.Repository
	service   *usecase.Service
	config    *utils.Config
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(BaseSuite))
}

func (s *BaseSuite) SetupSuite() {
	ctx := context.Background()
	log := zap.NewNop()

	container, err := postgres.Run(ctx, dbImageName,
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		postgres.BasicWaitStrategies(),
	)
	s.Require().NoError(err)
	s.container = container

	host, err := container.Host(ctx)
	s.Require().NoError(err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	s.Require().NoError(err)

	s.config = &utils.Config{
		App: utils.AppConfig{Name: "cinema-manager-test"},
		Database: utils.DatabaseConfig{
			Host:         host,
			Port:         port.Port(),
			Name:         dbName,
			User:         dbUser,
			Password:     dbPassword,
			SSLMode:      "disable",
			MaxConns:     20,
			MinConns:     1,
			QueryTimeout: 5 * time.Second,
		},
		Booking: utils.BookingConfig{
			SeatRows:    8,
			SeatColumns: 10,
			TicketPrice: decimal.RequireFromString("10.00"),
			AuditLimit:  1000,
		},
	}

	s.Require().NoError(database.Migrate(s.config.Database.DSN(), log))

	s.db, err = database.InitDB(s.config.Database, log)
	s.Require().NoError(err)

	s.repo = repository.NewRepository(s.db, log)
	s.service = usecase.NewService(s.repo, event.NoopPublisher{}, s.config, log)
}

func (s *BaseSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		s.Require().NoError(testcontainers.TerminateContainer(s.container))
	}
}

var fixtureSeq atomic.Int64

// screeningFixture creates a fresh room, movie, customer and screening.
type screeningFixture struct {
	roomID      int64
	movieID     int64
	customerID  int64
	screeningID int64
}

func (s *BaseSuite) newScreening(roomName string, capacity int) screeningFixture {
	ctx := context.Background()
	n := fixtureSeq.Add(1)

	if roomName == "" {
		roomName = fmt.Sprintf("Room %d", n)
	}
	room, err := s.service.Room.CreateRoom(ctx, &request.RoomRequest{Name: roomName, Capacity: capacity})
	s.Require().NoError(err)

	movie, err := s.service.Movie.CreateMovie(ctx, &request.MovieRequest{
		Title:           fmt.Sprintf("Movie %d", n),
		DurationMinutes: 120,
	})
	s.Require().NoError(err)

	customer, err := s.service.Customer.CreateCustomer(ctx, &request.CustomerRequest{
		Name:  fmt.Sprintf("Customer %d", n),
		Phone: fmt.Sprintf("555-%04d", n),
	})
	s.Require().NoError(err)

	screening, err := s.service.Screening.CreateScreening(ctx, &request.ScreeningRequest{
		MovieID:       movie.ID,
		RoomID:        room.ID,
		ScreeningDate: "2025-01-10",
		StartTime:     "18:00",
	})
	s.Require().NoError(err)

	return screeningFixture{
		roomID:      room.ID,
		movieID:     movie.ID,
		customerID:  customer.ID,
		screeningID: screening.ID,
	}
}

func (s *BaseSuite) newCustomer() int64 {
	n := fixtureSeq.Add(1)
	customer, err := s.service.Customer.CreateCustomer(context.Background(), &request.CustomerRequest{
		Name:  fmt.Sprintf("Customer %d", n),
		Phone: fmt.Sprintf("555-%04d", n),
	})
	s.Require().NoError(err)
	return customer.ID
}

// available asserts seat conservation and returns the available count.
func (s *BaseSuite) available(screeningID int64) int {
	ctx := context.Background()

	availability, err := s.service.Booking.GetSeatAvailability(ctx, screeningID)
	s.Require().NoError(err)

	occupied, err := s.service.Booking.GetOccupiedSeats(ctx, screeningID)
	s.Require().NoError(err)

	s.Equal(availability.Capacity, len(occupied)+availability.Available, "occupied + available must equal capacity")
	return availability.Available
}
