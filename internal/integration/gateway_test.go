//go:build integration

package integration_test

import (
	"context"
	"fmt"
	"time"

	"cinema-manager/internal/data/repository"
	"cinema-manager/internal/dto/request"
	"cinema-manager/internal/event"
	"cinema-manager/internal/usecase"
	"cinema-manager/pkg/apperror"
	"cinema-manager/pkg/database"

	"go.uber.org/zap"
)

func (s *BaseSuite) TestRunSelectReturnsRowMaps() {
	ctx := context.Background()
	f := s.newScreening("Run Select Hall", 12)

	result, err := s.db.Run(ctx, `SELECT id, name, capacity FROM rooms WHERE id = $1`, f.roomID)
	s.Require().NoError(err)

	s.Equal(database.StatementQuery, result.Kind)
	s.Require().Len(result.Rows, 1)
	s.Equal(f.roomID, result.Rows[0]["id"])
	s.Equal("Run Select Hall", result.Rows[0]["name"])
	s.Equal(int32(12), result.Rows[0]["capacity"])
	s.Zero(result.LastInsertID)
}

func (s *BaseSuite) TestRunInsertReportsLastInsertID() {
	ctx := context.Background()
	name := fmt.Sprintf("Run Insert Hall %d", fixtureSeq.Add(1))

	result, err := s.db.Run(ctx, `INSERT INTO rooms (name, capacity) VALUES ($1, $2) RETURNING id`, name, 30)
	s.Require().NoError(err)

	s.Equal(database.StatementInsert, result.Kind)
	s.Positive(result.LastInsertID)
	s.Equal(int64(1), result.RowsAffected)

	check, err := s.db.Run(ctx, `SELECT name FROM rooms WHERE id = $1`, result.LastInsertID)
	s.Require().NoError(err)
	s.Require().Len(check.Rows, 1)
	s.Equal(name, check.Rows[0]["name"])
}

func (s *BaseSuite) TestRunUpdateReportsRowsAffected() {
	ctx := context.Background()
	f := s.newScreening("", 10)

	result, err := s.db.Run(ctx, `UPDATE rooms SET capacity = $1 WHERE id = $2`, 40, f.roomID)
	s.Require().NoError(err)
	s.Equal(database.StatementModify, result.Kind)
	s.Equal(int64(1), result.RowsAffected)
	s.Empty(result.Rows)

	result, err = s.db.Run(ctx, `UPDATE rooms SET capacity = $1 WHERE id = $2`, 40, int64(-1))
	s.Require().NoError(err)
	s.Zero(result.RowsAffected)
}

func (s *BaseSuite) TestRunCallWithoutOutParams() {
	ctx := context.Background()
	f := s.newScreening("", 10)

	_, err := s.db.Exec(ctx, `
		CREATE OR REPLACE PROCEDURE rename_room(room BIGINT, new_name TEXT)
		LANGUAGE sql
		AS $$ UPDATE rooms SET name = new_name WHERE id = room $$`)
	s.Require().NoError(err)

	result, err := s.db.Run(ctx, `CALL rename_room($1::bigint, $2::text)`, f.roomID, "Renamed Hall")
	s.Require().NoError(err)

	s.Equal(database.StatementCall, result.Kind)
	s.Empty(result.Rows)
	s.Zero(result.RowsAffected)

	check, err := s.db.Run(ctx, `SELECT name FROM rooms WHERE id = $1`, f.roomID)
	s.Require().NoError(err)
	s.Equal("Renamed Hall", check.Rows[0]["name"])
}

func (s *BaseSuite) TestRunCallWithOutParams() {
	ctx := context.Background()
	f := s.newScreening("", 10)

	_, err := s.service.Booking.Book(ctx, &request.BookTicketRequest{
		CustomerID: f.customerID, ScreeningID: f.screeningID, SeatLabel: "A1",
	}, "clerk1")
	s.Require().NoError(err)

	_, err = s.db.Exec(ctx, `
		CREATE OR REPLACE PROCEDURE count_active_tickets(screening BIGINT, INOUT total BIGINT DEFAULT NULL)
		LANGUAGE plpgsql
		AS $$
		BEGIN
			SELECT COUNT(*) INTO total FROM tickets WHERE screening_id = screening AND status = 'active';
		END
		$$`)
	s.Require().NoError(err)

	result, err := s.db.Run(ctx, `CALL count_active_tickets($1::bigint, NULL)`, f.screeningID)
	s.Require().NoError(err)

	s.Equal(database.StatementCall, result.Kind)
	s.Require().Len(result.Rows, 1)
	s.Equal(int64(1), result.Rows[0]["total"])
}

func (s *BaseSuite) TestBookingGivesUpOnLockedScreening() {
	ctx := context.Background()
	f := s.newScreening("", 10)

	holder, err := s.db.Begin(ctx)
	s.Require().NoError(err)
	defer holder.Rollback(context.Background())

	_, err = holder.Exec(ctx, `SELECT id FROM screenings WHERE id = $1 FOR UPDATE`, f.screeningID)
	s.Require().NoError(err)

	config := *s.config
	config.Database.QueryTimeout = 500 * time.Millisecond
	db, err := database.InitDB(config.Database, zap.NewNop())
	s.Require().NoError(err)
	defer db.Close()

	service := usecase.NewService(repository.NewRepository(db, zap.NewNop()), event.NoopPublisher{}, &config, zap.NewNop())

	start := time.Now()
	_, err = service.Booking.Book(ctx, &request.BookTicketRequest{
		CustomerID: f.customerID, ScreeningID: f.screeningID, SeatLabel: "A1",
	}, "clerk1")

	s.Require().Error(err)
	s.Equal(apperror.KindConnectivity, apperror.KindOf(err))
	s.Less(time.Since(start), 3*time.Second)

	s.Require().NoError(holder.Rollback(ctx))
	s.Equal(10, s.available(f.screeningID))
}
