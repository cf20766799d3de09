//go:build integration

package integration_test

import (
	"context"
	"fmt"
	"sync"

	"cinema-manager/internal/data/repository"
	"cinema-manager/internal/dto/request"
	"cinema-manager/internal/dto/response"
	"cinema-manager/internal/usecase"
	"cinema-manager/pkg/apperror"
	"cinema-manager/pkg/utils"
)

func (s *BaseSuite) TestHallAScenario() {
	ctx := context.Background()
	f := s.newScreening("Hall A", 10)
	other := s.newCustomer()

	s.Equal(10, s.available(f.screeningID))

	first, err := s.service.Booking.Book(ctx, &request.BookTicketRequest{
		CustomerID: f.customerID, ScreeningID: f.screeningID, SeatLabel: "C3",
	}, "clerk1")
	s.Require().NoError(err)
	s.Equal(9, s.available(f.screeningID))

	_, err = s.service.Booking.Book(ctx, &request.BookTicketRequest{
		CustomerID: other, ScreeningID: f.screeningID, SeatLabel: "C3",
	}, "clerk1")
	s.ErrorIs(err, repository.ErrSeatTaken)
	s.Equal(9, s.available(f.screeningID))

	_, err = s.service.Booking.Cancel(ctx, first.ID, "clerk1")
	s.Require().NoError(err)
	s.Equal(10, s.available(f.screeningID))

	cancelled, err := s.service.Booking.ListTickets(ctx, &request.TicketListRequest{Status: "cancelled"})
	s.Require().NoError(err)
	s.True(containsTicket(cancelled, first.ID, "C3", f.screeningID))
}

func (s *BaseSuite) TestConcurrentBookingsOfOneSeat() {
	ctx := context.Background()
	f := s.newScreening("", 10)

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.service.Booking.Book(ctx, &request.BookTicketRequest{
				CustomerID: f.customerID, ScreeningID: f.screeningID, SeatLabel: "D4",
			}, "clerk1")

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case apperror.Is(err, apperror.KindConflict):
				conflicts++
			}
		}()
	}
	wg.Wait()

	s.Equal(1, succeeded)
	s.Equal(attempts-1, conflicts)
	s.Equal(9, s.available(f.screeningID))
}

func (s *BaseSuite) TestCapacityIsNeverOversold() {
	ctx := context.Background()
	f := s.newScreening("", 3)

	labels := []string{"A1", "A2", "A3", "A4", "B1", "B2"}
	var wg sync.WaitGroup
	for _, label := range labels {
		wg.Add(1)
		go func(label string) {
			defer wg.Done()
			_, err := s.service.Booking.Book(ctx, &request.BookTicketRequest{
				CustomerID: f.customerID, ScreeningID: f.screeningID, SeatLabel: label,
			}, "clerk1")
			if err != nil {
				s.True(apperror.Is(err, apperror.KindConflict), err.Error())
			}
		}(label)
	}
	wg.Wait()

	s.Equal(0, s.available(f.screeningID))

	_, err := s.service.Booking.Book(ctx, &request.BookTicketRequest{
		CustomerID: f.customerID, ScreeningID: f.screeningID, SeatLabel: "H10",
	}, "clerk1")
	s.ErrorIs(err, repository.ErrScreeningSoldOut)
}

func (s *BaseSuite) TestCancelReopensSeatWithOneAuditEntry() {
	ctx := context.Background()
	f := s.newScreening("", 10)

	ticket, err := s.service.Booking.Book(ctx, &request.BookTicketRequest{
		CustomerID: f.customerID, ScreeningID: f.screeningID, SeatLabel: "E5",
	}, "")
	s.Require().NoError(err)

	_, err = s.service.Booking.Cancel(ctx, ticket.ID, "clerk2")
	s.Require().NoError(err)

	_, err = s.service.Booking.Cancel(ctx, ticket.ID, "clerk2")
	s.ErrorIs(err, repository.ErrTicketAlreadyCancelled)

	occupied, err := s.service.Booking.GetOccupiedSeats(ctx, f.screeningID)
	s.Require().NoError(err)
	s.NotContains(occupied, "E5")

	entries := s.auditFor(f.screeningID)
	s.Require().Len(entries, 2)

	// newest first
	s.Equal("cancel", entries[0].Operation)
	s.Equal("E5", entries[0].SeatLabel)
	s.Equal("clerk2", entries[0].Actor)
	s.Equal("book", entries[1].Operation)
	s.Equal(utils.SystemActor, entries[1].Actor)
}

func (s *BaseSuite) TestFailedBookingLeavesNoAudit() {
	ctx := context.Background()
	f := s.newScreening("", 10)

	_, err := s.service.Booking.Book(ctx, &request.BookTicketRequest{
		CustomerID: f.customerID, ScreeningID: f.screeningID, SeatLabel: "Z99",
	}, "clerk1")
	s.Equal(apperror.KindValidation, apperror.KindOf(err))

	_, err = s.service.Booking.Book(ctx, &request.BookTicketRequest{
		CustomerID: 999999, ScreeningID: f.screeningID, SeatLabel: "A1",
	}, "clerk1")
	s.ErrorIs(err, repository.ErrCustomerNotFound)

	s.Empty(s.auditFor(f.screeningID))
	s.Equal(10, s.available(f.screeningID))
}

func (s *BaseSuite) TestStatusProjection() {
	ctx := context.Background()
	f := s.newScreening("", 10)

	ticket, err := s.service.Booking.Book(ctx, &request.BookTicketRequest{
		CustomerID: f.customerID, ScreeningID: f.screeningID, SeatLabel: "F6",
	}, "clerk1")
	s.Require().NoError(err)
	_, err = s.service.Booking.Cancel(ctx, ticket.ID, "clerk1")
	s.Require().NoError(err)

	customer := f.customerID
	list := func(status string) []response.TicketListItem {
		items, err := s.service.Booking.ListTickets(ctx, &request.TicketListRequest{Status: status, CustomerID: &customer})
		s.Require().NoError(err)
		return items
	}

	s.True(containsTicket(list("Cancelled"), ticket.ID, "F6", f.screeningID))
	s.False(containsTicket(list("active"), ticket.ID, "F6", f.screeningID))

	var rows []response.TicketListItem
	for _, item := range list("all") {
		if item.TicketID == ticket.ID {
			rows = append(rows, item)
		}
	}
	s.Require().Len(rows, 1)
	s.Equal("Cancelled", rows[0].Status)
}

func (s *BaseSuite) TestAvailabilityIsNeverStale() {
	ctx := context.Background()
	f := s.newScreening("", 10)

	for i, label := range []string{"A1", "A2", "A3"} {
		before := s.available(f.screeningID)
		_, err := s.service.Booking.Book(ctx, &request.BookTicketRequest{
			CustomerID: f.customerID, ScreeningID: f.screeningID, SeatLabel: label,
		}, "clerk1")
		s.Require().NoError(err)
		s.Equal(before-1, s.available(f.screeningID), fmt.Sprintf("booking %d", i))
	}
}

func (s *BaseSuite) TestScreeningOverlapRejected() {
	ctx := context.Background()
	f := s.newScreening("", 10)

	_, err := s.service.Screening.CreateScreening(ctx, &request.ScreeningRequest{
		MovieID: f.movieID, RoomID: f.roomID, ScreeningDate: "2025-01-10", StartTime: "19:00",
	})
	s.ErrorIs(err, usecase.ErrScreeningOverlap)

	_, err = s.service.Screening.CreateScreening(ctx, &request.ScreeningRequest{
		MovieID: f.movieID, RoomID: f.roomID, ScreeningDate: "2025-01-10", StartTime: "20:00",
	})
	s.NoError(err)
}

func (s *BaseSuite) TestDailyRevenue() {
	ctx := context.Background()
	f := s.newScreening("", 10)

	for _, label := range []string{"G1", "G2"} {
		_, err := s.service.Booking.Book(ctx, &request.BookTicketRequest{
			CustomerID: f.customerID, ScreeningID: f.screeningID, SeatLabel: label,
		}, "clerk1")
		s.Require().NoError(err)
	}

	revenue, err := s.service.Report.DailyRevenue(ctx, "2025-01-10")
	s.Require().NoError(err)

	var found bool
	for _, row := range revenue.Screenings {
		if row.ScreeningID == f.screeningID {
			found = true
			s.Equal(2, row.TicketsSold)
			s.Equal("20.00", row.Revenue)
		}
	}
	s.True(found)
}

func (s *BaseSuite) TestGatewayReconnectsAfterClose() {
	ctx := context.Background()
	f := s.newScreening("", 10)

	s.db.Close()

	s.Equal(10, s.available(f.screeningID))
	s.NoError(s.db.Ping(ctx))
}

func (s *BaseSuite) auditFor(screeningID int64) []response.AuditEntryResponse {
	entries, err := s.service.Booking.GetBookingAudit(context.Background())
	s.Require().NoError(err)

	var result []response.AuditEntryResponse
	for _, entry := range entries {
		if entry.ScreeningID == screeningID {
			result = append(result, entry)
		}
	}
	return result
}

func containsTicket(items []response.TicketListItem, ticketID int64, seat string, screeningID int64) bool {
	for _, item := range items {
		if item.TicketID == ticketID && item.SeatLabel == seat && item.ScreeningID == screeningID {
			return true
		}
	}
	return false
}
