package usecase

import (
	"context"
	"testing"
	"time"

	"cinema-manager/internal/data/entity"
	"cinema-manager/internal/dto/request"
	"cinema-manager/internal/dto/response"
	"cinema-manager/internal/mocks"
	"cinema-manager/pkg/apperror"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOccupancyRate(t *testing.T) {
	assert.Equal(t, 30.0, occupancyRate(3, 10))
	assert.Equal(t, 33.33, occupancyRate(1, 3))
	assert.Equal(t, 66.67, occupancyRate(2, 3))
	assert.Equal(t, 100.0, occupancyRate(10, 10))
	assert.Equal(t, 0.0, occupancyRate(5, 0))
}

func newReportFixture(t *testing.T) (*reportService, *mocks.MockReportRepo) {
	repo := new(mocks.MockReportRepo)
	t.Cleanup(func() { repo.AssertExpectations(t) })

	service := NewReportService(repo, testConfig(), zap.NewNop()).(*reportService)
	service.now = func() time.Time { return time.Date(2025, 1, 10, 15, 0, 0, 0, time.UTC) }
	return service, repo
}

func TestDailyRevenue(t *testing.T) {
	day := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	service, repo := newReportFixture(t)
	repo.On("SalesByDate", mock.Anything, mock.MatchedBy(day.Equal)).
		Return([]*entity.ScreeningSales{
			{ScreeningID: 1, MovieTitle: "Dune", RoomName: "Hall A", ScreeningDate: day, StartTime: "18:00", Capacity: 10, TicketsSold: 3},
			{ScreeningID: 2, MovieTitle: "Heat", RoomName: "Hall B", ScreeningDate: day, StartTime: "21:00", Capacity: 50, TicketsSold: 0},
		}, nil).Once()

	got, err := service.DailyRevenue(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, "2025-01-10", got.Date)
	assert.Equal(t, "10.00", got.TicketPrice)
	assert.Equal(t, 3, got.TicketsSold)
	assert.Equal(t, "30.00", got.Total)
	require.Len(t, got.Screenings, 2)
	assert.Equal(t, "30.00", got.Screenings[0].Revenue)
	assert.Equal(t, "0.00", got.Screenings[1].Revenue)
}

func TestDailyRevenueRejectsBadDate(t *testing.T) {
	service, repo := newReportFixture(t)

	_, err := service.DailyRevenue(context.Background(), "2025-13-01")
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	repo.AssertNotCalled(t, "SalesByDate", mock.Anything, mock.Anything)
}

func TestWeeklyRevenue(t *testing.T) {
	from := time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	service, repo := newReportFixture(t)
	repo.On("DailySalesBetween", mock.Anything, mock.MatchedBy(from.Equal), mock.MatchedBy(to.Equal)).
		Return([]*entity.DailySales{
			{Date: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), TicketsSold: 4},
			{Date: to, TicketsSold: 3},
		}, nil).Once()

	got, err := service.WeeklyRevenue(context.Background(), "2025-01-10")
	require.NoError(t, err)

	want := []response.DayRevenue{
		{Date: "2025-01-04", Weekday: "Sat", TicketsSold: 0, Revenue: "0.00"},
		{Date: "2025-01-05", Weekday: "Sun", TicketsSold: 4, Revenue: "40.00"},
		{Date: "2025-01-06", Weekday: "Mon", TicketsSold: 0, Revenue: "0.00"},
		{Date: "2025-01-07", Weekday: "Tue", TicketsSold: 0, Revenue: "0.00"},
		{Date: "2025-01-08", Weekday: "Wed", TicketsSold: 0, Revenue: "0.00"},
		{Date: "2025-01-09", Weekday: "Thu", TicketsSold: 0, Revenue: "0.00"},
		{Date: "2025-01-10", Weekday: "Fri", TicketsSold: 3, Revenue: "30.00"},
	}
	if diff := cmp.Diff(want, got.Days); diff != "" {
		t.Errorf("weekly days mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "2025-01-04", got.From)
	assert.Equal(t, "2025-01-10", got.To)
	assert.Equal(t, 7, got.TicketsSold)
	assert.Equal(t, "70.00", got.Total)
}

func TestWeeklyRevenueDefaultsToToday(t *testing.T) {
	service, repo := newReportFixture(t)
	repo.On("DailySalesBetween", mock.Anything, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(nil, nil).Once()

	got, err := service.WeeklyRevenue(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-10", got.To)
	assert.Len(t, got.Days, 7)
	assert.Equal(t, "0.00", got.Total)

	_, err = service.WeeklyRevenue(context.Background(), "last week")
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestOccupancyRates(t *testing.T) {
	roomID := int64(2)
	movieID := int64(5)

	tests := []struct {
		name string
		req  *request.OccupancyRequest
		want entity.SalesFilter
	}{
		{name: "no filter", req: nil, want: entity.SalesFilter{}},
		{name: "room", req: &request.OccupancyRequest{RoomID: &roomID}, want: entity.SalesFilter{RoomID: &roomID}},
		{
			name: "movie with limit",
			req:  &request.OccupancyRequest{MovieID: &movieID, Limit: 20},
			want: entity.SalesFilter{MovieID: &movieID, Limit: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newReportFixture(t)
			repo.On("SalesRecent", mock.Anything, tt.want).
				Return([]*entity.ScreeningSales{
					{ScreeningID: 1, MovieTitle: "Dune", Capacity: 10, TicketsSold: 3, ScreeningDate: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)},
				}, nil).Once()

			got, err := service.OccupancyRates(context.Background(), tt.req)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, 30.0, got[0].OccupancyRate)
			assert.Equal(t, "2025-01-10", got[0].ScreeningDate)
		})
	}
}

func TestOccupancyRatesRejectsBadFilter(t *testing.T) {
	zero := int64(0)
	service, repo := newReportFixture(t)

	_, err := service.OccupancyRates(context.Background(), &request.OccupancyRequest{Limit: 500})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	_, err = service.OccupancyRates(context.Background(), &request.OccupancyRequest{RoomID: &zero})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	repo.AssertNotCalled(t, "SalesRecent", mock.Anything, mock.Anything)
}

func TestPopularMoviesLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "explicit", limit: 3, want: 3},
		{name: "zero", limit: 0, want: defaultPopularLimit},
		{name: "too large", limit: 1000, want: defaultPopularLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newReportFixture(t)
			repo.On("PopularMovies", mock.Anything, tt.want).
				Return([]*entity.MoviePopularity{{MovieID: 1, Title: "Dune", TicketsSold: 4}}, nil).Once()

			got, err := service.PopularMovies(context.Background(), tt.limit)
			require.NoError(t, err)
			assert.Equal(t, "Dune", got[0].Title)
		})
	}
}
