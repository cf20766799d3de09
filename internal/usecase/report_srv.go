package usecase

import (
	"context"
	"fmt"
	"time"

	"cinema-manager/internal/data/entity"
	"cinema-manager/internal/data/repository"
	"cinema-manager/internal/dto/request"
	"cinema-manager/internal/dto/response"
	"cinema-manager/pkg/apperror"
	"cinema-manager/pkg/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	defaultPopularLimit = 10
	revenueWindowDays   = 7
)

var hundred = decimal.NewFromInt(100)

type ReportService interface {
	DailyRevenue(ctx context.Context, date string) (*response.DailyRevenueResponse, error)
	WeeklyRevenue(ctx context.Context, endDate string) (*response.WeeklyRevenueResponse, error)
	OccupancyRates(ctx context.Context, req *request.OccupancyRequest) ([]response.OccupancyResponse, error)
	ScreeningsByDate(ctx context.Context, date string) ([]response.OccupancyResponse, error)
	PopularMovies(ctx context.Context, limit int) ([]response.PopularMovieResponse, error)
}

type reportService struct {
	repo        repository.ReportRepository
	ticketPrice decimal.Decimal
	log         *zap.Logger
	now         func() time.Time
}

func NewReportService(repo repository.ReportRepository, config *utils.Config, log *zap.Logger) ReportService {
	return &reportService{
		repo:        repo,
		ticketPrice: config.Booking.TicketPrice,
		log:         log.With(zap.String("service", "report")),
		now:         time.Now,
	}
}

func (s *reportService) parseDate(op, date string) (time.Time, error) {
	day, err := utils.ParseDate(date, s.now())
	if err != nil {
		return time.Time{}, apperror.Validation(op, map[string]string{"date": "Must be a date in YYYY-MM-DD format"})
	}
	return day, nil
}

// occupancyRate is sold/capacity as a percentage rounded to 2 decimals.
func occupancyRate(sold, capacity int) float64 {
	if capacity <= 0 {
		return 0
	}
	return decimal.NewFromInt(int64(sold)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(capacity))).
		Round(2).
		InexactFloat64()
}

func toOccupancy(sales *entity.ScreeningSales) response.OccupancyResponse {
	return response.OccupancyResponse{
		ScreeningID:   sales.ScreeningID,
		MovieTitle:    sales.MovieTitle,
		RoomName:      sales.RoomName,
		ScreeningDate: sales.ScreeningDate.Format(utils.DateLayout),
		StartTime:     sales.StartTime,
		Capacity:      sales.Capacity,
		TicketsSold:   sales.TicketsSold,
		OccupancyRate: occupancyRate(sales.TicketsSold, sales.Capacity),
	}
}

// DailyRevenue prices every active ticket of the day at the configured
// ticket price.
func (s *reportService) DailyRevenue(ctx context.Context, date string) (*response.DailyRevenueResponse, error) {
	day, err := s.parseDate("report.daily_revenue", date)
	if err != nil {
		return nil, err
	}

	sales, err := s.repo.SalesByDate(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("daily revenue: %w", err)
	}

	total := decimal.Zero
	sold := 0
	screenings := make([]response.ScreeningRevenue, len(sales))
	for i, row := range sales {
		revenue := s.ticketPrice.Mul(decimal.NewFromInt(int64(row.TicketsSold)))
		total = total.Add(revenue)
		sold += row.TicketsSold

		screenings[i] = response.ScreeningRevenue{
			ScreeningID: row.ScreeningID,
			MovieTitle:  row.MovieTitle,
			RoomName:    row.RoomName,
			StartTime:   row.StartTime,
			TicketsSold: row.TicketsSold,
			Revenue:     revenue.StringFixed(2),
		}
	}

	s.log.Info("Daily revenue computed",
		zap.String("date", day.Format(utils.DateLayout)),
		zap.Int("tickets_sold", sold),
		zap.String("total", total.StringFixed(2)),
	)

	return &response.DailyRevenueResponse{
		Date:        day.Format(utils.DateLayout),
		TicketPrice: s.ticketPrice.StringFixed(2),
		TicketsSold: sold,
		Total:       total.StringFixed(2),
		Screenings:  screenings,
	}, nil
}

// WeeklyRevenue totals the seven days ending on endDate. Days without sales
// are reported as zero.
func (s *reportService) WeeklyRevenue(ctx context.Context, endDate string) (*response.WeeklyRevenueResponse, error) {
	to, err := s.parseDate("report.weekly_revenue", endDate)
	if err != nil {
		return nil, err
	}
	from := to.AddDate(0, 0, -(revenueWindowDays - 1))

	sales, err := s.repo.DailySalesBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("weekly revenue: %w", err)
	}

	sold := make(map[string]int, len(sales))
	for _, day := range sales {
		sold[day.Date.Format(utils.DateLayout)] += day.TicketsSold
	}

	total := decimal.Zero
	ticketsSold := 0
	days := make([]response.DayRevenue, 0, revenueWindowDays)
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		key := day.Format(utils.DateLayout)
		revenue := s.ticketPrice.Mul(decimal.NewFromInt(int64(sold[key])))
		total = total.Add(revenue)
		ticketsSold += sold[key]

		days = append(days, response.DayRevenue{
			Date:        key,
			Weekday:     day.Format("Mon"),
			TicketsSold: sold[key],
			Revenue:     revenue.StringFixed(2),
		})
	}

	return &response.WeeklyRevenueResponse{
		From:        from.Format(utils.DateLayout),
		To:          to.Format(utils.DateLayout),
		TicketPrice: s.ticketPrice.StringFixed(2),
		TicketsSold: ticketsSold,
		Total:       total.StringFixed(2),
		Days:        days,
	}, nil
}

// OccupancyRates lists screenings newest first.
func (s *reportService) OccupancyRates(ctx context.Context, req *request.OccupancyRequest) ([]response.OccupancyResponse, error) {
	if req == nil {
		req = &request.OccupancyRequest{}
	}
	if err := utils.ValidationError("report.occupancy", req); err != nil {
		return nil, err
	}

	sales, err := s.repo.SalesRecent(ctx, entity.SalesFilter{
		RoomID:  req.RoomID,
		MovieID: req.MovieID,
		Limit:   req.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("occupancy rates: %w", err)
	}

	result := make([]response.OccupancyResponse, len(sales))
	for i, row := range sales {
		result[i] = toOccupancy(row)
	}
	return result, nil
}

func (s *reportService) ScreeningsByDate(ctx context.Context, date string) ([]response.OccupancyResponse, error) {
	day, err := s.parseDate("report.screenings_by_date", date)
	if err != nil {
		return nil, err
	}

	sales, err := s.repo.SalesByDate(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("screenings by date: %w", err)
	}

	result := make([]response.OccupancyResponse, len(sales))
	for i, row := range sales {
		result[i] = toOccupancy(row)
	}
	return result, nil
}

func (s *reportService) PopularMovies(ctx context.Context, limit int) ([]response.PopularMovieResponse, error) {
	if limit < 1 || limit > 100 {
		limit = defaultPopularLimit
	}

	movies, err := s.repo.PopularMovies(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("popular movies: %w", err)
	}

	result := make([]response.PopularMovieResponse, len(movies))
	for i, movie := range movies {
		result[i] = response.PopularMovieResponse{
			MovieID:     movie.MovieID,
			Title:       movie.Title,
			TicketsSold: movie.TicketsSold,
		}
	}
	return result, nil
}
