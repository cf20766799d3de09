package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cinema-manager/internal/data/entity"
	"cinema-manager/internal/data/repository"
	"cinema-manager/internal/dto/request"
	"cinema-manager/internal/dto/response"
	"cinema-manager/pkg/apperror"
	"cinema-manager/pkg/utils"

	"go.uber.org/zap"
)

type ScreeningService interface {
	GetScreenings(ctx context.Context) ([]response.ScreeningResponse, error)
	GetScreeningsByDate(ctx context.Context, date string) ([]response.ScreeningResponse, error)
	GetScreeningByID(ctx context.Context, screeningID int64) (*response.ScreeningResponse, error)
	CreateScreening(ctx context.Context, req *request.ScreeningRequest) (*response.ScreeningResponse, error)
	UpdateScreening(ctx context.Context, screeningID int64, req *request.ScreeningRequest) (*response.ScreeningResponse, error)
	DeleteScreening(ctx context.Context, screeningID int64) error
}

type screeningService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewScreeningService(repo *repository.Repository, log *zap.Logger) ScreeningService {
	return &screeningService{
		repo: repo,
		log:  log.With(zap.String("service", "screening")),
		now:  time.Now,
	}
}

func toScreeningResponses(screenings []*entity.ScreeningDetail) []response.ScreeningResponse {
	result := make([]response.ScreeningResponse, len(screenings))
	for i, screening := range screenings {
		result[i] = response.ScreeningToResponse(screening)
	}
	return result
}

func (s *screeningService) GetScreenings(ctx context.Context) ([]response.ScreeningResponse, error) {
	screenings, err := s.repo.Screening.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get screenings: %w", err)
	}
	return toScreeningResponses(screenings), nil
}

func (s *screeningService) GetScreeningsByDate(ctx context.Context, date string) ([]response.ScreeningResponse, error) {
	day, err := utils.ParseDate(date, s.now())
	if err != nil {
		return nil, apperror.Validation("screening.by_date", map[string]string{"date": "Must be a date in YYYY-MM-DD format"})
	}

	screenings, err := s.repo.Screening.FindByDate(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("get screenings on %s: %w", day.Format(utils.DateLayout), err)
	}
	return toScreeningResponses(screenings), nil
}

func (s *screeningService) GetScreeningByID(ctx context.Context, screeningID int64) (*response.ScreeningResponse, error) {
	screening, err := s.repo.Screening.FindByID(ctx, screeningID)
	if err != nil {
		return nil, fmt.Errorf("get screening %d: %w", screeningID, err)
	}
	if screening == nil {
		return nil, fmt.Errorf("screening %d: %w", screeningID, repository.ErrScreeningNotFound)
	}

	resp := response.ScreeningToResponse(screening)
	return &resp, nil
}

// minuteOfDay converts a validated "HH:MM" into minutes since midnight.
func minuteOfDay(clock string) (int, error) {
	hours, minutes, ok := strings.Cut(clock, ":")
	if !ok {
		return 0, fmt.Errorf("malformed time %q", clock)
	}
	h, err := strconv.Atoi(hours)
	if err != nil {
		return 0, err
	}
	m, err := strconv.Atoi(minutes)
	if err != nil {
		return 0, err
	}
	return h*60 + m, nil
}

// overlaps reports whether the half-open intervals [a, a+lenA) and
// [b, b+lenB) intersect.
func overlaps(a, lenA, b, lenB int) bool {
	return a < b+lenB && b < a+lenA
}

const minutesPerDay = 24 * 60

// checkOverlap rejects a screening whose run collides with another one in
// the same room. Runs past midnight are compared against the neighbouring
// days. skipID excludes the screening being updated.
func (s *screeningService) checkOverlap(ctx context.Context, screening *entity.Screening, duration int, skipID int64) error {
	start, err := minuteOfDay(screening.StartTime)
	if err != nil {
		return apperror.Validation("screening.overlap", map[string]string{"StartTime": "Must be a time in HH:MM format"})
	}

	for _, dayOffset := range []int{-1, 0, 1} {
		date := screening.ScreeningDate.AddDate(0, 0, dayOffset)
		existing, err := s.repo.Screening.FindByRoomAndDate(ctx, screening.RoomID, date)
		if err != nil {
			return fmt.Errorf("check room schedule: %w", err)
		}

		for _, other := range existing {
			if other.ID == skipID {
				continue
			}
			otherStart, err := minuteOfDay(other.StartTime)
			if err != nil {
				continue
			}
			if overlaps(start, duration, otherStart+dayOffset*minutesPerDay, other.DurationMinutes) {
				s.log.Warn("Screening overlaps",
					zap.Int64("room_id", screening.RoomID),
					zap.Int64("conflicting_screening_id", other.ID),
					zap.String("start_time", screening.StartTime),
				)
				return fmt.Errorf("overlaps screening %d on %s at %s: %w",
					other.ID, date.Format(utils.DateLayout), other.StartTime, ErrScreeningOverlap)
			}
		}
	}

	return nil
}

func (s *screeningService) buildScreening(ctx context.Context, op string, req *request.ScreeningRequest) (*entity.Screening, int, error) {
	if err := utils.ValidationError(op, req); err != nil {
		return nil, 0, err
	}

	date, err := time.Parse(utils.DateLayout, req.ScreeningDate)
	if err != nil {
		return nil, 0, apperror.Validation(op, map[string]string{"ScreeningDate": "Must be a date in YYYY-MM-DD format"})
	}

	movie, err := s.repo.Movie.FindByID(ctx, req.MovieID)
	if err != nil {
		return nil, 0, fmt.Errorf("get movie %d: %w", req.MovieID, err)
	}
	if movie == nil {
		return nil, 0, fmt.Errorf("movie %d: %w", req.MovieID, repository.ErrMovieNotFound)
	}

	screening := &entity.Screening{
		MovieID:       req.MovieID,
		RoomID:        req.RoomID,
		ScreeningDate: date,
		StartTime:     req.StartTime,
	}
	return screening, movie.DurationMinutes, nil
}

func (s *screeningService) CreateScreening(ctx context.Context, req *request.ScreeningRequest) (*response.ScreeningResponse, error) {
	screening, duration, err := s.buildScreening(ctx, "screening.create", req)
	if err != nil {
		return nil, err
	}

	if err := s.checkOverlap(ctx, screening, duration, 0); err != nil {
		return nil, err
	}

	now := s.now()
	screening.CreatedAt = now
	screening.UpdatedAt = now

	if err := s.repo.Screening.Create(ctx, screening); err != nil {
		return nil, fmt.Errorf("create screening: %w", err)
	}

	s.log.Info("Screening created",
		zap.Int64("screening_id", screening.ID),
		zap.Int64("movie_id", screening.MovieID),
		zap.Int64("room_id", screening.RoomID),
		zap.String("date", req.ScreeningDate),
		zap.String("start_time", screening.StartTime),
	)

	return s.GetScreeningByID(ctx, screening.ID)
}

func (s *screeningService) UpdateScreening(ctx context.Context, screeningID int64, req *request.ScreeningRequest) (*response.ScreeningResponse, error) {
	screening, duration, err := s.buildScreening(ctx, "screening.update", req)
	if err != nil {
		return nil, err
	}
	screening.ID = screeningID
	screening.UpdatedAt = s.now()

	if err := s.checkOverlap(ctx, screening, duration, screeningID); err != nil {
		return nil, err
	}

	if err := s.repo.Screening.Update(ctx, screening); err != nil {
		return nil, fmt.Errorf("update screening %d: %w", screeningID, err)
	}

	s.log.Info("Screening updated", zap.Int64("screening_id", screeningID))

	return s.GetScreeningByID(ctx, screeningID)
}

func (s *screeningService) DeleteScreening(ctx context.Context, screeningID int64) error {
	if err := s.repo.Screening.Delete(ctx, screeningID); err != nil {
		return fmt.Errorf("delete screening %d: %w", screeningID, err)
	}

	s.log.Info("Screening deleted", zap.Int64("screening_id", screeningID))
	return nil
}
