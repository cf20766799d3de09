package usecase

import (
	"context"
	"testing"
	"time"

	"cinema-manager/internal/data/entity"
	"cinema-manager/internal/data/repository"
	"cinema-manager/internal/dto/request"
	"cinema-manager/internal/mocks"
	"cinema-manager/pkg/apperror"
	"cinema-manager/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name       string
		a, lenA    int
		b, lenB    int
		wantResult bool
	}{
		{name: "same start", a: 600, lenA: 90, b: 600, lenB: 90, wantResult: true},
		{name: "starts inside", a: 600, lenA: 120, b: 660, lenB: 90, wantResult: true},
		{name: "contains", a: 600, lenA: 240, b: 660, lenB: 30, wantResult: true},
		{name: "back to back", a: 600, lenA: 120, b: 720, lenB: 90, wantResult: false},
		{name: "before", a: 900, lenA: 90, b: 600, lenB: 120, wantResult: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantResult, overlaps(tt.a, tt.lenA, tt.b, tt.lenB))
		})
	}
}

func TestMinuteOfDay(t *testing.T) {
	got, err := minuteOfDay("18:30")
	require.NoError(t, err)
	assert.Equal(t, 1110, got)

	_, err = minuteOfDay("1830")
	assert.Error(t, err)
}

// schedule maps a YYYY-MM-DD date to the room 1 screenings held on it.
type schedule map[string][]*entity.ScreeningDetail

func newScreeningFixture(t *testing.T, shows schedule) (*screeningService, *mocks.MockScreeningRepo) {
	screenings := new(mocks.MockScreeningRepo)
	movies := new(mocks.MockMovieRepo)
	t.Cleanup(func() {
		mock.AssertExpectationsForObjects(t, screenings, movies)
	})

	for date, existing := range shows {
		day, err := time.Parse(utils.DateLayout, date)
		require.NoError(t, err)
		screenings.On("FindByRoomAndDate", mock.Anything, int64(1), mock.MatchedBy(day.Equal)).
			Return(existing, nil).Maybe()
	}
	screenings.On("FindByRoomAndDate", mock.Anything, int64(1), mock.AnythingOfType("time.Time")).
		Return(nil, nil).Maybe()

	movies.On("FindByID", mock.Anything, int64(1)).
		Return(&entity.Movie{Base: entity.Base{ID: 1}, Title: "Dune", DurationMinutes: 120}, nil).Maybe()
	movies.On("FindByID", mock.Anything, mock.AnythingOfType("int64")).Return(nil, nil).Maybe()

	service := NewScreeningService(&repository.Repository{
		Screening: screenings,
		Movie:     movies,
	}, zap.NewNop()).(*screeningService)
	service.now = func() time.Time { return time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC) }

	return service, screenings
}

func screeningDetail(id int64) *entity.ScreeningDetail {
	return &entity.ScreeningDetail{
		Screening: entity.Screening{
			Base:          entity.Base{ID: id},
			MovieID:       1,
			RoomID:        1,
			ScreeningDate: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
			StartTime:     "20:00",
		},
		MovieTitle:      "Dune",
		DurationMinutes: 120,
		RoomName:        "Hall A",
		Capacity:        10,
	}
}

func existingShow(id int64, start string, duration int) *entity.ScreeningDetail {
	return &entity.ScreeningDetail{
		Screening:       entity.Screening{Base: entity.Base{ID: id}, RoomID: 1, StartTime: start},
		DurationMinutes: duration,
	}
}

func TestCreateScreening(t *testing.T) {
	tests := []struct {
		name     string
		shows    schedule
		req      request.ScreeningRequest
		wantKind apperror.Kind
		wantErr  error
	}{
		{
			name:  "free slot",
			shows: schedule{"2025-01-10": {existingShow(1, "18:00", 120)}},
			req:   request.ScreeningRequest{MovieID: 1, RoomID: 1, ScreeningDate: "2025-01-10", StartTime: "20:00"},
		},
		{
			name:     "collides with earlier show",
			shows:    schedule{"2025-01-10": {existingShow(1, "18:00", 120)}},
			req:      request.ScreeningRequest{MovieID: 1, RoomID: 1, ScreeningDate: "2025-01-10", StartTime: "19:30"},
			wantKind: apperror.KindConflict,
			wantErr:  ErrScreeningOverlap,
		},
		{
			name:     "runs into later show",
			shows:    schedule{"2025-01-10": {existingShow(1, "21:00", 90)}},
			req:      request.ScreeningRequest{MovieID: 1, RoomID: 1, ScreeningDate: "2025-01-10", StartTime: "19:30"},
			wantKind: apperror.KindConflict,
			wantErr:  ErrScreeningOverlap,
		},
		{
			name:     "runs past midnight into next day show",
			shows:    schedule{"2025-01-11": {existingShow(2, "00:30", 90)}},
			req:      request.ScreeningRequest{MovieID: 1, RoomID: 1, ScreeningDate: "2025-01-10", StartTime: "23:00"},
			wantKind: apperror.KindConflict,
			wantErr:  ErrScreeningOverlap,
		},
		{
			name:     "previous day show still running",
			shows:    schedule{"2025-01-09": {existingShow(3, "23:30", 150)}},
			req:      request.ScreeningRequest{MovieID: 1, RoomID: 1, ScreeningDate: "2025-01-10", StartTime: "01:00"},
			wantKind: apperror.KindConflict,
			wantErr:  ErrScreeningOverlap,
		},
		{
			name:  "previous day show ended before",
			shows: schedule{"2025-01-09": {existingShow(3, "23:00", 90)}},
			req:   request.ScreeningRequest{MovieID: 1, RoomID: 1, ScreeningDate: "2025-01-10", StartTime: "00:30"},
		},
		{
			name:     "bad time",
			req:      request.ScreeningRequest{MovieID: 1, RoomID: 1, ScreeningDate: "2025-01-10", StartTime: "25:00"},
			wantKind: apperror.KindValidation,
		},
		{
			name:     "bad date",
			req:      request.ScreeningRequest{MovieID: 1, RoomID: 1, ScreeningDate: "10/01/2025", StartTime: "20:00"},
			wantKind: apperror.KindValidation,
		},
		{
			name:     "unknown movie",
			req:      request.ScreeningRequest{MovieID: 9, RoomID: 1, ScreeningDate: "2025-01-10", StartTime: "20:00"},
			wantKind: apperror.KindNotFound,
			wantErr:  repository.ErrMovieNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, screenings := newScreeningFixture(t, tt.shows)
			succeeds := tt.wantErr == nil && tt.wantKind == apperror.KindInternal
			if succeeds {
				screenings.On("Create", mock.Anything, mock.MatchedBy(func(s *entity.Screening) bool {
					return s.MovieID == 1 && s.RoomID == 1 && s.StartTime == tt.req.StartTime
				})).Run(func(args mock.Arguments) {
					args.Get(1).(*entity.Screening).ID = 42
				}).Return(nil).Once()
				screenings.On("FindByID", mock.Anything, int64(42)).Return(screeningDetail(42), nil).Once()
			}

			got, err := service.CreateScreening(context.Background(), &tt.req)

			if succeeds {
				require.NoError(t, err)
				assert.Equal(t, int64(42), got.ID)
				return
			}

			assert.Nil(t, got)
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, apperror.KindOf(err))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			screenings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestUpdateScreeningSkipsItself(t *testing.T) {
	service, screenings := newScreeningFixture(t, schedule{"2025-01-10": {existingShow(7, "18:00", 120)}})
	screenings.On("Update", mock.Anything, mock.MatchedBy(func(s *entity.Screening) bool {
		return s.ID == 7 && s.StartTime == "18:30"
	})).Return(nil).Once()
	screenings.On("FindByID", mock.Anything, int64(7)).Return(screeningDetail(7), nil).Once()

	got, err := service.UpdateScreening(context.Background(), 7, &request.ScreeningRequest{
		MovieID: 1, RoomID: 1, ScreeningDate: "2025-01-10", StartTime: "18:30",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
}

func TestGetScreeningsByDateDefaultsToToday(t *testing.T) {
	service, screenings := newScreeningFixture(t, nil)
	today := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	screenings.On("FindByDate", mock.Anything, mock.MatchedBy(today.Equal)).
		Return([]*entity.ScreeningDetail{screeningDetail(1)}, nil).Once()

	got, err := service.GetScreeningsByDate(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, got, 1)

	_, err = service.GetScreeningsByDate(context.Background(), "tomorrow")
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}
