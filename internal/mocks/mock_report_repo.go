package mocks

import (
	"context"
	"time"

	"cinema-manager/internal/data/entity"

	"github.com/stretchr/testify/mock"
)

type MockReportRepo struct {
	mock.Mock
}

func (m *MockReportRepo) SalesByDate(ctx context.Context, date time.Time) ([]*entity.ScreeningSales, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ScreeningSales), args.Error(1)
}

func (m *MockReportRepo) SalesRecent(ctx context.Context, filter entity.SalesFilter) ([]*entity.ScreeningSales, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ScreeningSales), args.Error(1)
}

func (m *MockReportRepo) DailySalesBetween(ctx context.Context, from, to time.Time) ([]*entity.DailySales, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.DailySales), args.Error(1)
}

func (m *MockReportRepo) PopularMovies(ctx context.Context, limit int) ([]*entity.MoviePopularity, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.MoviePopularity), args.Error(1)
}
