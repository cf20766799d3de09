package mocks

import (
	"context"
	"time"

	"cinema-manager/internal/data/entity"
	"cinema-manager/pkg/database"

	"github.com/stretchr/testify/mock"
)

type MockScreeningRepo struct {
	mock.Mock
}

func (m *MockScreeningRepo) Create(ctx context.Context, screening *entity.Screening) error {
	args := m.Called(ctx, screening)
	return args.Error(0)
}

func (m *MockScreeningRepo) FindByID(ctx context.Context, id int64) (*entity.ScreeningDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ScreeningDetail), args.Error(1)
}

func (m *MockScreeningRepo) FindAll(ctx context.Context) ([]*entity.ScreeningDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ScreeningDetail), args.Error(1)
}

func (m *MockScreeningRepo) FindByDate(ctx context.Context, date time.Time) ([]*entity.ScreeningDetail, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ScreeningDetail), args.Error(1)
}

func (m *MockScreeningRepo) FindByRoomAndDate(ctx context.Context, roomID int64, date time.Time) ([]*entity.ScreeningDetail, error) {
	args := m.Called(ctx, roomID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ScreeningDetail), args.Error(1)
}

func (m *MockScreeningRepo) Update(ctx context.Context, screening *entity.Screening) error {
	args := m.Called(ctx, screening)
	return args.Error(0)
}

func (m *MockScreeningRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockScreeningRepo) FindSeatingTx(ctx context.Context, q database.Querier, id int64) (*entity.Seating, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Seating), args.Error(1)
}

func (m *MockScreeningRepo) GetAvailability(ctx context.Context, id int64) (*entity.SeatAvailability, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SeatAvailability), args.Error(1)
}

func (m *MockScreeningRepo) FindOccupiedSeats(ctx context.Context, id int64) ([]string, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
