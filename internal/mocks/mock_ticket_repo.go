package mocks

import (
	"context"
	"time"

	"cinema-manager/internal/data/entity"
	"cinema-manager/pkg/database"

	"github.com/stretchr/testify/mock"
)

type MockTicketRepo struct {
	mock.Mock
}

func (m *MockTicketRepo) CountActiveTx(ctx context.Context, q database.Querier, screeningID int64) (int, error) {
	args := m.Called(ctx, q, screeningID)
	return args.Int(0), args.Error(1)
}

func (m *MockTicketRepo) CreateTx(ctx context.Context, q database.Querier, ticket *entity.Ticket) error {
	args := m.Called(ctx, q, ticket)
	return args.Error(0)
}

func (m *MockTicketRepo) FindByIDForUpdateTx(ctx context.Context, q database.Querier, id int64) (*entity.Ticket, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Ticket), args.Error(1)
}

func (m *MockTicketRepo) MarkCancelledTx(ctx context.Context, q database.Querier, id int64, actor string) (time.Time, error) {
	args := m.Called(ctx, q, id, actor)
	return args.Get(0).(time.Time), args.Error(1)
}

func (m *MockTicketRepo) FindByID(ctx context.Context, id int64) (*entity.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Ticket), args.Error(1)
}

func (m *MockTicketRepo) FindHistory(ctx context.Context, filter entity.StatusFilter, customerID *int64) ([]*entity.TicketView, error) {
	args := m.Called(ctx, filter, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.TicketView), args.Error(1)
}

func (m *MockTicketRepo) FindByScreening(ctx context.Context, screeningID int64) ([]*entity.TicketView, error) {
	args := m.Called(ctx, screeningID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.TicketView), args.Error(1)
}
