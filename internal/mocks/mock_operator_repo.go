package mocks

import (
	"context"

	"cinema-manager/internal/data/entity"

	"github.com/stretchr/testify/mock"
)

type MockOperatorRepo struct {
	mock.Mock
}

func (m *MockOperatorRepo) Create(ctx context.Context, operator *entity.Operator) error {
	args := m.Called(ctx, operator)
	return args.Error(0)
}

func (m *MockOperatorRepo) FindByID(ctx context.Context, id int64) (*entity.Operator, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Operator), args.Error(1)
}

func (m *MockOperatorRepo) FindByUsername(ctx context.Context, username string) (*entity.Operator, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Operator), args.Error(1)
}

func (m *MockOperatorRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
