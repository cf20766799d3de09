package mocks

import (
	"context"

	"cinema-manager/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockSessionRepo struct {
	mock.Mock
}

func (m *MockSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepo) FindValidSession(ctx context.Context, token uuid.UUID) (*entity.SessionOperator, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SessionOperator), args.Error(1)
}

func (m *MockSessionRepo) Revoke(ctx context.Context, token uuid.UUID) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockSessionRepo) CleanExpiredSessions(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
