package mocks

import (
	"context"

	"cinema-manager/internal/data/entity"
	"cinema-manager/pkg/database"

	"github.com/stretchr/testify/mock"
)

type MockAuditRepo struct {
	mock.Mock
}

func (m *MockAuditRepo) AppendTx(ctx context.Context, q database.Querier, entry *entity.AuditEntry) error {
	args := m.Called(ctx, q, entry)
	return args.Error(0)
}

func (m *MockAuditRepo) FindRecent(ctx context.Context, limit int) ([]*entity.AuditEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.AuditEntry), args.Error(1)
}
