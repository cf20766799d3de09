package mocks

import (
	"context"

	"cinema-manager/pkg/database"

	"github.com/stretchr/testify/mock"
)

// TxQuerier stands in for the transaction handle. Repository mocks can
// match on it to check that work ran inside WithTx.
type TxQuerier struct {
	database.Querier
}

// MockTx runs the body inline against Querier unless the expectation
// returns an error, which then stands for a failed Begin.
type MockTx struct {
	mock.Mock
	Querier database.Querier
}

func NewMockTx() *MockTx {
	return &MockTx{Querier: &TxQuerier{}}
}

func (m *MockTx) WithTx(ctx context.Context, fn func(ctx context.Context, q database.Querier) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx, m.Querier)
}
