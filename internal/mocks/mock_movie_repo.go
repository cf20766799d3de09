package mocks

import (
	"context"

	"cinema-manager/internal/data/entity"

	"github.com/stretchr/testify/mock"
)

type MockMovieRepo struct {
	mock.Mock
}

func (m *MockMovieRepo) Create(ctx context.Context, movie *entity.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *MockMovieRepo) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Movie), args.Error(1)
}

func (m *MockMovieRepo) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Movie), args.Error(1)
}

func (m *MockMovieRepo) Update(ctx context.Context, movie *entity.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *MockMovieRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
