package mocks

import (
	"context"

	"github.com/metinatakli/theatrical-statements/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockPlayRepo struct {
	mock.Mock
}

func (m *MockPlayRepo) Create(ctx context.Context, play *domain.CatalogPlay) error {
	args := m.Called(ctx, play)
	return args.Error(0)
}

func (m *MockPlayRepo) GetByID(ctx context.Context, id string) (*domain.CatalogPlay, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogPlay), args.Error(1)
}

func (m *MockPlayRepo) GetByIDs(ctx context.Context, ids []string) (map[string]*domain.CatalogPlay, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]*domain.CatalogPlay), args.Error(1)
}

func (m *MockPlayRepo) GetAll(ctx context.Context) ([]*domain.CatalogPlay, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CatalogPlay), args.Error(1)
}
