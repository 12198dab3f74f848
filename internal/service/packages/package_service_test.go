package packages

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/zvrva/tourbooking/internal/domain"
)

type MockPackageRepository struct {
	mock.Mock
}

func (m *MockPackageRepository) List(ctx context.Context) ([]domain.Package, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Package), args.Error(1)
}

func (m *MockPackageRepository) GetByID(ctx context.Context, id string) (*domain.Package, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Package), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetPackages(ctx context.Context) ([]domain.Package, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Package), args.Error(1)
}

func (m *MockCache) SetPackages(ctx context.Context, packages []domain.Package) error {
	args := m.Called(ctx, packages)
	return args.Error(0)
}

func TestPackageService_List_CacheHit(t *testing.T) {
	repo := &MockPackageRepository{}
	cache := &MockCache{}
	service := NewPackageService(repo, cache)

	ctx := context.Background()
	cached := []domain.Package{{ID: "pkg-1", Title: "Annapurna Circuit"}}
	cache.On("GetPackages", ctx).Return(cached, nil).Once()

	list, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, cached, list)
	repo.AssertNotCalled(t, "List", mock.Anything)
	cache.AssertExpectations(t)
}

func TestPackageService_List_CacheMiss(t *testing.T) {
	repo := &MockPackageRepository{}
	cache := &MockCache{}
	service := NewPackageService(repo, cache)

	ctx := context.Background()
	fromDB := []domain.Package{{ID: "pkg-1", Title: "Annapurna Circuit"}}
	cache.On("GetPackages", ctx).Return(nil, nil).Once()
	repo.On("List", ctx).Return(fromDB, nil).Once()
	cache.On("SetPackages", ctx, fromDB).Return(nil).Once()

	list, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, fromDB, list)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestPackageService_List_NoCache(t *testing.T) {
	repo := &MockPackageRepository{}
	service := NewPackageService(repo, nil)

	ctx := context.Background()
	fromDB := []domain.Package{{ID: "pkg-1"}}
	repo.On("List", ctx).Return(fromDB, nil).Once()

	list, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, fromDB, list)
}

func TestPackageService_GetByID_NotFound(t *testing.T) {
	repo := &MockPackageRepository{}
	service := NewPackageService(repo, nil)

	repo.On("GetByID", mock.Anything, "missing").Return(nil, domain.ErrNotFound).Once()

	pkg, err := service.GetByID(context.Background(), "missing")

	assert.Nil(t, pkg)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
