package packages

import (
	"context"

	"github.com/zvrva/tourbooking/internal/domain"
	"github.com/zvrva/tourbooking/internal/repository"
)

type PackageUseCase interface {
	List(ctx context.Context) ([]domain.Package, error)
	GetByID(ctx context.Context, id string) (*domain.Package, error)
}

type Cache interface {
	GetPackages(ctx context.Context) ([]domain.Package, error)
	SetPackages(ctx context.Context, packages []domain.Package) error
}

type PackageService struct {
	repo  repository.PackageRepository
	cache Cache
}

func NewPackageService(repo repository.PackageRepository, cache Cache) *PackageService {
	return &PackageService{repo: repo, cache: cache}
}

func (s *PackageService) List(ctx context.Context) ([]domain.Package, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetPackages(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	packages, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetPackages(ctx, packages)
	}
	return packages, nil
}

func (s *PackageService) GetByID(ctx context.Context, id string) (*domain.Package, error) {
	return s.repo.GetByID(ctx, id)
}

var _ PackageUseCase = (*PackageService)(nil)
