package favorites

import (
	"context"

	"github.com/zvrva/tourbooking/internal/domain"
	"github.com/zvrva/tourbooking/internal/repository"
)

type FavoriteUseCase interface {
	Toggle(ctx context.Context, userID, packageID string) (bool, error)
	IsFavorite(ctx context.Context, userID, packageID string) (bool, error)
	ListPackages(ctx context.Context, userID string) ([]domain.Package, error)
}

type FavoriteService struct {
	favorites repository.FavoriteRepository
	packages  repository.PackageRepository
}

func NewFavoriteService(favorites repository.FavoriteRepository, packages repository.PackageRepository) *FavoriteService {
	return &FavoriteService{favorites: favorites, packages: packages}
}

// Toggle flips the favorite state and returns the new one.
func (s *FavoriteService) Toggle(ctx context.Context, userID, packageID string) (bool, error) {
	if _, err := s.packages.GetByID(ctx, packageID); err != nil {
		return false, err
	}

	exists, err := s.favorites.Exists(ctx, userID, packageID)
	if err != nil {
		return false, err
	}
	if exists {
		if err := s.favorites.Delete(ctx, userID, packageID); err != nil {
			return true, err
		}
		return false, nil
	}
	if err := s.favorites.Create(ctx, userID, packageID); err != nil {
		return false, err
	}
	return true, nil
}

func (s *FavoriteService) IsFavorite(ctx context.Context, userID, packageID string) (bool, error) {
	return s.favorites.Exists(ctx, userID, packageID)
}

func (s *FavoriteService) ListPackages(ctx context.Context, userID string) ([]domain.Package, error) {
	return s.favorites.ListPackages(ctx, userID)
}

var _ FavoriteUseCase = (*FavoriteService)(nil)
