package reviews

import (
	"context"
	"errors"
	"strings"

	"github.com/zvrva/tourbooking/internal/domain"
	"github.com/zvrva/tourbooking/internal/repository"
)

type ReviewUseCase interface {
	ListForPackage(ctx context.Context, packageID string) ([]domain.Review, float64, error)
	Submit(ctx context.Context, input SubmitReviewInput) (*domain.Review, error)
}

type SubmitReviewInput struct {
	UserID    string
	PackageID string
	Rating    int
	Comment   string
}

type ReviewService struct {
	reviews  repository.ReviewRepository
	packages repository.PackageRepository
}

func NewReviewService(reviews repository.ReviewRepository, packages repository.PackageRepository) *ReviewService {
	return &ReviewService{reviews: reviews, packages: packages}
}

// ListForPackage returns reviews newest first together with the average rating.
func (s *ReviewService) ListForPackage(ctx context.Context, packageID string) ([]domain.Review, float64, error) {
	list, err := s.reviews.ListByPackage(ctx, packageID)
	if err != nil {
		return nil, 0, err
	}
	if len(list) == 0 {
		return list, 0, nil
	}
	sum := 0
	for _, r := range list {
		sum += r.Rating
	}
	return list, float64(sum) / float64(len(list)), nil
}

func (s *ReviewService) Submit(ctx context.Context, input SubmitReviewInput) (*domain.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.New("rating must be between 1 and 5")
	}
	if strings.TrimSpace(input.Comment) == "" {
		return nil, errors.New("comment is required")
	}
	if _, err := s.packages.GetByID(ctx, input.PackageID); err != nil {
		return nil, err
	}

	review := &domain.Review{
		UserID:    input.UserID,
		PackageID: input.PackageID,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

var _ ReviewUseCase = (*ReviewService)(nil)
