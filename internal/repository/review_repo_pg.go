package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/zvrva/tourbooking/internal/domain"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	ListByPackage(ctx context.Context, packageID string) ([]domain.Review, error)
}

type PGReviewRepository struct {
	db *pgxpool.Pool
}

func NewReviewRepository(db *pgxpool.Pool) ReviewRepository {
	return &PGReviewRepository{db: db}
}

func (r *PGReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	return r.db.QueryRow(ctx, `INSERT INTO reviews (user_id, package_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		review.UserID, review.PackageID, review.Rating, review.Comment).
		Scan(&review.ID, &review.CreatedAt)
}

func (r *PGReviewRepository) ListByPackage(ctx context.Context, packageID string) ([]domain.Review, error) {
	rows, err := r.db.Query(ctx, `SELECT r.id, r.user_id, r.package_id, r.rating, r.comment, pr.name, r.created_at
		FROM reviews r
		JOIN profiles pr ON pr.id = r.user_id
		WHERE r.package_id=$1
		ORDER BY r.created_at DESC`, packageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]domain.Review, 0)
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.UserID, &rv.PackageID, &rv.Rating, &rv.Comment, &rv.AuthorName, &rv.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

var _ ReviewRepository = (*PGReviewRepository)(nil)
