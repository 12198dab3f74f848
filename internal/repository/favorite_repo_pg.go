package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/zvrva/tourbooking/internal/domain"
)

type FavoriteRepository interface {
	Exists(ctx context.Context, userID, packageID string) (bool, error)
	Create(ctx context.Context, userID, packageID string) error
	Delete(ctx context.Context, userID, packageID string) error
	ListPackages(ctx context.Context, userID string) ([]domain.Package, error)
}

type PGFavoriteRepository struct {
	db *pgxpool.Pool
}

func NewFavoriteRepository(db *pgxpool.Pool) FavoriteRepository {
	return &PGFavoriteRepository{db: db}
}

func (r *PGFavoriteRepository) Exists(ctx context.Context, userID, packageID string) (bool, error) {
	var id string
	err := r.db.QueryRow(ctx, `SELECT id FROM favorites WHERE user_id=$1 AND package_id=$2`, userID, packageID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *PGFavoriteRepository) Create(ctx context.Context, userID, packageID string) error {
	_, err := r.db.Exec(ctx, `INSERT INTO favorites (user_id, package_id) VALUES ($1, $2) ON CONFLICT (user_id, package_id) DO NOTHING`, userID, packageID)
	return err
}

func (r *PGFavoriteRepository) Delete(ctx context.Context, userID, packageID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM favorites WHERE user_id=$1 AND package_id=$2`, userID, packageID)
	return err
}

func (r *PGFavoriteRepository) ListPackages(ctx context.Context, userID string) ([]domain.Package, error) {
	rows, err := r.db.Query(ctx, `SELECT p.id, p.title, p.location, p.description, p.price_paisa, p.duration, p.image_url, p.created_at, p.updated_at
		FROM favorites f
		JOIN packages p ON p.id = f.package_id
		WHERE f.user_id=$1
		ORDER BY f.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	packages := make([]domain.Package, 0)
	for rows.Next() {
		var p domain.Package
		if err := rows.Scan(&p.ID, &p.Title, &p.Location, &p.Description, &p.PricePaisa, &p.Duration, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		packages = append(packages, p)
	}
	return packages, rows.Err()
}

var _ FavoriteRepository = (*PGFavoriteRepository)(nil)
