package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/zvrva/tourbooking/internal/domain"
)

type PackageRepository interface {
	List(ctx context.Context) ([]domain.Package, error)
	GetByID(ctx context.Context, id string) (*domain.Package, error)
}

type PGPackageRepository struct {
	db *pgxpool.Pool
}

func NewPackageRepository(db *pgxpool.Pool) PackageRepository {
	return &PGPackageRepository{db: db}
}

func (r *PGPackageRepository) List(ctx context.Context) ([]domain.Package, error) {
	rows, err := r.db.Query(ctx, `SELECT id, title, location, description, price_paisa, duration, image_url, created_at, updated_at FROM packages ORDER BY created_at DESC`)
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

func (r *PGPackageRepository) GetByID(ctx context.Context, id string) (*domain.Package, error) {
	row := r.db.QueryRow(ctx, `SELECT id, title, location, description, price_paisa, duration, image_url, created_at, updated_at FROM packages WHERE id=$1`, id)
	var p domain.Package
	if err := row.Scan(&p.ID, &p.Title, &p.Location, &p.Description, &p.PricePaisa, &p.Duration, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

var _ PackageRepository = (*PGPackageRepository)(nil)
