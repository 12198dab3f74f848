package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/zvrva/tourbooking/internal/domain"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByEmail(ctx context.Context, email string) (*domain.Profile, error)
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
}

type PGProfileRepository struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) ProfileRepository {
	return &PGProfileRepository{db: db}
}

func (r *PGProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	return r.db.QueryRow(ctx, `INSERT INTO profiles (name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		profile.Name, profile.Email, profile.PasswordHash, profile.Role).
		Scan(&profile.ID, &profile.CreatedAt)
}

func (r *PGProfileRepository) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	return r.get(ctx, `SELECT id, name, email, password_hash, role, created_at FROM profiles WHERE email=$1`, email)
}

func (r *PGProfileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	return r.get(ctx, `SELECT id, name, email, password_hash, role, created_at FROM profiles WHERE id=$1`, id)
}

func (r *PGProfileRepository) get(ctx context.Context, query string, arg string) (*domain.Profile, error) {
	var p domain.Profile
	err := r.db.QueryRow(ctx, query, arg).Scan(&p.ID, &p.Name, &p.Email, &p.PasswordHash, &p.Role, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

var _ ProfileRepository = (*PGProfileRepository)(nil)
