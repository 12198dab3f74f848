package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/zvrva/tourbooking/internal/auth"
	"github.com/zvrva/tourbooking/internal/domain"
	"github.com/zvrva/tourbooking/internal/repository"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type UserUseCase interface {
	Register(ctx context.Context, name, email, password string) (*domain.Profile, string, error)
	Login(ctx context.Context, email, password string) (*domain.Profile, string, error)
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
}

type UserService struct {
	profiles  repository.ProfileRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewUserService(profiles repository.ProfileRepository, jwtSecret string, tokenTTL time.Duration) *UserService {
	return &UserService{profiles: profiles, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *UserService) Register(ctx context.Context, name, email, password string) (*domain.Profile, string, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" {
		return nil, "", errors.New("name and email are required")
	}
	if len(password) < 8 {
		return nil, "", errors.New("password must be at least 8 characters")
	}
	if _, err := s.profiles.GetByEmail(ctx, email); err == nil {
		return nil, "", errors.New("email is already registered")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, "", err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", err
	}
	profile := &domain.Profile{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleCustomer,
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, "", err
	}
	return s.withToken(profile)
}

func (s *UserService) Login(ctx context.Context, email, password string) (*domain.Profile, string, error) {
	profile, err := s.profiles.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !auth.CheckPassword(profile.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}
	return s.withToken(profile)
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	return s.profiles.GetByID(ctx, id)
}

func (s *UserService) withToken(profile *domain.Profile) (*domain.Profile, string, error) {
	token, err := auth.Issue(s.jwtSecret, profile.ID, profile.Role, s.tokenTTL)
	if err != nil {
		return nil, "", err
	}
	return profile, token, nil
}

var _ UserUseCase = (*UserService)(nil)
