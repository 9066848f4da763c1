package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ezycar/booking-api/internal/auth"
	"github.com/ezycar/booking-api/internal/models"
	repo "github.com/ezycar/booking-api/internal/repository"
)

// ErrInvalidCredentials covers both unknown email and wrong password;
// login responses never say which.
var ErrInvalidCredentials = errors.New("invalid credentials")

type UserService struct {
	users repo.Users
}

func NewUserService(users repo.Users) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Register(ctx context.Context, name, email, password string) (models.User, error) {
	u := models.User{
		Name:  strings.TrimSpace(name),
		Email: strings.TrimSpace(email),
		Role:  models.RoleUser,
	}
	if err := u.Validate(); err != nil {
		return models.User{}, err
	}
	if strings.TrimSpace(password) == "" {
		return models.User{}, models.Invalid("Please add a password")
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}
	return s.users.Create(ctx, u.Name, u.Email, hash, u.Role)
}

func (s *UserService) Login(ctx context.Context, email, password string) (models.User, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return models.User{}, models.Invalid("Please provide an email and password")
	}
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}
	if err := auth.VerifyPassword(password, u.PasswordHash); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return u, nil
}

func (s *UserService) Me(ctx context.Context, id string) (models.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return models.User{}, models.NotFound(fmt.Sprintf("No user with the id of %s", id))
	}
	return u, err
}
