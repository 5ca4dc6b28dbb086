package user

import (
	"context"
	"errors"
)

// Service provides user-related business logic.
type Service struct {
	repo Repository
}

// NewService creates a new user service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (User, error) {
	return s.repo.GetByID(ctx, id)
}

// Create registers a user. The email is the dedup key; a taken email is
// ErrDuplicateEmail.
func (s *Service) Create(ctx context.Context, username, email string) (User, error) {
	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return User{}, ErrDuplicateEmail
	}
	if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	u := User{Username: username, Email: email, Active: true}
	if err := s.repo.Create(ctx, &u); err != nil {
		return User{}, err
	}
	return u, nil
}

// Update replaces the username and email of an existing user.
func (s *Service) Update(ctx context.Context, id int64, username, email string) (User, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return User{}, err
	}

	other, err := s.repo.GetByEmail(ctx, email)
	if err == nil && other.ID != current.ID {
		return User{}, ErrDuplicateEmail
	}
	if err != nil && !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	current.Username = username
	current.Email = email
	return s.repo.Update(ctx, current)
}

func (s *Service) Delete(ctx context.Context, id int64) (User, error) {
	return s.repo.Delete(ctx, id)
}
