package book

import (
	"context"
	"errors"
	"time"
)

// Service provides book-related business logic.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every book.
func (s *Service) List(ctx context.Context) ([]Book, error) {
	return s.repo.List(ctx)
}

// Get returns a book by its id.
func (s *Service) Get(ctx context.Context, id string) (Book, error) {
	return s.repo.GetByID(ctx, id)
}

// Create adds a new book with default priority, status and type. Only title
// and author are taken from the caller; everything else starts at its
// default. Returns ErrDuplicateTitle when the title is already taken.
func (s *Service) Create(ctx context.Context, title string, author *string) (Book, error) {
	_, err := s.repo.GetByTitle(ctx, title)
	if err == nil {
		return Book{}, ErrDuplicateTitle
	}
	if !errors.Is(err, ErrNotFound) {
		return Book{}, err
	}

	b := Book{
		Title:    title,
		Author:   author,
		Priority: DefaultPriority,
		Status:   DefaultStatus,
		TypeRead: DefaultTypeRead,
	}
	if err := s.repo.Create(ctx, &b); err != nil {
		return Book{}, err
	}
	return b, nil
}

// UpdateInput carries the fields a caller may change on an existing book.
// Title is mandatory; nil fields keep the book's current value.
type UpdateInput struct {
	Title      string
	Author     *string
	Genre      *string
	Priority   *string
	ReferredBy *string
	Status     *string
	Category   *string
	Notes      *string
	TypeRead   *string
	Rating     *int
	DateRead   *time.Time
}

// Update merges in over the current record and rewrites the row. The
// duplicate-title check skips the book's own id, so resubmitting the
// unchanged title is not a conflict.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Book, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Book{}, err
	}

	other, err := s.repo.GetByTitle(ctx, in.Title)
	if err == nil && other.ID != current.ID {
		return Book{}, ErrDuplicateTitle
	}
	if err != nil && !errors.Is(err, ErrNotFound) {
		return Book{}, err
	}

	current.Title = in.Title
	if in.Author != nil {
		current.Author = in.Author
	}
	if in.Genre != nil {
		current.Genre = in.Genre
	}
	if in.Priority != nil {
		current.Priority = *in.Priority
	}
	if in.ReferredBy != nil {
		current.ReferredBy = in.ReferredBy
	}
	if in.Status != nil {
		current.Status = *in.Status
	}
	if in.Category != nil {
		current.Category = in.Category
	}
	if in.Notes != nil {
		current.Notes = in.Notes
	}
	if in.TypeRead != nil {
		current.TypeRead = *in.TypeRead
	}
	if in.Rating != nil {
		current.Rating = in.Rating
	}
	if in.DateRead != nil {
		current.DateRead = in.DateRead
	}

	return s.repo.Update(ctx, current)
}

// Delete removes a book and returns the deleted record so callers can build
// a confirmation message from it.
func (s *Service) Delete(ctx context.Context, id string) (Book, error) {
	return s.repo.Delete(ctx, id)
}
