package book

import (
	"context"
)

// Repository defines the contract for book data storage.
type Repository interface {
	// List returns every book in insertion order.
	List(ctx context.Context) ([]Book, error)
	// GetByID returns the book with the given id, or ErrNotFound.
	GetByID(ctx context.Context, id string) (Book, error)
	// GetByTitle returns the book with the exact title, or ErrNotFound.
	GetByTitle(ctx context.Context, title string) (Book, error)
	// Create persists a new book, filling ID and DateAdded from the store.
	Create(ctx context.Context, b *Book) error
	// Update rewrites every column of the book row.
	Update(ctx context.Context, b Book) (Book, error)
	// Delete removes the book and returns the deleted row.
	Delete(ctx context.Context, id string) (Book, error)
}
