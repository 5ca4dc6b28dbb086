package book

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

const bookColumns = `id, title, author, genre, date_added, priority, referred_by,
	       status, category, notes, type_read, rating, date_read`

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func scanBook(row pgx.Row) (Book, error) {
	var b Book
	err := row.Scan(
		&b.ID, &b.Title, &b.Author, &b.Genre, &b.DateAdded, &b.Priority, &b.ReferredBy,
		&b.Status, &b.Category, &b.Notes, &b.TypeRead, &b.Rating, &b.DateRead,
	)
	return b, err
}

func (r *PostgresRepo) List(ctx context.Context) ([]Book, error) {
	const query = `
		SELECT ` + bookColumns + `
		FROM books
		ORDER BY date_added
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Book, error) {
	const query = `
		SELECT ` + bookColumns + `
		FROM books
		WHERE id = $1
		LIMIT 1
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	b, err := scanBook(r.db.QueryRow(timeoutCtx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func (r *PostgresRepo) GetByTitle(ctx context.Context, title string) (Book, error) {
	const query = `
		SELECT ` + bookColumns + `
		FROM books
		WHERE title = $1
		LIMIT 1
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	b, err := scanBook(r.db.QueryRow(timeoutCtx, query, title))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

// Create inserts the book and fills ID and DateAdded from the row. The
// unique index on title turns a concurrent duplicate insert into
// ErrDuplicateTitle instead of a second row.
func (r *PostgresRepo) Create(ctx context.Context, b *Book) error {
	const query = `
		INSERT INTO books (title, author, genre, priority, referred_by, status,
		                   category, notes, type_read, rating, date_read)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, date_added
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query,
		b.Title, b.Author, b.Genre, b.Priority, b.ReferredBy, b.Status,
		b.Category, b.Notes, b.TypeRead, b.Rating, b.DateRead,
	).Scan(&b.ID, &b.DateAdded)
	return translateConstraint(err)
}

// Update rewrites every mutable column. date_added is never touched.
func (r *PostgresRepo) Update(ctx context.Context, b Book) (Book, error) {
	const query = `
		UPDATE books
		SET title = $2, author = $3, genre = $4, priority = $5, referred_by = $6,
		    status = $7, category = $8, notes = $9, type_read = $10, rating = $11,
		    date_read = $12
		WHERE id = $1
		RETURNING ` + bookColumns + `
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	updated, err := scanBook(r.db.QueryRow(timeoutCtx, query,
		b.ID, b.Title, b.Author, b.Genre, b.Priority, b.ReferredBy,
		b.Status, b.Category, b.Notes, b.TypeRead, b.Rating, b.DateRead,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, translateConstraint(err)
	}
	return updated, nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id string) (Book, error) {
	const query = `
		DELETE FROM books
		WHERE id = $1
		RETURNING ` + bookColumns + `
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	b, err := scanBook(r.db.QueryRow(timeoutCtx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func translateConstraint(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrDuplicateTitle
	}
	return err
}
