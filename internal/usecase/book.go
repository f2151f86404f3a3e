package usecase

import (
	"context"
	"errors"

	"bookshelf/internal/entity"
)

// ErrNotFound is returned when a book does not exist, or when a requested
// page window contains no books.
var ErrNotFound = errors.New("book not found")

// CreateBookParams carries the optional fields of a new book. Nil fields
// are persisted as NULL.
type CreateBookParams struct {
	Title  *string
	Author *string
	Rating *int
}

// BookRepository defines the contract for the bookshelf store.
type BookRepository interface {
	// ListOrdered returns every book ordered ascending by id.
	ListOrdered(ctx context.Context) ([]entity.Book, error)
	// Count returns the total number of books.
	Count(ctx context.Context) (int, error)
	// GetByID returns ErrNotFound when no book has the given id.
	GetByID(ctx context.Context, id int64) (entity.Book, error)
	// Insert stores a new book and fills in its assigned id.
	Insert(ctx context.Context, b *entity.Book) error
	// UpdateRating returns ErrNotFound when no book has the given id.
	UpdateRating(ctx context.Context, id int64, rating *int) error
	// Delete returns ErrNotFound when no book has the given id.
	Delete(ctx context.Context, id int64) error
}
