package store

// Repository implementation (Postgres)

import (
	"context"
	"errors"
	"fmt"

	"bookshelf/internal/entity"
	"bookshelf/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookPG struct {
	db *pgxpool.Pool
}

func NewBookPG(db *pgxpool.Pool) *BookPG {
	return &BookPG{db: db}
}

func (r *BookPG) ListOrdered(ctx context.Context) ([]entity.Book, error) {
	const query = `
		SELECT id, title, author, rating
		FROM books
		ORDER BY id ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []entity.Book
	for rows.Next() {
		var b entity.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Rating); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *BookPG) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM books`).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *BookPG) GetByID(ctx context.Context, id int64) (entity.Book, error) {
	const query = `
		SELECT id, title, author, rating
		FROM books
		WHERE id = $1
		LIMIT 1
	`
	var b entity.Book
	err := r.db.QueryRow(ctx, query, id).Scan(&b.ID, &b.Title, &b.Author, &b.Rating)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Book{}, usecase.ErrNotFound
		}
		return entity.Book{}, err
	}
	return b, nil
}

// Insert stores the book inside its own transaction and fills in the
// database-assigned id.
func (r *BookPG) Insert(ctx context.Context, b *entity.Book) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const query = `
		INSERT INTO books (title, author, rating)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	if err := tx.QueryRow(ctx, query, b.Title, b.Author, b.Rating).Scan(&b.ID); err != nil {
		return fmt.Errorf("insert book: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *BookPG) UpdateRating(ctx context.Context, id int64, rating *int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `UPDATE books SET rating = $2 WHERE id = $1`, id, rating)
	if err != nil {
		return fmt.Errorf("update rating: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}

	return tx.Commit(ctx)
}

func (r *BookPG) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}

	return tx.Commit(ctx)
}
