package usecase

import (
	"context"

	"bookshelf/internal/entity"
)

// BooksPerShelf is the fixed page size for every listing.
const BooksPerShelf = 8

type BookUsecase struct {
	repo BookRepository
}

func NewBookUsecase(repo BookRepository) *BookUsecase {
	return &BookUsecase{repo: repo}
}

// paginate slices an 8-wide window out of the ordered book list. Pages are
// 1-indexed; any page whose window starts outside the list (including page
// zero or negative pages) yields an empty window.
func paginate(books []entity.Book, page int) []entity.Book {
	start := (page - 1) * BooksPerShelf
	if start < 0 || start >= len(books) {
		return nil
	}
	end := start + BooksPerShelf
	if end > len(books) {
		end = len(books)
	}
	return books[start:end]
}

// ListPage returns the requested page of books plus the total count of the
// full set. An empty window, including the empty-store case, is ErrNotFound.
func (u *BookUsecase) ListPage(ctx context.Context, page int) ([]entity.Book, int, error) {
	all, err := u.repo.ListOrdered(ctx)
	if err != nil {
		return nil, 0, err
	}
	window := paginate(all, page)
	if len(window) == 0 {
		return nil, 0, ErrNotFound
	}
	return window, len(all), nil
}

// UpdateRating sets the rating of a single book. A missing book surfaces as
// ErrNotFound; the transport layer decides whether callers ever see it.
func (u *BookUsecase) UpdateRating(ctx context.Context, id int64, rating *int) error {
	return u.repo.UpdateRating(ctx, id, rating)
}

// Delete removes a book and recomputes the caller's page. The page may come
// back empty after the delete; that is not an error on this path.
func (u *BookUsecase) Delete(ctx context.Context, id int64, page int) ([]entity.Book, int, error) {
	if _, err := u.repo.GetByID(ctx, id); err != nil {
		return nil, 0, err
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return nil, 0, err
	}
	all, err := u.repo.ListOrdered(ctx)
	if err != nil {
		return nil, 0, err
	}
	total, err := u.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return paginate(all, page), total, nil
}

// Create inserts a new book and recomputes the caller's page. On insert
// failure the partially-built book (id zero) is returned alongside the error
// so the transport layer can keep the legacy response shape.
func (u *BookUsecase) Create(ctx context.Context, params CreateBookParams, page int) (entity.Book, []entity.Book, int, error) {
	b := entity.Book{
		Title:  params.Title,
		Author: params.Author,
		Rating: params.Rating,
	}
	if err := u.repo.Insert(ctx, &b); err != nil {
		return b, nil, 0, err
	}
	all, err := u.repo.ListOrdered(ctx)
	if err != nil {
		return b, nil, 0, err
	}
	total, err := u.repo.Count(ctx)
	if err != nil {
		return b, nil, 0, err
	}
	return b, paginate(all, page), total, nil
}
