package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"bookshelf/internal/entity"
	"bookshelf/internal/usecase"
)

type BookHandler struct {
	books *usecase.BookUsecase

	// legacySwallow preserves the historical contract where rating updates
	// and creates answer 200 even when the write failed and rolled back.
	legacySwallow bool
}

func NewBookHandler(books *usecase.BookUsecase, legacySwallow bool) *BookHandler {
	return &BookHandler{books: books, legacySwallow: legacySwallow}
}

// pageParam reads the 1-indexed page query parameter, defaulting to 1 when
// absent or non-integer. Zero and negative values pass through unchanged and
// resolve to an empty window downstream.
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		return 1
	}
	return page
}

// ensureBooks keeps empty pages as [] on the wire rather than null.
func ensureBooks(books []entity.Book) []entity.Book {
	if books == nil {
		return []entity.Book{}
	}
	return books
}

// List handles GET /books.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, total, err := h.books.ListPage(r.Context(), pageParam(r))
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			JSONError(w, http.StatusNotFound)
			return
		}
		JSONError(w, http.StatusInternalServerError)
		return
	}
	JSONOK(w, ListResponse{Success: true, Books: books, TotalBooks: total})
}

// BooksSubtree dispatches everything under /books/:
// POST /books/create, DELETE /books/{id}, PATCH /books/{id}/rating.
func (h *BookHandler) BooksSubtree(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")

	switch {
	case len(parts) == 2 && parts[0] == "books" && parts[1] == "create":
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.create(w, r)
	case len(parts) == 2 && parts[0] == "books":
		id, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			JSONError(w, http.StatusNotFound)
			return
		}
		if r.Method != http.MethodDelete {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.delete(w, r, id)
	case len(parts) == 3 && parts[0] == "books" && parts[2] == "rating":
		id, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			JSONError(w, http.StatusNotFound)
			return
		}
		if r.Method != http.MethodPatch {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.updateRating(w, r, id)
	default:
		JSONError(w, http.StatusNotFound)
	}
}

type updateRatingRequest struct {
	Rating *int `json:"rating" validate:"omitempty,gte=0,lte=5"`
}

func (h *BookHandler) updateRating(w http.ResponseWriter, r *http.Request, id int64) {
	var body updateRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		JSONError(w, http.StatusBadRequest)
		return
	}
	if errs := ValidateStruct(body); errs != nil {
		JSONError(w, http.StatusBadRequest)
		return
	}

	if body.Rating == nil {
		// No rating in the payload. The legacy contract still acknowledges
		// without writing anything.
		if !h.legacySwallow {
			JSONError(w, http.StatusBadRequest)
			return
		}
		JSONOK(w, AckResponse{Success: true})
		return
	}

	if err := h.books.UpdateRating(r.Context(), id, body.Rating); err != nil {
		if !h.legacySwallow {
			if errors.Is(err, usecase.ErrNotFound) {
				JSONError(w, http.StatusNotFound)
				return
			}
			JSONError(w, http.StatusUnprocessableEntity)
			return
		}
		log.Printf("rating update swallowed: book_id=%d err=%v", id, err)
	}
	JSONOK(w, AckResponse{Success: true})
}

func (h *BookHandler) delete(w http.ResponseWriter, r *http.Request, id int64) {
	books, total, err := h.books.Delete(r.Context(), id, pageParam(r))
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			JSONError(w, http.StatusNotFound)
			return
		}
		JSONError(w, http.StatusUnprocessableEntity)
		return
	}
	JSONOK(w, DeleteResponse{
		Success:    true,
		Deleted:    id,
		Books:      ensureBooks(books),
		TotalBooks: total,
	})
}

type createBookRequest struct {
	Title  *string `json:"title"`
	Author *string `json:"author"`
	Rating *int    `json:"rating" validate:"omitempty,gte=0,lte=5"`
}

func (h *BookHandler) create(w http.ResponseWriter, r *http.Request) {
	var body createBookRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		JSONError(w, http.StatusBadRequest)
		return
	}
	if errs := ValidateStruct(body); errs != nil {
		JSONError(w, http.StatusBadRequest)
		return
	}

	created, books, total, err := h.books.Create(r.Context(), usecase.CreateBookParams{
		Title:  body.Title,
		Author: body.Author,
		Rating: body.Rating,
	}, pageParam(r))
	if err != nil {
		if !h.legacySwallow {
			JSONError(w, http.StatusUnprocessableEntity)
			return
		}
		log.Printf("create swallowed: err=%v", err)
	}
	JSONOK(w, CreateResponse{
		Success:    true,
		Created:    created.ID,
		Books:      ensureBooks(books),
		TotalBooks: total,
	})
}
