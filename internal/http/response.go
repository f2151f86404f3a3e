package http

import (
	"encoding/json"
	"net/http"

	"bookshelf/internal/entity"
)

// ListResponse is the wire shape for GET /books.
type ListResponse struct {
	Success    bool          `json:"success"`
	Books      []entity.Book `json:"books"`
	TotalBooks int           `json:"total_books"`
}

// DeleteResponse is the wire shape for DELETE /books/{id}.
type DeleteResponse struct {
	Success    bool          `json:"success"`
	Deleted    int64         `json:"deleted"`
	Books      []entity.Book `json:"books"`
	TotalBooks int           `json:"total_books"`
}

// CreateResponse is the wire shape for POST /books/create.
type CreateResponse struct {
	Success    bool          `json:"success"`
	Created    int64         `json:"created"`
	Books      []entity.Book `json:"books"`
	TotalBooks int           `json:"total_books"`
}

// AckResponse acknowledges a mutation without returning a payload.
type AckResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse carries the shared error body: a numeric code matching the
// HTTP status plus a short human-readable message.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

func errorMessage(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad request"
	case http.StatusNotFound:
		return "Not found"
	case http.StatusUnprocessableEntity:
		return "Unprocessable"
	default:
		return http.StatusText(status)
	}
}

func JSONOK(w http.ResponseWriter, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(body)
}

func JSONError(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Success: false,
		Error:   status,
		Message: errorMessage(status),
	})
}
