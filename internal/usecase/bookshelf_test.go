package usecase

import (
	"testing"

	"bookshelf/internal/entity"

	"github.com/stretchr/testify/assert"
)

func shelfOf(n int) []entity.Book {
	books := make([]entity.Book, n)
	for i := range books {
		books[i].ID = int64(i + 1)
	}
	return books
}

func TestPaginate_FirstPage(t *testing.T) {
	books := paginate(shelfOf(10), 1)

	assert.Len(t, books, 8)
	assert.Equal(t, int64(1), books[0].ID)
	assert.Equal(t, int64(8), books[7].ID)
}

func TestPaginate_PartialLastPage(t *testing.T) {
	// window [8,16) over 10 items
	books := paginate(shelfOf(10), 2)

	assert.Len(t, books, 2)
	assert.Equal(t, int64(9), books[0].ID)
	assert.Equal(t, int64(10), books[1].ID)
}

func TestPaginate_OutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		total int
		page  int
	}{
		{"past last page", 10, 3},
		{"exactly at boundary", 8, 2},
		{"empty shelf", 0, 1},
		{"page zero", 10, 0},
		{"negative page", 10, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, paginate(shelfOf(tt.total), tt.page))
		})
	}
}

func TestPaginate_ExactMultiple(t *testing.T) {
	books := paginate(shelfOf(16), 2)

	assert.Len(t, books, 8)
	assert.Equal(t, int64(9), books[0].ID)
	assert.Equal(t, int64(16), books[7].ID)
}
