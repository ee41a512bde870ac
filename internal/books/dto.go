package books

import (
	"time"

	"github.com/perfectbooks/stock-api/pkg/db/models"
)

// BookDTO is the wire shape for a book. The API speaks amount/cost/date
// while the table stores quantity/price/date_added.
type BookDTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Amount    int       `json:"amount"`
	Cost      float64   `json:"cost"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewBookDTO maps a stored book onto the wire shape.
func NewBookDTO(book *models.Book) *BookDTO {
	if book == nil {
		return nil
	}
	return &BookDTO{
		ID:        book.ID,
		Name:      book.Name,
		Category:  book.Category,
		Amount:    book.Quantity,
		Cost:      book.Price.InexactFloat64(),
		Date:      book.DateAdded,
		CreatedAt: book.CreatedAt,
		UpdatedAt: book.UpdatedAt,
	}
}

// NewBookDTOs maps a list of stored books, always returning a non-nil slice
// so an empty inventory serializes as [].
func NewBookDTOs(books []models.Book) []BookDTO {
	dtos := make([]BookDTO, 0, len(books))
	for i := range books {
		dtos = append(dtos, *NewBookDTO(&books[i]))
	}
	return dtos
}
