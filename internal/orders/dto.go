package orders

import (
	"time"

	"github.com/perfectbooks/stock-api/pkg/db/models"
)

// OrderDTO is the wire shape for a customer order.
type OrderDTO struct {
	ID           int64     `json:"id"`
	BookName     string    `json:"bookName"`
	Quantity     int       `json:"quantity"`
	CustomerName string    `json:"customerName"`
	Category     string    `json:"category"`
	OrderDate    string    `json:"orderDate"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NewOrderDTO maps a stored order onto the wire shape.
func NewOrderDTO(order *models.Order) *OrderDTO {
	if order == nil {
		return nil
	}
	return &OrderDTO{
		ID:           order.ID,
		BookName:     order.BookName,
		Quantity:     order.Quantity,
		CustomerName: order.CustomerName,
		Category:     order.Category,
		OrderDate:    order.OrderDate,
		Status:       order.Status.String(),
		CreatedAt:    order.CreatedAt,
		UpdatedAt:    order.UpdatedAt,
	}
}

// NewOrderDTOs maps a list of stored orders, always returning a non-nil
// slice so an empty order book serializes as [].
func NewOrderDTOs(orders []models.Order) []OrderDTO {
	dtos := make([]OrderDTO, 0, len(orders))
	for i := range orders {
		dtos = append(dtos, *NewOrderDTO(&orders[i]))
	}
	return dtos
}
