package models

import (
	"time"

	"github.com/perfectbooks/stock-api/pkg/enums"
)

// Order is a customer request for a title. BookName is free text on purpose:
// orders have no referential link to the books table.
type Order struct {
	ID           int64             `gorm:"column:id;primaryKey;autoIncrement"`
	BookName     string            `gorm:"column:book_name;not null"`
	Quantity     int               `gorm:"column:quantity;not null"`
	CustomerName string            `gorm:"column:customer_name;not null"`
	Category     string            `gorm:"column:category;not null"`
	OrderDate    string            `gorm:"column:order_date;not null"`
	Status       enums.OrderStatus `gorm:"column:status;not null"`
	CreatedAt    time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName pins the table name regardless of GORM pluralization rules.
func (Order) TableName() string {
	return "orders"
}
