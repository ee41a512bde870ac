package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Book is an inventory record for a stocked title. DateAdded is kept as the
// raw YYYY-MM-DD string the API validates, matching the dateonly column.
type Book struct {
	ID        int64           `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string          `gorm:"column:name;not null"`
	Category  string          `gorm:"column:category;not null"`
	Quantity  int             `gorm:"column:quantity;not null"`
	Price     decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null"`
	DateAdded string          `gorm:"column:date_added;not null"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName pins the table name regardless of GORM pluralization rules.
func (Book) TableName() string {
	return "books"
}
