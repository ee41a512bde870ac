package models

import (
	"time"

	"github.com/perfectbooks/stock-api/pkg/enums"
)

// Activity is an append-only audit-log row. The application never updates or
// deletes rows in this table.
type Activity struct {
	ID        int64              `gorm:"column:id;primaryKey;autoIncrement"`
	Type      enums.ActivityType `gorm:"column:type;not null"`
	Message   string             `gorm:"column:message;not null"`
	CreatedAt time.Time          `gorm:"column:created_at;autoCreateTime"`
}

// TableName pins the table name regardless of GORM pluralization rules.
func (Activity) TableName() string {
	return "activities"
}
