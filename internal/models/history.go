package models

import (
	"time"
)

// History is the archival copy of a cleared Order. Timestamp carries the
// original order time, not the time of the clear. Rows are append-only.
type History struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	TableNumber string    `json:"table_number" gorm:"index;not null"`
	Items       string    `json:"items" gorm:"not null"`
	Amount      float64   `json:"amount" gorm:"not null"`
	Timestamp   time.Time `json:"timestamp" gorm:"index;not null"`
	CreatedBy   string    `json:"created_by"`
}
