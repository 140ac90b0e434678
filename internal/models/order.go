package models

import (
	"time"
)

// Order is one unsettled line on an open table: a raw comma-separated
// item string and the amount charged for it. Rows are immutable once
// created and only leave the table via a clear, which moves them to History.
type Order struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	TableNumber string    `json:"table_number" gorm:"index;not null"`
	Items       string    `json:"items" gorm:"not null"`
	Amount      float64   `json:"amount" gorm:"not null"`
	Timestamp   time.Time `json:"timestamp" gorm:"index;not null"`
}
