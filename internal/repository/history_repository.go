package repository

import (
	"time"

	"cafe_manager/internal/models"

	"gorm.io/gorm"
)

type HistoryRepository interface {
	GetAll() ([]models.History, error)
	GetSince(start time.Time) ([]models.History, error)
}

type historyRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) GetAll() ([]models.History, error) {
	var records []models.History
	err := r.db.Order("timestamp desc").Find(&records).Error
	return records, err
}

func (r *historyRepository) GetSince(start time.Time) ([]models.History, error) {
	var records []models.History
	err := r.db.Where("timestamp >= ?", start).Order("timestamp desc").Find(&records).Error
	return records, err
}
