package repository

import (
	"cafe_manager/internal/models"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(order *models.Order) error
	GetByTable(tableNumber string) ([]models.Order, error)
	SumAll() (float64, error)
	ClearTable(tableNumber, actingUser string) (int64, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepository) GetByTable(tableNumber string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("table_number = ?", tableNumber).Order("timestamp asc, id asc").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) SumAll() (float64, error) {
	var total float64
	err := r.db.Model(&models.Order{}).Select("COALESCE(SUM(amount), 0)").Scan(&total).Error
	return total, err
}

// ClearTable moves every open order on the table into history, tagging each
// record with the acting employee and keeping the original timestamp. The
// copy and delete run in one transaction so a clear is all-or-nothing.
// Clearing a table with no open orders is a no-op.
func (r *orderRepository) ClearTable(tableNumber, actingUser string) (int64, error) {
	var moved int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var orders []models.Order
		if err := tx.Where("table_number = ?", tableNumber).Order("timestamp asc, id asc").Find(&orders).Error; err != nil {
			return err
		}

		for _, order := range orders {
			record := models.History{
				TableNumber: order.TableNumber,
				Items:       order.Items,
				Amount:      order.Amount,
				Timestamp:   order.Timestamp,
				CreatedBy:   actingUser,
			}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
			if err := tx.Delete(&models.Order{}, order.ID).Error; err != nil {
				return err
			}
		}

		moved = int64(len(orders))
		return nil
	})
	return moved, err
}
