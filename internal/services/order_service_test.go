package services

import (
	"errors"
	"testing"
	"time"

	"cafe_manager/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a mock implementation of repository.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByTable(tableNumber string) ([]models.Order, error) {
	args := m.Called(tableNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) SumAll() (float64, error) {
	args := m.Called()
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockOrderRepository) ClearTable(tableNumber, actingUser string) (int64, error) {
	args := m.Called(tableNumber, actingUser)
	return args.Get(0).(int64), args.Error(1)
}

func newOrderServiceAt(repo *MockOrderRepository, at time.Time) *orderService {
	return &orderService{orderRepo: repo, now: func() time.Time { return at }}
}

func TestAddItem(t *testing.T) {
	at := time.Date(2025, 6, 1, 13, 15, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := newOrderServiceAt(mockRepo, at)

		mockRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(nil)

		order, err := svc.AddItem("3", "Tea, Sandwich", "50")

		assert.NoError(t, err)
		assert.Equal(t, "3", order.TableNumber)
		assert.Equal(t, "Tea, Sandwich", order.Items)
		assert.Equal(t, 50.0, order.Amount)
		assert.Equal(t, at, order.Timestamp)
		mockRepo.AssertExpectations(t)
	})

	t.Run("EmptyItem", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := newOrderServiceAt(mockRepo, at)

		_, err := svc.AddItem("3", "   ", "50")

		assert.ErrorIs(t, err, ErrEmptyItem)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("NonNumericPrice", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := newOrderServiceAt(mockRepo, at)

		_, err := svc.AddItem("3", "Tea", "fifty")

		assert.ErrorIs(t, err, ErrInvalidPrice)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("NegativePrice", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := newOrderServiceAt(mockRepo, at)

		_, err := svc.AddItem("3", "Tea", "-10")

		assert.ErrorIs(t, err, ErrInvalidPrice)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("RepoError", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := newOrderServiceAt(mockRepo, at)

		mockRepo.On("Create", mock.Anything).Return(errors.New("db error"))

		_, err := svc.AddItem("3", "Tea", "20")

		assert.EqualError(t, err, "db error")
	})
}

func TestListOrders(t *testing.T) {
	at := time.Date(2025, 6, 1, 13, 15, 0, 0, time.UTC)

	t.Run("SumsRepeatedRows", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := newOrderServiceAt(mockRepo, at)

		rows := []models.Order{
			{ID: 1, TableNumber: "1", Items: "Coffee", Amount: 33},
			{ID: 2, TableNumber: "1", Items: "Coffee", Amount: 33},
			{ID: 3, TableNumber: "1", Items: "Coffee", Amount: 33},
		}
		mockRepo.On("GetByTable", "1").Return(rows, nil)

		orders, total, err := svc.ListOrders("1")

		assert.NoError(t, err)
		assert.Len(t, orders, 3)
		assert.Equal(t, 99.0, total)
	})

	t.Run("UnknownTableIsEmpty", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := newOrderServiceAt(mockRepo, at)

		mockRepo.On("GetByTable", "42").Return([]models.Order{}, nil)

		orders, total, err := svc.ListOrders("42")

		assert.NoError(t, err)
		assert.Empty(t, orders)
		assert.Equal(t, 0.0, total)
	})
}

func TestClearTable(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	svc := newOrderServiceAt(mockRepo, time.Now())

	mockRepo.On("ClearTable", "1", "grace").Return(int64(3), nil)

	moved, err := svc.ClearTable("1", "grace")

	assert.NoError(t, err)
	assert.Equal(t, int64(3), moved)
	mockRepo.AssertExpectations(t)
}

func TestGenerateBill(t *testing.T) {
	at := time.Date(2025, 6, 1, 13, 15, 0, 0, time.UTC)

	t.Run("SplitsEachOrder", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := newOrderServiceAt(mockRepo, at)

		rows := []models.Order{
			{ID: 1, TableNumber: "3", Items: "Tea, Sandwich", Amount: 50},
			{ID: 2, TableNumber: "3", Items: "Coffee", Amount: 40},
		}
		mockRepo.On("GetByTable", "3").Return(rows, nil)

		bill, err := svc.GenerateBill("3")

		assert.NoError(t, err)
		assert.Equal(t, "3", bill.TableNumber)
		assert.Equal(t, at, bill.Timestamp)
		assert.Len(t, bill.Lines, 3)
		assert.Equal(t, "Tea", bill.Lines[0].ItemName)
		assert.Equal(t, 25.0, bill.Lines[0].Amount)
		assert.Equal(t, "Sandwich", bill.Lines[1].ItemName)
		assert.Equal(t, 25.0, bill.Lines[1].Amount)
		assert.Equal(t, "Coffee", bill.Lines[2].ItemName)
		assert.Equal(t, 40.0, bill.Lines[2].Amount)
		assert.Equal(t, 90.0, bill.Total)
	})

	t.Run("TotalComesFromOrderAmounts", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := newOrderServiceAt(mockRepo, at)

		// 100 across three items rounds to 33.33 per line; the bill total
		// must still be the order amount.
		rows := []models.Order{
			{ID: 1, TableNumber: "5", Items: "Dosa, Idli, Vada", Amount: 100},
		}
		mockRepo.On("GetByTable", "5").Return(rows, nil)

		bill, err := svc.GenerateBill("5")

		assert.NoError(t, err)
		assert.Equal(t, 100.0, bill.Total)
		lineSum := 0.0
		for _, line := range bill.Lines {
			lineSum += line.Amount
		}
		assert.InDelta(t, 99.99, lineSum, 1e-9)
	})

	t.Run("EmptyTable", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := newOrderServiceAt(mockRepo, at)

		mockRepo.On("GetByTable", "9").Return([]models.Order{}, nil)

		bill, err := svc.GenerateBill("9")

		assert.NoError(t, err)
		assert.Empty(t, bill.Lines)
		assert.Equal(t, 0.0, bill.Total)
	})
}

func TestTotalSales(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	svc := newOrderServiceAt(mockRepo, time.Now())

	mockRepo.On("SumAll").Return(1234.5, nil)

	total, err := svc.TotalSales()

	assert.NoError(t, err)
	assert.Equal(t, 1234.5, total)
}
