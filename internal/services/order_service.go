package services

import (
	"math"
	"strconv"
	"strings"
	"time"

	"cafe_manager/internal/billing"
	"cafe_manager/internal/localtime"
	"cafe_manager/internal/models"
	"cafe_manager/internal/repository"
)

// TableCount is the number of seating tables in the café. Table numbers
// run 1..TableCount.
const TableCount = 10

// Bill is the itemized view of a table's open orders at a point in time.
// Total is the sum of the order amounts, not the sum of the split lines;
// the two can disagree by a few paise under per-line rounding.
type Bill struct {
	TableNumber string         `json:"table"`
	Lines       []billing.Line `json:"orders"`
	Total       float64        `json:"total"`
	Timestamp   time.Time      `json:"timestamp"`
}

type OrderService interface {
	AddItem(tableNumber, itemText, price string) (*models.Order, error)
	ListOrders(tableNumber string) ([]models.Order, float64, error)
	ClearTable(tableNumber, actingUser string) (int64, error)
	GenerateBill(tableNumber string) (*Bill, error)
	TotalSales() (float64, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	now       func() time.Time
}

func NewOrderService(orderRepo repository.OrderRepository) OrderService {
	return &orderService{orderRepo: orderRepo, now: localtime.Now}
}

// AddItem appends one order row to the table's open tab. The item text must
// be non-empty and the price a parseable non-negative number; anything else
// is rejected before any row is created. Repeated identical items create
// repeated rows.
func (s *orderService) AddItem(tableNumber, itemText, price string) (*models.Order, error) {
	items := strings.TrimSpace(itemText)
	if items == "" {
		return nil, ErrEmptyItem
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(price), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return nil, ErrInvalidPrice
	}

	order := &models.Order{
		TableNumber: tableNumber,
		Items:       items,
		Amount:      amount,
		Timestamp:   s.now(),
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

// ListOrders returns the table's open orders in insertion order along with
// the running total. An unknown table yields an empty list, not an error.
func (s *orderService) ListOrders(tableNumber string) ([]models.Order, float64, error) {
	orders, err := s.orderRepo.GetByTable(tableNumber)
	if err != nil {
		return nil, 0, err
	}

	total := 0.0
	for _, order := range orders {
		total += order.Amount
	}
	return orders, total, nil
}

// ClearTable archives every open order on the table and empties it, in a
// single storage transaction. Returns the number of orders moved.
func (s *orderService) ClearTable(tableNumber, actingUser string) (int64, error) {
	return s.orderRepo.ClearTable(tableNumber, actingUser)
}

// GenerateBill splits every open order's amount evenly across its items
// and flattens the lines in order. The bill total comes from the order
// amounts so rounding drift in the lines never changes what is owed.
func (s *orderService) GenerateBill(tableNumber string) (*Bill, error) {
	orders, total, err := s.ListOrders(tableNumber)
	if err != nil {
		return nil, err
	}

	lines := make([]billing.Line, 0)
	for _, order := range orders {
		lines = append(lines, billing.Split(order.Items, order.Amount)...)
	}

	return &Bill{
		TableNumber: tableNumber,
		Lines:       lines,
		Total:       total,
		Timestamp:   s.now(),
	}, nil
}

// TotalSales sums the amounts of all open orders across every table.
func (s *orderService) TotalSales() (float64, error) {
	return s.orderRepo.SumAll()
}
