package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"cafe_manager/internal/localtime"
	"cafe_manager/internal/middleware"
	"cafe_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type TableHandler struct {
	orderService  services.OrderService
	notifications services.NotificationService
}

func NewTableHandler(orderService services.OrderService, notifications services.NotificationService) *TableHandler {
	return &TableHandler{
		orderService:  orderService,
		notifications: notifications,
	}
}

// tableParam reads and validates the numeric table route parameter. Table
// numbers outside 1..TableCount still resolve (to an empty ledger); only a
// non-numeric value is rejected.
func tableParam(c *gin.Context) (string, bool) {
	raw := c.Param("table_id")
	n, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid table number"})
		return "", false
	}
	return strconv.Itoa(n), true
}

func (h *TableHandler) Dashboard(c *gin.Context) {
	tables := make([]int, 0, services.TableCount)
	for i := 1; i <= services.TableCount; i++ {
		tables = append(tables, i)
	}
	c.JSON(http.StatusOK, gin.H{"tables": tables})
}

func (h *TableHandler) TableDetail(c *gin.Context) {
	table, ok := tableParam(c)
	if !ok {
		return
	}

	orders, total, err := h.orderService.ListOrders(table)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load table"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"table":  table,
		"orders": orders,
		"total":  total,
	})
}

type addItemRequest struct {
	Item  string `form:"item" json:"item"`
	Price string `form:"price" json:"price"`
}

func (h *TableHandler) AddItem(c *gin.Context) {
	table, ok := tableParam(c)
	if !ok {
		return
	}

	var req addItemRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format"})
		return
	}

	if _, err := h.orderService.AddItem(table, req.Item, req.Price); err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyItem), errors.Is(err, services.ErrInvalidPrice):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add item"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Item added!"})
}

func (h *TableHandler) ClearTable(c *gin.Context) {
	table, ok := tableParam(c)
	if !ok {
		return
	}

	username := c.GetString(middleware.CtxUsername)
	moved, err := h.orderService.ClearTable(table, username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to clear table"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Table %s cleared and history saved!", table),
		"moved":   moved,
	})
}

func (h *TableHandler) Bill(c *gin.Context) {
	table, ok := tableParam(c)
	if !ok {
		return
	}

	bill, err := h.orderService.GenerateBill(table)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate bill"})
		return
	}

	c.JSON(http.StatusOK, bill)
}

func (h *TableHandler) Sales(c *gin.Context) {
	total, err := h.orderService.TotalSales()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load sales"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_sales": total,
		"today":       localtime.Now().Format("02-01-2006"),
	})
}

type notifyRequest struct {
	PhoneNumber string `form:"phone_number" json:"phone_number"`
	TableNumber string `form:"table_number" json:"table_number"`
	Total       string `form:"total" json:"total"`
}

// Notify sends the customer the bill total by SMS. Delivery is best-effort:
// the outcome is reported in the response, and a failure never touches
// ledger or history state.
func (h *TableHandler) Notify(c *gin.Context) {
	var req notifyRequest
	if err := c.ShouldBind(&req); err != nil || req.PhoneNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Phone number is required"})
		return
	}

	if err := h.notifications.SendBillSMS(req.PhoneNumber, req.TableNumber, req.Total); err != nil {
		c.JSON(http.StatusOK, gin.H{
			"sent":    false,
			"message": fmt.Sprintf("Failed to send SMS: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sent":    true,
		"message": "SMS sent successfully!",
	})
}
