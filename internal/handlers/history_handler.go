package handlers

import (
	"net/http"

	"cafe_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type HistoryHandler struct {
	historyService services.HistoryService
}

func NewHistoryHandler(historyService services.HistoryService) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

func (h *HistoryHandler) History(c *gin.Context) {
	filter := c.DefaultQuery("filter", services.FilterAll)

	records, total, err := h.historyService.Query(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders":          records,
		"selected_filter": filter,
		"total":           total,
	})
}
