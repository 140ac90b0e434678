package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"cafe_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	authService services.AuthService
}

func NewAdminHandler(authService services.AuthService) *AdminHandler {
	return &AdminHandler{authService: authService}
}

func (h *AdminHandler) Employees(c *gin.Context) {
	employees, err := h.authService.ApprovedEmployees()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load employees"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"employees": employees})
}

func (h *AdminHandler) PendingUsers(c *gin.Context) {
	users, err := h.authService.PendingEmployees()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load pending users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

type userIDRequest struct {
	UserID string `form:"user_id" json:"user_id"`
}

func parseUserID(c *gin.Context, raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id"})
		return 0, false
	}
	return uint(id), true
}

func (h *AdminHandler) Approve(c *gin.Context) {
	var req userIDRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format"})
		return
	}
	id, ok := parseUserID(c, req.UserID)
	if !ok {
		return
	}

	employee, err := h.authService.Approve(id)
	if err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			c.JSON(http.StatusOK, gin.H{"message": "User not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to approve user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("User '%s' approved!", employee.Username)})
}

func (h *AdminHandler) Reject(c *gin.Context) {
	var req userIDRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format"})
		return
	}
	id, ok := parseUserID(c, req.UserID)
	if !ok {
		return
	}

	employee, err := h.authService.Reject(id)
	if err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			c.JSON(http.StatusOK, gin.H{"message": "User not found or already approved."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to reject user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("User '%s' has been rejected and removed.", employee.Username)})
}

func (h *AdminHandler) DeleteEmployee(c *gin.Context) {
	id, ok := parseUserID(c, c.Param("user_id"))
	if !ok {
		return
	}

	employee, err := h.authService.Delete(id)
	if err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) || errors.Is(err, services.ErrAdminProtected) {
			c.JSON(http.StatusOK, gin.H{"message": "Cannot delete admin or invalid user."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("User '%s' deleted successfully.", employee.Username)})
}
