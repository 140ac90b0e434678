package handlers

import (
	"errors"
	"net/http"
	"time"

	"cafe_manager/internal/middleware"
	"cafe_manager/internal/redis"
	"cafe_manager/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionStore is the slice of the redis client the auth handler needs to
// open and close sessions.
type SessionStore interface {
	SetSession(sessionID string, data *redis.SessionData, ttl time.Duration) error
	DeleteSession(sessionID string) error
}

type AuthHandler struct {
	authService services.AuthService
	sessions    SessionStore
	sessionTTL  time.Duration
}

func NewAuthHandler(authService services.AuthService, sessions SessionStore, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		sessionTTL:  sessionTTL,
	}
}

type credentialsRequest struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format"})
		return
	}

	if _, err := h.authService.Register(req.Username, req.Password); err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameExists):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username already exists!"})
		case errors.Is(err, services.ErrEmptyUsername), errors.Is(err, services.ErrEmptyPassword):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create account"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Account created. Wait for admin approval."})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format"})
		return
	}

	employee, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPendingApproval):
			c.JSON(http.StatusForbidden, gin.H{"message": "Your account is pending admin approval."})
		case errors.Is(err, services.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials!"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to log in"})
		}
		return
	}

	sessionID := uuid.New().String()
	session := &redis.SessionData{
		Username:  employee.Username,
		Role:      employee.Role,
		CreatedAt: time.Now(),
	}
	if err := h.sessions.SetSession(sessionID, session, h.sessionTTL); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to log in"})
		return
	}

	c.SetCookie(middleware.SessionCookie, sessionID, int(h.sessionTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"message":  "Login successful!",
		"username": employee.Username,
		"role":     employee.Role,
	})
}

// Logout ends the session unconditionally, whatever state it was in.
func (h *AuthHandler) Logout(c *gin.Context) {
	if sessionID, err := c.Cookie(middleware.SessionCookie); err == nil {
		h.sessions.DeleteSession(sessionID)
	}

	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
