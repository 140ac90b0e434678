package middleware

import (
	"net/http"

	"cafe_manager/internal/models"
	"cafe_manager/internal/redis"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the name of the cookie carrying the opaque session ID.
const SessionCookie = "session_id"

// Context keys set by RequireEmployee for downstream handlers.
const (
	CtxSessionID = "session_id"
	CtxUsername  = "username"
	CtxRole      = "role"
)

// SessionStore is the slice of the redis client the access gate needs.
type SessionStore interface {
	GetSession(sessionID string) (*redis.SessionData, error)
}

// RequireEmployee rejects anonymous requests. On success the session's
// username and role are placed on the gin context.
func RequireEmployee(sessions SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookie)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Please log in to continue."})
			return
		}

		session, err := sessions.GetSession(sessionID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Please log in to continue."})
			return
		}

		c.Set(CtxSessionID, sessionID)
		c.Set(CtxUsername, session.Username)
		c.Set(CtxRole, session.Role)
		c.Next()
	}
}

// RequireAdmin rejects any session whose role is not admin. Must run after
// RequireEmployee.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxRole) != string(models.RoleAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied!"})
			return
		}
		c.Next()
	}
}
