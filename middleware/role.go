// Package middleware file: middleware/role.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticket-office/logger"
	"ticket-office/session"
)

// Admins and ordinary users see disjoint parts of the application: tickets
// belong to attendees, validation and statistics to staff. Both guards
// bounce the wrong role back to the home page.

// AdminOnly blocks ordinary users from staff routes.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := session.FromContext(c)
		if !ok || !s.IsAdmin() {
			logger.Warn.Printf("AdminOnly: %s blocked from %s", s.User.Email, c.Request.URL.Path)
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserOnly blocks admins from attendee routes.
func UserOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := session.FromContext(c)
		if !ok || s.IsAdmin() {
			logger.Warn.Printf("UserOnly: %s blocked from %s", s.User.Email, c.Request.URL.Path)
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}
