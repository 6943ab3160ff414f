// Package middleware provides the route guards and the session fail-closed
// policy for the application.
// File: middleware/auth.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticket-office/logger"
	"ticket-office/monitoring"
	"ticket-office/session"
)

// -------------- authentication middleware --------------

// AuthRequired is a middleware that ensures the user is logged in.
// How it works:
// - Loads the token/user pair from the cookie session.
// - A missing or corrupted pair means no session; the visitor is sent to "/login".
// - Otherwise the session is attached to the request context and the request proceeds.
// Usage:
//
//	router.Group("/", middleware.AuthRequired)
func AuthRequired(c *gin.Context) {
	s, ok := session.Load(c)
	if !ok {
		logger.Warn.Printf("AuthRequired: no session for %s, redirecting to /login", c.Request.URL.Path)
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}

	session.Attach(c, s)
	logger.Debug.Printf("AuthRequired: %s authenticated, proceeding", s.User.Email)
	c.Next()
}

// RedirectIfAuthenticated keeps signed-in principals off the auth pages.
// Anyone with a valid session asking for /login or /register goes home.
func RedirectIfAuthenticated(c *gin.Context) {
	if _, ok := session.Load(c); ok {
		logger.Debug.Printf("RedirectIfAuthenticated: already signed in, leaving %s for /", c.Request.URL.Path)
		c.Redirect(http.StatusFound, "/")
		c.Abort()
		return
	}
	c.Next()
}

// -------------- fail-closed 401 policy --------------

// FailClosed is the single policy applied when the backend rejects the
// bearer token: the session pair is cleared and the browser is sent to
// /login. Controllers invoke it for every unauthorized backend error,
// unconditionally; the in-flight page never gets to intercept.
func FailClosed(c *gin.Context) {
	logger.Warn.Printf("FailClosed: backend rejected the session on %s, tearing down", c.Request.URL.Path)
	session.Clear(c)
	monitoring.RecordSessionTeardown()
	c.Redirect(http.StatusFound, "/login")
	c.Abort()
}
