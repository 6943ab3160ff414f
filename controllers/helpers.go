// Package controllers renders the pages and drives the backend calls
// behind them.
// File: controllers/helpers.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticket-office/middleware"
	"ticket-office/services"
	"ticket-office/session"
)

// services the controllers call; wired once from main (or from tests)
var (
	authService       services.AuthServiceInterface
	eventService      services.EventServiceInterface
	ticketService     services.TicketServiceInterface
	statisticsService services.StatisticsServiceInterface
)

// SetServices wires the backend services into the controllers.
func SetServices(
	auth services.AuthServiceInterface,
	events services.EventServiceInterface,
	tickets services.TicketServiceInterface,
	statistics services.StatisticsServiceInterface,
) {
	authService = auth
	eventService = events
	ticketService = tickets
	statisticsService = statistics
}

// preference cookie names and defaults; cosmetic only
const (
	themeCookie  = "theme"
	langCookie   = "lang"
	defaultTheme = "light"
	defaultLang  = "en"
	prefMaxAge   = 86400 * 365
)

// failClosedIfUnauthorized applies the 401 policy when the backend rejected
// the session. Returns true when the request was taken over; the caller
// must stop rendering.
func failClosedIfUnauthorized(c *gin.Context, err error) bool {
	if services.IsUnauthorized(err) {
		middleware.FailClosed(c)
		return true
	}
	return false
}

// friendly picks the displayable message off a backend error.
func friendly(err error, fallback string) string {
	return services.FriendlyMessage(err, fallback)
}

// pageData assembles the fields every template expects (identity, prefs)
// and merges the page's own fields on top.
func pageData(c *gin.Context, fields gin.H) gin.H {
	data := gin.H{
		"Theme": prefCookie(c, themeCookie, defaultTheme),
		"Lang":  prefCookie(c, langCookie, defaultLang),
	}
	if s, ok := session.FromContext(c); ok {
		data["User"] = s.User
		data["IsAdmin"] = s.IsAdmin()
	}
	for k, v := range fields {
		data[k] = v
	}
	return data
}

func prefCookie(c *gin.Context, name, fallback string) string {
	v, err := c.Cookie(name)
	if err != nil || v == "" {
		return fallback
	}
	return v
}

func setPrefCookie(c *gin.Context, name, value string) {
	c.SetCookie(name, value, prefMaxAge, "/", "", false, false)
}

// renderError re-renders a page with a visible error banner.
func renderError(c *gin.Context, status int, template string, fields gin.H, message string) {
	if fields == nil {
		fields = gin.H{}
	}
	fields["Error"] = message
	c.HTML(status, template, pageData(c, fields))
}

// mustSession returns the session AuthRequired attached. Handlers behind
// the guard can rely on it being there; a missing one is a wiring bug and
// is answered with a redirect rather than a panic.
func mustSession(c *gin.Context) (session.Session, bool) {
	s, ok := session.FromContext(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
	}
	return s, ok
}
