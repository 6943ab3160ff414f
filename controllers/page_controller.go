// Package controllers file: controllers/page_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticket-office/logger"
)

var (
	// ApplicationURL is the externally reachable base URL, used in QR links.
	ApplicationURL string
	// ClockURL is the websocket endpoint the dashboard clock connects to.
	ClockURL string
)

// SetConfig sets the global application and clock-feed URLs.
func SetConfig(appURL, clockURL string) {
	ApplicationURL = appURL
	ClockURL = clockURL
	logger.Info.Printf("SetConfig: ApplicationURL=%s, ClockURL=%s", appURL, clockURL)
}

// Health answers load-balancer checks.
func Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// Home renders the dashboard: role-dependent shortcut cards, the aggregate
// counts and the live clock. Stats failures (other than a rejected session)
// already fall back inside the service, so the page always has numbers.
func Home(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}

	stats, err := statisticsService.Dashboard(c.Request.Context(), s.Token)
	if err != nil {
		if failClosedIfUnauthorized(c, err) {
			return
		}
		logger.Error.Printf("Home: unexpected stats error: %v", err)
	}

	c.HTML(http.StatusOK, "home.html", pageData(c, gin.H{
		"Stats":    stats,
		"ClockURL": ClockURL,
	}))
}

// ------------------ cosmetic preferences ------------------

// ToggleTheme flips the dark/light preference cookie and returns to the
// page the form came from.
func ToggleTheme(c *gin.Context) {
	next := "dark"
	if prefCookie(c, themeCookie, defaultTheme) == "dark" {
		next = "light"
	}
	setPrefCookie(c, themeCookie, next)
	c.Redirect(http.StatusFound, backTo(c))
}

// SetLanguage stores the language preference cookie ("en" or "zh").
func SetLanguage(c *gin.Context) {
	lang := c.PostForm("lang")
	if lang != "en" && lang != "zh" {
		lang = defaultLang
	}
	setPrefCookie(c, langCookie, lang)
	c.Redirect(http.StatusFound, backTo(c))
}

// backTo picks the page to return to after a preference change. Only
// same-site paths are accepted; a "//host" value would send the browser
// off-site.
func backTo(c *gin.Context) string {
	ref := c.Request.FormValue("from")
	if ref == "/" {
		return ref
	}
	if len(ref) > 1 && ref[0] == '/' && ref[1] != '/' {
		return ref
	}
	return "/"
}
