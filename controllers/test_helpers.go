// file: controllers/test_helpers.go
package controllers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"ticket-office/models"
	"ticket-office/session"
)

// setupTestRouter creates a Gin engine with the session middleware, minimal
// HTML templates and a sign-in helper route, mirroring the wiring in main.
func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()

	store := cookie.NewStore([]byte("test-secret"))
	router.Use(sessions.Sessions("testsession", store))

	tmpDir := t.TempDir()
	if err := createDummyTemplates(tmpDir); err != nil {
		t.Fatalf("Failed to create dummy templates: %v", err)
	}
	router.LoadHTMLGlob(filepath.Join(tmpDir, "*.html"))

	router.GET("/signin", func(c *gin.Context) {
		user := models.User{Email: c.Query("email"), Role: c.Query("role")}
		if err := session.Save(c, "tok-test", user); err != nil {
			c.String(http.StatusInternalServerError, "save failed")
			return
		}
		c.String(http.StatusOK, "signed in")
	})

	return router
}

// createDummyTemplates writes minimal templates so handlers can render
// without the real views.
func createDummyTemplates(dir string) error {
	templates := map[string]string{
		"login.html":        `login {{ .Error }}{{ .Notice }}`,
		"register.html":     `register {{ .Error }}`,
		"home.html":         `home events={{ .Stats.EventCount }} tickets={{ .Stats.TicketCount }} validations={{ .Stats.ValidationCount }}`,
		"events.html":       `events {{ .Error }}{{ range .Events }}[{{ .Name }}]{{ end }}`,
		"event_detail.html": `event {{ .Error }}{{ with .Event }}{{ .Name }}{{ end }}`,
		"event_form.html":   `event form {{ .Error }}`,
		"tickets.html":      `tickets {{ .Error }}{{ range .Tickets }}[{{ .ID }}]{{ end }}`,
		"ticket_detail.html": `ticket {{ .Error }}{{ with .Ticket }}{{ .ID }}{{ end }}` +
			`{{ if .QRDataURI }} qr-inline{{ end }}`,
		"validate.html":   `validate {{ .Error }}{{ if .Validated }}VALIDATED{{ end }}`,
		"statistics.html": `stats events={{ .Stats.EventCount }} tickets={{ .Stats.TicketCount }} validations={{ .Stats.ValidationCount }}`,
	}

	for name, content := range templates {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0600); err != nil {
			return err
		}
	}
	return nil
}

// signInAs returns the session cookies for a principal with the given role.
func signInAs(router *gin.Engine, role string) []*http.Cookie {
	req, _ := http.NewRequest("GET", "/signin?email=someone@example.com&role="+role, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w.Result().Cookies()
}

// doGet performs a GET carrying the given cookies.
func doGet(router *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// doPost performs a form POST carrying the given cookies.
func doPost(router *gin.Engine, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
