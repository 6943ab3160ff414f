// file: session/session_test.go
package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticket-office/models"
)

// setupSessionRouter builds a router with the cookie store plus helper
// routes that exercise the store, so tests drive it the way a browser would.
func setupSessionRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	store := cookie.NewStore([]byte("test-secret"))
	router.Use(sessions.Sessions("testsession", store))

	router.GET("/save", func(c *gin.Context) {
		user := models.User{Email: c.Query("email"), Role: c.Query("role")}
		if err := Save(c, c.Query("token"), user); err != nil {
			c.String(http.StatusInternalServerError, "save failed")
			return
		}
		c.String(http.StatusOK, "saved")
	})
	router.GET("/load", func(c *gin.Context) {
		s, ok := Load(c)
		if !ok {
			c.String(http.StatusOK, "none")
			return
		}
		c.String(http.StatusOK, "token=%s email=%s admin=%v", s.Token, s.User.Email, s.IsAdmin())
	})
	router.GET("/clear", func(c *gin.Context) {
		Clear(c)
		c.String(http.StatusOK, "cleared")
	})
	// corrupt writes a broken pair directly, bypassing Save
	router.GET("/corrupt", func(c *gin.Context) {
		sess := sessions.Default(c)
		sess.Set("token", c.Query("token"))
		if u := c.Query("user"); u != "" {
			sess.Set("user", u)
		}
		_ = sess.Save()
		c.String(http.StatusOK, "corrupted")
	})

	return router
}

// do performs a request carrying the given cookies and returns the recorder.
func do(router *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	router := setupSessionRouter()

	w := do(router, "/save?token=tok-1&email=a@b.com&role=user", nil)
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	w = do(router, "/load", cookies)
	assert.Equal(t, "token=tok-1 email=a@b.com admin=false", w.Body.String())
}

func TestLoadAfterClearReturnsNone(t *testing.T) {
	router := setupSessionRouter()

	w := do(router, "/save?token=tok-1&email=a@b.com&role=user", nil)
	cookies := w.Result().Cookies()

	w = do(router, "/clear", cookies)
	cleared := w.Result().Cookies()

	w = do(router, "/load", cleared)
	assert.Equal(t, "none", w.Body.String())
}

func TestPartialPairIsPurged(t *testing.T) {
	router := setupSessionRouter()

	// token present, user missing
	w := do(router, "/corrupt?token=tok-1", nil)
	cookies := w.Result().Cookies()

	w = do(router, "/load", cookies)
	assert.Equal(t, "none", w.Body.String())

	// the purge must have removed the remaining key as well
	afterPurge := w.Result().Cookies()
	w = do(router, "/load", afterPurge)
	assert.Equal(t, "none", w.Body.String())
}

func TestCorruptUserRecordIsPurged(t *testing.T) {
	router := setupSessionRouter()

	w := do(router, "/corrupt?token=tok-1&user=not-json{", nil)
	cookies := w.Result().Cookies()

	w = do(router, "/load", cookies)
	assert.Equal(t, "none", w.Body.String())
}

func TestIsAdminMatchesConfiguredRoleOnly(t *testing.T) {
	defer Configure(DefaultAdminRole)

	Configure("admin")
	assert.True(t, Session{User: models.User{Role: "admin"}}.IsAdmin())
	assert.False(t, Session{User: models.User{Role: "manager"}}.IsAdmin())
	assert.False(t, Session{User: models.User{Role: "user"}}.IsAdmin())
	assert.False(t, Session{}.IsAdmin())

	// a deployment whose backend issues "manager" reconfigures the value
	Configure("manager")
	assert.True(t, Session{User: models.User{Role: "manager"}}.IsAdmin())
	assert.False(t, Session{User: models.User{Role: "admin"}}.IsAdmin())
}

func TestConfigureKeepsDefaultOnEmpty(t *testing.T) {
	defer Configure(DefaultAdminRole)

	Configure("")
	assert.Equal(t, DefaultAdminRole, AdminRole())
}
