// file: middleware/role_test.go
package middleware

import (
	"net/http"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"ticket-office/models"
	"ticket-office/session"
)

// setupRoleRouter wires the full guard chain the way main does: auth first,
// then the role gate.
func setupRoleRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	store := cookie.NewStore([]byte("test-secret"))
	router.Use(sessions.Sessions("testsession", store))

	router.GET("/signin", func(c *gin.Context) {
		user := models.User{Email: c.Query("email"), Role: c.Query("role")}
		if err := session.Save(c, "tok-test", user); err != nil {
			c.String(http.StatusInternalServerError, "save failed")
			return
		}
		c.String(http.StatusOK, "signed in")
	})

	router.GET("/validate", AuthRequired, AdminOnly(), func(c *gin.Context) {
		c.String(http.StatusOK, "validation page")
	})
	router.GET("/tickets", AuthRequired, UserOnly(), func(c *gin.Context) {
		c.String(http.StatusOK, "ticket list")
	})

	return router
}

func TestAdminOnly_BlocksOrdinaryUser(t *testing.T) {
	router := setupRoleRouter()
	cookies := signIn(router, "user")

	w := get(router, "/validate", cookies)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestAdminOnly_AllowsAdmin(t *testing.T) {
	router := setupRoleRouter()
	cookies := signIn(router, session.AdminRole())

	w := get(router, "/validate", cookies)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "validation page")
}

func TestUserOnly_BlocksAdmin(t *testing.T) {
	router := setupRoleRouter()
	cookies := signIn(router, session.AdminRole())

	w := get(router, "/tickets", cookies)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestUserOnly_AllowsOrdinaryUser(t *testing.T) {
	router := setupRoleRouter()
	cookies := signIn(router, "user")

	w := get(router, "/tickets", cookies)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ticket list")
}

func TestGuards_UnauthenticatedGoesToLogin(t *testing.T) {
	router := setupRoleRouter()

	w := get(router, "/tickets", nil)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}
