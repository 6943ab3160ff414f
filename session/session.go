// Package session wraps the cookie-backed session in the two-value contract
// the rest of the application relies on: a bearer token and the serialized
// user record are present together or not at all.
// File: session/session.go
package session

import (
	"encoding/json"
	"os"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"ticket-office/logger"
	"ticket-office/models"
)

// session value keys; cosmetic preferences live in plain cookies, not here
const (
	keyToken = "token"
	keyUser  = "user"
)

// contextKey is where AuthRequired stashes the loaded session for handlers.
const contextKey = "ticketoffice.session"

// DefaultAdminRole is used when ADMIN_ROLE is not configured.
const DefaultAdminRole = "admin"

// adminRole is the single role value that grants admin access. Deployments
// whose backend issues a different value (e.g. "manager") set ADMIN_ROLE.
var adminRole = DefaultAdminRole

// Configure sets the admin-designating role value. An empty value keeps the
// default.
func Configure(role string) {
	if role != "" {
		adminRole = role
	}
	logger.Info.Printf("Configure: admin role set to %q", adminRole)
}

// ConfigureFromEnv applies ADMIN_ROLE if present.
func ConfigureFromEnv() {
	Configure(os.Getenv("ADMIN_ROLE"))
}

// AdminRole returns the configured admin-designating role value.
func AdminRole() string { return adminRole }

// ----------------------- session record -----------------------

// Session is a logged-in principal: the bearer token for backend calls plus
// the user record it was issued to.
type Session struct {
	Token string
	User  models.User
}

// IsAdmin reports whether the principal carries the admin-designating role.
func (s Session) IsAdmin() bool {
	return s.User.HasRole(adminRole)
}

// ----------------------- load / save / clear -----------------------

// Load reads the token/user pair from the cookie session. If either value is
// missing or the user record does not parse, both are purged and no session
// is reported; a half-written or corrupted pair must never look logged in.
func Load(c *gin.Context) (Session, bool) {
	sess := sessions.Default(c)

	token, tokenOK := sess.Get(keyToken).(string)
	rawUser, userOK := sess.Get(keyUser).(string)

	if !tokenOK || token == "" || !userOK || rawUser == "" {
		if tokenOK || userOK {
			logger.Warn.Println("Load: partial session pair found, purging both keys")
			purge(sess)
		}
		return Session{}, false
	}

	var user models.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		logger.Warn.Printf("Load: stored user record failed to parse, purging session: %v", err)
		purge(sess)
		return Session{}, false
	}

	return Session{Token: token, User: user}, true
}

// Save persists the token/user pair. Both values land in one cookie write,
// so the pair invariant holds even if the response is cut short.
func Save(c *gin.Context, token string, user models.User) error {
	rawUser, err := json.Marshal(user)
	if err != nil {
		return err
	}

	sess := sessions.Default(c)
	sess.Set(keyToken, token)
	sess.Set(keyUser, string(rawUser))
	return sess.Save()
}

// Clear removes the token/user pair. Used on logout and by the fail-closed
// policy on a 401 from the backend.
func Clear(c *gin.Context) {
	sess := sessions.Default(c)
	purge(sess)
}

func purge(sess sessions.Session) {
	sess.Delete(keyToken)
	sess.Delete(keyUser)
	if err := sess.Save(); err != nil {
		logger.Error.Printf("purge: failed to save cleared session: %v", err)
	}
}

// ----------------------- request context helpers -----------------------

// Attach stores a loaded session on the request context so handlers behind
// AuthRequired can read it without re-parsing cookies.
func Attach(c *gin.Context, s Session) {
	c.Set(contextKey, s)
}

// FromContext returns the session AuthRequired attached to this request.
func FromContext(c *gin.Context) (Session, bool) {
	v, ok := c.Get(contextKey)
	if !ok {
		return Session{}, false
	}
	s, ok := v.(Session)
	return s, ok
}
