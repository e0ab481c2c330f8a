package middlewares

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cafe-management/utils"
)

// AuthGate decides whether a credential pair may enter the admin area.
// The production gate is a single configured username/password; keeping
// it behind an interface lets a stronger scheme replace it without
// touching call sites.
type AuthGate interface {
	Check(username, password string) bool
}

// CredentialGate compares against one shared configured credential pair.
type CredentialGate struct {
	Username string
	Password string
}

func (g CredentialGate) Check(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(g.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(g.Password)) == 1
	return userOK && passOK
}

// AdminRequired guards admin routes on the session's login flag.
// Browsers get redirected to the login page; JSON/AJAX callers get 401.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := GetSession(c)
		if sess.AdminLoggedIn {
			c.Next()
			return
		}

		if wantsJSON(c) {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("admin login required"))
		} else {
			c.Redirect(http.StatusSeeOther, "/admin/login")
		}
		c.Abort()
	}
}

func wantsJSON(c *gin.Context) bool {
	if c.GetHeader("X-Requested-With") == "XMLHttpRequest" {
		return true
	}
	ct := c.ContentType()
	if ct == "application/json" {
		return true
	}
	return strings.Contains(c.GetHeader("Accept"), "application/json")
}
