package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cafe-management/session"
	"cafe-management/utils"
)

const (
	// SessionCookie is the cookie carrying the signed session id.
	SessionCookie = "cafe_session"

	sessionKey = "session"
)

// SessionMiddleware attaches the caller's session to the request context
// and writes it back to the store after the handler runs. A missing,
// invalid, or expired cookie silently gets a fresh session.
func SessionMiddleware(store session.Store, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sess *session.Session

		if cookie, err := c.Cookie(SessionCookie); err == nil {
			if id, err := session.ParseID(cookie, secret); err == nil {
				if loaded, err := store.Get(id); err == nil {
					sess = loaded
				}
			}
		}

		if sess == nil {
			sess = session.New()
			signed, err := session.SignID(sess.ID, secret)
			if err != nil {
				utils.RespondError(c, http.StatusInternalServerError, err)
				c.Abort()
				return
			}
			c.SetCookie(SessionCookie, signed, int(session.Lifetime.Seconds()), "/", "", false, true)
		}

		c.Set(sessionKey, sess)
		c.Next()

		if err := store.Save(sess); err != nil {
			utils.ErrorLogger.Printf("failed to save session %s: %v", sess.ID, err)
		}
	}
}

// GetSession returns the request's session. The session middleware always
// runs first, so the lookup cannot miss on a wired route.
func GetSession(c *gin.Context) *session.Session {
	v, _ := c.Get(sessionKey)
	return v.(*session.Session)
}
