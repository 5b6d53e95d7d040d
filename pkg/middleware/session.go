package middleware

import (
	"net/http"

	"movielist/pkg/session"

	"github.com/gin-gonic/gin"
)

const sessionContextKey = "admin_session"

// SessionMiddleware resolves the session cookie into a session.Session and
// stores it in the request context. Requests without a valid session pass
// through with no session set; guards decide what that means.
func SessionMiddleware(store session.Store, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(cookieName)
		if err == nil && id != "" {
			sess, err := store.Get(c.Request.Context(), id)
			if err == nil {
				c.Set(sessionContextKey, sess)
			}
		}
		c.Next()
	}
}

// CurrentSession returns the session loaded by SessionMiddleware, or nil.
func CurrentSession(c *gin.Context) *session.Session {
	v, exists := c.Get(sessionContextKey)
	if !exists {
		return nil
	}
	sess, ok := v.(*session.Session)
	if !ok {
		return nil
	}
	return sess
}

// AdminRequired rejects requests that do not carry a logged-in admin session.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := CurrentSession(c)
		if sess == nil || !sess.LoggedIn {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
