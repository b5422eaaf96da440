package middleware

import (
	"net/http"
	"time"

	"portfolio/internal/session"

	"github.com/gin-gonic/gin"
)

const sessionContextKey = "session"

// SessionFromContext extracts the authenticated session placed in the gin
// context by LoadSession.
func SessionFromContext(c *gin.Context) (*session.Session, bool) {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return nil, false
	}
	s, ok := v.(*session.Session)
	return s, ok
}

type AuthMiddleware struct {
	Store session.Store
}

func NewAuthMiddleware(store session.Store) *AuthMiddleware {
	return &AuthMiddleware{Store: store}
}

// LoadSession resolves the session cookie into a server-side session and
// attaches it to the request context. Anonymous requests pass through
// untouched; expired sessions are deleted on sight.
func (a *AuthMiddleware) LoadSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Request.Cookie(session.CookieName)
		if err != nil || cookie.Value == "" {
			c.Next()
			return
		}

		sess, err := a.Store.Get(c.Request.Context(), cookie.Value)
		if err != nil || sess == nil {
			c.Next()
			return
		}

		if time.Now().After(sess.ExpiresAt) {
			_ = a.Store.Delete(c.Request.Context(), cookie.Value)
			c.Next()
			return
		}

		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

// RequireAuth gates mutating routes. Anonymous requests are redirected to
// the login page; this is a control-flow short circuit, not an error.
func (a *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := SessionFromContext(c); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
