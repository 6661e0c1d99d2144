package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the cookie the auth surface stores the session token in.
const SessionCookie = "session"

// SessionValidator resolves a session token to a user id.
type SessionValidator interface {
	Validate(ctx context.Context, token string) (userID string, ok bool, err error)
}

// SessionMiddleware resolves the session cookie and sets "uid" in the request
// context. Unauthenticated browser requests are redirected to the login page;
// everything else gets a 401.
func SessionMiddleware(sessions SessionValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || strings.TrimSpace(token) == "" {
			unauthenticated(c)
			return
		}

		userID, ok, err := sessions.Validate(c.Request.Context(), token)
		if err != nil || !ok {
			unauthenticated(c)
			return
		}

		// Set user id in context for use in handlers
		c.Set("uid", userID)
		c.Next()
	}
}

func unauthenticated(c *gin.Context) {
	if wantsHTML(c) {
		c.Redirect(http.StatusSeeOther, "/login")
	} else {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
	}
	c.Abort()
}

func wantsHTML(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/html") ||
		c.GetHeader("Accept") == ""
}
