package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Alllfr/snap-journal/internal/middleware"
)

// Logout destroys the session and clears the cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	token, err := c.Cookie(middleware.SessionCookie)
	if err == nil && token != "" {
		if err := h.sessions.Destroy(c.Request.Context(), token); err != nil {
			h.logger.Errorw("failed to destroy session", "error", err)
		}
	}

	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/login")
}
