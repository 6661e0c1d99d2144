package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Alllfr/snap-journal/internal/store"
)

const flashCookie = "flash"

type JournalHandler struct {
	journals store.Journals
	logger   *zap.SugaredLogger
}

// NewJournalHandler creates a new journal handler
func NewJournalHandler(journals store.Journals, logger *zap.SugaredLogger) *JournalHandler {
	return &JournalHandler{
		journals: journals,
		logger:   logger,
	}
}

// currentUID returns the authenticated user's id set by the session middleware
func currentUID(c *gin.Context) (string, bool) {
	uid, exists := c.Get("uid")
	if !exists {
		return "", false
	}
	userID, ok := uid.(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// forbidden answers every failed ownership check identically, so a non-owner
// cannot tell an entry they don't own from one that doesn't exist.
func forbidden(c *gin.Context) {
	c.String(http.StatusForbidden, "Forbidden")
	c.Abort()
}

// setFlash stores a one-shot status message shown on the next list render.
// gin escapes cookie values on write and unescapes on read.
func setFlash(c *gin.Context, message string) {
	c.SetCookie(flashCookie, message, 60, "/", "", false, true)
}

// takeFlash reads and clears the flash cookie
func takeFlash(c *gin.Context) string {
	message, err := c.Cookie(flashCookie)
	if err != nil || message == "" {
		return ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	return message
}

func (h *JournalHandler) logError(c *gin.Context, err error, msg string, fields ...interface{}) {
	if h.logger == nil {
		return
	}
	all := append([]interface{}{
		"request_id", c.GetString("request_id"),
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"user_id", c.GetString("uid"),
		"error", err,
	}, fields...)
	h.logger.Errorw(msg, all...)
}
