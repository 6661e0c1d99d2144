package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListJournals renders the owner's entries, newest first
func (h *JournalHandler) ListJournals(c *gin.Context) {
	userID, ok := currentUID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	journals, err := h.journals.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		h.logError(c, err, "failed to list journals")
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	c.HTML(http.StatusOK, "journals_index.html", gin.H{
		"Journals": journals,
		"Flash":    takeFlash(c),
	})
}
