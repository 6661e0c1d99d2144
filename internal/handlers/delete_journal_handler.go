package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Alllfr/snap-journal/internal/store"
)

// DeleteJournal handles the deletion of an entry
func (h *JournalHandler) DeleteJournal(c *gin.Context) {
	userID, ok := currentUID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	journal, err := h.journals.GetByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		forbidden(c)
		return
	}
	if err != nil {
		h.logError(c, err, "failed to load journal")
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	if !Owns(journal, userID) {
		forbidden(c)
		return
	}

	if err := h.journals.Delete(c.Request.Context(), journal.ID); err != nil {
		h.logError(c, err, "failed to delete journal")
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	setFlash(c, "Journal deleted.")
	c.Redirect(http.StatusSeeOther, "/journals")
}
