package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Alllfr/snap-journal/internal/store"
)

// ShowEditForm renders the edit page for one of the caller's entries
func (h *JournalHandler) ShowEditForm(c *gin.Context) {
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

	c.HTML(http.StatusOK, "journals_edit.html", gin.H{
		"Journal": journal,
		"Errors":  map[string]string{},
		"Title":   journal.Title,
		"Note":    journal.Note,
	})
}
