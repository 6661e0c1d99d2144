package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	updatemodels "github.com/Alllfr/snap-journal/internal/models/update_journal"
	"github.com/Alllfr/snap-journal/internal/store"
)

// UpdateJournal handles edits to an existing entry. A blank media payload
// keeps the stored media unchanged; a new payload replaces it entirely.
func (h *JournalHandler) UpdateJournal(c *gin.Context) {
	var req updatemodels.UpdateJournalRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid request format")
		return
	}

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

	if errs := validateJournalFields(req.Title, req.Note, req.MediaPayload, false); len(errs) > 0 {
		c.HTML(http.StatusUnprocessableEntity, "journals_edit.html", gin.H{
			"Journal": journal,
			"Errors":  errs,
			"Title":   req.Title,
			"Note":    req.Note,
		})
		return
	}

	journal.Title = req.Title
	journal.Note = req.Note
	if req.MediaPayload != "" {
		journal.MediaPath = req.MediaPayload
	}
	journal.UpdatedAt = time.Now()

	if err := h.journals.Update(c.Request.Context(), journal); err != nil {
		h.logError(c, err, "failed to update journal")
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	setFlash(c, "Journal updated.")
	c.Redirect(http.StatusSeeOther, "/journals")
}
