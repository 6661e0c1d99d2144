package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	createmodels "github.com/Alllfr/snap-journal/internal/models/create_journal"
	journalmodels "github.com/Alllfr/snap-journal/internal/models/journal"
)

// ShowCreateForm renders the create page with the capture widget
func (h *JournalHandler) ShowCreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "journals_create.html", gin.H{
		"Errors": map[string]string{},
		"Title":  "",
		"Note":   "",
	})
}

// CreateJournal handles creation of new journal entries
func (h *JournalHandler) CreateJournal(c *gin.Context) {
	var req createmodels.CreateJournalRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid request format")
		return
	}

	userID, ok := currentUID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	// Media is mandatory on create; validation failures re-render the form
	// with the typed fields preserved
	if errs := validateJournalFields(req.Title, req.Note, req.MediaPayload, true); len(errs) > 0 {
		c.HTML(http.StatusUnprocessableEntity, "journals_create.html", gin.H{
			"Errors": errs,
			"Title":  req.Title,
			"Note":   req.Note,
		})
		return
	}

	now := time.Now()
	journal := &journalmodels.Journal{
		ID:        uuid.New().String(),
		OwnerID:   userID,
		Title:     req.Title,
		Note:      req.Note,
		MediaPath: req.MediaPayload,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.journals.Create(c.Request.Context(), journal); err != nil {
		h.logError(c, err, "failed to create journal")
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	setFlash(c, "Journal created.")
	c.Redirect(http.StatusSeeOther, "/journals")
}
