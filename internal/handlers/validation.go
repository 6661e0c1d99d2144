package handlers

import (
	"unicode/utf8"

	"github.com/Alllfr/snap-journal/internal/media"
)

const maxTitleLen = 255

// validateJournalFields mirrors the client-side checks. mediaRequired is true
// on create only; update may leave the payload blank to keep the stored media.
func validateJournalFields(title, note, payload string, mediaRequired bool) map[string]string {
	errs := map[string]string{}

	if title == "" {
		errs["title"] = "Title is required."
	} else if utf8.RuneCountInString(title) > maxTitleLen {
		errs["title"] = "Title may not be longer than 255 characters."
	}

	if note == "" {
		errs["note"] = "Note is required."
	}

	if payload == "" {
		if mediaRequired {
			errs["media_payload"] = "Please record a video first."
		}
		return errs
	}

	if !media.WithinLimit(payload) {
		errs["media_payload"] = "Your recording must be 10MB or less."
	}
	return errs
}
