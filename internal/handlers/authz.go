package handlers

import (
	journalmodels "github.com/Alllfr/snap-journal/internal/models/journal"
)

// Owns reports whether userID may read-for-edit, update or delete the entry.
// Every operation that targets an existing entry goes through this check.
func Owns(j *journalmodels.Journal, userID string) bool {
	return j != nil && userID != "" && j.OwnerID == userID
}
