package models

import "time"

// Journal is a single journal entry. MediaPath holds either a base64 data URI
// (as captured in the browser, not yet offloaded) or a relative path under the
// storage root once the offloader has persisted it to disk. Empty means the
// entry has no media.
type Journal struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"-"`
	Title     string    `json:"title"`
	Note      string    `json:"note"`
	MediaPath string    `json:"mediaPath"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
