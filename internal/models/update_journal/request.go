package models

// MediaPayload is optional on update: blank means the stored media is kept
// unchanged. There is deliberately no way to clear media once set.
type UpdateJournalRequest struct {
	Title        string `form:"title"`
	Note         string `form:"note"`
	MediaPayload string `form:"media_payload"`
}
