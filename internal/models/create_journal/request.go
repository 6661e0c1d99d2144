package models

type CreateJournalRequest struct {
	Title        string `form:"title"`
	Note         string `form:"note"`
	MediaPayload string `form:"media_payload"`
}
