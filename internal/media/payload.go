package media

import (
	"path/filepath"
	"strings"
)

// MaxPayloadBytes caps the decoded size of an uploaded media payload.
const MaxPayloadBytes = 10 * 1024 * 1024

var videoExts = map[string]bool{
	".mp4":  true,
	".webm": true,
	".ogg":  true,
	".mov":  true,
}

// IsDataURI reports whether the payload is an inline base64 data URI rather
// than a relative storage path.
func IsDataURI(payload string) bool {
	if !strings.HasPrefix(payload, "data:") {
		return false
	}
	header, _, ok := strings.Cut(payload, ",")
	return ok && strings.HasSuffix(header, ";base64")
}

// DecodedSize returns the number of raw bytes a base64 data URI decodes to,
// without decoding it. Non-data-URI payloads have no inline bytes and report 0.
func DecodedSize(payload string) int64 {
	if !IsDataURI(payload) {
		return 0
	}
	_, data, _ := strings.Cut(payload, ",")
	padding := int64(strings.Count(data, "="))
	return int64(len(data))*3/4 - padding
}

// WithinLimit reports whether the payload's decoded size fits MaxPayloadBytes.
func WithinLimit(payload string) bool {
	return DecodedSize(payload) <= MaxPayloadBytes
}

// IsVideo reports whether the payload renders as video: a data URI with a
// video MIME type, or a storage path with a known video extension.
func IsVideo(payload string) bool {
	if IsDataURI(payload) {
		return strings.HasPrefix(payload, "data:video/")
	}
	return videoExts[strings.ToLower(filepath.Ext(payload))]
}

// Kind classifies a stored payload for rendering: "none", "video" or "image".
func Kind(payload string) string {
	switch {
	case payload == "":
		return "none"
	case IsVideo(payload):
		return "video"
	default:
		return "image"
	}
}

// URL resolves a stored payload to something a media element can load: data
// URIs are already self-contained, storage paths are served under /storage.
func URL(payload string) string {
	if payload == "" {
		return ""
	}
	if IsDataURI(payload) {
		return payload
	}
	return "/storage/" + payload
}
