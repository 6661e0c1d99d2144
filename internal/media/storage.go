package media

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var extByMIME = map[string]string{
	"video/webm":      ".webm",
	"video/mp4":       ".mp4",
	"video/ogg":       ".ogg",
	"video/quicktime": ".mov",
	"image/png":       ".png",
	"image/jpeg":      ".jpg",
	"image/gif":       ".gif",
	"image/webp":      ".webp",
}

// Storage writes decoded media payloads under a static root directory. Files
// are addressed by the relative name returned from Persist and served at
// /storage/<name>.
type Storage struct {
	root string
}

// NewStorage creates the root directory if needed.
func NewStorage(root string) (*Storage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}
	return &Storage{root: root}, nil
}

// Root returns the directory media files are written to.
func (s *Storage) Root() string {
	return s.root
}

// Persist decodes a base64 data URI and writes it to a new file under the
// storage root, returning the relative file name.
func (s *Storage) Persist(payload string) (string, error) {
	if !IsDataURI(payload) {
		return "", fmt.Errorf("payload is not a data URI")
	}

	header, data, _ := strings.Cut(payload, ",")
	mimeType := strings.TrimSuffix(strings.TrimPrefix(header, "data:"), ";base64")
	ext, ok := extByMIME[mimeType]
	if !ok {
		ext = ".bin"
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode media payload: %w", err)
	}

	name := uuid.New().String() + ext
	if err := os.WriteFile(filepath.Join(s.root, name), raw, 0o644); err != nil {
		return "", fmt.Errorf("failed to write media file: %w", err)
	}
	return name, nil
}
