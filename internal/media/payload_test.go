package media

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// payloadWithDecodedSize builds a syntactically valid data URI whose base64
// body decodes to exactly n bytes, without materializing the raw bytes.
func payloadWithDecodedSize(n int) string {
	groups := (n + 2) / 3
	padding := (3 - n%3) % 3
	data := strings.Repeat("A", groups*4-padding) + strings.Repeat("=", padding)
	return "data:video/webm;base64," + data
}

func TestIsDataURI(t *testing.T) {
	assert.True(t, IsDataURI("data:video/webm;base64,AAAA"))
	assert.True(t, IsDataURI("data:image/png;base64,AAAA"))

	assert.False(t, IsDataURI(""))
	assert.False(t, IsDataURI("clip.webm"))
	assert.False(t, IsDataURI("media/2024/clip.webm"))
	// a path that merely mentions data: is not an inline payload
	assert.False(t, IsDataURI("data:text/plain,hello"))
}

func TestDecodedSizeMatchesRealEncoding(t *testing.T) {
	for _, n := range []int{1, 2, 3, 57, 100, 4096} {
		raw := make([]byte, n)
		payload := "data:video/webm;base64," + base64.StdEncoding.EncodeToString(raw)
		assert.Equal(t, int64(n), DecodedSize(payload), "n=%d", n)
	}
}

func TestDecodedSizeSynthetic(t *testing.T) {
	for _, n := range []int{1, 2, 3, 10, 1 << 20} {
		assert.Equal(t, int64(n), DecodedSize(payloadWithDecodedSize(n)), "n=%d", n)
	}
}

// exactly 10 MiB is allowed, one byte over is not
func TestWithinLimitBoundary(t *testing.T) {
	assert.True(t, WithinLimit(payloadWithDecodedSize(MaxPayloadBytes)))
	assert.False(t, WithinLimit(payloadWithDecodedSize(MaxPayloadBytes+1)))
}

func TestWithinLimitNonDataURI(t *testing.T) {
	// storage paths carry no inline bytes to measure
	assert.True(t, WithinLimit("clip.webm"))
	assert.True(t, WithinLimit(""))
}

func TestKind(t *testing.T) {
	assert.Equal(t, "none", Kind(""))

	assert.Equal(t, "video", Kind("data:video/webm;base64,AAAA"))
	assert.Equal(t, "image", Kind("data:image/png;base64,AAAA"))

	assert.Equal(t, "video", Kind("clip.mp4"))
	assert.Equal(t, "video", Kind("clip.webm"))
	assert.Equal(t, "video", Kind("clip.ogg"))
	assert.Equal(t, "video", Kind("clip.MOV"))
	assert.Equal(t, "image", Kind("photo.jpg"))
	assert.Equal(t, "image", Kind("photo.png"))
}

func TestURL(t *testing.T) {
	assert.Equal(t, "", URL(""))
	assert.Equal(t, "data:video/webm;base64,AAAA", URL("data:video/webm;base64,AAAA"))
	assert.Equal(t, "/storage/clip.webm", URL("clip.webm"))
}
