package mediaplayer

import (
	"fmt"
	"io"
	"strings"

	"github.com/gopxl/beep/v2"

	"github.com/cerberussg/playlistcore/internal/mediaplayer/decoders"
)

// DecodeFunc decodes one audio container format into a beep stream.
type DecodeFunc func(io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error)

// FormatRegistry dispatches decoding by file extension, letting a host
// application register additional container formats without touching
// Player itself.
type FormatRegistry struct {
	decoders map[string]DecodeFunc
}

// NewFormatRegistry returns a registry preloaded with the formats the
// decoders package supports.
func NewFormatRegistry() *FormatRegistry {
	r := &FormatRegistry{decoders: make(map[string]DecodeFunc)}
	r.Register(".mp3", decoders.DecodeMP3)
	r.Register(".wav", decoders.DecodeWAV)
	r.Register(".aiff", decoders.DecodeAIFF)
	r.Register(".aif", decoders.DecodeAIFF)
	return r
}

// Register adds or overrides the decoder used for ext (e.g. ".flac").
func (r *FormatRegistry) Register(ext string, fn DecodeFunc) {
	r.decoders[ext] = fn
}

// Decode dispatches on filePath's extension.
func (r *FormatRegistry) Decode(filePath string, f io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
	ext := extensionOf(filePath)
	fn, ok := r.decoders[ext]
	if !ok {
		return nil, beep.Format{}, fmt.Errorf("mediaplayer: unsupported format %q", ext)
	}
	return fn(f)
}

func extensionOf(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		switch path[i] {
		case '.':
			return strings.ToLower(path[i:])
		case '/', '\\':
			return ""
		}
	}
	return ""
}
