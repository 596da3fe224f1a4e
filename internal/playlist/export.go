package playlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// View is the minimal read-only surface an export format needs.
// *Playlist satisfies it directly as long as the caller holds the lock
// for the duration of the export.
type View interface {
	Count() int
	Get(i int) *Item
}

// Exporter writes a View out in one playlist file format.
type Exporter interface {
	Export(w io.Writer, v View) error
}

// Format identifies a registered export format.
type Format string

// FormatM3U8 is the one exporter shipped with the core: a plain extended
// M3U playlist. The format is a flat track list (#EXTM3U, #EXTINF lines,
// paths), which the HLS-manifest libraries in the ecosystem do not model,
// so the writer stays hand-rolled.
const FormatM3U8 Format = "m3u8"

var exporters = map[Format]Exporter{
	FormatM3U8: m3u8Exporter{},
}

// RegisterExporter adds or overrides the exporter for format, so a host
// application can plug in additional playlist file formats without
// modifying this package.
func RegisterExporter(format Format, e Exporter) {
	exporters[format] = e
}

// Export writes the playlist's current contents to filename in the given
// format. Requires the playlist lock held.
func (p *Playlist) Export(filename string, format Format) error {
	p.assertLocked()
	e, ok := exporters[format]
	if !ok {
		return fmt.Errorf("playlist: unknown export format %q", format)
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("playlist: export: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := e.Export(w, p); err != nil {
		return fmt.Errorf("playlist: export: %w", err)
	}
	return w.Flush()
}

type m3u8Exporter struct{}

func (m3u8Exporter) Export(w io.Writer, v View) error {
	if _, err := io.WriteString(w, "#EXTM3U\n"); err != nil {
		return err
	}
	for i := 0; i < v.Count(); i++ {
		it := v.Get(i)
		media := it.Media()

		seconds := int(media.Duration.Seconds())
		title := media.Title
		if title == "" {
			title = media.URL
		}
		if media.Artist != "" {
			title = media.Artist + " - " + title
		}

		line := "#EXTINF:" + strconv.Itoa(seconds) + "," + sanitizeM3ULine(title) + "\n" +
			sanitizeM3ULine(media.URL) + "\n"
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}

func sanitizeM3ULine(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}
