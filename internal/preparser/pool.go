// Package preparser is the pluggable, richer Preparser the daemon wires in
// in place of playlist's built-in no-op worker pool: it reads real
// container tags from local media URLs and expands directory URLs into a
// discovered subtree, reporting both back through the playlist's
// PlaylistSink callbacks.
package preparser

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dhowden/tag"
	"github.com/sirupsen/logrus"

	"github.com/cerberussg/playlistcore/internal/playlist"
)

var audioExtensions = map[string]bool{
	".mp3": true, ".wav": true, ".aiff": true, ".aif": true,
	".flac": true, ".m4a": true, ".ogg": true,
}

// Pool is a bounded-concurrency Preparser bound to one *playlist.Playlist.
// It mirrors playlist's own built-in workerPool (internal/playlist/preparse.go)
// in shape (a semaphore-bounded goroutine per request, one context.WithTimeout
// per attempt) but does real work: tag.ReadFrom for metadata and a
// directory walk for subtree discovery.
type Pool struct {
	pl      *playlist.Playlist
	sem     chan struct{}
	timeout time.Duration
	wg      sync.WaitGroup
	log     *logrus.Logger
}

// NewPool constructs a Pool with the given concurrency and per-item
// timeout (0 disables the timeout).
func NewPool(pl *playlist.Playlist, threads int, timeoutMillis int, log *logrus.Logger) *Pool {
	if threads <= 0 {
		threads = 1
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Pool{
		pl:      pl,
		sem:     make(chan struct{}, threads),
		timeout: time.Duration(timeoutMillis) * time.Millisecond,
		log:     log,
	}
}

// Preparse implements playlist.Preparser.
func (p *Pool) Preparse(item *playlist.Item, recursive bool) {
	media := item.Media().Hold()
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer media.Release()

		p.sem <- struct{}{}
		defer func() { <-p.sem }()

		ctx := context.Background()
		var cancel context.CancelFunc
		if p.timeout > 0 {
			ctx, cancel = context.WithTimeout(ctx, p.timeout)
			defer cancel()
		}
		p.run(ctx, media, recursive)
	}()
}

// Wait blocks until every dispatched preparse has completed. For tests.
func (p *Pool) Wait() {
	p.wg.Wait()
}

func (p *Pool) run(ctx context.Context, media *playlist.Media, recursive bool) {
	info, err := os.Stat(media.URL)
	if err != nil {
		p.log.WithError(err).WithField("url", media.URL).Debug("preparse: stat failed")
		return
	}

	if info.IsDir() {
		p.expandDir(media, recursive)
		return
	}

	select {
	case <-ctx.Done():
		p.log.WithField("url", media.URL).Warn("preparse: timed out before tag read")
		return
	default:
	}
	p.readTags(media)
}

func (p *Pool) readTags(media *playlist.Media) {
	f, err := os.Open(media.URL)
	if err != nil {
		p.log.WithError(err).WithField("url", media.URL).Debug("preparse: open failed")
		return
	}
	defer f.Close()

	meta, err := tag.ReadFrom(f)
	if err != nil {
		// Not every supported audio format carries embedded tags (a bare
		// WAV rarely does); fall back to the filename as a title so the
		// item still shows something reasonable in listener updates.
		title := strings.TrimSuffix(filepath.Base(media.URL), filepath.Ext(media.URL))
		p.pl.Lock()
		media.Title = title
		p.pl.OnMediaMetaChanged(media)
		p.pl.Unlock()
		return
	}

	trackNum, _ := meta.Track()

	p.pl.Lock()
	if title := meta.Title(); title != "" {
		media.Title = title
	}
	media.Artist = meta.Artist()
	media.Album = meta.Album()
	media.TrackNumber = trackNum
	p.pl.OnMediaMetaChanged(media)
	p.pl.Unlock()
}

// expandDir discovers a directory's audio files (sorted, optionally
// recursive into subdirectories) and reports them as media's subtree.
func (p *Pool) expandDir(media *playlist.Media, recursive bool) {
	entries, err := os.ReadDir(media.URL)
	if err != nil {
		p.log.WithError(err).WithField("url", media.URL).Warn("preparse: directory read failed")
		return
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var subtree []*playlist.Media
	for _, e := range entries {
		full := filepath.Join(media.URL, e.Name())
		if e.IsDir() {
			if recursive {
				subtree = append(subtree, p.collectDir(full)...)
			}
			continue
		}
		if audioExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			subtree = append(subtree, playlist.NewMedia(full))
		}
	}
	if len(subtree) == 0 {
		return
	}

	p.pl.Lock()
	p.pl.OnSubtreeAdded(media, subtree)
	p.pl.Unlock()
}

func (p *Pool) collectDir(dir string) []*playlist.Media {
	entries, err := os.ReadDir(dir)
	if err != nil {
		p.log.WithError(err).WithField("url", dir).Warn("preparse: recursive directory read failed")
		return nil
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var out []*playlist.Media
	for _, e := range entries {
		full := filepath.Join(dir, e.Name())
		if e.IsDir() {
			out = append(out, p.collectDir(full)...)
			continue
		}
		if audioExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			out = append(out, playlist.NewMedia(full))
		}
	}
	return out
}
