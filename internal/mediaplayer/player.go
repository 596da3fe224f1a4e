// Package mediaplayer is the concrete playlist.Player/playlist.PlaylistSink
// bridge: it decodes media URLs to local files with github.com/gopxl/beep/v2
// and drives the speaker, reporting state back into the playlist through
// the PlaylistSink callbacks.
package mediaplayer

import (
	"fmt"
	"io"
	"os"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/cerberussg/playlistcore/internal/playlist"
)

// Player implements playlist.Player on top of beep. One Player instance
// backs exactly one playlist.Playlist, constructed through Factory so the
// two share the sink/bridge wiring: every method below (apart from
// onTrackDone's own entry point) assumes the playlist's lock, reached
// through sink.Lock/Unlock, is already held by the caller, exactly like
// every other playlist mutator. There is no separate mutex guarding
// Player's own fields; it is the same lock, shared.
type Player struct {
	sink playlist.PlaylistSink
	log  *logrus.Logger

	current *playlist.Media
	playing bool
	paused  bool

	streamer beep.StreamSeekCloser
	format   beep.Format
	file     io.ReadCloser

	audio    *audioSystem
	volume   *volumeControl
	position *positionTracker
	registry *FormatRegistry
}

// New constructs a Player bridged to sink. Use Factory to obtain a
// playlist.PlayerFactory for playlist.New.
func New(sink playlist.PlaylistSink, log *logrus.Logger) *Player {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Player{
		sink:     sink,
		log:      log,
		audio:    newAudioSystem(log),
		volume:   newVolumeControl(),
		position: newPositionTracker(),
		registry: NewFormatRegistry(),
	}
}

// Factory adapts New to playlist.PlayerFactory.
func Factory(log *logrus.Logger) playlist.PlayerFactory {
	return func(sink playlist.PlaylistSink) playlist.Player {
		return New(sink, log)
	}
}

// SetCurrentMedia implements playlist.Player. media == nil stops playback
// and releases the decoder. Requires the shared playlist lock held.
func (p *Player) SetCurrentMedia(media *playlist.Media) error {
	p.stopAndCleanup()
	p.current = media
	if media == nil {
		p.sink.OnStateChanged(playlist.StateStopped)
		return nil
	}

	if err := p.load(media); err != nil {
		p.log.WithError(err).WithField("url", media.URL).Error("failed to load media")
		p.current = nil
		return errors.Wrap(playlist.ErrPlayerRejected, err.Error())
	}

	p.sink.OnCurrentMediaChanged(media)
	if d := p.position.Duration(); d > 0 {
		p.sink.OnLengthChanged(media, int64(d))
	}
	p.start()
	return nil
}

// InvalidateNextMedia implements playlist.Player. The bridge always pulls
// a fresh GetNextMedia at end-of-stream, so there is no cached value to
// discard; this exists to satisfy the interface and mirror the real
// player's cache-invalidation hook.
func (p *Player) InvalidateNextMedia() {}

func (p *Player) load(media *playlist.Media) error {
	f, err := os.Open(media.URL)
	if err != nil {
		return errors.Wrap(err, "open media file")
	}

	streamer, format, err := p.registry.Decode(media.URL, f)
	if err != nil {
		f.Close()
		return errors.Wrap(err, "decode media file")
	}

	p.streamer = streamer
	p.format = format
	p.file = f

	if !p.audio.IsInitialized() {
		if err := p.audio.Initialize(format); err != nil {
			p.cleanup()
			return err
		}
	}

	p.position.SetStreamer(streamer, format)
	ctrl := p.volume.Wrap(streamer, p.onTrackDone)
	if ctrl == nil {
		return fmt.Errorf("volume control setup failed")
	}
	return nil
}

func (p *Player) start() {
	ctrl := p.volume.Ctrl()
	if ctrl == nil {
		return
	}
	ctrl.Paused = false
	speaker.Play(ctrl)
	p.playing = true
	p.paused = false
	p.position.Start()
	p.sink.OnStateChanged(playlist.StatePlaying)
}

// onTrackDone is beep's Callback fired on the mixer's own goroutine when
// the current stream is exhausted. Nothing holds the shared lock at this
// point, so this is the one call site in Player that must acquire it
// itself before touching sink or playlist state.
func (p *Player) onTrackDone() {
	p.sink.Lock()
	defer p.sink.Unlock()

	next := p.sink.GetNextMedia()
	if err := p.SetCurrentMedia(next); err != nil {
		p.log.WithError(err).Warn("auto-advance rejected by player")
	}
}

// Pause pauses the active stream without releasing the decoder, so Resume
// can continue from the same position. Requires the shared lock held.
func (p *Player) Pause() error {
	ctrl := p.volume.Ctrl()
	if ctrl == nil || !p.playing {
		return fmt.Errorf("mediaplayer: nothing playing")
	}
	ctrl.Paused = true
	p.playing = false
	p.paused = true
	p.position.Stop()
	p.sink.OnStateChanged(playlist.StatePaused)
	return nil
}

// Resume un-pauses the active stream. Requires the shared lock held.
func (p *Player) Resume() error {
	ctrl := p.volume.Ctrl()
	if ctrl == nil || !p.paused {
		return fmt.Errorf("mediaplayer: nothing paused")
	}
	ctrl.Paused = false
	p.playing = true
	p.paused = false
	p.position.Start()
	p.sink.OnStateChanged(playlist.StatePlaying)
	return nil
}

// IsPlaying reports whether a stream is actively playing.
func (p *Player) IsPlaying() bool {
	return p.playing
}

// IsPaused reports whether a stream is loaded but paused.
func (p *Player) IsPaused() bool {
	return p.paused
}

// SetVolume sets playback volume in [0.0, 1.0].
func (p *Player) SetVolume(v float64) error {
	return p.volume.SetVolume(v)
}

// Volume returns the current playback volume.
func (p *Player) Volume() float64 {
	return p.volume.Volume()
}

// Position returns elapsed time into the current track.
func (p *Player) Position() (elapsed, total int64) {
	return int64(p.position.Position()), int64(p.position.Duration())
}

func (p *Player) stopAndCleanup() {
	p.position.Stop()
	if ctrl := p.volume.Ctrl(); ctrl != nil {
		ctrl.Paused = true
		speaker.Clear()
	}
	p.cleanup()
	p.volume.Reset()
	p.playing = false
	p.paused = false
}

func (p *Player) cleanup() {
	if p.streamer != nil {
		p.streamer.Close()
		p.streamer = nil
	}
	if p.file != nil {
		p.file.Close()
		p.file = nil
	}
}

// Close releases all audio resources. Requires the shared lock held. The
// process-wide speaker device itself is never torn down, matching beep's
// own single-init-per-process model.
func (p *Player) Close() error {
	p.position.Cleanup()
	p.volume.Reset()
	p.cleanup()
	return nil
}
