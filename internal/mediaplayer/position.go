package mediaplayer

import (
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
)

// positionTracker periodically samples a beep.StreamSeeker's position so
// Player can compute playback progress without polling the audio callback
// goroutine directly.
type positionTracker struct {
	mu       sync.RWMutex
	streamer beep.StreamSeekCloser
	format   beep.Format

	ticker *time.Ticker
	stop   chan struct{}
}

func newPositionTracker() *positionTracker {
	return &positionTracker{}
}

func (t *positionTracker) SetStreamer(s beep.StreamSeekCloser, format beep.Format) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.streamer = s
	t.format = format
}

func (t *positionTracker) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
	t.ticker = time.NewTicker(500 * time.Millisecond)
	t.stop = make(chan struct{})
	stop := t.stop
	go func() {
		for {
			select {
			case <-t.ticker.C:
			case <-stop:
				return
			}
		}
	}()
}

func (t *positionTracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

func (t *positionTracker) stopLocked() {
	if t.ticker != nil {
		t.ticker.Stop()
		t.ticker = nil
	}
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
}

// Position returns elapsed playback time, 0 if nothing is loaded.
func (t *positionTracker) Position() time.Duration {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.streamer == nil {
		return 0
	}
	return t.format.SampleRate.D(t.streamer.Position())
}

// Duration returns the loaded track's total length, 0 if unknown.
func (t *positionTracker) Duration() time.Duration {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.streamer == nil {
		return 0
	}
	return t.format.SampleRate.D(t.streamer.Len())
}

func (t *positionTracker) Cleanup() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
	t.streamer = nil
}
