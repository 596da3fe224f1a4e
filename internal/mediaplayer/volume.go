package mediaplayer

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
)

// volumeControl wraps a decoded stream in beep's Volume effect and a Ctrl
// for pause/resume, keeping the current volume setting so it survives
// across track changes (each new track gets a fresh effects.Volume built
// from the same setting).
type volumeControl struct {
	mu     sync.RWMutex
	stream *effects.Volume
	ctrl   *beep.Ctrl
	volume float64
}

func newVolumeControl() *volumeControl {
	return &volumeControl{volume: 1.0}
}

// Wrap builds the pause/resume/volume chain around streamer and arranges
// for onDone to fire (off the audio callback goroutine boundary beep
// itself enforces) once the stream is exhausted.
func (v *volumeControl) Wrap(streamer beep.StreamSeekCloser, onDone func()) *beep.Ctrl {
	v.mu.Lock()
	defer v.mu.Unlock()

	if streamer == nil {
		return nil
	}
	v.stream = &effects.Volume{
		Streamer: streamer,
		Base:     2.0,
		Volume:   (v.volume - 1.0) * 2.0,
		Silent:   v.volume == 0.0,
	}
	done := beep.Callback(func() {
		if onDone != nil {
			onDone()
		}
	})
	v.ctrl = &beep.Ctrl{Streamer: beep.Seq(v.stream, done), Paused: true}
	return v.ctrl
}

func (v *volumeControl) SetVolume(volume float64) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if volume < 0.0 || volume > 1.0 {
		return fmt.Errorf("mediaplayer: volume must be within [0.0, 1.0]")
	}
	v.volume = volume
	if v.stream != nil {
		v.stream.Silent = volume == 0.0
		v.stream.Volume = (volume - 1.0) * 2.0
	}
	return nil
}

func (v *volumeControl) Volume() float64 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.volume
}

func (v *volumeControl) Ctrl() *beep.Ctrl {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.ctrl
}

func (v *volumeControl) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.stream = nil
	v.ctrl = nil
}
