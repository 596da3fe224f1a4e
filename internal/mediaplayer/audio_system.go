package mediaplayer

import (
	"fmt"
	"runtime"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/sirupsen/logrus"
)

// audioSystem owns the one-time global speaker.Init call and its fallback
// strategies: a real sound card may reject the stream's native sample rate,
// so initialization retries at progressively safer rates before giving up.
type audioSystem struct {
	initialized bool
	log         *logrus.Logger
}

func newAudioSystem(log *logrus.Logger) *audioSystem {
	return &audioSystem{log: log}
}

func (a *audioSystem) IsInitialized() bool { return a.initialized }

func (a *audioSystem) Initialize(format beep.Format) error {
	if a.initialized {
		return nil
	}
	if format.SampleRate == 0 {
		return fmt.Errorf("mediaplayer: invalid sample rate 0")
	}

	bufferSize := format.SampleRate.N(time.Second / 10)
	if err := speaker.Init(format.SampleRate, bufferSize); err == nil {
		a.log.WithFields(logrus.Fields{"sample_rate": format.SampleRate, "buffer": bufferSize}).Debug("speaker initialized")
		a.initialized = true
		return nil
	} else {
		a.log.WithError(err).Debug("speaker init failed at native rate, widening buffer")
	}

	bufferSize = format.SampleRate.N(time.Second / 5)
	if err := speaker.Init(format.SampleRate, bufferSize); err == nil {
		a.initialized = true
		return nil
	}

	for _, rate := range []beep.SampleRate{44100, 48000, 22050, 16000} {
		if rate == format.SampleRate {
			continue
		}
		bufferSize = rate.N(time.Second / 10)
		if err := speaker.Init(rate, bufferSize); err == nil {
			a.log.WithField("fallback_rate", rate).Warn("speaker initialized at fallback sample rate")
			a.initialized = true
			return nil
		}
	}

	return fmt.Errorf("mediaplayer: speaker init failed on every strategy (%s)", platformHint())
}

func platformHint() string {
	switch runtime.GOOS {
	case "linux":
		return "check ALSA is installed and the process user is in the audio group"
	case "darwin":
		return "check AudioToolbox.framework is available"
	case "windows":
		return "check audio drivers and that no other process holds the device exclusively"
	default:
		return "check platform audio drivers"
	}
}
