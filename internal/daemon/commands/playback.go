package commands

import (
	"fmt"
	"log"

	"github.com/cerberussg/playlistcore/internal/mediaplayer"
	"github.com/cerberussg/playlistcore/internal/playlist"
	"github.com/cerberussg/playlistcore/internal/shared"
)

// PlaybackHandler handles play/pause/resume/stop/volume. Pause/Resume/
// Volume talk to the concrete *mediaplayer.Player directly rather than
// through playlist.Player, since the actual pause/resume transition and
// volume level live entirely on the player side (see
// internal/playlist/navigation.go's Pause/Resume doc comment).
type PlaybackHandler struct {
	pl     *playlist.Playlist
	player *mediaplayer.Player
}

// NewPlaybackHandler constructs a PlaybackHandler bound to pl and player.
func NewPlaybackHandler(pl *playlist.Playlist, player *mediaplayer.Player) *PlaybackHandler {
	return &PlaybackHandler{pl: pl, player: player}
}

// HandlePlay starts playback of the current item, selecting the first
// item if none is current yet.
func (h *PlaybackHandler) HandlePlay() shared.Response {
	h.pl.Lock()
	defer h.pl.Unlock()

	if err := h.pl.Start(); err != nil {
		return shared.NewErrorResponse(fmt.Sprintf("play: %v", err))
	}
	log.Println("Playback started")
	return shared.NewSuccessResponse("playback started", nil)
}

// HandlePause pauses the active stream in place.
func (h *PlaybackHandler) HandlePause() shared.Response {
	h.pl.Lock()
	defer h.pl.Unlock()

	if err := h.player.Pause(); err != nil {
		return shared.NewErrorResponse(fmt.Sprintf("pause: %v", err))
	}
	log.Println("Playback paused")
	return shared.NewSuccessResponse("playback paused", nil)
}

// HandleResume un-pauses the active stream.
func (h *PlaybackHandler) HandleResume() shared.Response {
	h.pl.Lock()
	defer h.pl.Unlock()

	if err := h.player.Resume(); err != nil {
		return shared.NewErrorResponse(fmt.Sprintf("resume: %v", err))
	}
	log.Println("Playback resumed")
	return shared.NewSuccessResponse("playback resumed", nil)
}

// HandleStop stops playback and applies the configured stopped-action.
func (h *PlaybackHandler) HandleStop() shared.Response {
	h.pl.Lock()
	defer h.pl.Unlock()

	if err := h.pl.Stop(); err != nil {
		return shared.NewErrorResponse(fmt.Sprintf("stop: %v", err))
	}
	log.Println("Playback stopped")
	return shared.NewSuccessResponse("playback stopped", nil)
}

// HandleVolume gets (cmd.Volume < 0) or sets (0-100) playback volume.
func (h *PlaybackHandler) HandleVolume(cmd shared.Command) shared.Response {
	h.pl.Lock()
	defer h.pl.Unlock()

	if cmd.Volume < 0 {
		percent := int(h.player.Volume() * 100)
		return shared.NewSuccessResponse(fmt.Sprintf("volume: %d%%", percent), map[string]interface{}{
			"volume": h.player.Volume(),
		})
	}

	if cmd.Volume > 100 {
		return shared.NewErrorResponse("volume: must be between 0 and 100")
	}
	if err := h.player.SetVolume(float64(cmd.Volume) / 100.0); err != nil {
		return shared.NewErrorResponse(fmt.Sprintf("volume: %v", err))
	}
	log.Printf("Volume set to %d%%", cmd.Volume)
	return shared.NewSuccessResponse(fmt.Sprintf("volume set to %d%%", cmd.Volume), nil)
}
