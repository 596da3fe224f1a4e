package commands

import (
	"fmt"

	"github.com/cerberussg/playlistcore/internal/mediaplayer"
	"github.com/cerberussg/playlistcore/internal/playlist"
	"github.com/cerberussg/playlistcore/internal/shared"
)

// InfoHandler handles status/list/export.
type InfoHandler struct {
	pl     *playlist.Playlist
	player *mediaplayer.Player
}

// NewInfoHandler constructs an InfoHandler bound to pl and player.
func NewInfoHandler(pl *playlist.Playlist, player *mediaplayer.Player) *InfoHandler {
	return &InfoHandler{pl: pl, player: player}
}

// HandleStatus returns a full snapshot of the playlist and player state.
func (h *InfoHandler) HandleStatus() shared.Response {
	h.pl.Lock()
	defer h.pl.Unlock()

	position, duration := h.player.Position()

	status := shared.StatusInfo{
		Count:         h.pl.Count(),
		CurrentIndex:  h.pl.GetCurrentIndex(),
		HasPrev:       h.pl.HasPrev(),
		HasNext:       h.pl.HasNext(),
		Repeat:        h.pl.GetPlaybackRepeat().String(),
		Order:         h.pl.GetPlaybackOrder().String(),
		StoppedAction: h.pl.GetMediaStoppedAction().String(),
		Playing:       h.player.IsPlaying(),
		Paused:        h.player.IsPaused(),
		Volume:        int(h.player.Volume() * 100),
		PositionMs:    position,
		DurationMs:    duration,
	}

	if idx := h.pl.GetCurrentIndex(); idx >= 0 {
		info := itemInfo(h.pl, idx)
		status.Current = &info
	}

	return shared.NewSuccessResponse("current status", status)
}

// HandleList returns every item currently in the playlist.
func (h *InfoHandler) HandleList() shared.Response {
	h.pl.Lock()
	defer h.pl.Unlock()

	n := h.pl.Count()
	if n == 0 {
		return shared.NewSuccessResponse("playlist is empty", nil)
	}

	items := make([]shared.ItemInfo, n)
	for i := 0; i < n; i++ {
		items[i] = itemInfo(h.pl, i)
	}
	return shared.NewSuccessResponse(fmt.Sprintf("%d item(s)", n), items)
}

// HandleExport writes the playlist out to cmd.Path in cmd.Format.
func (h *InfoHandler) HandleExport(cmd shared.Command) shared.Response {
	h.pl.Lock()
	defer h.pl.Unlock()

	if cmd.Path == "" {
		return shared.NewErrorResponse("export: no path given")
	}
	format := playlist.Format(cmd.Format)
	if format == "" {
		format = playlist.FormatM3U8
	}
	if err := h.pl.Export(cmd.Path, format); err != nil {
		return shared.NewErrorResponse(fmt.Sprintf("export: %v", err))
	}
	return shared.NewSuccessResponse(fmt.Sprintf("exported to %s", cmd.Path), nil)
}
