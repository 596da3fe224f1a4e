package commands

import (
	"fmt"
	"log"

	"github.com/cerberussg/playlistcore/internal/playlist"
	"github.com/cerberussg/playlistcore/internal/shared"
)

// NavigationHandler handles next/prev/goto and the repeat/order/
// stopped-action setters.
type NavigationHandler struct {
	pl *playlist.Playlist
}

// NewNavigationHandler constructs a NavigationHandler bound to pl.
func NewNavigationHandler(pl *playlist.Playlist) *NavigationHandler {
	return &NavigationHandler{pl: pl}
}

// HandleNext advances cmd.Count steps (default 1), stopping early if
// HasNext becomes false.
func (h *NavigationHandler) HandleNext(cmd shared.Command) shared.Response {
	h.pl.Lock()
	defer h.pl.Unlock()

	count := cmd.Count
	if count <= 0 {
		count = 1
	}

	advanced := 0
	for i := 0; i < count; i++ {
		if err := h.pl.Next(); err != nil {
			break
		}
		advanced++
	}
	if advanced == 0 {
		return shared.NewErrorResponse("next: already at the end of the playlist")
	}
	log.Printf("Advanced %d item(s), now at index %d", advanced, h.pl.GetCurrentIndex())
	return shared.NewSuccessResponse(fmt.Sprintf("advanced %d item(s)", advanced), nil)
}

// HandlePrev steps back cmd.Count times (default 1).
func (h *NavigationHandler) HandlePrev(cmd shared.Command) shared.Response {
	h.pl.Lock()
	defer h.pl.Unlock()

	count := cmd.Count
	if count <= 0 {
		count = 1
	}

	moved := 0
	for i := 0; i < count; i++ {
		if err := h.pl.Prev(); err != nil {
			break
		}
		moved++
	}
	if moved == 0 {
		return shared.NewErrorResponse("prev: already at the start of the playlist")
	}
	log.Printf("Moved back %d item(s), now at index %d", moved, h.pl.GetCurrentIndex())
	return shared.NewSuccessResponse(fmt.Sprintf("moved back %d item(s)", moved), nil)
}

// HandleGoTo jumps to the item named by cmd.IDs[0].
func (h *NavigationHandler) HandleGoTo(cmd shared.Command) shared.Response {
	h.pl.Lock()
	defer h.pl.Unlock()

	if len(cmd.IDs) == 0 {
		return shared.NewErrorResponse("goto: no item id given")
	}
	idx := h.pl.IndexOfID(cmd.IDs[0])
	if idx < 0 {
		return shared.NewErrorResponse("goto: item not found")
	}
	item := h.pl.Get(idx)
	if err := h.pl.RequestGoTo(item, cmd.Hint); err != nil {
		return shared.NewErrorResponse(fmt.Sprintf("goto: %v", err))
	}
	log.Printf("Jumped to index %d", h.pl.GetCurrentIndex())
	return shared.NewSuccessResponse("jumped", nil)
}

// HandleSetRepeat changes the repeat mode.
func (h *NavigationHandler) HandleSetRepeat(cmd shared.Command) shared.Response {
	h.pl.Lock()
	defer h.pl.Unlock()

	h.pl.SetPlaybackRepeat(parseRepeat(cmd.Repeat))
	log.Printf("Repeat set to %s", h.pl.GetPlaybackRepeat())
	return shared.NewSuccessResponse(fmt.Sprintf("repeat set to %s", h.pl.GetPlaybackRepeat()), nil)
}

// HandleSetOrder changes the order mode.
func (h *NavigationHandler) HandleSetOrder(cmd shared.Command) shared.Response {
	h.pl.Lock()
	defer h.pl.Unlock()

	h.pl.SetPlaybackOrder(parseOrder(cmd.Order))
	log.Printf("Order set to %s", h.pl.GetPlaybackOrder())
	return shared.NewSuccessResponse(fmt.Sprintf("order set to %s", h.pl.GetPlaybackOrder()), nil)
}

// HandleSetStoppedAction changes what happens on an unsolicited Stopped
// report with nothing queued to follow.
func (h *NavigationHandler) HandleSetStoppedAction(cmd shared.Command) shared.Response {
	h.pl.Lock()
	defer h.pl.Unlock()

	h.pl.SetMediaStoppedAction(parseStoppedAction(cmd.StoppedAction))
	log.Printf("Stopped-action set to %s", h.pl.GetMediaStoppedAction())
	return shared.NewSuccessResponse(fmt.Sprintf("stopped-action set to %s", h.pl.GetMediaStoppedAction()), nil)
}
