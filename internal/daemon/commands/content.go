package commands

import (
	"fmt"
	"log"

	"github.com/cerberussg/playlistcore/internal/playlist"
	"github.com/cerberussg/playlistcore/internal/shared"
)

// ContentHandler handles the content-store commands: insert, append, move,
// remove, replace, expand, clear, sort, shuffle. Moves and removes go
// through the request layer since a playctl client only ever knows item
// ids, which may have drifted out of date by the time the daemon processes
// the command.
type ContentHandler struct {
	pl *playlist.Playlist
}

// NewContentHandler constructs a ContentHandler bound to pl.
func NewContentHandler(pl *playlist.Playlist) *ContentHandler {
	return &ContentHandler{pl: pl}
}

// HandleInsert inserts cmd.Media at cmd.Index, tolerating a stale index.
func (h *ContentHandler) HandleInsert(cmd shared.Command) shared.Response {
	h.pl.Lock()
	defer h.pl.Unlock()

	if err := h.pl.RequestInsert(cmd.Index, mediaFromRefs(cmd.Media), cmd.Hint); err != nil {
		return shared.NewErrorResponse(fmt.Sprintf("insert: %v", err))
	}
	log.Printf("Inserted %d item(s) at index %d", len(cmd.Media), cmd.Index)
	return shared.NewSuccessResponse(fmt.Sprintf("inserted %d item(s)", len(cmd.Media)), nil)
}

// HandleAppend appends cmd.Media to the end of the playlist.
func (h *ContentHandler) HandleAppend(cmd shared.Command) shared.Response {
	h.pl.Lock()
	defer h.pl.Unlock()

	if err := h.pl.Append(mediaFromRefs(cmd.Media)); err != nil {
		return shared.NewErrorResponse(fmt.Sprintf("append: %v", err))
	}
	log.Printf("Appended %d item(s)", len(cmd.Media))
	return shared.NewSuccessResponse(fmt.Sprintf("appended %d item(s)", len(cmd.Media)), nil)
}

// HandleMove relocates the items named by cmd.IDs to cmd.Target.
func (h *ContentHandler) HandleMove(cmd shared.Command) shared.Response {
	h.pl.Lock()
	defer h.pl.Unlock()

	items := itemsFromIDs(h.pl, cmd.IDs)
	if len(items) == 0 {
		return shared.NewErrorResponse("move: no matching item(s)")
	}
	if err := h.pl.RequestMove(items, cmd.Target, cmd.Hint); err != nil {
		return shared.NewErrorResponse(fmt.Sprintf("move: %v", err))
	}
	log.Printf("Moved %d item(s) to %d", len(items), cmd.Target)
	return shared.NewSuccessResponse(fmt.Sprintf("moved %d item(s)", len(items)), nil)
}

// HandleRemove removes the items named by cmd.IDs.
func (h *ContentHandler) HandleRemove(cmd shared.Command) shared.Response {
	h.pl.Lock()
	defer h.pl.Unlock()

	items := itemsFromIDs(h.pl, cmd.IDs)
	if len(items) == 0 {
		return shared.NewErrorResponse("remove: no matching item(s)")
	}
	if err := h.pl.RequestRemove(items, cmd.Hint); err != nil {
		return shared.NewErrorResponse(fmt.Sprintf("remove: %v", err))
	}
	log.Printf("Removed %d item(s)", len(items))
	return shared.NewSuccessResponse(fmt.Sprintf("removed %d item(s)", len(items)), nil)
}

// HandleReplace swaps the item at cmd.Index for cmd.Media[0].
func (h *ContentHandler) HandleReplace(cmd shared.Command) shared.Response {
	h.pl.Lock()
	defer h.pl.Unlock()

	if len(cmd.Media) == 0 {
		return shared.NewErrorResponse("replace: no media given")
	}
	media := mediaFromRefs(cmd.Media[:1])[0]
	if err := h.pl.Replace(cmd.Index, media); err != nil {
		return shared.NewErrorResponse(fmt.Sprintf("replace: %v", err))
	}
	log.Printf("Replaced item at index %d", cmd.Index)
	return shared.NewSuccessResponse("replaced item", nil)
}

// HandleExpand replaces cmd.Index with cmd.Media[0] and inserts
// cmd.Media[1:] right after it.
func (h *ContentHandler) HandleExpand(cmd shared.Command) shared.Response {
	h.pl.Lock()
	defer h.pl.Unlock()

	if len(cmd.Media) == 0 {
		return shared.NewErrorResponse("expand: no media given")
	}
	if err := h.pl.Expand(cmd.Index, mediaFromRefs(cmd.Media)); err != nil {
		return shared.NewErrorResponse(fmt.Sprintf("expand: %v", err))
	}
	log.Printf("Expanded index %d into %d item(s)", cmd.Index, len(cmd.Media))
	return shared.NewSuccessResponse("expanded item", nil)
}

// HandleClear empties the playlist.
func (h *ContentHandler) HandleClear() shared.Response {
	h.pl.Lock()
	defer h.pl.Unlock()

	h.pl.Clear()
	log.Println("Playlist cleared")
	return shared.NewSuccessResponse("playlist cleared", nil)
}

// HandleSort applies cmd.SortKeys/cmd.SortOrders as an ordered list of
// sort criteria, ties broken by each subsequent criterion.
func (h *ContentHandler) HandleSort(cmd shared.Command) shared.Response {
	h.pl.Lock()
	defer h.pl.Unlock()

	if len(cmd.SortKeys) != len(cmd.SortOrders) {
		return shared.NewErrorResponse("sort: sort_keys and sort_orders must be the same length")
	}
	criteria := make([]playlist.SortCriterion, 0, len(cmd.SortKeys))
	for i, k := range cmd.SortKeys {
		key, ok := parseSortKey(k)
		if !ok {
			return shared.NewErrorResponse(fmt.Sprintf("sort: unknown sort key %q", k))
		}
		criteria = append(criteria, playlist.SortCriterion{Key: key, Order: parseSortOrder(cmd.SortOrders[i])})
	}
	h.pl.Sort(criteria)
	log.Printf("Sorted by %d criteria", len(criteria))
	return shared.NewSuccessResponse("sorted", nil)
}

// HandleShuffle rearranges the playlist into a random order.
func (h *ContentHandler) HandleShuffle() shared.Response {
	h.pl.Lock()
	defer h.pl.Unlock()

	h.pl.Shuffle()
	log.Println("Shuffled playlist")
	return shared.NewSuccessResponse("shuffled", nil)
}
