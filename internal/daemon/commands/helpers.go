// Package commands holds the daemon's per-concern command handlers: one
// handler type per group of shared.Command verbs, each constructed with
// the collaborators it needs and nothing else.
package commands

import (
	"github.com/cerberussg/playlistcore/internal/playlist"
	"github.com/cerberussg/playlistcore/internal/shared"
)

// mediaFromRefs builds playlist.Media handles from the wire representation.
func mediaFromRefs(refs []shared.MediaRef) []*playlist.Media {
	out := make([]*playlist.Media, len(refs))
	for i, r := range refs {
		m := playlist.NewMedia(r.URL)
		m.Title = r.Title
		m.Artist = r.Artist
		m.Album = r.Album
		m.TrackNumber = r.TrackNumber
		out[i] = m
	}
	return out
}

// itemsFromIDs resolves each id to its current *playlist.Item, skipping
// any id no longer present (it was concurrently removed), matching the
// silently-skip contract of the request layer.
func itemsFromIDs(pl *playlist.Playlist, ids []uint64) []*playlist.Item {
	var out []*playlist.Item
	for _, id := range ids {
		idx := pl.IndexOfID(id)
		if idx < 0 {
			continue
		}
		out = append(out, pl.Get(idx))
	}
	return out
}

func parseRepeat(s string) playlist.Repeat {
	switch s {
	case "all":
		return playlist.RepeatAll
	case "one":
		return playlist.RepeatOne
	default:
		return playlist.RepeatNone
	}
}

func parseOrder(s string) playlist.Order {
	if s == "random" {
		return playlist.OrderRandom
	}
	return playlist.OrderNormal
}

func parseStoppedAction(s string) playlist.StoppedAction {
	switch s {
	case "pause":
		return playlist.StoppedPause
	case "stop":
		return playlist.StoppedStop
	case "exit":
		return playlist.StoppedExit
	default:
		return playlist.StoppedContinue
	}
}

func parseSortKey(s string) (playlist.SortKey, bool) {
	switch s {
	case "title":
		return playlist.SortByTitle, true
	case "duration":
		return playlist.SortByDuration, true
	case "artist":
		return playlist.SortByArtist, true
	case "album":
		return playlist.SortByAlbum, true
	case "track_number":
		return playlist.SortByTrackNumber, true
	case "track_id":
		return playlist.SortByTrackID, true
	case "url":
		return playlist.SortByURL, true
	case "date":
		return playlist.SortByDate, true
	default:
		return 0, false
	}
}

func parseSortOrder(s string) playlist.SortOrder {
	if s == "desc" {
		return playlist.SortDescending
	}
	return playlist.SortAscending
}

// itemInfo builds the wire representation of one playlist item.
func itemInfo(pl *playlist.Playlist, index int) shared.ItemInfo {
	it := pl.Get(index)
	m := it.Media()
	return shared.ItemInfo{
		ID:         it.ID(),
		URL:        m.URL,
		Title:      m.Title,
		Artist:     m.Artist,
		Album:      m.Album,
		DurationMs: m.Duration.Milliseconds(),
		IsCurrent:  index == pl.GetCurrentIndex(),
	}
}
