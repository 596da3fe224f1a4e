package playlist

import "sort"

// SortKey identifies a field to order items by.
type SortKey int

const (
	SortByTitle SortKey = iota
	SortByDuration
	SortByArtist
	SortByAlbum
	SortByTrackNumber
	SortByTrackID
	SortByURL
	SortByDate
)

// SortOrder is the direction of a single sort criterion.
type SortOrder int

const (
	SortAscending SortOrder = iota
	SortDescending
)

// SortCriterion is one (key, direction) pair. Sort accepts an ordered list
// of these; ties on an earlier criterion are broken by the next one.
type SortCriterion struct {
	Key   SortKey
	Order SortOrder
}

func compareItems(a, b *Item, key SortKey) int {
	ma, mb := a.Media(), b.Media()
	switch key {
	case SortByTitle:
		return compareStrings(ma.Title, mb.Title)
	case SortByDuration:
		return compareInt64(int64(ma.Duration), int64(mb.Duration))
	case SortByArtist:
		return compareStrings(ma.Artist, mb.Artist)
	case SortByAlbum:
		return compareStrings(ma.Album, mb.Album)
	case SortByTrackNumber:
		return compareInt64(int64(ma.TrackNumber), int64(mb.TrackNumber))
	case SortByTrackID:
		return compareInt64(int64(a.ID()), int64(b.ID()))
	case SortByURL:
		return compareStrings(ma.URL, mb.URL)
	case SortByDate:
		return compareInt64(ma.Date.UnixNano(), mb.Date.UnixNano())
	default:
		return 0
	}
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Sort reorders the content store according to an ordered list of
// criteria, using a stable sort so that ties on every criterion preserve
// the items' prior relative order. The currently-playing item's identity
// (not its index) is preserved across the reorder: current is relocated to
// track wherever that Item ends up. The randomizer is untouched; it tracks
// items by identity, not by content-store position.
func (p *Playlist) Sort(criteria []SortCriterion) {
	p.assertLocked()
	if len(p.items) < 2 || len(criteria) == 0 {
		return
	}
	snap := p.snapshot()

	var currentItem *Item
	if p.current >= 0 {
		currentItem = p.items[p.current]
	}

	sort.SliceStable(p.items, func(i, j int) bool {
		for _, c := range criteria {
			cmp := compareItems(p.items[i], p.items[j], c.Key)
			if c.Order == SortDescending {
				cmp = -cmp
			}
			if cmp != 0 {
				return cmp < 0
			}
		}
		return false
	})

	if currentItem != nil {
		p.current = p.indexOfItem(currentItem)
	}

	p.recomputeNav()
	p.emitItemsReset(p.items)
	p.emitDeltas(snap)
	p.player.InvalidateNextMedia()
}
