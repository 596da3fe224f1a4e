package playlist

import "sync/atomic"

// Item is an immutable handle pairing a playlist-scoped id with a Media
// reference. Once inserted, an Item's id never changes; two Items may
// legitimately wrap the same Media.
type Item struct {
	rc    atomic.Int32
	id    uint64
	media *Media
}

// ID returns the item's playlist-scoped identity.
func (it *Item) ID() uint64 {
	return it.id
}

// Media returns the media this item wraps.
func (it *Item) Media() *Media {
	return it.media
}

// hold increments the item's reference count and holds its media too, for
// callers (listener notifications) that need to keep the item alive across
// a lock release. Returns it for chaining at the capture site.
func (it *Item) hold() *Item {
	it.rc.Add(1)
	it.media.Hold()
	return it
}

// release is the inverse of hold.
func (it *Item) release() {
	it.rc.Add(-1)
	it.media.Release()
}

// RefCount returns the item's current reference count, chiefly for tests.
func (it *Item) RefCount() int32 {
	return it.rc.Load()
}

// newItem constructs an Item with a freshly assigned id and an initial
// reference count of one. Callers must hold the playlist lock.
func (p *Playlist) newItem(media *Media) *Item {
	p.idGen++
	it := &Item{id: p.idGen, media: media}
	it.rc.Store(1)
	return it
}
