// Package playlist implements a playback playlist engine: an ordered,
// mutable collection of media references that drives a media player
// through a sequence of items under user control.
package playlist

import "sync"

// Playlist is the content store, navigation state machine, and randomizer
// bound together behind a single coarse lock that is shared with the
// external player.
//
// All public methods require the caller to hold the lock (via Lock/Unlock)
// except New, Lock, Unlock, and TryLock. In debug builds this is asserted
// via assertLocked, which exploits sync.Mutex.TryLock to detect a missing
// Lock call without adding a second bookkeeping field that could itself
// drift out of sync with the real mutex state.
type Playlist struct {
	lock sync.Mutex

	items []*Item
	idGen uint64

	current       int // -1 means "none"
	hasPrev       bool
	hasNext       bool
	repeat        Repeat
	order         Order
	stoppedAction StoppedAction

	rnd *Randomizer

	listeners []*Listener

	player          Player
	onExitRequested func()

	preparser       Preparser
	preparseMode    PreparseMode
	preparseThreads int
}

// New constructs a Playlist, builds its player via factory, and wires up a
// built-in bounded-concurrency preparser sized by preparseThreads (see
// preparse.go). preparseTimeoutMillis bounds how long the built-in
// preparser will wait for a single item before giving up on it; 0 means no
// timeout.
func New(factory PlayerFactory, preparseMode PreparseMode, preparseThreads int, preparseTimeoutMillis int) *Playlist {
	p := &Playlist{
		current: -1,
		rnd:     newRandomizer(),
	}
	p.player = factory(p)
	p.preparseMode = preparseMode
	p.preparseThreads = preparseThreads
	if preparseMode != PreparseDisabled {
		p.preparser = newWorkerPool(preparseThreads, preparseTimeoutMillis)
	}
	return p
}

// SetPreparser overrides the built-in preparser with an externally-owned
// one (e.g. internal/preparser.Pool, which understands subtree expansion).
// Requires the playlist lock held.
func (p *Playlist) SetPreparser(pp Preparser) {
	p.assertLocked()
	p.preparser = pp
}

// Lock acquires the playlist's coarse lock. Every other exported method
// (besides Lock/Unlock/TryLock/New) requires it held by the caller.
func (p *Playlist) Lock() { p.lock.Lock() }

// Unlock releases the playlist's coarse lock.
func (p *Playlist) Unlock() { p.lock.Unlock() }

// assertLocked panics if called without the playlist lock held. It relies
// on sync.Mutex.TryLock: if the lock can be acquired here, it wasn't held.
func (p *Playlist) assertLocked() {
	if p.lock.TryLock() {
		p.lock.Unlock()
		panic("playlist: method called without the playlist lock held")
	}
}

// Count returns the number of items currently in the playlist.
func (p *Playlist) Count() int {
	p.assertLocked()
	return len(p.items)
}

// Get returns the item at index i.
func (p *Playlist) Get(i int) *Item {
	p.assertLocked()
	return p.items[i]
}

// IndexOf returns the index of item, or -1 if it is not present.
func (p *Playlist) IndexOf(item *Item) int {
	p.assertLocked()
	return p.indexOfItem(item)
}

func (p *Playlist) indexOfItem(item *Item) int {
	for i, it := range p.items {
		if it == item {
			return i
		}
	}
	return -1
}

// IndexOfMedia returns the index of the first item wrapping media, or -1.
func (p *Playlist) IndexOfMedia(media *Media) int {
	p.assertLocked()
	return p.indexOfMediaLocked(media)
}

func (p *Playlist) indexOfMediaLocked(media *Media) int {
	for i, it := range p.items {
		if it.Media().Equal(media) {
			return i
		}
	}
	return -1
}

// IndexOfID returns the index of the item with the given id, or -1.
func (p *Playlist) IndexOfID(id uint64) int {
	p.assertLocked()
	for i, it := range p.items {
		if it.ID() == id {
			return i
		}
	}
	return -1
}

// GetCurrentIndex returns the index of the currently-playing item, or -1.
func (p *Playlist) GetCurrentIndex() int {
	p.assertLocked()
	return p.current
}

// HasPrev reports whether Prev() would succeed.
func (p *Playlist) HasPrev() bool {
	p.assertLocked()
	return p.hasPrev
}

// HasNext reports whether Next() would succeed.
func (p *Playlist) HasNext() bool {
	p.assertLocked()
	return p.hasNext
}

// GetPlaybackRepeat returns the current repeat mode.
func (p *Playlist) GetPlaybackRepeat() Repeat {
	p.assertLocked()
	return p.repeat
}

// GetPlaybackOrder returns the current order mode.
func (p *Playlist) GetPlaybackOrder() Order {
	p.assertLocked()
	return p.order
}

// GetMediaStoppedAction returns the current stopped-action.
func (p *Playlist) GetMediaStoppedAction() StoppedAction {
	p.assertLocked()
	return p.stoppedAction
}
