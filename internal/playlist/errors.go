package playlist

import "errors"

// Error kinds returned by playlist operations. Mutators never return these
// to listeners; a listener only ever observes successful state transitions.
var (
	// ErrOutOfRange is returned by the non-request mutators when an index
	// falls outside the current bounds of the playlist.
	ErrOutOfRange = errors.New("playlist: index out of range")

	// ErrNoItem is returned when a mutator needs to locate a media that is
	// no longer present in the playlist (e.g. expand-from-node after the
	// parent was concurrently removed).
	ErrNoItem = errors.New("playlist: item not found")

	// ErrNoPrev is returned by Prev when HasPrev is false.
	ErrNoPrev = errors.New("playlist: no previous item")

	// ErrNoNext is returned by Next when HasNext is false.
	ErrNoNext = errors.New("playlist: no next item")

	// ErrPlayerRejected is returned when the external player refuses a
	// SetCurrentMedia request.
	ErrPlayerRejected = errors.New("playlist: player rejected media")
)
