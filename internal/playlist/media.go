package playlist

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Media is an opaque, externally-defined descriptor of playable content.
// Two Items may reference the same Media; the playlist never mutates a
// Media's fields after construction, so it is safe to share across the
// listener callbacks that fire while the playlist lock is held.
type Media struct {
	rc atomic.Int32

	// ExternalRef correlates this Media with bookkeeping kept by an
	// external collaborator (the preparser, an autodiscovery source) that
	// has no other stable handle into the playlist's id space.
	ExternalRef uuid.UUID

	URL         string
	Title       string
	Artist      string
	Album       string
	TrackNumber int
	Duration    time.Duration
	Date        time.Time
	Meta        map[string]string
}

// NewMedia constructs a Media with a freshly-assigned ExternalRef and an
// initial reference count of one.
func NewMedia(url string) *Media {
	m := &Media{URL: url, ExternalRef: uuid.New()}
	m.rc.Store(1)
	return m
}

// Hold increments the reference count and returns m, so that callers can
// write `held := m.Hold()` at a capture site.
func (m *Media) Hold() *Media {
	if m == nil {
		return nil
	}
	m.rc.Add(1)
	return m
}

// Release decrements the reference count. The zero-count case has nothing
// to free in a garbage-collected runtime; the count exists so ownership
// is observable and testable.
func (m *Media) Release() {
	if m == nil {
		return
	}
	m.rc.Add(-1)
}

// RefCount returns the current reference count, chiefly for tests.
func (m *Media) RefCount() int32 {
	if m == nil {
		return 0
	}
	return m.rc.Load()
}

// Equal reports whether two Media handles refer to the same underlying
// descriptor. The playlist never compares Media by value since two Items
// may legitimately carry equal-but-distinct Media contents.
func (m *Media) Equal(other *Media) bool {
	return m == other
}
