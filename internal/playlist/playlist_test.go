package playlist

import "testing"

// fakePlayer is a test double for Player: it just records the last call
// so scenario tests can assert the bridge fired the right request without
// needing a real decoder.
type fakePlayer struct {
	current         *Media
	invalidateCalls int
	rejectNext      bool
}

func (f *fakePlayer) SetCurrentMedia(media *Media) error {
	if f.rejectNext {
		f.rejectNext = false
		return ErrPlayerRejected
	}
	f.current = media
	return nil
}

func (f *fakePlayer) InvalidateNextMedia() {
	f.invalidateCalls++
}

func newTestPlaylist() (*Playlist, *fakePlayer) {
	var fp *fakePlayer
	factory := func(sink PlaylistSink) Player {
		fp = &fakePlayer{}
		return fp
	}
	p := New(factory, PreparseDisabled, 1, 0)
	return p, fp
}

func mediaBatch(urls ...string) []*Media {
	out := make([]*Media, len(urls))
	for i, u := range urls {
		out[i] = NewMedia(u)
	}
	return out
}

// TestAppendAndIndex appends five items and checks the basic
// content-store/navigation invariants on a fresh playlist.
func TestAppendAndIndex(t *testing.T) {
	p, _ := newTestPlaylist()
	p.Lock()
	defer p.Unlock()

	if err := p.Append(mediaBatch("a", "b", "c", "d", "e")); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	if got := p.Count(); got != 5 {
		t.Fatalf("Count() = %d, want 5", got)
	}
	if got := p.Get(3).Media().URL; got != "d" {
		t.Errorf("Get(3).Media().URL = %q, want %q", got, "d")
	}
	if got := p.GetCurrentIndex(); got != -1 {
		t.Errorf("GetCurrentIndex() = %d, want -1", got)
	}
	if p.HasPrev() {
		t.Error("HasPrev() = true, want false")
	}
	if !p.HasNext() {
		t.Error("HasNext() = false, want true")
	}
}

// TestInsertShiftsCurrent checks that inserting before the current index
// shifts it forward by the inserted count.
func TestInsertShiftsCurrent(t *testing.T) {
	p, _ := newTestPlaylist()
	p.Lock()
	defer p.Unlock()

	p.Append(mediaBatch("0", "1", "2", "3", "4"))
	if err := p.GoTo(0); err != nil {
		t.Fatalf("GoTo(0) failed: %v", err)
	}

	var addedIndex int
	var addedCount int
	var currentAtCallback int
	p.AddListener(&Listener{
		OnItemsAdded: func(index int, items []*Item) {
			addedIndex = index
			addedCount = len(items)
			currentAtCallback = p.current
		},
	}, false)

	if err := p.Insert(0, mediaBatch("x", "y", "z", "w")); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	if p.current != 4 {
		t.Errorf("current = %d, want 4", p.current)
	}
	if got := p.Get(4).Media().URL; got != "0" {
		t.Errorf("Get(4).Media().URL = %q, want %q", got, "0")
	}
	if !p.HasPrev() {
		t.Error("HasPrev() = false, want true")
	}
	if addedIndex != 0 || addedCount != 4 {
		t.Errorf("OnItemsAdded(%d, count=%d), want (0, 4)", addedIndex, addedCount)
	}
	if currentAtCallback != 4 {
		t.Errorf("current observed inside callback = %d, want 4 (post-mutation state)", currentAtCallback)
	}
}

// TestMoveAcrossCurrent checks that current follows its item when the
// slice containing it is moved.
func TestMoveAcrossCurrent(t *testing.T) {
	p, _ := newTestPlaylist()
	p.Lock()
	defer p.Unlock()

	p.Append(mediaBatch("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"))
	p.GoTo(3)

	var fired bool
	var firedTo int
	p.AddListener(&Listener{
		OnCurrentIndexChanged: func(idx int) {
			fired = true
			firedTo = idx
		},
	}, false)

	if err := p.Move(1, 3, 5); err != nil {
		t.Fatalf("Move failed: %v", err)
	}

	want := []string{"0", "4", "5", "6", "7", "1", "2", "3", "8", "9"}
	for i, w := range want {
		if got := p.Get(i).Media().URL; got != w {
			t.Errorf("Get(%d) = %q, want %q", i, got, w)
		}
	}
	if p.current != 7 {
		t.Errorf("current = %d, want 7", p.current)
	}
	if !fired || firedTo != 7 {
		t.Errorf("OnCurrentIndexChanged fired=%v to=%d, want fired with 7", fired, firedTo)
	}
}

// TestRemoveIncludingCurrent checks that removing a range containing the
// current item makes the item that slid into the gap current, and that the
// player is told to load it.
func TestRemoveIncludingCurrent(t *testing.T) {
	p, fp := newTestPlaylist()
	p.Lock()
	defer p.Unlock()

	p.Append(mediaBatch("0", "1", "2", "3", "4"))
	p.GoTo(2)

	if err := p.Remove(1, 2); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	if got := p.Count(); got != 3 {
		t.Fatalf("Count() = %d, want 3", got)
	}
	if p.current != 1 {
		t.Errorf("current = %d, want 1", p.current)
	}
	if got := p.Get(1).Media().URL; got != "3" {
		t.Errorf("Get(1).Media().URL = %q, want %q", got, "3")
	}
	if fp.current == nil || fp.current.URL != "3" {
		t.Errorf("player.current = %v, want media '3'", fp.current)
	}
}

// TestIndexOfRoundTrip checks IndexOf(Get(i)) == i for all i.
func TestIndexOfRoundTrip(t *testing.T) {
	p, _ := newTestPlaylist()
	p.Lock()
	defer p.Unlock()

	p.Append(mediaBatch("a", "b", "c", "d"))
	for i := 0; i < p.Count(); i++ {
		if got := p.IndexOf(p.Get(i)); got != i {
			t.Errorf("IndexOf(Get(%d)) = %d, want %d", i, got, i)
		}
	}
}

// TestUniqueIDs checks that ids assigned across several mutations stay
// unique.
func TestUniqueIDs(t *testing.T) {
	p, _ := newTestPlaylist()
	p.Lock()
	defer p.Unlock()

	p.Append(mediaBatch("a", "b", "c"))
	p.Remove(1, 1)
	p.Insert(0, mediaBatch("x"))
	p.Append(mediaBatch("y"))

	seen := map[uint64]bool{}
	for i := 0; i < p.Count(); i++ {
		id := p.Get(i).ID()
		if seen[id] {
			t.Fatalf("duplicate id %d at index %d", id, i)
		}
		seen[id] = true
	}
}

// TestClearResetsEverything checks Clear's contract: empty content,
// current == -1, player told to stop.
func TestClearResetsEverything(t *testing.T) {
	p, fp := newTestPlaylist()
	p.Lock()
	defer p.Unlock()

	p.Append(mediaBatch("a", "b", "c"))
	p.GoTo(1)
	fp.current = p.Get(1).Media()

	p.Clear()

	if p.Count() != 0 {
		t.Errorf("Count() = %d, want 0", p.Count())
	}
	if p.current != -1 {
		t.Errorf("current = %d, want -1", p.current)
	}
	if fp.current != nil {
		t.Errorf("player.current = %v, want nil", fp.current)
	}
}

// TestExpandReplacesAndInserts checks Expand's atomic replace-and-insert
// contract, including the current-media-reload branch.
func TestExpandReplacesAndInserts(t *testing.T) {
	p, fp := newTestPlaylist()
	p.Lock()
	defer p.Unlock()

	p.Append(mediaBatch("album", "next"))
	p.GoTo(0)

	if err := p.Expand(0, mediaBatch("track1", "track2", "track3")); err != nil {
		t.Fatalf("Expand failed: %v", err)
	}

	if got := p.Count(); got != 4 {
		t.Fatalf("Count() = %d, want 4", got)
	}
	want := []string{"track1", "track2", "track3", "next"}
	for i, w := range want {
		if got := p.Get(i).Media().URL; got != w {
			t.Errorf("Get(%d) = %q, want %q", i, got, w)
		}
	}
	if p.current != 0 {
		t.Errorf("current = %d, want 0", p.current)
	}
	if fp.current == nil || fp.current.URL != "track1" {
		t.Errorf("player.current = %v, want media 'track1' (reload on expand-of-current)", fp.current)
	}
}

// TestReplaceKeepsNavInvariantInRandomOrder checks that Replace refreshes
// hasPrev/hasNext the same way every other mutator does. In random order,
// swapping an item resyncs the randomizer's own cursor, so HasPrev()/
// HasNext() must be recomputed rather than left stale.
func TestReplaceKeepsNavInvariantInRandomOrder(t *testing.T) {
	p, _ := newTestPlaylist()
	p.Lock()
	defer p.Unlock()

	p.Append(mediaBatch("a", "b", "c", "d"))
	p.SetPlaybackOrder(OrderRandom)
	p.GoTo(0)

	if err := p.Replace(1, NewMedia("e")); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	if got, want := p.HasPrev(), p.computeHasPrev(); got != want {
		t.Errorf("HasPrev() = %v, want %v (computeHasPrev)", got, want)
	}
	if got, want := p.HasNext(), p.computeHasNext(); got != want {
		t.Errorf("HasNext() = %v, want %v (computeHasNext)", got, want)
	}
}
