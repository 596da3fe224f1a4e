package playlist

import "testing"

// TestNormalOrderNavigation checks has_prev/has_next and prev/next target
// selection under normal order with repeat=None.
func TestNormalOrderNavigation(t *testing.T) {
	p, _ := newTestPlaylist()
	p.Lock()
	defer p.Unlock()

	p.Append(mediaBatch("a", "b", "c"))
	p.GoTo(0)

	if p.HasPrev() {
		t.Error("HasPrev() = true at index 0, want false")
	}
	if !p.HasNext() {
		t.Error("HasNext() = false at index 0 of 3, want true")
	}

	if err := p.Next(); err != nil {
		t.Fatalf("Next() failed: %v", err)
	}
	if p.GetCurrentIndex() != 1 {
		t.Fatalf("current = %d, want 1", p.GetCurrentIndex())
	}

	if err := p.Next(); err != nil {
		t.Fatalf("Next() failed: %v", err)
	}
	if p.HasNext() {
		t.Error("HasNext() = true at last index, want false")
	}
	if err := p.Next(); err != ErrNoNext {
		t.Errorf("Next() at end = %v, want ErrNoNext", err)
	}
}

// TestRepeatAllWraps checks that repeat=All wraps both directions.
func TestRepeatAllWraps(t *testing.T) {
	p, _ := newTestPlaylist()
	p.Lock()
	defer p.Unlock()

	p.Append(mediaBatch("a", "b", "c"))
	p.SetPlaybackRepeat(RepeatAll)
	p.GoTo(2)

	if !p.HasNext() {
		t.Error("HasNext() = false with repeat=All at last index, want true")
	}
	if err := p.Next(); err != nil {
		t.Fatalf("Next() failed: %v", err)
	}
	if p.GetCurrentIndex() != 0 {
		t.Errorf("current after wrap = %d, want 0", p.GetCurrentIndex())
	}

	if err := p.Prev(); err != nil {
		t.Fatalf("Prev() failed: %v", err)
	}
	if p.GetCurrentIndex() != 2 {
		t.Errorf("current after wrap back = %d, want 2", p.GetCurrentIndex())
	}
}

// TestRepeatOneGetNextMedia checks GetNextMedia returns the current media
// unchanged under repeat=One.
func TestRepeatOneGetNextMedia(t *testing.T) {
	p, _ := newTestPlaylist()
	p.Lock()
	defer p.Unlock()

	p.Append(mediaBatch("a", "b", "c"))
	p.GoTo(1)
	p.SetPlaybackRepeat(RepeatOne)

	next := p.GetNextMedia()
	if next == nil || next.URL != "b" {
		t.Errorf("GetNextMedia() = %v, want media 'b'", next)
	}
}

// TestGoToRandomOrderSelectsInRandomizer checks that GoTo in random order
// keeps the randomizer's history consistent with the jump.
func TestGoToRandomOrderSelectsInRandomizer(t *testing.T) {
	p, _ := newTestPlaylist()
	p.Lock()
	defer p.Unlock()

	p.Append(mediaBatch("a", "b", "c", "d"))
	p.SetPlaybackOrder(OrderRandom)

	if err := p.GoTo(2); err != nil {
		t.Fatalf("GoTo failed: %v", err)
	}

	prev, ok := p.rnd.PeekPrev()
	if !ok || prev != p.Get(2) {
		t.Errorf("randomizer PeekPrev() after GoTo = %v, ok=%v; want item at index 2", prev, ok)
	}
}

// TestOnCurrentMediaChangedRefreshesWhenSame checks the bridge's "already
// current" short-circuit.
func TestOnCurrentMediaChangedRefreshesWhenSame(t *testing.T) {
	p, fp := newTestPlaylist()
	p.Lock()
	defer p.Unlock()

	p.Append(mediaBatch("a", "b"))
	p.GoTo(0)
	fp.invalidateCalls = 0

	p.OnCurrentMediaChanged(p.Get(0).Media())

	if p.GetCurrentIndex() != 0 {
		t.Errorf("current changed on a no-op refresh: %d", p.GetCurrentIndex())
	}
	if fp.invalidateCalls != 1 {
		t.Errorf("InvalidateNextMedia calls = %d, want 1", fp.invalidateCalls)
	}
}

// TestOnCurrentMediaChangedLocatesAndJumps checks the bridge relocating
// current to wherever the player-reported media actually lives.
func TestOnCurrentMediaChangedLocatesAndJumps(t *testing.T) {
	p, _ := newTestPlaylist()
	p.Lock()
	defer p.Unlock()

	p.Append(mediaBatch("a", "b", "c"))
	p.GoTo(0)

	p.OnCurrentMediaChanged(p.Get(2).Media())

	if p.GetCurrentIndex() != 2 {
		t.Errorf("current = %d, want 2", p.GetCurrentIndex())
	}
}

// TestHasPrevHasNextAlwaysMatchRecompute is a property check across a
// sequence of mutations.
func TestHasPrevHasNextAlwaysMatchRecompute(t *testing.T) {
	p, _ := newTestPlaylist()
	p.Lock()
	defer p.Unlock()

	check := func(step string) {
		t.Helper()
		if p.hasPrev != p.computeHasPrev() {
			t.Errorf("%s: hasPrev cache out of sync", step)
		}
		if p.hasNext != p.computeHasNext() {
			t.Errorf("%s: hasNext cache out of sync", step)
		}
	}

	p.Append(mediaBatch("a", "b", "c", "d"))
	check("after append")
	p.GoTo(0)
	check("after goto 0")
	p.Next()
	check("after next")
	p.Insert(0, mediaBatch("x"))
	check("after insert")
	p.Remove(0, 1)
	check("after remove")
	p.SetPlaybackRepeat(RepeatAll)
	check("after set repeat all")
	p.SetPlaybackOrder(OrderRandom)
	check("after set order random")
	p.Move(0, 1, 2)
	check("after move")
	p.Clear()
	check("after clear")
}
