package playlist

import "testing"

// TestRequestInsertClampsStaleIndex checks that RequestInsert clamps an
// out-of-range index instead of erroring.
func TestRequestInsertClampsStaleIndex(t *testing.T) {
	p, _ := newTestPlaylist()
	p.Lock()
	defer p.Unlock()

	p.Append(mediaBatch("a", "b"))
	if err := p.RequestInsert(999, mediaBatch("c"), -1); err != nil {
		t.Fatalf("RequestInsert failed: %v", err)
	}
	if got := p.Get(2).Media().URL; got != "c" {
		t.Errorf("Get(2) = %q, want %q (clamped to end)", got, "c")
	}
}

// TestRequestRemoveSkipsMissingItems checks that an item no longer present
// is silently skipped rather than erroring.
func TestRequestRemoveSkipsMissingItems(t *testing.T) {
	p, _ := newTestPlaylist()
	p.Lock()
	defer p.Unlock()

	p.Append(mediaBatch("a", "b", "c"))
	ghost := &Item{id: 9999, media: NewMedia("ghost")}
	target := p.Get(1)

	if err := p.RequestRemove([]*Item{ghost, target}, -1); err != nil {
		t.Fatalf("RequestRemove failed: %v", err)
	}
	if p.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", p.Count())
	}
	if p.IndexOf(target) != -1 {
		t.Error("target item still present after RequestRemove")
	}
}

// TestRequestRemoveCollapsesContiguousSlices checks that removing several
// items whose indices form contiguous runs fires one items_removed event
// per run, descending, independent of later removals.
func TestRequestRemoveCollapsesContiguousSlices(t *testing.T) {
	p, _ := newTestPlaylist()
	p.Lock()
	defer p.Unlock()

	p.Append(mediaBatch("0", "1", "2", "3", "4", "5"))
	toRemove := []*Item{p.Get(1), p.Get(2), p.Get(4)}

	var removedEvents [][2]int
	p.AddListener(&Listener{
		OnItemsRemoved: func(index, count int) {
			removedEvents = append(removedEvents, [2]int{index, count})
		},
	}, false)

	if err := p.RequestRemove(toRemove, -1); err != nil {
		t.Fatalf("RequestRemove failed: %v", err)
	}

	if len(removedEvents) != 2 {
		t.Fatalf("got %d items_removed events, want 2 (one per contiguous run)", len(removedEvents))
	}
	// Descending order: the run at index 4 is removed before [1,2].
	if removedEvents[0] != [2]int{4, 1} {
		t.Errorf("first removal = %v, want {4,1}", removedEvents[0])
	}
	if removedEvents[1] != [2]int{1, 2} {
		t.Errorf("second removal = %v, want {1,2}", removedEvents[1])
	}

	want := []string{"0", "3", "5"}
	for i, w := range want {
		if got := p.Get(i).Media().URL; got != w {
			t.Errorf("Get(%d) = %q, want %q", i, got, w)
		}
	}
}

// TestRequestMovePreservesInputOrder checks that RequestMove brings the
// named items into a contiguous block at target, in the order given.
func TestRequestMovePreservesInputOrder(t *testing.T) {
	p, _ := newTestPlaylist()
	p.Lock()
	defer p.Unlock()

	p.Append(mediaBatch("0", "1", "2", "3", "4"))
	toMove := []*Item{p.Get(3), p.Get(0)}

	if err := p.RequestMove(toMove, 1, -1); err != nil {
		t.Fatalf("RequestMove failed: %v", err)
	}

	if p.Count() != 5 {
		t.Fatalf("Count() = %d, want 5", p.Count())
	}
	if p.IndexOf(toMove[0]) != 1 {
		t.Errorf("moved item[0] landed at %d, want 1", p.IndexOf(toMove[0]))
	}
	if p.IndexOf(toMove[1]) != 2 {
		t.Errorf("moved item[1] landed at %d, want 2", p.IndexOf(toMove[1]))
	}
}

// TestRequestMoveClampsTargetToCurrentEnd checks that target+count is
// clamped against the size observed at execution time.
func TestRequestMoveClampsTargetToCurrentEnd(t *testing.T) {
	p, _ := newTestPlaylist()
	p.Lock()
	defer p.Unlock()

	p.Append(mediaBatch("0", "1", "2"))
	toMove := []*Item{p.Get(0)}

	if err := p.RequestMove(toMove, 100, -1); err != nil {
		t.Fatalf("RequestMove failed: %v", err)
	}
	if p.IndexOf(toMove[0]) != 2 {
		t.Errorf("moved item landed at %d, want 2 (clamped to end)", p.IndexOf(toMove[0]))
	}
}

// TestRequestGoToUsesHintThenScans checks that a correct hint avoids the
// scan and a stale hint still resolves via linear search.
func TestRequestGoToUsesHintThenScans(t *testing.T) {
	p, _ := newTestPlaylist()
	p.Lock()
	defer p.Unlock()

	p.Append(mediaBatch("a", "b", "c"))
	target := p.Get(2)

	if err := p.RequestGoTo(target, 0); err != nil {
		t.Fatalf("RequestGoTo with stale hint failed: %v", err)
	}
	if p.GetCurrentIndex() != 2 {
		t.Errorf("current = %d, want 2", p.GetCurrentIndex())
	}
}

// TestRequestGoToMissingItemIsNoOp checks the "not found" silent-skip
// contract.
func TestRequestGoToMissingItemIsNoOp(t *testing.T) {
	p, _ := newTestPlaylist()
	p.Lock()
	defer p.Unlock()

	p.Append(mediaBatch("a", "b"))
	p.GoTo(0)
	ghost := &Item{id: 9999, media: NewMedia("ghost")}

	if err := p.RequestGoTo(ghost, -1); err != nil {
		t.Fatalf("RequestGoTo with missing item returned error: %v", err)
	}
	if p.GetCurrentIndex() != 0 {
		t.Errorf("current changed to %d on a missing-item request, want unchanged 0", p.GetCurrentIndex())
	}
}
