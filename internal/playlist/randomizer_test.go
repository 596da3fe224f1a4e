package playlist

import "testing"

func newTestItems(n int) []*Item {
	items := make([]*Item, n)
	for i := range items {
		items[i] = &Item{id: uint64(i + 1), media: NewMedia("m")}
	}
	return items
}

// TestRandomizerCycleCoverage drives Next() through a full non-loop cycle
// of 100 items and expects all 100 distinct, then HasNext false.
func TestRandomizerCycleCoverage(t *testing.T) {
	r := newRandomizer()
	items := newTestItems(100)
	r.Add(items)

	seen := map[*Item]bool{}
	for i := 0; i < 100; i++ {
		if !r.HasNext() {
			t.Fatalf("HasNext() false at draw %d, want true", i)
		}
		it, ok := r.Next()
		if !ok {
			t.Fatalf("Next() returned ok=false at draw %d", i)
		}
		if seen[it] {
			t.Fatalf("item repeated within one cycle at draw %d", i)
		}
		seen[it] = true
	}
	if r.HasNext() {
		t.Error("HasNext() = true after a full non-loop cycle, want false")
	}
}

// TestRandomizerLoopReshuffle drives 40 draws over 10 items in loop mode;
// every 10-draw window must be a full permutation and the
// first item of a new cycle must never equal the last item of the
// previous cycle (NOT_SAME_BEFORE = 1).
func TestRandomizerLoopReshuffle(t *testing.T) {
	r := newRandomizer()
	r.SetLoop(true)
	items := newTestItems(10)
	r.Add(items)

	var drawn []*Item
	for i := 0; i < 40; i++ {
		if !r.HasNext() {
			t.Fatalf("HasNext() false at draw %d in loop mode, want true", i)
		}
		it, ok := r.Next()
		if !ok {
			t.Fatalf("Next() returned ok=false at draw %d", i)
		}
		drawn = append(drawn, it)
	}

	for cycle := 0; cycle < 4; cycle++ {
		window := drawn[cycle*10 : cycle*10+10]
		seen := map[*Item]bool{}
		for _, it := range window {
			if seen[it] {
				t.Fatalf("cycle %d contains a repeated item", cycle)
			}
			seen[it] = true
		}
	}
	for cycle := 0; cycle < 3; cycle++ {
		lastOfPrev := drawn[cycle*10+9]
		firstOfNext := drawn[(cycle+1)*10]
		if lastOfPrev == firstOfNext {
			t.Errorf("cycle %d: first item of next cycle repeats last item of this one", cycle)
		}
	}
}

// TestRandomizerBackwardIsExactReverse checks that Prev() after a run of
// Next() calls unwinds the drawn sequence in exact reverse order (the last
// draw stays current; Prev steps to the one before it), and that walking
// forward again replays the same permutation.
func TestRandomizerBackwardIsExactReverse(t *testing.T) {
	r := newRandomizer()
	items := newTestItems(8)
	r.Add(items)

	var forward []*Item
	for i := 0; i < 8; i++ {
		it, _ := r.Next()
		forward = append(forward, it)
	}

	for i := len(forward) - 2; i >= 0; i-- {
		if !r.HasPrev() {
			t.Fatalf("HasPrev() false while still unwinding history at i=%d", i)
		}
		it, ok := r.Prev()
		if !ok {
			t.Fatalf("Prev() returned ok=false at i=%d", i)
		}
		if it != forward[i] {
			t.Fatalf("Prev() at step %d returned a different item than forward draw %d", len(forward)-2-i, i)
		}
	}
	if r.HasPrev() {
		t.Error("HasPrev() = true after unwinding all history, want false")
	}

	for i := 1; i < len(forward); i++ {
		if !r.HasNext() {
			t.Fatalf("HasNext() false while replaying forward at i=%d", i)
		}
		it, ok := r.Next()
		if !ok || it != forward[i] {
			t.Fatalf("replayed draw %d differs from the original sequence", i)
		}
	}
}

// TestRandomizerAddDoesNotDisturbHistory checks that items added mid-cycle
// join the undetermined pool without being drawable again among history.
func TestRandomizerAddDoesNotDisturbHistory(t *testing.T) {
	r := newRandomizer()
	items := newTestItems(5)
	r.Add(items)

	first, _ := r.Next()
	second, _ := r.Next()

	extra := newTestItems(2)
	for i, it := range extra {
		it.id = uint64(100 + i)
	}
	r.Add(extra)

	// Drawing through the rest of the cycle must never repeat first/second.
	seen := map[*Item]bool{first: true, second: true}
	for r.HasNext() {
		it, ok := r.Next()
		if !ok {
			break
		}
		if seen[it] {
			t.Fatalf("item %v repeated after mid-cycle Add", it)
		}
		seen[it] = true
	}
	if len(seen) != 7 {
		t.Errorf("total distinct draws = %d, want 7", len(seen))
	}
}

// TestRandomizerRemoveKeepsCursorValid removes an already-drawn item and
// an undrawn item, then checks the remaining draws still cover the rest
// exactly once.
func TestRandomizerRemoveKeepsCursorValid(t *testing.T) {
	r := newRandomizer()
	items := newTestItems(6)
	r.Add(items)

	drawn, _ := r.Next()
	r.Remove([]*Item{drawn})

	toDrop := items[len(items)-1]
	if toDrop != drawn {
		r.Remove([]*Item{toDrop})
	}

	seen := map[*Item]bool{}
	for r.HasNext() {
		it, ok := r.Next()
		if !ok {
			break
		}
		if seen[it] {
			t.Fatalf("item repeated after Remove")
		}
		seen[it] = true
	}
	if r.Count() != len(seen) {
		t.Errorf("drew %d distinct items, want %d (Count())", len(seen), r.Count())
	}
}

// TestRandomizerSelectForcesJustPlayed checks that Select relocates an
// item into the determined prefix and that forward navigation continues
// from there.
func TestRandomizerSelectForcesJustPlayed(t *testing.T) {
	r := newRandomizer()
	items := newTestItems(5)
	r.Add(items)

	target := items[3]
	if !r.Select(target) {
		t.Fatal("Select returned false for a present item")
	}

	if r.next != r.head {
		t.Errorf("next = %d after Select, want head (%d)", r.next, r.head)
	}
	if got := r.items[r.next-1]; got != target {
		t.Errorf("item at next-1 = %v, want the selected item (just played)", got)
	}

	seen := map[*Item]bool{target: true}
	for r.HasNext() {
		it, ok := r.Next()
		if !ok {
			break
		}
		if seen[it] {
			t.Fatalf("item repeated after Select")
		}
		seen[it] = true
	}
	if len(seen) != 5 {
		t.Errorf("total distinct draws after Select = %d, want 5", len(seen))
	}
}

// TestRandomizerSelectHistoryZoneAdvancesHistory reproduces a genuine
// history zone ([history, N) nonempty, i.e. a cycle still in progress with
// items preserved from the prior cycle not yet redrawn) and calls Select on
// an item sitting inside it. history must advance along with head, or
// HasPrev()/HasNext() disagree with the recomputed invariant: a stale
// history leaves an already-consumed item misfiled as "history", making
// HasPrev() wrongly report true when nothing is left to go back to.
func TestRandomizerSelectHistoryZoneAdvancesHistory(t *testing.T) {
	r := newRandomizer()
	r.SetLoop(true)
	items := newTestItems(4)
	r.Add(items)

	// items=[A,B,C,D], head=0, history=3: [0,3) undetermined, {D} is the
	// sole history-zone item, mirroring the layout that exposed the bug.
	// Loop mode is required to reach HasPrev's modPos(next-history,n)
	// formula that the bug corrupts.
	r.head = 0
	r.history = 3
	r.next = 0

	target := items[3]
	if !r.Select(target) {
		t.Fatal("Select returned false for a present item")
	}

	if r.head != 1 {
		t.Errorf("head = %d after Select, want 1", r.head)
	}
	if r.next != 1 {
		t.Errorf("next = %d after Select, want 1", r.next)
	}
	if r.history != len(r.items) {
		t.Errorf("history = %d after Select absorbed the last history item, want %d (no history zone left)", r.history, len(r.items))
	}

	wantHasPrev := modPos(r.next-r.history, len(r.items)) != 1
	if got := r.HasPrev(); got != wantHasPrev {
		t.Errorf("HasPrev() = %v, want %v (recomputed from next/history/loop)", got, wantHasPrev)
	}
	if wantHasPrev {
		t.Error("computeHasPrev-equivalent unexpectedly true: history was just fully consumed, nothing to go back to")
	}
}
