package playlist

import (
	"crypto/rand"
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// notSameBefore is the number of items at the tail of a finished cycle that
// must not reappear at the head of the next one.
const notSameBefore = 1

// lcg is a 48-bit linear-congruential generator. It carries no mutex of
// its own; it is protected by the playlist's outer lock.
type lcg struct {
	state uint64
}

const (
	lcgMultiplier = 0x5DEECE66D
	lcgIncrement  = 0xB
	lcgMask       = (1 << 48) - 1
)

func newLCG(seed uint64) *lcg {
	return &lcg{state: (seed ^ lcgMultiplier) & lcgMask}
}

// seedFromCrypto draws entropy from crypto/rand and runs it through
// blake2b so a short read (or a platform RNG with weak local bit mixing)
// still yields a well-distributed 64-bit seed.
func seedFromCrypto() uint64 {
	var buf [32]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand failing is effectively unrecoverable on any real
		// platform; fall back to a fixed seed rather than panic so a
		// degraded-entropy environment still produces a usable shuffle.
		return 0x2545F4914F6CDD1D
	}
	sum := blake2b.Sum512(buf[:])
	return binary.LittleEndian.Uint64(sum[:8])
}

// intn returns a uniform value in [0, n). n must be > 0.
func (g *lcg) intn(n int) int {
	if n <= 1 {
		return 0
	}
	g.state = (g.state*lcgMultiplier + lcgIncrement) & lcgMask
	// Top bits have better statistical quality than the low bits in an LCG.
	return int((g.state >> 17) % uint64(n))
}

// Randomizer produces a bidirectional-navigable random permutation of a
// set of Items. It holds its own ordered view of a subset of the
// playlist's items (kept in sync by the content store calling Add/Remove)
// and is otherwise self-contained: it has no knowledge of the playlist
// beyond the items it holds.
//
// Layout (single slice, three cursors):
//
//	0        next  head            history       N
//	|---------|-----|.............|-------------|
//	 determined                  prior-cycle history
type Randomizer struct {
	items   []*Item
	head    int
	next    int
	history int
	loop    bool
	rng     *lcg
}

func newRandomizer() *Randomizer {
	return &Randomizer{rng: newLCG(seedFromCrypto())}
}

// SetLoop toggles loop mode. Disabling loop is a no-op on state beyond what
// HasNext recomputes; enabling it after a finished cycle means the very
// next PeekNext call triggers the auto-reshuffle.
func (r *Randomizer) SetLoop(loop bool) {
	r.loop = loop
}

func (r *Randomizer) indexOf(it *Item) int {
	for i, x := range r.items {
		if x == it {
			return i
		}
	}
	return -1
}

// Add inserts items at position history, so they join the undetermined
// pool for the current cycle without disturbing already-drawn history.
func (r *Randomizer) Add(items []*Item) {
	n := len(items)
	if n == 0 {
		return
	}
	tail := append([]*Item(nil), r.items[r.history:]...)
	merged := make([]*Item, 0, len(r.items)+n)
	merged = append(merged, r.items[:r.history]...)
	merged = append(merged, items...)
	merged = append(merged, tail...)
	r.items = merged

	if r.next > r.history {
		r.next += n
	}
	r.history += n
}

// Remove drops the given items from the randomizer's view, preserving the
// order of whichever zone each survives in.
func (r *Randomizer) Remove(items []*Item) {
	for _, it := range items {
		idx := r.indexOf(it)
		if idx < 0 {
			continue
		}
		r.removeAt(idx)
	}
}

func (r *Randomizer) removeAt(origIdx int) {
	n := len(r.items)
	index := origIdx

	if index < r.head {
		copy(r.items[index:r.head-1], r.items[index+1:r.head])
		r.head--
		index = r.head
	}
	if index < r.history {
		last := r.history - 1
		r.items[index] = r.items[last]
		r.history--
		index = r.history
	}
	copy(r.items[index:n-1], r.items[index+1:n])
	r.items = r.items[:n-1]

	if origIdx < r.next {
		r.next--
	}
	r.clampNext()
}

func (r *Randomizer) clampNext() {
	n := len(r.items)
	if r.next > n {
		r.next = n
	}
	if r.head > n {
		r.head = n
	}
	if r.history > n {
		r.history = n
	}
}

// fisherYatesStep draws the next undetermined item into the determined
// prefix: pick uniformly from [head, N-avoidTail), swap it into position
// head, advance head (and history too, if the undetermined zone was
// already empty).
func (r *Randomizer) fisherYatesStep(avoidTail int) {
	n := len(r.items)
	rangeEnd := n - avoidTail
	if rangeEnd <= r.head {
		rangeEnd = n
	}
	span := rangeEnd - r.head
	pick := r.head
	if span > 0 {
		pick = r.head + r.rng.intn(span)
	}
	r.items[r.head], r.items[pick] = r.items[pick], r.items[r.head]
	if r.history == r.head {
		r.history++
	}
	r.head++
}

// reshuffle is the auto-reshuffle executed when a loop-mode cycle ends: the
// whole vector becomes the previous cycle's history, then the first
// min(notSameBefore, N-1) items of the new cycle are pre-drawn while
// avoiding the tail of the vector (which holds the most recently played
// items of the cycle that just ended), guaranteeing the non-repetition
// rule at cycle boundaries.
func (r *Randomizer) reshuffle() {
	r.head = 0
	r.next = 0
	r.history = 0

	n := len(r.items)
	predraws := notSameBefore
	if predraws > n-1 {
		predraws = n - 1
	}
	if predraws < 0 {
		predraws = 0
	}
	avoidTail := notSameBefore
	for i := 0; i < predraws; i++ {
		r.fisherYatesStep(avoidTail)
		avoidTail--
	}
}

// PeekNext returns the item the next forward navigation would return,
// without advancing the cursor. It may trigger an auto-reshuffle (loop
// mode, cycle boundary) or a single Fisher-Yates draw as a side effect.
func (r *Randomizer) PeekNext() (*Item, bool) {
	n := len(r.items)
	if n == 0 {
		return nil, false
	}
	if r.next == n {
		if r.loop && r.next == r.history {
			r.reshuffle()
		} else {
			return nil, false
		}
	}
	if r.next == r.head {
		r.fisherYatesStep(0)
	}
	return r.items[r.next], true
}

// Next returns the item PeekNext would have, and advances the cursor. The
// cursor wraps to 0 after consuming the last history-zone item, so that
// next == len(items) only ever holds in the everything-drawn state where
// next == head.
func (r *Randomizer) Next() (*Item, bool) {
	it, ok := r.PeekNext()
	if !ok {
		return nil, false
	}
	r.next++
	if r.next == len(r.items) && r.next != r.head {
		r.next = 0
	}
	return it, true
}

// PeekPrev returns the item the previous navigation would return, without
// moving the cursor.
func (r *Randomizer) PeekPrev() (*Item, bool) {
	n := len(r.items)
	if n == 0 || !r.HasPrev() {
		return nil, false
	}
	idx := modPos(r.next-2, n)
	return r.items[idx], true
}

// Prev returns the item PeekPrev would have, and moves the cursor back.
func (r *Randomizer) Prev() (*Item, bool) {
	it, ok := r.PeekPrev()
	if !ok {
		return nil, false
	}
	n := len(r.items)
	r.next = modPos(r.next-1, n)
	return it, true
}

// HasNext reports whether a forward navigation would succeed.
func (r *Randomizer) HasNext() bool {
	return r.loop || r.next < len(r.items)
}

// HasPrev reports whether a backward navigation would succeed.
func (r *Randomizer) HasPrev() bool {
	n := len(r.items)
	if n == 0 {
		return false
	}
	if !r.loop {
		return r.next > 1
	}
	return modPos(r.next-r.history, n) != 1
}

// Select forces item to be considered "just played": forward navigation
// continues afresh from there. It relocates item to the determined prefix
// (if it wasn't already the most recent draw) and resets next to head.
func (r *Randomizer) Select(item *Item) bool {
	idx := r.indexOf(item)
	if idx < 0 {
		return false
	}

	switch {
	case idx >= r.history:
		// History zone: shift [head, idx) right by one, place item at head.
		v := r.items[idx]
		copy(r.items[r.head+1:idx+1], r.items[r.head:idx])
		r.items[r.head] = v
		r.head++
		if r.history < len(r.items) {
			r.history++
		}
	case idx >= r.head:
		// Undetermined middle: swap into head.
		r.items[idx], r.items[r.head] = r.items[r.head], r.items[idx]
		if r.history == r.head {
			r.history++
		}
		r.head++
	default:
		// Already in the determined prefix, but not the most recent:
		// rotate it to head-1.
		v := r.items[idx]
		copy(r.items[idx:r.head-1], r.items[idx+1:r.head])
		r.items[r.head-1] = v
	}

	r.next = r.head
	return true
}

// Count returns how many items the randomizer currently holds.
func (r *Randomizer) Count() int {
	return len(r.items)
}

func modPos(a, n int) int {
	if n == 0 {
		return 0
	}
	a %= n
	if a < 0 {
		a += n
	}
	return a
}
