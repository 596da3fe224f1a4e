package playlist

// recomputeNav refreshes the cached hasPrev/hasNext predicates from
// current, repeat, order, items.len(), and the randomizer. It does not
// itself emit deltas; callers snapshot before and call emitDeltas after.
func (p *Playlist) recomputeNav() {
	p.hasPrev = p.computeHasPrev()
	p.hasNext = p.computeHasNext()
}

func (p *Playlist) computeHasPrev() bool {
	n := len(p.items)
	if n == 0 {
		return false
	}
	switch {
	case p.order == OrderRandom:
		return p.rnd.HasPrev()
	case p.repeat == RepeatAll:
		return n > 0
	default:
		return p.current > 0
	}
}

func (p *Playlist) computeHasNext() bool {
	n := len(p.items)
	if n == 0 {
		return false
	}
	switch {
	case p.order == OrderRandom:
		return p.rnd.HasNext()
	case p.repeat == RepeatAll:
		return n > 0
	default:
		// also holds with no current item: -1 + 1 < n
		return p.current+1 < n
	}
}

// peekPrevIndex and peekNextIndex resolve the target index for Prev/Next
// without moving current.
func (p *Playlist) peekPrevIndex() (int, bool) {
	n := len(p.items)
	if n == 0 {
		return 0, false
	}
	if p.order == OrderRandom {
		it, ok := p.rnd.PeekPrev()
		if !ok {
			return 0, false
		}
		return p.indexOfItem(it), true
	}
	if p.repeat == RepeatAll {
		if p.current <= 0 {
			return n - 1, true
		}
		return p.current - 1, true
	}
	if p.current <= 0 {
		return 0, false
	}
	return p.current - 1, true
}

func (p *Playlist) peekNextIndex() (int, bool) {
	n := len(p.items)
	if n == 0 {
		return 0, false
	}
	if p.order == OrderRandom {
		it, ok := p.rnd.PeekNext()
		if !ok {
			return 0, false
		}
		return p.indexOfItem(it), true
	}
	if p.repeat == RepeatAll {
		if p.current < 0 || p.current+1 >= n {
			return 0, true
		}
		return p.current + 1, true
	}
	if p.current+1 >= n {
		return 0, false
	}
	// with no current item this yields index 0, the start of the playlist
	return p.current + 1, true
}

// Prev moves current to the previous item per the active order/repeat
// rules, syncing the randomizer's own cursor in random order. Returns
// ErrNoPrev if HasPrev is false.
func (p *Playlist) Prev() error {
	p.assertLocked()
	if !p.hasPrev {
		return ErrNoPrev
	}

	snap := p.snapshot()
	idx, ok := p.peekPrevIndex()
	if !ok {
		return ErrNoPrev
	}
	if p.order == OrderRandom {
		p.rnd.Prev()
	}
	p.current = idx
	p.recomputeNav()
	p.emitDeltas(snap)
	p.player.SetCurrentMedia(p.items[idx].Media())
	return nil
}

// Next moves current to the next item per the active order/repeat rules.
// Returns ErrNoNext if HasNext is false.
func (p *Playlist) Next() error {
	p.assertLocked()
	if !p.hasNext {
		return ErrNoNext
	}

	snap := p.snapshot()
	idx, ok := p.peekNextIndex()
	if !ok {
		return ErrNoNext
	}
	if p.order == OrderRandom {
		p.rnd.Next()
	}
	p.current = idx
	p.recomputeNav()
	p.emitDeltas(snap)
	p.player.SetCurrentMedia(p.items[idx].Media())
	return nil
}

// GoTo sets current to index (or -1 for none). In random order it also
// calls the randomizer's Select so backward/forward history stays
// consistent with the jump.
func (p *Playlist) GoTo(index int) error {
	p.assertLocked()
	if index != -1 && (index < 0 || index >= len(p.items)) {
		return ErrOutOfRange
	}

	snap := p.snapshot()
	p.current = index
	if index >= 0 && p.order == OrderRandom {
		p.rnd.Select(p.items[index])
	}
	p.recomputeNav()
	p.emitDeltas(snap)

	var media *Media
	if index >= 0 {
		media = p.items[index].Media()
	}
	p.player.SetCurrentMedia(media)
	return nil
}

// SetPlaybackRepeat changes the repeat mode and recomputes navigation.
func (p *Playlist) SetPlaybackRepeat(r Repeat) {
	p.assertLocked()
	if p.repeat == r {
		return
	}
	snap := p.snapshot()
	p.repeat = r
	p.rnd.SetLoop(r == RepeatAll)
	p.recomputeNav()
	p.emitDeltas(snap)
	p.player.InvalidateNextMedia()
}

// SetPlaybackOrder changes the order mode. Switching into random order
// re-seeds the randomizer from the current content and selects the
// current item (if any) as "just played", so forward navigation continues
// naturally from here.
func (p *Playlist) SetPlaybackOrder(o Order) {
	p.assertLocked()
	if p.order == o {
		return
	}
	snap := p.snapshot()
	p.order = o
	if o == OrderRandom {
		p.rnd = newRandomizer()
		p.rnd.SetLoop(p.repeat == RepeatAll)
		p.rnd.Add(append([]*Item(nil), p.items...))
		if p.current >= 0 {
			p.rnd.Select(p.items[p.current])
		}
	}
	p.recomputeNav()
	p.emitDeltas(snap)
	p.player.InvalidateNextMedia()
}

// SetMediaStoppedAction changes what happens on an unsolicited Stopped
// report with nothing queued to follow.
func (p *Playlist) SetMediaStoppedAction(a StoppedAction) {
	p.assertLocked()
	if p.stoppedAction == a {
		return
	}
	snap := p.snapshot()
	p.stoppedAction = a
	p.emitDeltas(snap)
}

// Start asks the player to begin playback of the current item (selecting
// the first item if none is current yet).
func (p *Playlist) Start() error {
	p.assertLocked()
	if p.current < 0 {
		if len(p.items) == 0 {
			return ErrNoItem
		}
		return p.GoTo(0)
	}
	return p.player.SetCurrentMedia(p.items[p.current].Media())
}

// Stop asks the player to stop by unloading the current media.
func (p *Playlist) Stop() error {
	p.assertLocked()
	return p.player.SetCurrentMedia(nil)
}

// Pause and Resume are thin convenience wrappers; the actual pause/resume
// transition lives entirely on the player side. The playlist has no
// paused/playing state of its own.
func (p *Playlist) Pause() error {
	p.assertLocked()
	p.player.InvalidateNextMedia()
	return nil
}

func (p *Playlist) Resume() error {
	p.assertLocked()
	if p.current < 0 {
		return p.Start()
	}
	return p.player.SetCurrentMedia(p.items[p.current].Media())
}
