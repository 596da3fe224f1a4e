package playlist

// Insert creates new items wrapping media (preserving input order) and
// splices them in at index. Requires index <= Count().
func (p *Playlist) Insert(index int, media []*Media) error {
	p.assertLocked()
	if index < 0 || index > len(p.items) {
		return ErrOutOfRange
	}
	if len(media) == 0 {
		return nil
	}

	snap := p.snapshot()

	newItems := make([]*Item, len(media))
	for i, m := range media {
		newItems[i] = p.newItem(m)
	}

	merged := make([]*Item, 0, len(p.items)+len(newItems))
	merged = append(merged, p.items[:index]...)
	merged = append(merged, newItems...)
	merged = append(merged, p.items[index:]...)
	p.items = merged

	if p.current >= index {
		p.current += len(newItems)
	}

	p.rnd.Add(newItems)
	p.recomputeNav()
	p.emitItemsAdded(index, newItems)
	p.emitDeltas(snap)

	p.dispatchPreparse(newItems)
	return nil
}

// Append is sugar for Insert(Count(), media).
func (p *Playlist) Append(media []*Media) error {
	p.assertLocked()
	return p.Insert(len(p.items), media)
}

func (p *Playlist) dispatchPreparse(items []*Item) {
	if p.preparser == nil || p.preparseMode == PreparseDisabled {
		return
	}
	recursive := p.preparseMode == PreparseRecursive
	for _, it := range items {
		p.preparser.Preparse(it, recursive)
	}
}

// Move rotates the slice [index, index+count) to target, preserving
// relative order within the moved slice. Requires index+count <= Count()
// and target+count <= Count().
func (p *Playlist) Move(index, count, target int) error {
	p.assertLocked()
	n := len(p.items)
	if count <= 0 || index < 0 || index+count > n || target < 0 || target+count > n {
		return ErrOutOfRange
	}
	if index == target {
		return nil
	}

	snap := p.snapshot()

	// target is expressed in the same index space as index: a position in
	// the full, not-yet-shortened array where the moved slice's first
	// element should end up (hence the precondition target+count <= N).
	// The move leaves a hole at [index, index+count) and fills it by
	// shifting the run between the slice and target across the gap.
	moved := append([]*Item(nil), p.items[index:index+count]...)
	if target > index {
		copy(p.items[index:target], p.items[index+count:target+count])
	} else {
		copy(p.items[target+count:index+count], p.items[target:index])
	}
	copy(p.items[target:target+count], moved)

	p.current = relocateCursorAfterMove(p.current, index, count, target)

	p.recomputeNav()
	p.emitItemsMoved(index, count, target)
	p.emitDeltas(snap)
	p.player.InvalidateNextMedia()
	return nil
}

// relocateCursorAfterMove applies the piecewise current-index rule for a
// slice move: an index inside the moved slice follows it by the slice's
// own displacement; an index in the run that got shifted across the gap
// moves by count in the opposite direction; anything else is untouched.
func relocateCursorAfterMove(current, index, count, target int) int {
	if current < 0 {
		return current
	}
	if index < target {
		if current >= index && current < index+count {
			return current + (target - index)
		}
		if current >= index+count && current < target+count {
			return current - count
		}
		return current
	}
	// index >= target
	if current >= index && current < index+count {
		return current - (index - target)
	}
	if current >= target && current < index {
		return current + count
	}
	return current
}

// Remove drops [index, index+count) from the content store. If the
// current item is removed, current becomes the item that
// slid into its place (or -1 if none remain), and the player is told to
// load the new current media; otherwise only next-media is invalidated.
func (p *Playlist) Remove(index, count int) error {
	p.assertLocked()
	n := len(p.items)
	if count <= 0 || index < 0 || index+count > n {
		return ErrOutOfRange
	}

	snap := p.snapshot()

	removed := p.items[index : index+count]
	p.rnd.Remove(removed)

	currentChanged := false
	if p.current >= index && p.current < index+count {
		if n-count > index {
			p.current = index
		} else {
			p.current = -1
		}
		currentChanged = true
	} else if p.current >= index+count {
		p.current -= count
	}

	kept := make([]*Item, 0, n-count)
	kept = append(kept, p.items[:index]...)
	kept = append(kept, p.items[index+count:]...)
	p.items = kept

	for _, it := range removed {
		it.release()
	}

	p.recomputeNav()
	p.emitItemsRemoved(index, count)
	p.emitDeltas(snap)

	if currentChanged {
		var media *Media
		if p.current >= 0 {
			media = p.items[p.current].Media()
		}
		p.player.SetCurrentMedia(media)
	} else {
		p.player.InvalidateNextMedia()
	}
	return nil
}

// Replace swaps the item at index for a new item wrapping media, under a
// freshly-assigned id.
func (p *Playlist) Replace(index int, media *Media) error {
	p.assertLocked()
	if index < 0 || index >= len(p.items) {
		return ErrOutOfRange
	}

	snap := p.snapshot()

	old := p.items[index]
	newItem := p.newItem(media)

	p.rnd.Remove([]*Item{old})
	p.rnd.Add([]*Item{newItem})
	p.items[index] = newItem
	old.release()

	p.recomputeNav()
	p.emitItemsUpdated(index, p.items[index:index+1])
	p.emitDeltas(snap)
	p.dispatchPreparse([]*Item{newItem})
	return nil
}

// Expand atomically replaces the item at index with media[0] and inserts
// media[1:] immediately after it. If index == current, the player is told
// to reload current media (the backing media changed); otherwise only
// next-media is invalidated. Unlike Replace, every replacement item is
// handed to the preparser, not just the one at index.
func (p *Playlist) Expand(index int, media []*Media) error {
	p.assertLocked()
	if index < 0 || index >= len(p.items) || len(media) == 0 {
		return ErrOutOfRange
	}
	return p.expandLocked(index, media)
}

func (p *Playlist) expandLocked(index int, media []*Media) error {
	snap := p.snapshot()
	old := p.items[index]

	newItems := make([]*Item, len(media))
	for i, m := range media {
		newItems[i] = p.newItem(m)
	}

	merged := make([]*Item, 0, len(p.items)+len(newItems)-1)
	merged = append(merged, p.items[:index]...)
	merged = append(merged, newItems...)
	merged = append(merged, p.items[index+1:]...)

	wasCurrent := p.current == index
	if p.current > index {
		p.current += len(newItems) - 1
	}

	p.rnd.Remove([]*Item{old})
	p.rnd.Add(newItems)
	p.items = merged
	old.release()

	p.recomputeNav()
	p.emitItemsRemoved(index, 1)
	p.emitItemsAdded(index, newItems)
	p.emitDeltas(snap)

	if wasCurrent {
		p.player.SetCurrentMedia(newItems[0].Media())
	} else {
		p.player.InvalidateNextMedia()
	}

	p.dispatchPreparse(newItems)
	return nil
}

// Clear removes every item, tells the player there is no current media,
// and resets the randomizer.
func (p *Playlist) Clear() {
	p.assertLocked()
	if len(p.items) == 0 {
		return
	}

	snap := p.snapshot()
	for _, it := range p.items {
		it.release()
	}
	p.items = nil
	p.current = -1
	p.rnd = newRandomizer()
	p.rnd.loop = p.repeat == RepeatAll

	p.recomputeNav()
	p.emitItemsReset(nil)
	p.emitDeltas(snap)
	p.player.SetCurrentMedia(nil)
}

// Shuffle rearranges the content store into a uniformly random order. The
// current item keeps playing: current is relocated to follow it. The
// randomizer's own permutation is untouched; it tracks items by identity,
// not by content-store position.
func (p *Playlist) Shuffle() {
	p.assertLocked()
	if len(p.items) < 2 {
		return
	}

	var currentItem *Item
	if p.current >= 0 {
		currentItem = p.items[p.current]
	}

	for i := len(p.items) - 1; i != 0; i-- {
		j := p.rnd.rng.intn(i + 1)
		p.items[i], p.items[j] = p.items[j], p.items[i]
	}

	snap := p.snapshot()
	if currentItem != nil {
		p.current = p.indexOfItem(currentItem)
		p.recomputeNav()
	}

	p.emitItemsReset(p.items)
	p.emitDeltas(snap)
	p.player.InvalidateNextMedia()
}
