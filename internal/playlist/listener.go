package playlist

// Listener is the observer callback vocabulary. Every field is optional;
// the playlist nil-checks before invoking each one. Listener callbacks are
// invoked synchronously, in registration order, within the mutator's
// critical section. A listener must not call back into the playlist and
// must not block; if it needs to do work, it posts to its own queue.
type Listener struct {
	OnItemsReset                func(items []*Item)
	OnItemsAdded                func(index int, items []*Item)
	OnItemsMoved                func(index, count, target int)
	OnItemsRemoved              func(index, count int)
	OnItemsUpdated              func(index int, items []*Item)
	OnPlaybackRepeatChanged     func(Repeat)
	OnPlaybackOrderChanged      func(Order)
	OnMediaStoppedActionChanged func(StoppedAction)
	OnCurrentIndexChanged       func(index int)
	OnHasPrevChanged            func(bool)
	OnHasNextChanged            func(bool)
}

// AddListener registers l. If notifyCurrentState is true, l is immediately
// given a synthetic view of the current state (an items-reset followed by
// the current index/has-prev/has-next deltas) so that a listener attaching
// mid-session doesn't need to separately query every field. Requires the
// playlist lock held.
func (p *Playlist) AddListener(l *Listener, notifyCurrentState bool) {
	p.assertLocked()
	p.listeners = append(p.listeners, l)

	if !notifyCurrentState {
		return
	}
	if l.OnItemsReset != nil {
		l.OnItemsReset(append([]*Item(nil), p.items...))
	}
	if l.OnCurrentIndexChanged != nil {
		l.OnCurrentIndexChanged(p.current)
	}
	if l.OnHasPrevChanged != nil {
		l.OnHasPrevChanged(p.hasPrev)
	}
	if l.OnHasNextChanged != nil {
		l.OnHasNextChanged(p.hasNext)
	}
	if l.OnPlaybackRepeatChanged != nil {
		l.OnPlaybackRepeatChanged(p.repeat)
	}
	if l.OnPlaybackOrderChanged != nil {
		l.OnPlaybackOrderChanged(p.order)
	}
	if l.OnMediaStoppedActionChanged != nil {
		l.OnMediaStoppedActionChanged(p.stoppedAction)
	}
}

// RemoveListener unregisters l. A no-op if l was never added. Requires the
// playlist lock held.
func (p *Playlist) RemoveListener(l *Listener) {
	p.assertLocked()
	for i, x := range p.listeners {
		if x == l {
			p.listeners = append(p.listeners[:i], p.listeners[i+1:]...)
			return
		}
	}
}

func (p *Playlist) emitItemsReset(items []*Item) {
	snapshot := append([]*Item(nil), items...)
	for _, l := range p.listeners {
		if l.OnItemsReset != nil {
			l.OnItemsReset(snapshot)
		}
	}
}

func (p *Playlist) emitItemsAdded(index int, items []*Item) {
	snapshot := append([]*Item(nil), items...)
	for _, l := range p.listeners {
		if l.OnItemsAdded != nil {
			l.OnItemsAdded(index, snapshot)
		}
	}
}

func (p *Playlist) emitItemsMoved(index, count, target int) {
	for _, l := range p.listeners {
		if l.OnItemsMoved != nil {
			l.OnItemsMoved(index, count, target)
		}
	}
}

func (p *Playlist) emitItemsRemoved(index, count int) {
	for _, l := range p.listeners {
		if l.OnItemsRemoved != nil {
			l.OnItemsRemoved(index, count)
		}
	}
}

func (p *Playlist) emitItemsUpdated(index int, items []*Item) {
	snapshot := append([]*Item(nil), items...)
	for _, l := range p.listeners {
		if l.OnItemsUpdated != nil {
			l.OnItemsUpdated(index, snapshot)
		}
	}
}

// navSnapshot captures the navigation fields that emitDeltas diffs against
// after a mutation: structural event first, then only the deltas whose
// value actually changed.
type navSnapshot struct {
	current int
	hasPrev bool
	hasNext bool
	repeat  Repeat
	order   Order
	stopped StoppedAction
}

func (p *Playlist) snapshot() navSnapshot {
	return navSnapshot{
		current: p.current,
		hasPrev: p.hasPrev,
		hasNext: p.hasNext,
		repeat:  p.repeat,
		order:   p.order,
		stopped: p.stoppedAction,
	}
}

func (p *Playlist) emitDeltas(prev navSnapshot) {
	if p.current != prev.current {
		for _, l := range p.listeners {
			if l.OnCurrentIndexChanged != nil {
				l.OnCurrentIndexChanged(p.current)
			}
		}
	}
	if p.hasPrev != prev.hasPrev {
		for _, l := range p.listeners {
			if l.OnHasPrevChanged != nil {
				l.OnHasPrevChanged(p.hasPrev)
			}
		}
	}
	if p.hasNext != prev.hasNext {
		for _, l := range p.listeners {
			if l.OnHasNextChanged != nil {
				l.OnHasNextChanged(p.hasNext)
			}
		}
	}
	if p.repeat != prev.repeat {
		for _, l := range p.listeners {
			if l.OnPlaybackRepeatChanged != nil {
				l.OnPlaybackRepeatChanged(p.repeat)
			}
		}
	}
	if p.order != prev.order {
		for _, l := range p.listeners {
			if l.OnPlaybackOrderChanged != nil {
				l.OnPlaybackOrderChanged(p.order)
			}
		}
	}
	if p.stoppedAction != prev.stopped {
		for _, l := range p.listeners {
			if l.OnMediaStoppedActionChanged != nil {
				l.OnMediaStoppedActionChanged(p.stoppedAction)
			}
		}
	}
}
