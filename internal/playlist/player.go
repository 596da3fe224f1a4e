package playlist

import "time"

// Player is the contract the playlist expects from the external
// media-decoding collaborator. The playlist calls these two methods; it
// never calls anything else on the player.
type Player interface {
	// SetCurrentMedia asks the player to load media as the current item.
	// media == nil means "load nothing". Returns ErrPlayerRejected (wrapped)
	// if the player refuses.
	SetCurrentMedia(media *Media) error

	// InvalidateNextMedia tells the player that whatever it cached from a
	// prior GetNextMedia call (via the PlaylistSink) is stale and it
	// should ask again at the next end-of-stream boundary.
	InvalidateNextMedia()
}

// PlaylistSink is the contract the external player uses to drive the
// playlist. The playlist implements this interface directly; a concrete
// Player is constructed with a reference to the same *Playlist (or an
// adapter around it) and the same shared lock, which breaks what would
// otherwise be a cyclic ownership between the two. Lock/Unlock are
// included so the player can acquire the shared mutex itself before
// calling any other PlaylistSink method from its own goroutines (e.g. an
// audio-callback thread reporting end-of-stream) rather than assuming the
// playlist's own call stack already holds it.
type PlaylistSink interface {
	Lock()
	Unlock()

	// GetNextMedia is called by the player when a track ends, to learn
	// what to play next (or nil, meaning stop).
	GetNextMedia() *Media

	OnCurrentMediaChanged(media *Media)
	OnStateChanged(state PlayerState)
	OnMediaMetaChanged(media *Media)
	OnLengthChanged(media *Media, length int64)
	OnSubtreeAdded(media *Media, subtree []*Media)
}

// PlayerFactory constructs the concrete Player, given the sink it must
// call back into (which also carries the lock it must share with the
// playlist).
type PlayerFactory func(sink PlaylistSink) Player

// GetPlayer returns the player bridged to this playlist.
func (p *Playlist) GetPlayer() Player {
	p.assertLocked()
	return p.player
}

// GetNextMedia implements PlaylistSink. It is the pull side of the bridge:
// called by the player when a track ends. If repeat is RepeatOne, the
// current media plays again; otherwise the navigation controller's next
// item (if any) is returned.
func (p *Playlist) GetNextMedia() *Media {
	p.assertLocked()
	if p.repeat == RepeatOne {
		if p.current >= 0 {
			return p.items[p.current].Media()
		}
		return nil
	}
	if !p.hasNext {
		return nil
	}
	idx, ok := p.peekNextIndex()
	if !ok {
		return nil
	}
	return p.items[idx].Media()
}

// OnCurrentMediaChanged implements PlaylistSink. If the reported media is
// already the current item's media, this is just a refresh signal.
// Otherwise the playlist locates it and makes it current.
func (p *Playlist) OnCurrentMediaChanged(media *Media) {
	p.assertLocked()
	if p.current >= 0 && p.items[p.current].Media().Equal(media) {
		p.player.InvalidateNextMedia()
		return
	}

	idx := p.indexOfMediaLocked(media)
	if idx < 0 {
		p.player.InvalidateNextMedia()
		return
	}

	snap := p.snapshot()
	p.current = idx
	if p.order == OrderRandom {
		p.rnd.Select(p.items[idx])
	}
	p.recomputeNav()
	p.emitDeltas(snap)
	p.player.InvalidateNextMedia()
}

// OnStateChanged implements PlaylistSink. A Stopped report combined with
// StoppedAction == StoppedExit signals the host to shut down; the playlist
// has no process-lifecycle authority itself, so this is surfaced through
// the OnExitRequested hook rather than acted on directly.
func (p *Playlist) OnStateChanged(state PlayerState) {
	p.assertLocked()
	if state == StateStopped && p.stoppedAction == StoppedExit && p.onExitRequested != nil {
		p.onExitRequested()
	}
}

// OnMediaMetaChanged implements PlaylistSink: metadata on an existing item
// was updated in place by the external collaborator.
func (p *Playlist) OnMediaMetaChanged(media *Media) {
	p.assertLocked()
	idx := p.indexOfMediaLocked(media)
	if idx < 0 {
		return
	}
	p.emitItemsUpdated(idx, p.items[idx:idx+1])
}

// OnLengthChanged implements PlaylistSink: same notification shape as
// OnMediaMetaChanged, fired when only duration became known.
func (p *Playlist) OnLengthChanged(media *Media, length int64) {
	p.assertLocked()
	idx := p.indexOfMediaLocked(media)
	if idx < 0 {
		return
	}
	p.items[idx].Media().Duration = time.Duration(length)
	p.emitItemsUpdated(idx, p.items[idx:idx+1])
}

// OnSubtreeAdded implements PlaylistSink: the player discovered that media
// actually expands into a subtree (e.g. a playlist file, an album). The
// subtree is flattened depth-first and spliced in where media used to be
// via Expand.
func (p *Playlist) OnSubtreeAdded(media *Media, subtree []*Media) {
	p.assertLocked()
	idx := p.indexOfMediaLocked(media)
	if idx < 0 {
		return
	}
	flat := flattenDepthFirst(subtree)
	if len(flat) == 0 {
		return
	}
	_ = p.expandLocked(idx, flat)
}

// SetOnExitRequested registers the host shutdown hook used by
// OnStateChanged. Requires the playlist lock held.
func (p *Playlist) SetOnExitRequested(fn func()) {
	p.assertLocked()
	p.onExitRequested = fn
}

// SubtreeNode is one node of a subtree reported via OnSubtreeAdded; Media
// is nil for a pure grouping node, whose Children are flattened in order.
type SubtreeNode struct {
	Media    *Media
	Children []*SubtreeNode
}

func flattenDepthFirst(nodes []*Media) []*Media {
	// The bridge already receives a flat slice from the player in the
	// common case (single-level subtrees, e.g. one album's tracks); nested
	// grouping is handled by FlattenSubtree below for collaborators that
	// report a tree instead.
	return nodes
}

// FlattenSubtree flattens a SubtreeNode tree depth-first into the order
// OnSubtreeAdded/Expand expects.
func FlattenSubtree(root *SubtreeNode) []*Media {
	var out []*Media
	var walk func(n *SubtreeNode)
	walk = func(n *SubtreeNode) {
		if n == nil {
			return
		}
		if n.Media != nil {
			out = append(out, n.Media)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
	return out
}

