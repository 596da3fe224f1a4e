package playlist

// Repeat is the playback-repeat mode.
type Repeat int

const (
	RepeatNone Repeat = iota
	RepeatAll
	RepeatOne
)

func (r Repeat) String() string {
	switch r {
	case RepeatAll:
		return "all"
	case RepeatOne:
		return "one"
	default:
		return "none"
	}
}

// Order is the playback-order mode.
type Order int

const (
	OrderNormal Order = iota
	OrderRandom
)

func (o Order) String() string {
	if o == OrderRandom {
		return "random"
	}
	return "normal"
}

// StoppedAction governs what happens when the player reports a Stopped
// state with nothing queued to follow it.
type StoppedAction int

const (
	StoppedContinue StoppedAction = iota
	StoppedPause
	StoppedStop
	StoppedExit
)

func (a StoppedAction) String() string {
	switch a {
	case StoppedPause:
		return "pause"
	case StoppedStop:
		return "stop"
	case StoppedExit:
		return "exit"
	default:
		return "continue"
	}
}

// PreparseMode governs whether and how newly-inserted items are handed to
// the preparser.
type PreparseMode int

const (
	PreparseDisabled PreparseMode = iota
	PreparseEnabled
	PreparseRecursive
)

// PlayerState is reported by the external player via OnStateChanged.
type PlayerState int

const (
	StatePlaying PlayerState = iota
	StatePaused
	StateStopped
)
