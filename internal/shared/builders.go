package shared

// Command builders: thin constructors so playctl never hand-assembles a
// Command literal and drifts out of sync with what the daemon expects.

func NewAppendCommand(media []MediaRef) Command {
	return Command{Type: CmdAppend, Media: media}
}

func NewInsertCommand(index int, media []MediaRef) Command {
	return Command{Type: CmdInsert, Index: index, Media: media}
}

func NewMoveCommand(ids []uint64, target, hint int) Command {
	return Command{Type: CmdMove, IDs: ids, Target: target, Hint: hint}
}

func NewRemoveCommand(ids []uint64, hint int) Command {
	return Command{Type: CmdRemove, IDs: ids, Hint: hint}
}

func NewReplaceCommand(index int, media MediaRef) Command {
	return Command{Type: CmdReplace, Index: index, Media: []MediaRef{media}}
}

func NewExpandCommand(index int, media []MediaRef) Command {
	return Command{Type: CmdExpand, Index: index, Media: media}
}

func NewClearCommand() Command {
	return Command{Type: CmdClear}
}

func NewShuffleCommand() Command {
	return Command{Type: CmdShuffle}
}

func NewSortCommand(keys, orders []string) Command {
	return Command{Type: CmdSort, SortKeys: keys, SortOrders: orders}
}

func NewNextCommand() Command { return Command{Type: CmdNext} }
func NewPrevCommand() Command { return Command{Type: CmdPrev} }

func NewGoToCommand(ids []uint64, hint int) Command {
	return Command{Type: CmdGoTo, IDs: ids, Hint: hint}
}

func NewSetRepeatCommand(repeat string) Command {
	return Command{Type: CmdSetRepeat, Repeat: repeat}
}

func NewSetOrderCommand(order string) Command {
	return Command{Type: CmdSetOrder, Order: order}
}

func NewPlayCommand() Command   { return Command{Type: CmdPlay} }
func NewPauseCommand() Command  { return Command{Type: CmdPause} }
func NewResumeCommand() Command { return Command{Type: CmdResume} }
func NewStopCommand() Command   { return Command{Type: CmdStop} }

func NewVolumeCommand(percent int) Command {
	return Command{Type: CmdVolume, Volume: percent}
}

func NewStatusCommand() Command { return Command{Type: CmdStatus} }
func NewListCommand() Command   { return Command{Type: CmdList} }

func NewExportCommand(path, format string) Command {
	return Command{Type: CmdExport, Path: path, Format: format}
}

func NewExitCommand() Command { return Command{Type: CmdExit} }

// Response builders.

func NewSuccessResponse(message string, data interface{}) Response {
	return Response{Success: true, Message: message, Data: data}
}

func NewErrorResponse(message string) Response {
	return Response{Success: false, Message: message}
}
