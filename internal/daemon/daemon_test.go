package daemon

import (
	"path/filepath"
	"testing"

	"github.com/cerberussg/playlistcore/internal/playlist"
	"github.com/cerberussg/playlistcore/internal/shared"
)

func newTestDaemon(t *testing.T) *Daemon {
	t.Helper()
	cfg := Config{
		PreparseMode:          playlist.PreparseDisabled,
		PreparseThreads:       1,
		PreparseTimeoutMillis: 0,
	}
	return New(cfg, nil)
}

func TestHandleCommand_Ping(t *testing.T) {
	d := newTestDaemon(t)
	resp := d.HandleCommand(shared.Command{Type: shared.CmdPing})
	if !resp.Success || resp.Message != "pong" {
		t.Errorf("ping response = %+v, want success pong", resp)
	}
}

func TestHandleCommand_AppendAndList(t *testing.T) {
	d := newTestDaemon(t)

	resp := d.HandleCommand(shared.NewAppendCommand([]shared.MediaRef{
		{URL: "a.mp3", Title: "A"},
		{URL: "b.mp3", Title: "B"},
	}))
	if !resp.Success {
		t.Fatalf("append failed: %s", resp.Message)
	}

	resp = d.HandleCommand(shared.NewListCommand())
	if !resp.Success {
		t.Fatalf("list failed: %s", resp.Message)
	}
	items, ok := resp.Data.([]shared.ItemInfo)
	if !ok {
		t.Fatalf("list data = %T, want []shared.ItemInfo", resp.Data)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].Title != "A" || items[1].Title != "B" {
		t.Errorf("items = %+v, want titles A, B in order", items)
	}
}

func TestHandleCommand_StatusReflectsState(t *testing.T) {
	d := newTestDaemon(t)
	d.HandleCommand(shared.NewAppendCommand([]shared.MediaRef{{URL: "a.mp3"}, {URL: "b.mp3"}}))

	resp := d.HandleCommand(shared.NewStatusCommand())
	if !resp.Success {
		t.Fatalf("status failed: %s", resp.Message)
	}
	status, ok := resp.Data.(shared.StatusInfo)
	if !ok {
		t.Fatalf("status data = %T, want shared.StatusInfo", resp.Data)
	}
	if status.Count != 2 {
		t.Errorf("Count = %d, want 2", status.Count)
	}
	if status.CurrentIndex != -1 {
		t.Errorf("CurrentIndex = %d, want -1 before any goto", status.CurrentIndex)
	}
	if !status.HasNext {
		t.Error("HasNext = false, want true with 2 items queued")
	}
}

func TestHandleCommand_MoveByIDPreservesInputOrder(t *testing.T) {
	d := newTestDaemon(t)
	d.HandleCommand(shared.NewAppendCommand([]shared.MediaRef{
		{URL: "0"}, {URL: "1"}, {URL: "2"}, {URL: "3"}, {URL: "4"},
	}))

	listResp := d.HandleCommand(shared.NewListCommand())
	items := listResp.Data.([]shared.ItemInfo)
	idAt3, idAt0 := items[3].ID, items[0].ID

	resp := d.HandleCommand(shared.NewMoveCommand([]uint64{idAt3, idAt0}, 1, -1))
	if !resp.Success {
		t.Fatalf("move failed: %s", resp.Message)
	}

	listResp = d.HandleCommand(shared.NewListCommand())
	items = listResp.Data.([]shared.ItemInfo)
	if items[1].ID != idAt3 || items[2].ID != idAt0 {
		t.Errorf("after move, ids[1:3] = %d,%d, want %d,%d (caller order preserved)",
			items[1].ID, items[2].ID, idAt3, idAt0)
	}
}

func TestHandleCommand_RemoveSkipsUnknownID(t *testing.T) {
	d := newTestDaemon(t)
	d.HandleCommand(shared.NewAppendCommand([]shared.MediaRef{{URL: "a"}, {URL: "b"}}))

	resp := d.HandleCommand(shared.Command{Type: shared.CmdRemove, IDs: []uint64{99999}})
	if resp.Success {
		t.Error("remove with only an unknown id should fail with no matching items, not succeed")
	}
}

func TestHandleCommand_SetRepeatAndOrder(t *testing.T) {
	d := newTestDaemon(t)
	d.HandleCommand(shared.NewAppendCommand([]shared.MediaRef{{URL: "a"}, {URL: "b"}}))

	resp := d.HandleCommand(shared.NewSetRepeatCommand("all"))
	if !resp.Success {
		t.Fatalf("set repeat failed: %s", resp.Message)
	}
	resp = d.HandleCommand(shared.NewSetOrderCommand("random"))
	if !resp.Success {
		t.Fatalf("set order failed: %s", resp.Message)
	}

	status := d.HandleCommand(shared.NewStatusCommand()).Data.(shared.StatusInfo)
	if status.Repeat != "all" {
		t.Errorf("Repeat = %q, want all", status.Repeat)
	}
	if status.Order != "random" {
		t.Errorf("Order = %q, want random", status.Order)
	}
}

func TestHandleCommand_Export(t *testing.T) {
	d := newTestDaemon(t)
	d.HandleCommand(shared.NewAppendCommand([]shared.MediaRef{
		{URL: "a.mp3", Title: "Song A"},
		{URL: "b.mp3", Title: "Song B"},
	}))

	path := filepath.Join(t.TempDir(), "out.m3u8")
	resp := d.HandleCommand(shared.NewExportCommand(path, "m3u8"))
	if !resp.Success {
		t.Fatalf("export failed: %s", resp.Message)
	}
}

func TestHandleCommand_UnknownCommandType(t *testing.T) {
	d := newTestDaemon(t)
	resp := d.HandleCommand(shared.Command{Type: "not-a-real-command"})
	if resp.Success {
		t.Error("unknown command type should fail")
	}
}

func TestHandleCommand_ExitTriggersOnExitRequested(t *testing.T) {
	d := newTestDaemon(t)
	resp := d.HandleCommand(shared.NewExitCommand())
	if !resp.Success {
		t.Fatalf("exit command failed: %s", resp.Message)
	}
}
