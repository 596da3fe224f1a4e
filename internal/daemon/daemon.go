// Package daemon wires internal/playlist, internal/mediaplayer, and
// internal/preparser behind internal/shared's transport: one
// *playlist.Playlist and one *mediaplayer.Player, both sharing the
// playlist's own coarse lock, dispatching incoming shared.Command values
// to the command handlers in internal/daemon/commands.
package daemon

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/cerberussg/playlistcore/internal/daemon/commands"
	"github.com/cerberussg/playlistcore/internal/mediaplayer"
	"github.com/cerberussg/playlistcore/internal/playlist"
	"github.com/cerberussg/playlistcore/internal/preparser"
	"github.com/cerberussg/playlistcore/internal/shared"
)

// Config bundles the playlist's startup knobs plus the ones the daemon
// itself needs.
type Config struct {
	PreparseMode          playlist.PreparseMode
	PreparseThreads       int
	PreparseTimeoutMillis int
}

// Daemon owns the playlist core, its player bridge, and the transport that
// exposes both to playctl.
type Daemon struct {
	pl        *playlist.Playlist
	player    *mediaplayer.Player
	preparser *preparser.Pool
	transport shared.Transport
	log       *logrus.Logger

	content    *commands.ContentHandler
	navigation *commands.NavigationHandler
	playback   *commands.PlaybackHandler
	info       *commands.InfoHandler

	onExitRequested func()
}

// OnExitRequested registers fn to run when the playlist's stopped-action
// is Exit and the player reports Stopped. main wires this to an actual
// process shutdown; tests can leave it nil.
func (d *Daemon) OnExitRequested(fn func()) {
	d.onExitRequested = fn
}

// New constructs a Daemon. The playlist is created with the built-in
// no-op preparser mode from cfg; once the player (and therefore the
// playlist) exists, a richer internal/preparser.Pool is swapped in via
// Playlist.SetPreparser.
func New(cfg Config, log *logrus.Logger) *Daemon {
	if log == nil {
		log = logrus.StandardLogger()
	}

	d := &Daemon{
		transport: shared.NewUnixSocketTransport(),
		log:       log,
	}

	factory := mediaplayer.Factory(log)
	d.pl = playlist.New(factory, cfg.PreparseMode, cfg.PreparseThreads, cfg.PreparseTimeoutMillis)

	d.pl.Lock()
	d.player = d.pl.GetPlayer().(*mediaplayer.Player)
	d.preparser = preparser.NewPool(d.pl, cfg.PreparseThreads, cfg.PreparseTimeoutMillis, log)
	d.pl.SetPreparser(d.preparser)
	d.pl.SetOnExitRequested(d.requestExit)
	installEventLogger(d.pl, log)
	d.pl.Unlock()

	d.content = commands.NewContentHandler(d.pl)
	d.navigation = commands.NewNavigationHandler(d.pl)
	d.playback = commands.NewPlaybackHandler(d.pl, d.player)
	d.info = commands.NewInfoHandler(d.pl, d.player)

	return d
}

func (d *Daemon) requestExit() {
	d.log.Info("stopped-action=exit: shutting down")
	if d.onExitRequested != nil {
		d.onExitRequested()
	}
}

// Start blocks, serving commands until the transport is closed.
func (d *Daemon) Start() error {
	d.log.Info("starting playlistd")
	return d.transport.Listen(d.handleCommand)
}

// Stop closes the transport and the player's audio resources.
func (d *Daemon) Stop() error {
	d.log.Info("stopping playlistd")
	d.pl.Lock()
	err := d.player.Close()
	d.pl.Unlock()
	if closeErr := d.transport.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}

// HandleCommand processes a single command directly, bypassing the
// transport. Chiefly for tests and for the CLI's embedded single-shot mode.
func (d *Daemon) HandleCommand(cmd shared.Command) shared.Response {
	return d.handleCommand(cmd)
}

func (d *Daemon) handleCommand(cmd shared.Command) shared.Response {
	d.log.WithField("command", cmd.Type).Debug("received command")

	switch cmd.Type {
	case shared.CmdPing:
		return shared.NewSuccessResponse("pong", nil)
	case shared.CmdExit:
		return d.handleExit()

	case shared.CmdInsert:
		return d.content.HandleInsert(cmd)
	case shared.CmdAppend:
		return d.content.HandleAppend(cmd)
	case shared.CmdMove:
		return d.content.HandleMove(cmd)
	case shared.CmdRemove:
		return d.content.HandleRemove(cmd)
	case shared.CmdReplace:
		return d.content.HandleReplace(cmd)
	case shared.CmdExpand:
		return d.content.HandleExpand(cmd)
	case shared.CmdClear:
		return d.content.HandleClear()
	case shared.CmdSort:
		return d.content.HandleSort(cmd)
	case shared.CmdShuffle:
		return d.content.HandleShuffle()

	case shared.CmdNext:
		return d.navigation.HandleNext(cmd)
	case shared.CmdPrev:
		return d.navigation.HandlePrev(cmd)
	case shared.CmdGoTo:
		return d.navigation.HandleGoTo(cmd)
	case shared.CmdSetRepeat:
		return d.navigation.HandleSetRepeat(cmd)
	case shared.CmdSetOrder:
		return d.navigation.HandleSetOrder(cmd)
	case shared.CmdSetStoppedAct:
		return d.navigation.HandleSetStoppedAction(cmd)

	case shared.CmdPlay:
		return d.playback.HandlePlay()
	case shared.CmdPause:
		return d.playback.HandlePause()
	case shared.CmdResume:
		return d.playback.HandleResume()
	case shared.CmdStop:
		return d.playback.HandleStop()
	case shared.CmdVolume:
		return d.playback.HandleVolume(cmd)

	case shared.CmdStatus:
		return d.info.HandleStatus()
	case shared.CmdList:
		return d.info.HandleList()
	case shared.CmdExport:
		return d.info.HandleExport(cmd)

	default:
		return shared.NewErrorResponse(fmt.Sprintf("unknown command: %s", cmd.Type))
	}
}

func (d *Daemon) handleExit() shared.Response {
	go func() {
		_ = d.Stop()
	}()
	return shared.NewSuccessResponse("exiting daemon", nil)
}
