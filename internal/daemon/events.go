package daemon

import (
	"github.com/sirupsen/logrus"

	"github.com/cerberussg/playlistcore/internal/playlist"
)

// installEventLogger registers a playlist.Listener whose only job is
// structured logging of every state transition. Requires the playlist
// lock held.
//
// A fuller push-fan-out to concurrently-connected playctl clients (one
// listener per connection, forwarding these same events as unsolicited
// IPC messages) is not implemented: UnixSocketTransport's line-delimited
// request/response protocol has no server-initiated message framing.
// Clients poll status/list instead.
func installEventLogger(pl *playlist.Playlist, log *logrus.Logger) {
	pl.AddListener(&playlist.Listener{
		OnItemsReset: func(items []*playlist.Item) {
			log.WithField("count", len(items)).Info("playlist reset")
		},
		OnItemsAdded: func(index int, items []*playlist.Item) {
			log.WithFields(logrus.Fields{"index": index, "count": len(items)}).Info("items added")
		},
		OnItemsMoved: func(index, count, target int) {
			log.WithFields(logrus.Fields{"index": index, "count": count, "target": target}).Info("items moved")
		},
		OnItemsRemoved: func(index, count int) {
			log.WithFields(logrus.Fields{"index": index, "count": count}).Info("items removed")
		},
		OnItemsUpdated: func(index int, items []*playlist.Item) {
			log.WithFields(logrus.Fields{"index": index, "count": len(items)}).Debug("items updated")
		},
		OnCurrentIndexChanged: func(index int) {
			log.WithField("index", index).Debug("current index changed")
		},
		OnHasPrevChanged: func(has bool) {
			log.WithField("has_prev", has).Debug("has-prev changed")
		},
		OnHasNextChanged: func(has bool) {
			log.WithField("has_next", has).Debug("has-next changed")
		},
		OnPlaybackRepeatChanged: func(r playlist.Repeat) {
			log.WithField("repeat", r.String()).Info("playback repeat changed")
		},
		OnPlaybackOrderChanged: func(o playlist.Order) {
			log.WithField("order", o.String()).Info("playback order changed")
		},
		OnMediaStoppedActionChanged: func(a playlist.StoppedAction) {
			log.WithField("stopped_action", a.String()).Info("stopped-action changed")
		},
	}, false)
}
