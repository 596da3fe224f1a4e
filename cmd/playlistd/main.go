// Command playlistd is the daemon entrypoint: it owns the playlist core
// and the mediaplayer bridge, and serves playctl over a Unix domain socket.
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/cerberussg/playlistcore/internal/daemon"
)

func main() {
	configPath := flag.String("config", defaultConfigPath(), "path to playlistd.toml")
	flag.Parse()

	fileCfg, err := loadConfig(*configPath)
	if err != nil {
		logrus.WithError(err).Fatal("loading config")
	}

	log := logrus.StandardLogger()
	if level, err := logrus.ParseLevel(fileCfg.Log.Level); err == nil {
		log.SetLevel(level)
	}
	if fileCfg.Log.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	cfg := daemon.Config{
		PreparseMode:          fileCfg.Preparse.preparseMode(),
		PreparseThreads:       fileCfg.Preparse.Threads,
		PreparseTimeoutMillis: fileCfg.Preparse.TimeoutMillis,
	}

	d := daemon.New(cfg, log)

	exit := make(chan struct{})
	d.OnExitRequested(func() { close(exit) })

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() { errCh <- d.Start() }()

	select {
	case err := <-errCh:
		if err != nil {
			log.WithError(err).Fatal("daemon exited")
		}
	case <-sig:
		log.Info("received shutdown signal")
	case <-exit:
	}

	if err := d.Stop(); err != nil {
		log.WithError(err).Error("error during shutdown")
	}
}
