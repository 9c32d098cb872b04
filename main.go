package main

import (
	"github.com/sirupsen/logrus"

	"artparty/internal/config"
	"artparty/internal/editor"
	"artparty/internal/store"
	"artparty/internal/ui"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Load()

	st, err := store.New(cfg.StorageDir)
	if err != nil {
		logrus.WithError(err).Fatal("could not open tile store")
	}

	session := editor.NewSession(cfg.HistoryLimit)
	logrus.WithField("tile", session.ID).Info("editor session started")

	ui.RunApp(cfg, session, st)
}
