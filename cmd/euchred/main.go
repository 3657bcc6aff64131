// euchred serves Euchre tables over websockets: a browser client takes
// seat 1 and plays against three bot seats.
package main

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/jason-s-yu/euchre/internal/config"
	"github.com/jason-s-yu/euchre/internal/server"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("configuration")
	}
	log.SetLevel(cfg.LogLevel)

	mux := http.NewServeMux()
	mux.Handle("/ws", server.NewHandler(cfg, log))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	log.WithField("addr", cfg.ListenAddr).Info("listening")
	if err := http.ListenAndServe(cfg.ListenAddr, mux); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
