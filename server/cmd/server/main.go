package main

import (
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	cfg "github.com/automoto/slipstep/config"
	"github.com/automoto/slipstep/persistence"
	"github.com/automoto/slipstep/server/core"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (default $"+cfg.EnvPath+")")
	levelPath := flag.String("level", "", "TMX level file (empty uses the built-in box)")
	ticks := flag.Int("ticks", 240, "Scripted ticks to run; 0 runs the real-time loop until interrupted")
	metricsAddr := flag.String("metrics", "", "Prometheus listen address, e.g. :2112 (overrides config)")
	slot := flag.String("slot", "", "Save slot for the last safe ground position (empty disables)")
	flag.Parse()

	log := logrus.New()

	c, err := cfg.Load(*configPath)
	if err != nil {
		log.WithError(err).Fatal("config")
	}
	cfg.C = c
	if lvl, err := logrus.ParseLevel(c.Server.LogLevel); err == nil {
		log.SetLevel(lvl)
	} else {
		log.WithError(err).Warn("unknown log level, keeping info")
	}
	if *levelPath == "" {
		*levelPath = c.Level.Path
	}
	if *metricsAddr == "" {
		*metricsAddr = c.Server.MetricsAddr
	}

	level := core.DefaultLevel()
	if *levelPath != "" {
		level, err = core.LoadLevel(os.DirFS(filepath.Dir(*levelPath)), filepath.Base(*levelPath))
		if err != nil {
			log.WithError(err).Fatal("level")
		}
	}

	reg := prometheus.NewRegistry()
	metrics := core.NewMetrics(reg)
	if *metricsAddr != "" {
		go func() {
			log.WithField("addr", *metricsAddr).Info("metrics endpoint up")
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.WithError(err).Error("metrics endpoint")
			}
		}()
	}

	server := core.NewServer(level, log, metrics)

	var store *persistence.Store
	if *slot != "" {
		store, err = persistence.Open("slipstep")
		if err != nil {
			log.WithError(err).Warn("safe points disabled")
		}
	}

	id := spawn(server, store, *slot, log)

	if *ticks > 0 {
		runScript(server, id, *ticks, c.Server.TickRate, log)
	} else {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		server.Start()
		<-sigChan
		log.Info("shutting down")
		server.Stop()
	}

	if store != nil {
		saveSafePoint(server, store, *slot, id, log)
	}
}

// spawn places the demo character at its saved safe point when one exists
// for this level, otherwise at the first spawn point.
func spawn(server *core.Server, store *persistence.Store, slot string, log *logrus.Logger) uuid.UUID {
	if store != nil {
		p, ok, err := store.Load(slot)
		switch {
		case err != nil:
			log.WithError(err).Warn("load safe point")
		case ok && p.Level == server.Level().Name:
			log.WithFields(logrus.Fields{"slot": slot, "x": p.X, "y": p.Y}).Info("resuming at safe point")
			return server.Spawn(p.X, p.Y)
		}
	}

	id, err := server.SpawnAt(0)
	if err != nil {
		cx, cy := cfg.C.Level.SpawnX, cfg.C.Level.SpawnY
		log.WithError(err).Warn("level has no spawn points, using config spawn")
		return server.Spawn(cx, cy)
	}
	return id
}

func saveSafePoint(server *core.Server, store *persistence.Store, slot string, id uuid.UUID, log *logrus.Logger) {
	p, ok, err := server.SafePoint(id)
	if err != nil || !ok {
		return
	}
	if err := store.Save(slot, p); err != nil {
		log.WithError(err).Warn("save safe point")
		return
	}
	log.WithFields(logrus.Fields{"slot": slot, "x": p.X, "y": p.Y}).Info("safe point saved")
}
