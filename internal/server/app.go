package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"PulseMap/internal/game"
	"PulseMap/internal/store"
)

// App holds the wired application: the world, its transport and its
// persistence. Handlers hang off it so tests can build one around fakes.
type App struct {
	Cfg   Config
	Log   zerolog.Logger
	World *game.World
	Hub   *Hub
	Store *store.Store
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
}

// StartApp wires everything together and serves until SIGINT/SIGTERM. The
// world is restored from the last snapshot when one exists, seeded otherwise.
func StartApp(cfg Config) error {
	log := newLogger(cfg.LogLevel)

	st, err := store.Open(cfg.DatabasePath, log)
	if err != nil {
		return err
	}

	hub := NewHub(log)
	world := game.NewWorld(game.WorldConfig{
		Capacity: cfg.Capacity,
		Sink:     hub,
		Logger:   log,
	})

	snap, ok, err := store.LoadSnapshot(cfg.SnapshotPath)
	if err != nil {
		log.Error().Err(err).Msg("snapshot load failed, starting fresh")
		ok = false
	}
	if ok {
		world.Restore(snap)
	} else if cfg.SeedOnEmpty {
		world.SeedIfEmpty()
	}

	app := &App{Cfg: cfg, Log: log, World: world, Hub: hub, Store: st}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go world.Scheduler().Run()

	if cfg.AgentEnabled {
		var geocoder game.Geocoder
		if cfg.GeocodeEnabled {
			geocoder = NewGeocodeClient(cfg.GeocodeTimeout, log)
		}
		agent := game.NewAutoAgent(game.AgentConfig{
			World:       world,
			Geocoder:    geocoder,
			Logger:      log,
			MinInterval: cfg.AgentMinInterval,
			MaxInterval: cfg.AgentMaxInterval,
		})
		go agent.Run(ctx)
	}

	go app.snapshotLoop(ctx)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           app.router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}

	cancel()
	world.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("server shutdown")
	}

	if err := store.SaveSnapshot(cfg.SnapshotPath, world.Export()); err != nil {
		log.Error().Err(err).Msg("final snapshot failed")
		return err
	}
	log.Info().Str("path", cfg.SnapshotPath).Msg("final snapshot saved")
	return nil
}

// snapshotLoop persists the world on a fixed cadence. Individual pulses are
// never written through; a crash loses at most one interval.
func (a *App) snapshotLoop(ctx context.Context) {
	if a.Cfg.SnapshotInterval <= 0 {
		return
	}
	ticker := time.NewTicker(a.Cfg.SnapshotInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := store.SaveSnapshot(a.Cfg.SnapshotPath, a.World.Export()); err != nil {
				a.Log.Error().Err(err).Msg("snapshot failed")
			}
		}
	}
}
