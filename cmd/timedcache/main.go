package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-timedcache/pkg/common/cache/timed"
	"github.com/huynhanx03/go-timedcache/pkg/logger"
	"github.com/huynhanx03/go-timedcache/pkg/metrics"
	"github.com/huynhanx03/go-timedcache/pkg/settings"
	"github.com/huynhanx03/go-timedcache/pkg/timer"
)

const shutdownTimeout = 5 * time.Second

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := settings.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Entry times only need millisecond resolution.
	clock := timer.NewCachedTimer(time.Millisecond, nil)
	defer clock.Stop()

	sessions := timed.NewFromSettings[string, string](cfg.TimedCache,
		timed.WithClock(clock),
		timed.WithLogger(log.Named("sessions")),
	)
	defer sessions.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(metrics.NewCacheCollector("sessions", sessions))

	log.Info("timedcache starting",
		zap.Duration("live", sessions.Live()),
		zap.Duration("check_interval", sessions.CheckInterval()),
		zap.Int("items_per_check", sessions.ItemsPerCheck()),
	)

	var srv *http.Server
	if cfg.Server.Port > 0 {
		srv = &http.Server{
			Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler:           newRouter(cfg.Server, reg, sessions),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			log.Info("http server listening", zap.String("addr", srv.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("http server failed", zap.Error(err))
				stop()
			}
		}()
	}

	runDemo(log, sessions)

	<-ctx.Done()
	log.Info("shutting down")

	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("http server shutdown", zap.Error(err))
		}
	}
}

// runDemo shows sliding expiration on a few session tokens.
func runDemo(log *zap.Logger, sessions *timed.Cache[string, string]) {
	sessions.Set("alice", "token-a")
	sessions.Set("bob", "token-b")

	if v, ok := sessions.Get("alice"); ok {
		log.Info("session hit", zap.String("user", "alice"), zap.String("token", v))
	}
	if _, ok := sessions.Get("carol"); !ok {
		log.Info("session miss", zap.String("user", "carol"))
	}

	s := sessions.Stats()
	log.Info("cache stats",
		zap.Int("entries", sessions.Len()),
		zap.Int64("hits", s.Hits),
		zap.Int64("misses", s.Misses),
		zap.Bool("sweeping", s.SchedulerActive),
	)
}
