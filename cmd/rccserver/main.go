package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/rcc-emulator/server/internal/card"
	"github.com/rcc-emulator/server/internal/config"
	"github.com/rcc-emulator/server/internal/db"
	"github.com/rcc-emulator/server/internal/gameserver"
	"github.com/rcc-emulator/server/internal/httpapi"
	"github.com/rcc-emulator/server/internal/identitystore"
	"github.com/rcc-emulator/server/internal/login"
	"github.com/rcc-emulator/server/internal/policy"
)

// ConfigPath is the default location of the server's YAML config.
const ConfigPath = "config/rccserver.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("RCC_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	slog.Info("rcc-emulator starting",
		"host", cfg.Host, "tcp_port", cfg.TCPPort, "http_port", cfg.HTTPPort, "policy_port", cfg.PolicyPort)

	if err := db.RunMigrations(ctx, cfg.DBPath); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database migrations applied", "path", cfg.DBPath)

	database, err := db.New(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	store := identitystore.New(database.Conn())
	loginHandler := login.NewHandler(store)

	cards := card.DefaultCatalogue()
	gameServer := gameserver.NewServer(cfg.Host, cfg.TCPPort, loginHandler, cards)
	policyServer := policy.NewServer(cfg.Host, cfg.PolicyPort)
	httpServer := httpapi.NewServer(cfg.Host, cfg.HTTPPort, store, gameServer)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := gameServer.Run(gctx); err != nil {
			return fmt.Errorf("game server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := policyServer.Run(gctx); err != nil {
			return fmt.Errorf("policy server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := httpServer.Run(gctx); err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// parseLogLevel converts a string log level to slog.Level, defaulting
// to Info on anything unrecognized.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
