package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/azamanzizi-droid/ku2cash/internal/config"
	"github.com/azamanzizi-droid/ku2cash/internal/server"
	"github.com/azamanzizi-droid/ku2cash/internal/service"
	"github.com/azamanzizi-droid/ku2cash/internal/storage"
	"github.com/azamanzizi-droid/ku2cash/internal/storage/memory"
	"github.com/azamanzizi-droid/ku2cash/internal/storage/sqlite"
	"github.com/azamanzizi-droid/ku2cash/pkg/logging"
)

func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	store, err := newStore(cfg)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "backend", cfg.DataBackend)

	svc := service.New(store, service.WithSeedCount(cfg.SeedMembers))
	if err := svc.Load(context.Background()); err != nil {
		slog.Error("Failed to load state", "error", err)
		os.Exit(1)
	}

	router := server.New(svc).Router()

	addr := fmt.Sprintf(":%s", cfg.Port)
	slog.Info("Server starting", "address", addr, "url", fmt.Sprintf("http://localhost%s", addr))
	if err := http.ListenAndServe(addr, router); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func newStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.DataBackend {
	case config.BackendMemory:
		return memory.New(), nil
	default:
		return sqlite.New(cfg.SQLiteDBPath)
	}
}
