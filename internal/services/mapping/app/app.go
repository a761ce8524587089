// Package app wires the mapping runtime: configuration, storage, and the
// service façade.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/simplemapping/simplemapping/internal/platform/config"
	"github.com/simplemapping/simplemapping/internal/services/mapping/service"
	mappingsqlite "github.com/simplemapping/simplemapping/internal/services/mapping/storage/sqlite"
	"github.com/simplemapping/simplemapping/internal/services/mapping/telemetry"
)

type appEnv struct {
	DBPath string `env:"SIMPLE_MAPPING_DB_PATH"`
}

func loadAppEnv() appEnv {
	var cfg appEnv
	_ = config.ParseEnv(&cfg)
	if strings.TrimSpace(cfg.DBPath) == "" {
		cfg.DBPath = filepath.Join("data", "mapping.db")
	}
	return cfg
}

// App owns the mapping service and its storage lifecycle.
type App struct {
	Service *service.Service
	store   *mappingsqlite.Store
}

// New opens the configured store and builds the mapping service.
func New() (*App, error) {
	return NewWithDBPath(loadAppEnv().DBPath)
}

// NewWithDBPath builds the app over an explicit database path.
func NewWithDBPath(dbPath string) (*App, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := mappingsqlite.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open mapping store: %w", err)
	}
	emitter := telemetry.NewEmitter(store, time.Now)
	return &App{
		Service: service.New(store, emitter),
		store:   store,
	}, nil
}

// Close releases the storage handle.
func (a *App) Close() error {
	if a == nil || a.store == nil {
		return nil
	}
	return a.store.Close()
}
