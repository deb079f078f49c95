package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	appconfig "github.com/doeshing/unitconv/internal/application/config"
	"github.com/doeshing/unitconv/internal/application/convert"
	"github.com/doeshing/unitconv/internal/domain"
	"github.com/doeshing/unitconv/internal/infrastructure/config"
	"github.com/doeshing/unitconv/internal/infrastructure/history"
	"github.com/doeshing/unitconv/internal/pkg/logger"
	"github.com/doeshing/unitconv/internal/ports"
	"github.com/doeshing/unitconv/internal/registry"
)

// Options controls how the container is assembled.
type Options struct {
	// ConfigPath overrides the config file location (empty: UNITCONV_CONFIG or ~/.unitconv/config.yaml).
	ConfigPath string
	// Verbose forces debug logging regardless of log.level.
	Verbose bool
	// LogWriter receives log records (default: standard error).
	LogWriter io.Writer
	// Clock stamps history entries (default: time.Now).
	Clock func() time.Time
	// Location renders CSV timestamps (default: time.Local).
	Location *time.Location
}

// Container wires up the conversion engine with infrastructure adapters.
// It is the single owned engine value handed to the presentation layer.
type Container struct {
	Config       domain.Config
	ConfigLoader *config.FileLoader
	Units        *registry.Registry
	HistoryStore *history.Store
	Service      *convert.Service
	Logger       ports.Logger
}

// BuildContainer constructs the dependency graph and loads the history log.
func BuildContainer(ctx context.Context, opts Options) (*Container, error) {
	cfgLoader := config.NewFileLoader(opts.ConfigPath)
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", cfgLoader.Path(), err)
	}
	if err := appconfig.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgLoader.Path(), err)
	}

	logWriter := opts.LogWriter
	if logWriter == nil {
		logWriter = os.Stderr
	}
	level := cfg.Log.Level
	if opts.Verbose {
		level = "debug"
	}
	log := logger.New(logWriter, level)

	units, err := registry.Default()
	if err != nil {
		return nil, err
	}
	log.Debug("unit registry initialised", map[string]interface{}{
		"units":      units.Len(),
		"categories": len(units.Categories()),
	})

	store := history.NewStore(openBackend(cfg, log),
		history.WithMaxEntries(cfg.History.MaxEntries),
		history.WithClock(opts.Clock),
		history.WithLocation(opts.Location),
	)
	if err := store.Load(); err != nil {
		log.Warn("history not loaded", map[string]interface{}{
			"path":  store.Path(),
			"error": err.Error(),
		})
	}

	return &Container{
		Config:       cfg,
		ConfigLoader: cfgLoader,
		Units:        units,
		HistoryStore: store,
		Service: &convert.Service{
			Units:   units,
			History: store,
			Logger:  log,
		},
		Logger: log,
	}, nil
}

// Close releases the history backend.
func (c *Container) Close() error {
	if c == nil || c.HistoryStore == nil {
		return nil
	}
	return c.HistoryStore.Close()
}

// openBackend picks the configured history backend. A SQLite database that
// cannot be opened falls back to the text file so conversions keep working.
func openBackend(cfg domain.Config, log ports.Logger) ports.HistoryBackend {
	if !cfg.UsesSQLite() {
		return history.NewFileStore(cfg.History.File)
	}
	backend, err := history.NewSQLiteStore(cfg.History.SQLiteFile)
	if err != nil {
		log.Warn("sqlite history unavailable, using text file", map[string]interface{}{
			"path":     cfg.History.SQLiteFile,
			"fallback": cfg.History.File,
			"error":    err.Error(),
		})
		return history.NewFileStore(cfg.History.File)
	}
	return backend
}
