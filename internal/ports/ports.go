// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the conversion engine and external
// adapters (infrastructure). The engine depends on these abstractions, while the
// history backends, config loader and logger provide concrete implementations.
//
// Key architectural concepts:
//   - Ports: Interfaces defined here (e.g., UnitCatalog, HistoryRepository)
//   - Adapters: Concrete implementations in the infrastructure layer
//   - Dependency inversion: Application depends on abstractions, not implementations
package ports

import (
	"context"
	"iter"

	"github.com/doeshing/unitconv/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.unitconv/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// UnitCatalog is the read-only unit registry consumed by the converter.
type UnitCatalog interface {
	Categories() []domain.Category
	Units(category domain.Category) iter.Seq[domain.Unit]
	Lookup(token string, category domain.Category) (domain.Unit, bool)
	Exists(token string, category domain.Category) bool
}

// HistoryBackend persists a whole history log and reads it back.
// Write replaces the stored log; Read returns at most limit entries in insertion order.
type HistoryBackend interface {
	Read(limit int) ([]domain.HistoryEntry, error)
	Write(entries []domain.HistoryEntry) error
	Path() string
}

// HistoryRepository is the bounded conversion log owned by the engine.
type HistoryRepository interface {
	Load() error
	Append(from, to string, value, result float64) (domain.HistoryEntry, error)
	Clear() error
	Entries() []domain.HistoryEntry
	ExportCSV(path string) error
	Path() string
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stderr, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
