package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// FilePermissions is the permission for history and export files (rw-r--r--)
	FilePermissions = 0o644
	// SecureFilePermissions is the permission for the config file (rw-------)
	SecureFilePermissions = 0o600
)

// History constants
const (
	// DefaultMaxHistory bounds the history log; the oldest entry is evicted first.
	DefaultMaxHistory = 100
	// MaxHistoryLimit is the largest bound accepted from configuration.
	MaxHistoryLimit = 100000
	// DefaultHistoryFile is the text history file, relative to the working directory.
	DefaultHistoryFile = "conversion_history.txt"
	// DefaultCSVFile is the default CSV export destination.
	DefaultCSVFile = "conversion_history.csv"
	// DefaultSQLiteFile is used when the sqlite history backend is selected.
	DefaultSQLiteFile = "conversion_history.db"
	// DefaultHistoryLimit is the default number of entries shown by `history list`.
	DefaultHistoryLimit = 20
)

// History backends
const (
	BackendText   = "text"
	BackendSQLite = "sqlite"
)

// Prompt constants
const (
	// DefaultMaxAttempts is the retry budget for a single interactive prompt.
	DefaultMaxAttempts = 3
)

// Numeric constants
const (
	// PrecisionWarningThreshold is the magnitude from which float64 results lose integer precision.
	PrecisionWarningThreshold = 1e15
)

// Time formats
const (
	// TimestampFormat renders history timestamps in local time.
	TimestampFormat = time.DateTime
)
