package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/doeshing/unitconv/internal/domain"
)

func validConfig() domain.Config {
	return domain.Config{
		History: domain.HistorySettings{
			Backend:    domain.BackendText,
			File:       domain.DefaultHistoryFile,
			CSVFile:    domain.DefaultCSVFile,
			SQLiteFile: domain.DefaultSQLiteFile,
			MaxEntries: domain.DefaultMaxHistory,
		},
		Prompt: domain.PromptSettings{MaxAttempts: 3},
		Log:    domain.LogSettings{Level: "warn"},
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	assert.NoError(t, Validate(validConfig()))
}

func TestValidateRejects(t *testing.T) {
	tests := map[string]func(*domain.Config){
		"unknown backend":   func(c *domain.Config) { c.History.Backend = "redis" },
		"zero max entries":  func(c *domain.Config) { c.History.MaxEntries = 0 },
		"huge max entries":  func(c *domain.Config) { c.History.MaxEntries = domain.MaxHistoryLimit + 1 },
		"empty file":        func(c *domain.Config) { c.History.File = "" },
		"empty csv file":    func(c *domain.Config) { c.History.CSVFile = "" },
		"zero attempts":     func(c *domain.Config) { c.Prompt.MaxAttempts = 0 },
		"bad log level":     func(c *domain.Config) { c.Log.Level = "loud" },
		"sqlite without db": func(c *domain.Config) { c.History.Backend = domain.BackendSQLite; c.History.SQLiteFile = "" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := validConfig()
			mutate(&cfg)
			assert.Error(t, Validate(cfg))
		})
	}
}
