package config

import (
	"errors"
	"fmt"

	"github.com/doeshing/unitconv/internal/domain"
	"github.com/doeshing/unitconv/internal/pkg/logger"
)

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	if err := validateHistory(cfg.History); err != nil {
		return err
	}
	if err := validatePrompt(cfg.Prompt); err != nil {
		return err
	}
	if !logger.ValidLevel(cfg.Log.Level) {
		return fmt.Errorf("log.level must be debug|info|warn|error, got %s", cfg.Log.Level)
	}
	return nil
}

func validateHistory(history domain.HistorySettings) error {
	switch history.Backend {
	case domain.BackendText, domain.BackendSQLite:
	default:
		return fmt.Errorf("history.backend must be %s|%s, got %s", domain.BackendText, domain.BackendSQLite, history.Backend)
	}
	if history.MaxEntries < 1 || history.MaxEntries > domain.MaxHistoryLimit {
		return fmt.Errorf("history.max_entries must be between 1 and %d", domain.MaxHistoryLimit)
	}
	if history.File == "" {
		return errors.New("history.file must be set")
	}
	if history.CSVFile == "" {
		return errors.New("history.csv_file must be set")
	}
	if history.Backend == domain.BackendSQLite && history.SQLiteFile == "" {
		return errors.New("history.sqlite_file must be set")
	}
	return nil
}

func validatePrompt(prompt domain.PromptSettings) error {
	if prompt.MaxAttempts < 1 {
		return fmt.Errorf("prompt.max_attempts must be >= 1")
	}
	return nil
}
