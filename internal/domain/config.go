package domain

// Config mirrors ~/.unitconv/config.yaml.
type Config struct {
	ConfigFormatVersion string          `yaml:"config_format_version"`
	History             HistorySettings `yaml:"history"`
	Display             DisplaySettings `yaml:"display"`
	Prompt              PromptSettings  `yaml:"prompt"`
	Log                 LogSettings     `yaml:"log"`
}

// HistorySettings selects and configures the history backend.
type HistorySettings struct {
	Backend    string `yaml:"backend"`
	File       string `yaml:"file"`
	CSVFile    string `yaml:"csv_file"`
	SQLiteFile string `yaml:"sqlite_file"`
	MaxEntries int    `yaml:"max_entries"`
}

// DisplaySettings controls terminal pacing in interactive mode.
type DisplaySettings struct {
	ClearScreen bool `yaml:"clear_screen"`
	Pause       bool `yaml:"pause"`
}

// PromptSettings controls interactive input validation.
type PromptSettings struct {
	MaxAttempts int `yaml:"max_attempts"`
}

// LogSettings configures diagnostic logging.
type LogSettings struct {
	Level string `yaml:"level"`
}
