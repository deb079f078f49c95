package domain

// HistoryPath returns the file the configured backend persists to.
func (c *Config) HistoryPath() string {
	if c.History.Backend == BackendSQLite {
		return c.History.SQLiteFile
	}
	return c.History.File
}

// UsesSQLite reports whether history lives in a SQLite database.
func (c *Config) UsesSQLite() bool {
	return c.History.Backend == BackendSQLite
}
