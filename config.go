package roster

import (
	"os"
	"time"

	"github.com/hyperengineering/roster/internal/store"
)

// Config configures the Roster client.
type Config struct {
	// DBPath is the path to the local SQLite database.
	// Defaults to ~/.roster/people.db.
	DBPath string

	// HTTPAddr is the listen address for the HTTP transport.
	// Only used by the serve command. Defaults to ":8080".
	HTTPAddr string

	// APIKey, when set, is required from HTTP callers via the
	// X-API-Key header. The stdio transport never checks it.
	APIKey string

	// CallTimeout bounds a single tool dispatch on the HTTP transport.
	// Zero means no bound (the stdio transport default).
	CallTimeout time.Duration

	// Debug enables verbose logging of store operations.
	Debug bool

	// DebugLogPath is the path to write debug logs.
	// Defaults to stderr if empty.
	DebugLogPath string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DBPath:   store.DefaultDBPath(),
		HTTPAddr: ":8080",
	}
}

// ConfigFromEnv reads configuration from environment variables.
//
//	ROSTER_DB_PATH    → DBPath
//	ROSTER_HTTP_ADDR  → HTTPAddr
//	ROSTER_API_KEY    → APIKey
//	ROSTER_DEBUG      → Debug (any non-empty value enables)
//	ROSTER_DEBUG_LOG  → DebugLogPath
func ConfigFromEnv() Config {
	return Config{
		DBPath:       os.Getenv("ROSTER_DB_PATH"),
		HTTPAddr:     os.Getenv("ROSTER_HTTP_ADDR"),
		APIKey:       os.Getenv("ROSTER_API_KEY"),
		Debug:        os.Getenv("ROSTER_DEBUG") != "",
		DebugLogPath: os.Getenv("ROSTER_DEBUG_LOG"),
	}
}

// Validate checks the configuration for errors.
// Returns *ValidationError for invalid fields.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return &ValidationError{Field: "DBPath", Message: "required: path to SQLite database"}
	}
	if c.CallTimeout < 0 {
		return &ValidationError{Field: "CallTimeout", Message: "must be non-negative"}
	}
	return nil
}

// WithDefaults fills in default values for unset fields.
func (c Config) WithDefaults() Config {
	defaults := DefaultConfig()

	if c.DBPath == "" {
		c.DBPath = defaults.DBPath
	}
	if c.HTTPAddr == "" {
		c.HTTPAddr = defaults.HTTPAddr
	}
	return c
}
