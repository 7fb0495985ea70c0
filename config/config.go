package config

// Config represents the StringLens service configuration
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Query    QueryConfig    `mapstructure:"query"`
}

// DatabaseConfig configures the SQLite database
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// ServerConfig configures the StringLens HTTP server
type ServerConfig struct {
	Port           *int     `mapstructure:"port"`            // Server port: nil = default 8742, 0 is invalid (omit for default)
	AllowedOrigins []string `mapstructure:"allowed_origins"` // CORS allow-list; empty = same-origin only
	RateLimitRPS   float64  `mapstructure:"rate_limit_rps"`  // Requests per second per server; 0 = unlimited
	RateLimitBurst int      `mapstructure:"rate_limit_burst"`
}

// QueryConfig configures query evaluation behavior
type QueryConfig struct {
	DefaultLimit    int `mapstructure:"default_limit"`     // Maximum records returned per query (0 = unlimited)
	MaxPhraseTokens int `mapstructure:"max_phrase_tokens"` // Natural-language phrases longer than this are rejected up front
}

// Server port constants
const (
	DefaultServerPort = 8742 // Development port (above privileged range)
)

// File system constants
const (
	DefaultDirPermissions  = 0755 // Standard directory permissions (rwxr-xr-x)
	DefaultFilePermissions = 0644 // Standard file permissions (rw-r--r--)
)
