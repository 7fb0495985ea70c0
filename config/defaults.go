package config

import (
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Database defaults
	v.SetDefault("database.path", "stringlens.db")

	// Server defaults
	v.SetDefault("server.allowed_origins", []string{})
	v.SetDefault("server.rate_limit_rps", 0.0) // unlimited unless configured
	v.SetDefault("server.rate_limit_burst", 20)

	// Query defaults
	v.SetDefault("query.default_limit", 0) // return everything that matches
	v.SetDefault("query.max_phrase_tokens", 64)
}
