package config

import "github.com/solset/stringlens/errors"

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	// Database path is optional - empty defaults to "stringlens.db" per defaults.go

	// Server port: 0 is invalid (omit for default), negative is invalid
	if c.Server.Port != nil && *c.Server.Port == 0 {
		return errors.New("server.port cannot be 0 (omit for default port 8742)")
	}
	if c.Server.Port != nil && *c.Server.Port < 0 {
		return errors.Newf("server.port must be positive, got %d", *c.Server.Port)
	}
	if c.Server.Port != nil && *c.Server.Port > 65535 {
		return errors.Newf("server.port must be <= 65535, got %d", *c.Server.Port)
	}

	// Rate limit: 0 = unlimited, negative = invalid
	if c.Server.RateLimitRPS < 0 {
		return errors.Newf("server.rate_limit_rps must be >= 0, got %f", c.Server.RateLimitRPS)
	}
	if c.Server.RateLimitBurst < 0 {
		return errors.Newf("server.rate_limit_burst must be >= 0, got %d", c.Server.RateLimitBurst)
	}

	// Query limits: 0 = unlimited, negative = invalid
	if c.Query.DefaultLimit < 0 {
		return errors.Newf("query.default_limit must be >= 0, got %d", c.Query.DefaultLimit)
	}
	if c.Query.MaxPhraseTokens < 0 {
		return errors.Newf("query.max_phrase_tokens must be >= 0, got %d", c.Query.MaxPhraseTokens)
	}

	return nil
}
