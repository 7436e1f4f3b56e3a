package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig mirrors Config with pointer fields so that only variables
// actually present in the environment override earlier layers.
type envConfig struct {
	EndpointAddr         *string `env:"RUN_ADDRESS"`
	DatabaseDSN          *string `env:"DATABASE_DSN"`
	SecretKey            *string `env:"SECRET_KEY"`
	TokenValiditySeconds *int    `env:"TOKEN_VALIDITY_SECONDS"`
}

// parseEnv overlays configuration from the process environment. SECRET_KEY
// is the canonical way to supply the signing secret.
func parseEnv(config *Config) error {
	c := &envConfig{}
	if err := env.Parse(c); err != nil {
		return err
	}

	if c.EndpointAddr != nil {
		config.EndpointAddr = *c.EndpointAddr
	}
	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.SecretKey != nil {
		config.SecretKey = *c.SecretKey
	}
	if c.TokenValiditySeconds != nil {
		config.TokenValidityDuration = time.Duration(*c.TokenValiditySeconds) * time.Second
	}

	return nil
}
