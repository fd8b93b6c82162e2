package server

import (
	"strconv"
	"strings"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitMB caps request bodies; check requests carry both datasets.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"32"`
}

const defaultBodyLimitMB = 4

// Address returns the listen address, accepting ports given with or without a colon.
func (c Config) Address() string {
	port := strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
	if _, err := strconv.Atoi(port); err != nil || port == "" {
		port = "8080"
	}
	return ":" + port
}

// BodyLimit returns the request body limit in bytes.
func (c Config) BodyLimit() int {
	mb := c.BodyLimitMB
	if mb <= 0 {
		mb = defaultBodyLimitMB
	}
	return mb * 1024 * 1024
}
