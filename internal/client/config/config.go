// Package config loads settings for shopctl: built-in defaults, then an
// optional JSON file given with -c/-config, then command-line flags.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings for shopctl.
type Config struct {
	ServerEndpointAddr string
	RequestTimeout     time.Duration
}

// LoadDefaults populates c with defaults matching a local server.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RequestTimeout = 30 * time.Second
}

// LoadConfig applies defaults, JSON and flags in that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, os.Args[1:])
	parseFlags(cfg, os.Args[1:])
	return cfg
}
