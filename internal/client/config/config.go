// Package config loads runtime settings for the taskbalance terminal client.
//
// Sources, later ones winning:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file given with -c or -config.
//  3. TASKBALANCE_CLIENT_* environment variables, optionally read from the
//     dotenv file given with -env.
//  4. Short command-line flags.
//
// Durations in JSON use timex.Duration, so both "5s" and integer nanoseconds
// are accepted:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "local_db_path": "taskbalance.db",
//	  "request_timeout": "5s",
//	  "log_level": "warn"
//	}
package config

import "time"

// Config holds runtime settings for the client.
type Config struct {
	ServerEndpointAddr string
	LocalDBPath        string
	RequestTimeout     time.Duration
	LogLevel           string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.LocalDBPath = "taskbalance.db"
	c.RequestTimeout = 5 * time.Second
	c.LogLevel = "warn"
}

// LoadConfig applies defaults, then JSON, environment and flags in that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
