package config

import (
	"os"
	"time"

	"github.com/dmitrijs2005/taskbalance/internal/flagx"
	"github.com/joho/godotenv"
)

const envPrefix = "TASKBALANCE_CLIENT_"

func parseEnv(cfg *Config) {
	if path := flagx.EnvFileFlags(); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	}

	if v := os.Getenv(envPrefix + "SERVER_ADDRESS"); v != "" {
		cfg.ServerEndpointAddr = v
	}
	if v := os.Getenv(envPrefix + "DB_PATH"); v != "" {
		cfg.LocalDBPath = v
	}
	if v := os.Getenv(envPrefix + "LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(envPrefix + "REQUEST_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
}
