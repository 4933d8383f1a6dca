package config

import (
	"os"
	"time"

	"github.com/dmitrijs2005/taskbalance/internal/flagx"
	"github.com/joho/godotenv"
)

const envPrefix = "TASKBALANCE_"

// parseEnv overlays TASKBALANCE_* environment variables. When -env names a
// dotenv file it is loaded first; variables already set in the process win.
func parseEnv(config *Config) {
	if path := flagx.EnvFileFlags(); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	}

	lookupString(&config.EndpointAddrGRPC, "GRPC_ADDRESS")
	lookupString(&config.DatabaseDSN, "DATABASE_DSN")
	lookupString(&config.SecretKey, "SECRET_KEY")
	lookupString(&config.LogLevel, "LOG_LEVEL")
	lookupString(&config.S3RootUser, "S3_ROOT_USER")
	lookupString(&config.S3RootPassword, "S3_ROOT_PASSWORD")
	lookupString(&config.S3Bucket, "S3_BUCKET")
	lookupString(&config.S3Region, "S3_REGION")
	lookupString(&config.S3BaseEndpoint, "S3_BASE_ENDPOINT")

	lookupDuration(&config.AccessTokenValidityDuration, "ACCESS_TOKEN_TTL")
	lookupDuration(&config.RefreshTokenValidityDuration, "REFRESH_TOKEN_TTL")
	lookupDuration(&config.TokenPurgeInterval, "TOKEN_PURGE_INTERVAL")
}

func lookupString(dst *string, name string) {
	if v, ok := os.LookupEnv(envPrefix + name); ok && v != "" {
		*dst = v
	}
}

// lookupDuration panics on values time.ParseDuration rejects.
func lookupDuration(dst *time.Duration, name string) {
	v, ok := os.LookupEnv(envPrefix + name)
	if !ok || v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(err)
	}
	*dst = d
}
