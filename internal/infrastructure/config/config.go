package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the process configuration, loaded from the environment with an
// optional .env file for local development.
type Config struct {
	GRPCPort     int
	HTTPPort     int
	LogLevel     string
	LogFormat    string
	OTLPEndpoint string
	ServiceName  string
}

// Load reads configuration from the environment. A .env file, if present, is
// loaded first; a missing file is not an error.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		GRPCPort:     getEnvInt("GRPC_PORT", 9094),
		HTTPPort:     getEnvInt("HTTP_PORT", 8094),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "json"),
		OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		ServiceName:  "tilgung-service",
	}
}

// GRPCAddr returns the listen address of the gRPC server.
func (c Config) GRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

// HTTPAddr returns the listen address of the HTTP health/metrics server.
func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
