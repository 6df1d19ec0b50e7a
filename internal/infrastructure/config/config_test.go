package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.GRPCPort != 9094 {
		t.Errorf("GRPCPort = %d, want 9094", cfg.GRPCPort)
	}
	if cfg.HTTPPort != 8094 {
		t.Errorf("HTTPPort = %d, want 8094", cfg.HTTPPort)
	}
	if cfg.ServiceName != "tilgung-service" {
		t.Errorf("ServiceName = %q, want tilgung-service", cfg.ServiceName)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("GRPC_PORT", "7001")
	t.Setenv("HTTP_PORT", "7002")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	if cfg.GRPCPort != 7001 {
		t.Errorf("GRPCPort = %d, want 7001", cfg.GRPCPort)
	}
	if cfg.GRPCAddr() != ":7001" {
		t.Errorf("GRPCAddr = %q, want :7001", cfg.GRPCAddr())
	}
	if cfg.HTTPAddr() != ":7002" {
		t.Errorf("HTTPAddr = %q, want :7002", cfg.HTTPAddr())
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoadIgnoresMalformedPort(t *testing.T) {
	t.Setenv("GRPC_PORT", "not-a-port")

	cfg := Load()

	if cfg.GRPCPort != 9094 {
		t.Errorf("GRPCPort = %d, want fallback 9094", cfg.GRPCPort)
	}
}
