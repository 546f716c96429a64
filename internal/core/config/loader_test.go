package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_EnvSubstitution(t *testing.T) {
	// Setup env var
	os.Setenv("TEST_RPC_URL", "https://mainnet.example/v2/key123")
	defer os.Unsetenv("TEST_RPC_URL")

	// Create temp config file
	configContent := `
chain:
  providers:
    - name: primary
      url: ${TEST_RPC_URL}
`
	tmpFile, err := os.CreateTemp("", "config_*.yaml")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write([]byte(configContent)); err != nil {
		t.Fatalf("Failed to write to temp file: %v", err)
	}
	tmpFile.Close()

	// Load config
	cfg, err := Load(tmpFile.Name())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(cfg.Chain.Providers) != 1 {
		t.Fatalf("Expected 1 provider, got %d", len(cfg.Chain.Providers))
	}
	if cfg.Chain.Providers[0].URL != "https://mainnet.example/v2/key123" {
		t.Errorf("Expected URL https://mainnet.example/v2/key123, got %s", cfg.Chain.Providers[0].URL)
	}
}

func TestLoad_Defaults(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "config_*.yaml")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write([]byte("logging:\n  level: info\n")); err != nil {
		t.Fatalf("Failed to write to temp file: %v", err)
	}
	tmpFile.Close()

	cfg, err := Load(tmpFile.Name())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8000 {
		t.Errorf("Expected default port 8000, got %d", cfg.Server.Port)
	}
	if cfg.Chain.RPCTimeout != 10*time.Second {
		t.Errorf("Expected default rpc timeout 10s, got %s", cfg.Chain.RPCTimeout)
	}
	if cfg.Models.Timeout != 5*time.Second {
		t.Errorf("Expected default model timeout 5s, got %s", cfg.Models.Timeout)
	}
	if cfg.Cache.TTL != time.Hour {
		t.Errorf("Expected default cache ttl 1h, got %s", cfg.Cache.TTL)
	}
}
