package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {

	for _, key := range []string{"SERVER_PORT", "REDIS_ADDR", "CACHE_TTL", "RATE_LIMIT_CAPACITY", "BCRYPT_COST"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTP.Port != defaultPort {
		t.Errorf("expected port %d, got %d", defaultPort, cfg.HTTP.Port)
	}
	if cfg.Redis.Addr != "" {
		t.Errorf("expected no redis by default, got %q", cfg.Redis.Addr)
	}
	if cfg.Analysis.CacheTTL != defaultCacheTTL {
		t.Errorf("expected cache ttl %s, got %s", defaultCacheTTL, cfg.Analysis.CacheTTL)
	}
	if cfg.Security.BcryptCost != defaultBcryptCost {
		t.Errorf("expected bcrypt cost %d, got %d", defaultBcryptCost, cfg.Security.BcryptCost)
	}
}

func TestLoad_Overrides(t *testing.T) {

	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("RATE_LIMIT_CAPACITY", "20")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTP.Port != 9090 {
		t.Errorf("expected 9090, got %d", cfg.HTTP.Port)
	}
	if cfg.Analysis.CacheTTL != 30*time.Second {
		t.Errorf("expected 30s, got %s", cfg.Analysis.CacheTTL)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("expected redis addr, got %q", cfg.Redis.Addr)
	}
	if cfg.HTTP.RateLimitCapacity != 20 {
		t.Errorf("expected 20, got %d", cfg.HTTP.RateLimitCapacity)
	}
}

func TestLoad_Invalid(t *testing.T) {

	tests := map[string]string{
		"SERVER_PORT":         "70000",
		"SERVER_READ_TIMEOUT": "soon",
		"RATE_LIMIT_CAPACITY": "0",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Errorf("expected error for %s=%s", key, value)
			}
		})
	}
}
