package config

import (
	"testing"
	"time"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_ENV", "test")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "clinic")
	t.Setenv("DB_NAME", "clinic_test")
	t.Setenv("REDIS_HOST", "cache.internal")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("JWT_SECRET", "topsecret")
	t.Setenv("JWT_ACCESS_EXPIRY", "30m")
	t.Setenv("JWT_REFRESH_EXPIRY", "48h")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.App.Port != "9090" {
		t.Errorf("App.Port = %q, want 9090", cfg.App.Port)
	}
	if cfg.App.Env != "test" {
		t.Errorf("App.Env = %q, want test", cfg.App.Env)
	}
	if cfg.DB.Host != "db.internal" || cfg.DB.Port != "5433" {
		t.Errorf("DB = %+v", cfg.DB)
	}
	if cfg.DB.Name != "clinic_test" {
		t.Errorf("DB.Name = %q", cfg.DB.Name)
	}
	if cfg.Redis.Host != "cache.internal" || cfg.Redis.Port != "6380" {
		t.Errorf("Redis = %+v", cfg.Redis)
	}
	if cfg.JWT.Secret != "topsecret" {
		t.Errorf("JWT.Secret = %q", cfg.JWT.Secret)
	}
	if cfg.JWT.AccessExpiry != 30*time.Minute {
		t.Errorf("JWT.AccessExpiry = %v, want 30m", cfg.JWT.AccessExpiry)
	}
	if cfg.JWT.RefreshExpiry != 48*time.Hour {
		t.Errorf("JWT.RefreshExpiry = %v, want 48h", cfg.JWT.RefreshExpiry)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("JWT_ACCESS_EXPIRY", "")
	t.Setenv("JWT_REFRESH_EXPIRY", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.App.Port != "8080" {
		t.Errorf("App.Port = %q, want default 8080", cfg.App.Port)
	}
	if cfg.JWT.AccessExpiry != 15*time.Minute {
		t.Errorf("JWT.AccessExpiry = %v, want default 15m", cfg.JWT.AccessExpiry)
	}
	if cfg.JWT.RefreshExpiry != 7*24*time.Hour {
		t.Errorf("JWT.RefreshExpiry = %v, want default 168h", cfg.JWT.RefreshExpiry)
	}
}
