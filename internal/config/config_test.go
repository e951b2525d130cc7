package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("CLINIC_TIMEZONE", "")
	t.Setenv("GEMINI_MODEL_ID", "")
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected default env, got %s", cfg.Env)
	}
	if cfg.ClinicTimezone != "America/Sao_Paulo" {
		t.Fatalf("expected default clinic timezone, got %s", cfg.ClinicTimezone)
	}
	if cfg.GeminiModelID != "gemini-2.5-flash" {
		t.Fatalf("expected default gemini model, got %s", cfg.GeminiModelID)
	}
	if cfg.AdminTokenTTL != 12*time.Hour {
		t.Fatalf("expected default token ttl, got %s", cfg.AdminTokenTTL)
	}
	if cfg.CORSAllowedOrigins != nil {
		t.Fatalf("expected no default CORS origins, got %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CLINIC_TIMEZONE", "America/Recife")
	t.Setenv("REDIS_ADDR", "localhost:6380")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("ADMIN_TOKEN_TTL", "45m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://karinanutri.com.br, https://admin.karinanutri.com.br")
	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected override port, got %s", cfg.Port)
	}
	if cfg.ClinicTimezone != "America/Recife" {
		t.Fatalf("expected timezone override, got %s", cfg.ClinicTimezone)
	}
	if cfg.RedisAddr != "localhost:6380" {
		t.Fatalf("expected redis override, got %s", cfg.RedisAddr)
	}
	if cfg.RedisDB != 3 {
		t.Fatalf("expected redis db override, got %d", cfg.RedisDB)
	}
	if cfg.AdminTokenTTL != 45*time.Minute {
		t.Fatalf("expected ttl override, got %s", cfg.AdminTokenTTL)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://admin.karinanutri.com.br" {
		t.Fatalf("expected CORS origins parsed, got %v", cfg.CORSAllowedOrigins)
	}
}

func TestGetEnvAsIntInvalid(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")
	cfg := Load()
	if cfg.RedisDB != 0 {
		t.Fatalf("expected fallback for invalid int, got %d", cfg.RedisDB)
	}
}
