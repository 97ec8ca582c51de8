package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" || cfg.Addr() != ":8080" {
		t.Fatalf("unexpected port %q", cfg.Port)
	}
	if !cfg.IsDev() {
		t.Fatalf("expected development by default, got %q", cfg.Env)
	}
	if cfg.AuthTTL != 720*time.Hour {
		t.Fatalf("unexpected ttl %s", cfg.AuthTTL)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestLoad_EnvOverridesAndEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("TIMEZONE=America/Lima\nLOG_FORMAT=json\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "Production")
	t.Setenv("AUTH_SECRET", "s3cret")

	cfg, err := load(envFile)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "9090" || cfg.Env != "production" || cfg.LogFormat != "json" {
		t.Fatalf("unexpected config %+v", cfg)
	}

	loc, err := cfg.Location()
	if err != nil || loc.String() != "America/Lima" {
		t.Fatalf("unexpected location %v err=%v", loc, err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	base := Config{Port: "8080", Env: "production", AuthSecret: "x", AuthTTL: time.Hour, Timezone: "UTC"}

	missingSecret := base
	missingSecret.AuthSecret = ""
	if err := missingSecret.Validate(); err == nil {
		t.Fatalf("expected error without AUTH_SECRET outside dev")
	}

	badTZ := base
	badTZ.Timezone = "Mars/Olympus"
	if err := badTZ.Validate(); err == nil {
		t.Fatalf("expected error for unknown timezone")
	}

	devNoSecret := base
	devNoSecret.Env = "development"
	devNoSecret.AuthSecret = ""
	if err := devNoSecret.Validate(); err != nil {
		t.Fatalf("dev must not require secret: %v", err)
	}
}
