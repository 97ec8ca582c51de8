package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string        `mapstructure:"PORT"`
	Env         string        `mapstructure:"ENV"`
	DatabaseURL string        `mapstructure:"DATABASE_URL"`
	LogLevel    string        `mapstructure:"LOG_LEVEL"`
	LogFormat   string        `mapstructure:"LOG_FORMAT"`
	AppName     string        `mapstructure:"APP_NAME"`
	AuthSecret  string        `mapstructure:"AUTH_SECRET"`
	AuthIssuer  string        `mapstructure:"AUTH_ISSUER"`
	AuthTTL     time.Duration `mapstructure:"AUTH_TOKEN_TTL"`
	Timezone    string        `mapstructure:"TIMEZONE"`
}

var keys = []string{
	"PORT", "ENV", "DATABASE_URL", "LOG_LEVEL", "LOG_FORMAT", "APP_NAME",
	"AUTH_SECRET", "AUTH_ISSUER", "AUTH_TOKEN_TTL", "TIMEZONE",
}

// Load lee env vars y, si existe, un .env en el directorio actual.
func Load() (*Config, error) {
	return load(".env")
}

func load(envFile string) (*Config, error) {
	v := viper.New()
	if envFile != "" {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
	}
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("APP_NAME", "child-immunization-tracker")
	v.SetDefault("AUTH_ISSUER", "child-immunization-tracker")
	v.SetDefault("AUTH_TOKEN_TTL", "720h")
	v.SetDefault("TIMEZONE", "UTC")

	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	// Si no hay .env no pasa nada.
	if envFile != "" {
		_ = v.ReadInConfig()
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Env = strings.ToLower(strings.TrimSpace(cfg.Env))
	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Addr es el listen address del server.
func (c *Config) Addr() string {
	p := strings.TrimSpace(c.Port)
	if strings.HasPrefix(p, ":") {
		return p
	}
	return ":" + p
}

// Location es la zona con la que se calcula "hoy".
func (c *Config) Location() (*time.Location, error) {
	tz := strings.TrimSpace(c.Timezone)
	if tz == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("TIMEZONE %q: %w", tz, err)
	}
	return loc, nil
}

// Validate: fuera de development exige AUTH_SECRET, porque sin él no hay
// forma de autenticar (el header de debug solo vale en dev).
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("PORT is required")
	}
	if !c.IsDev() && strings.TrimSpace(c.AuthSecret) == "" {
		return fmt.Errorf("AUTH_SECRET is required when ENV=%q", c.Env)
	}
	if c.AuthTTL <= 0 {
		return fmt.Errorf("AUTH_TOKEN_TTL must be positive, got %s", c.AuthTTL)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}
