package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type JWTConfig struct {
	Secret   string `yaml:"secret"`
	Issuer   string `yaml:"issuer"`
	TokenTTL string `yaml:"token_ttl"`
}

type CasbinConfig struct {
	ModelPath string `yaml:"model_path"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	JWT      JWTConfig      `yaml:"jwt"`
	Casbin   CasbinConfig   `yaml:"casbin"`
}

type Config struct {
	Port            string
	GinMode         string
	DSN             string
	JWTSecret       string
	JWTIssuer       string
	TokenTTL        time.Duration
	CasbinModelPath string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads config/config.yml and applies environment overrides. The JWT
// secret must come from configuration, never from code.
func Load() (*Config, error) {
	return LoadFile(env("CONFIG_PATH", "config/config.yml"))
}

// LoadFile loads configuration from an explicit path.
func LoadFile(path string) (*Config, error) {
	configFile, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	cfg := &Config{
		Port:            env("PORT", fmt.Sprintf("%d", configFile.App.Port)),
		GinMode:         env("GIN_MODE", configFile.App.GinMode),
		DSN:             env("DATABASE_DSN", configFile.Database.DSN),
		JWTSecret:       env("JWT_SECRET", configFile.JWT.Secret),
		JWTIssuer:       env("JWT_ISSUER", configFile.JWT.Issuer),
		CasbinModelPath: env("CASBIN_MODEL_PATH", configFile.Casbin.ModelPath),
	}

	ttl, err := time.ParseDuration(env("JWT_TOKEN_TTL", configFile.JWT.TokenTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT token TTL: %w", err)
	}
	cfg.TokenTTL = ttl

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret is not configured")
	}
	if cfg.DSN == "" {
		return nil, fmt.Errorf("database dsn is not configured")
	}
	return cfg, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}
	return &config, nil
}
