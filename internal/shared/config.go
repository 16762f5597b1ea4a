package shared

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	API   APIConfig   `toml:"api"`
	Auth  AuthConfig  `toml:"auth"`
	Cache CacheConfig `toml:"cache"`
}

// APIConfig contains the flight-subscription service endpoint settings.
type APIConfig struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// AuthConfig carries the externally issued session credential. The service
// enforces authentication; the client only attaches what it was given.
type AuthConfig struct {
	SessionToken  string `toml:"session_token"`
	SessionCookie string `toml:"session_cookie"`
}

// CacheConfig contains local snapshot database settings.
type CacheConfig struct {
	Path         string `toml:"path"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// LoadConfig reads and parses a TOML configuration file from the specified
// path, then applies environment overrides (a .env file is honored when
// present).
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	config.applyEnv()
	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the
// embedded example config, with environment overrides applied.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	config.applyEnv()
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s: %w", path, ErrInvalidArgument)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// applyEnv overlays WINGS_* environment variables on the loaded values.
func (c *Config) applyEnv() {
	godotenv.Load()

	if v := os.Getenv("WINGS_API_BASE_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("WINGS_API_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.API.TimeoutSeconds = n
		}
	}
	if v := os.Getenv("WINGS_SESSION_TOKEN"); v != "" {
		c.Auth.SessionToken = v
	}
	if v := os.Getenv("WINGS_SESSION_COOKIE"); v != "" {
		c.Auth.SessionCookie = v
	}
	if v := os.Getenv("WINGS_CACHE_PATH"); v != "" {
		c.Cache.Path = v
	}
}
