package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("LoadConfig", func(t *testing.T) {
		t.Run("Valid File", func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "config.toml")
			content := `
[api]
base_url = "http://flights.example.com/"
timeout_seconds = 15

[auth]
session_token = "abc123"

[cache]
path = "test.db"
`
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}

			config, err := LoadConfig(path)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if config.API.BaseURL != "http://flights.example.com/" {
				t.Errorf("expected base URL to be loaded, got %s", config.API.BaseURL)
			}
			if config.API.TimeoutSeconds != 15 {
				t.Errorf("expected timeout 15, got %d", config.API.TimeoutSeconds)
			}
			if config.Auth.SessionToken != "abc123" {
				t.Errorf("expected session token 'abc123', got %s", config.Auth.SessionToken)
			}
			if config.Cache.Path != "test.db" {
				t.Errorf("expected cache path 'test.db', got %s", config.Cache.Path)
			}
		})

		t.Run("Missing File", func(t *testing.T) {
			_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
			if err == nil {
				t.Error("expected error for missing file")
			}
		})

		t.Run("Invalid TOML", func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "config.toml")
			if err := os.WriteFile(path, []byte("not [valid toml"), 0644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}

			if _, err := LoadConfig(path); err == nil {
				t.Error("expected error for invalid TOML")
			}
		})

		t.Run("Environment Override", func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "config.toml")
			if err := os.WriteFile(path, []byte("[api]\nbase_url = \"http://file.example.com/\"\n"), 0644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}

			t.Setenv("WINGS_API_BASE_URL", "http://env.example.com/")
			t.Setenv("WINGS_SESSION_TOKEN", "env-token")

			config, err := LoadConfig(path)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if config.API.BaseURL != "http://env.example.com/" {
				t.Errorf("expected env base URL to win, got %s", config.API.BaseURL)
			}
			if config.Auth.SessionToken != "env-token" {
				t.Errorf("expected env token to win, got %s", config.Auth.SessionToken)
			}
		})
	})

	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.API.BaseURL == "" {
			t.Error("expected default base URL to be set")
		}
		if config.Cache.Path == "" {
			t.Error("expected default cache path to be set")
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		t.Run("Creates File", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")

			if err := CreateConfigFile(path); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if _, err := os.Stat(path); err != nil {
				t.Errorf("expected config file to exist: %v", err)
			}
		})

		t.Run("Refuses Overwrite", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte("existing"), 0644); err != nil {
				t.Fatalf("failed to seed file: %v", err)
			}

			if err := CreateConfigFile(path); err == nil {
				t.Error("expected error when file exists")
			}
		})
	})
}
