package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	t.Run("parses a valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `
[credentials.youtube]
api_key = "key123"

[sync]
playlist_id = "PL1"
page_size = 25
output = "out.json"
rate_limit = 2.5

[database]
path = "test.db"
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig failed: %v", err)
		}

		if config.Credentials.YouTube.APIKey != "key123" {
			t.Errorf("api key = %q", config.Credentials.YouTube.APIKey)
		}
		if config.Sync.PlaylistID != "PL1" || config.Sync.PageSize != 25 {
			t.Errorf("sync = %+v", config.Sync)
		}
		if config.Database.Path != "test.db" {
			t.Errorf("database path = %q", config.Database.Path)
		}
	})

	t.Run("missing file wraps ErrMissingConfig", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
		if !errors.Is(err, ErrMissingConfig) {
			t.Errorf("err = %v, want ErrMissingConfig", err)
		}
	})

	t.Run("malformed file wraps ErrInvalidConfig", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("not [valid toml"), 0644); err != nil {
			t.Fatal(err)
		}

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("err = %v, want ErrInvalidConfig", err)
		}
	})

	t.Run("environment overrides file values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `
[credentials.youtube]
api_key = "file-key"

[sync]
playlist_id = "file-playlist"
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		t.Setenv("YOUTUBE_API_KEY", "env-key")
		t.Setenv("YTCAT_PLAYLIST_ID", "env-playlist")

		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig failed: %v", err)
		}

		if config.Credentials.YouTube.APIKey != "env-key" {
			t.Errorf("api key = %q, want env override", config.Credentials.YouTube.APIKey)
		}
		if config.Sync.PlaylistID != "env-playlist" {
			t.Errorf("playlist id = %q, want env override", config.Sync.PlaylistID)
		}
	})
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Sync.PageSize != 50 {
		t.Errorf("page_size = %d, want 50", config.Sync.PageSize)
	}
	if config.Sync.Output == "" {
		t.Error("expected default output path")
	}
	if config.Database.Path == "" {
		t.Error("expected default database path")
	}
}

func TestCreateConfigFile(t *testing.T) {
	t.Run("writes the embedded template", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")

		if err := CreateConfigFile(path); err != nil {
			t.Fatalf("CreateConfigFile failed: %v", err)
		}

		if _, err := LoadConfig(path); err != nil {
			t.Errorf("created config does not parse: %v", err)
		}
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("existing"), 0644); err != nil {
			t.Fatal(err)
		}

		if err := CreateConfigFile(path); err == nil {
			t.Error("expected error for existing file")
		}
	})
}

func TestConfigValidate(t *testing.T) {
	t.Run("requires some youtube credential", func(t *testing.T) {
		config := &Config{}
		if err := config.Validate(); !errors.Is(err, ErrMissingCredentials) {
			t.Errorf("err = %v, want ErrMissingCredentials", err)
		}

		config.Credentials.YouTube.APIKey = "key"
		if err := config.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("access token alone is sufficient", func(t *testing.T) {
		config := &Config{}
		config.Credentials.YouTube.AccessToken = "token"
		if err := config.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("rejects out-of-range page size", func(t *testing.T) {
		config := &Config{}
		config.Credentials.YouTube.APIKey = "key"
		config.Sync.PageSize = 51
		if err := config.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("err = %v, want ErrInvalidConfig", err)
		}
	})
}
