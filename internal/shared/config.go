package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Credentials CredentialsConfig `toml:"credentials"`
	Sync        SyncConfig        `toml:"sync"`
	Database    DatabaseConfig    `toml:"database"`
}

// CredentialsConfig contains service-specific credentials.
type CredentialsConfig struct {
	YouTube YouTubeConfig `toml:"youtube"`
	Catalog CatalogConfig `toml:"catalog"`
}

// YouTubeConfig contains YouTube Data API credentials.
//
// APIKey is sufficient for public playlists; AccessToken takes precedence
// when set and grants access to private playlists.
type YouTubeConfig struct {
	APIKey      string `toml:"api_key"`
	AccessToken string `toml:"access_token"`
}

// CatalogConfig carries the upsert transport credentials.
//
// The values are opaque to the pipeline: they are passed through to the
// external upsert step and must never be logged.
type CatalogConfig struct {
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
}

// SyncConfig contains pipeline settings.
type SyncConfig struct {
	PlaylistID string  `toml:"playlist_id"`
	PageSize   int64   `toml:"page_size"`
	Output     string  `toml:"output"`
	RateLimit  float64 `toml:"rate_limit"`
}

// DatabaseConfig contains database connection settings.
type DatabaseConfig struct {
	Path         string `toml:"path"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// LoadConfig reads and parses a TOML configuration file from the specified
// path, then applies environment overrides.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read config file: %v", ErrMissingConfig, err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %v", ErrInvalidConfig, err)
	}

	config.ApplyEnv()
	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the
// embedded example config, with environment overrides applied.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	config.ApplyEnv()
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ApplyEnv overlays credential and sync settings from the environment.
//
// A .env file in the working directory is loaded first when present. Set
// variables always win over file values:
//
//	YOUTUBE_API_KEY, YOUTUBE_ACCESS_TOKEN
//	CATALOG_CLIENT_ID, CATALOG_CLIENT_SECRET
//	YTCAT_PLAYLIST_ID, YTCAT_OUTPUT
func (c *Config) ApplyEnv() {
	_ = godotenv.Load()

	overlay := func(target *string, key string) {
		if v := os.Getenv(key); v != "" {
			*target = v
		}
	}

	overlay(&c.Credentials.YouTube.APIKey, "YOUTUBE_API_KEY")
	overlay(&c.Credentials.YouTube.AccessToken, "YOUTUBE_ACCESS_TOKEN")
	overlay(&c.Credentials.Catalog.ClientID, "CATALOG_CLIENT_ID")
	overlay(&c.Credentials.Catalog.ClientSecret, "CATALOG_CLIENT_SECRET")
	overlay(&c.Sync.PlaylistID, "YTCAT_PLAYLIST_ID")
	overlay(&c.Sync.Output, "YTCAT_OUTPUT")
}

// Validate checks that the configuration can drive a sync run.
func (c *Config) Validate() error {
	if c.Credentials.YouTube.APIKey == "" && c.Credentials.YouTube.AccessToken == "" {
		return fmt.Errorf("%w: youtube api_key or access_token required", ErrMissingCredentials)
	}
	if c.Sync.PageSize < 0 || c.Sync.PageSize > 50 {
		return fmt.Errorf("%w: page_size must be between 0 and 50", ErrInvalidConfig)
	}
	return nil
}
