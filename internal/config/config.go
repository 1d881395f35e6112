// Package config loads service configuration from a config file and
// environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ErrMissingInferenceURL is returned when no inference service URL is
// configured; the engine cannot run without its classifiers.
var ErrMissingInferenceURL = errors.New("missing inference_url configuration")

// Config holds all service configuration. Optional integrations (database,
// Spotify, YouTube, OpenAI) are enabled when their settings are present.
type Config struct {
	Addr         string `mapstructure:"addr"`
	LogLevel     string `mapstructure:"log_level"`
	DatabaseURL  string `mapstructure:"database_url"`
	InferenceURL string `mapstructure:"inference_url"`

	OpenAIAPIKey  string `mapstructure:"openai_api_key"`
	OpenAIBaseURL string `mapstructure:"openai_base_url"`
	OpenAIModel   string `mapstructure:"openai_model"`

	SpotifyClientID     string `mapstructure:"spotify_client_id"`
	SpotifyClientSecret string `mapstructure:"spotify_client_secret"`

	YouTubeAPIKey string `mapstructure:"youtube_api_key"`
}

// Load reads configuration from config.yaml (if present in the working
// directory) and environment variables. Environment variables use the
// MOODMIRROR_ prefix, e.g. MOODMIRROR_INFERENCE_URL.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("addr", ":8080")
	v.SetDefault("log_level", "info")

	// Every key needs a registered default for Unmarshal to see
	// environment-only values.
	for _, key := range []string{
		"database_url", "inference_url",
		"openai_api_key", "openai_base_url", "openai_model",
		"spotify_client_id", "spotify_client_secret",
		"youtube_api_key",
	} {
		v.SetDefault(key, "")
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("MOODMIRROR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that required settings are present.
func (c *Config) Validate() error {
	if c.InferenceURL == "" {
		return ErrMissingInferenceURL
	}
	if c.Addr == "" {
		return fmt.Errorf("addr cannot be empty")
	}
	return nil
}

// HasDatabase reports whether a catalog database is configured.
func (c *Config) HasDatabase() bool { return c.DatabaseURL != "" }

// HasOpenAI reports whether the contextual analyzer is configured.
func (c *Config) HasOpenAI() bool { return c.OpenAIAPIKey != "" }

// HasSpotify reports whether music recommendations are configured.
func (c *Config) HasSpotify() bool {
	return c.SpotifyClientID != "" && c.SpotifyClientSecret != ""
}

// HasYouTube reports whether video recommendations are configured.
func (c *Config) HasYouTube() bool { return c.YouTubeAPIKey != "" }
