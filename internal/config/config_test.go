package config

import (
	"errors"
	"testing"
)

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("MOODMIRROR_INFERENCE_URL", "http://localhost:5000")
	t.Setenv("MOODMIRROR_ADDR", ":9090")
	t.Setenv("MOODMIRROR_YOUTUBE_API_KEY", "yt-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.InferenceURL != "http://localhost:5000" {
		t.Errorf("InferenceURL = %q", cfg.InferenceURL)
	}
	if cfg.Addr != ":9090" {
		t.Errorf("Addr = %q, want env override", cfg.Addr)
	}
	if !cfg.HasYouTube() {
		t.Error("HasYouTube = false with key set")
	}
	if cfg.HasDatabase() || cfg.HasSpotify() || cfg.HasOpenAI() {
		t.Error("optional integrations reported enabled without settings")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MOODMIRROR_INFERENCE_URL", "http://localhost:5000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want default :8080", cfg.Addr)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want default info", cfg.LogLevel)
	}
}

func TestLoadRequiresInferenceURL(t *testing.T) {
	_, err := Load()
	if !errors.Is(err, ErrMissingInferenceURL) {
		t.Fatalf("Load error = %v, want ErrMissingInferenceURL", err)
	}
}

func TestHasSpotifyNeedsBothCredentials(t *testing.T) {
	cfg := &Config{SpotifyClientID: "id"}
	if cfg.HasSpotify() {
		t.Error("HasSpotify = true with only client ID")
	}
	cfg.SpotifyClientSecret = "secret"
	if !cfg.HasSpotify() {
		t.Error("HasSpotify = false with both credentials")
	}
}
