package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load with defaults failed: %v", err)
	}
	if cfg.BaseURL == "" {
		t.Error("base url default missing")
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("request timeout = %v, want 30s", cfg.RequestTimeout)
	}
	if !cfg.Render.Headless {
		t.Error("render should default to headless")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("log level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `base_url: https://staging.example.com
request_timeout: 10s
render:
  headless: false
  timeout: 5s
output_dir: /tmp/mtb
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.BaseURL != "https://staging.example.com" {
		t.Errorf("base url = %q", cfg.BaseURL)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Errorf("request timeout = %v", cfg.RequestTimeout)
	}
	if cfg.Render.Headless {
		t.Error("headless should be overridden to false")
	}
	if cfg.Render.Timeout != 5*time.Second {
		t.Errorf("render timeout = %v", cfg.Render.Timeout)
	}
	// Unset fields keep their defaults.
	if cfg.Logging.Level != "info" {
		t.Errorf("log level = %q, want default info", cfg.Logging.Level)
	}
}

func TestEventsURL(t *testing.T) {
	cfg := &Config{BaseURL: "https://example.com"}
	want := "https://example.com/results/events?year=2025"
	if got := cfg.EventsURL(2025); got != want {
		t.Errorf("EventsURL(2025) = %q, want %q", got, want)
	}
}
