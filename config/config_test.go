package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse_OverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("width: 100\nskip_primary: true\nlog_level: debug\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Width != 100 || cfg.Height != 40 {
		t.Fatalf("expected 100x40, got %dx%d", cfg.Width, cfg.Height)
	}
	if !cfg.SkipPrimary {
		t.Fatalf("expected skip_primary to be set")
	}
	if cfg.TimeFormat != "15:04" {
		t.Fatalf("expected default time format, got %q", cfg.TimeFormat)
	}
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *cfg != *Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := Parse([]byte("colour: red\n"))
	if err == nil || !strings.Contains(err.Error(), "colour") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"width":       "width: 0\n",
		"height":      "height: -4\n",
		"log_level":   "log_level: loud\n",
		"time_format": "time_format: \"\"\ndate_format: \"\"\n",
	}
	for path, doc := range cases {
		_, err := Parse([]byte(doc))
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("%s: expected ValidationError, got %v", path, err)
		}
		if verr.Path != path {
			t.Fatalf("expected path %q, got %q", path, verr.Path)
		}
	}
}

func TestLoadFromPath(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadFromPath(filepath.Join(dir, "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Width != 80 {
		t.Fatalf("expected defaults for missing file, got %+v", cfg)
	}

	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("height: 48\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err = LoadFromPath(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Height != 48 {
		t.Fatalf("expected height 48, got %d", cfg.Height)
	}
}

func TestParseLevel(t *testing.T) {
	if l, err := ParseLevel("warning"); err != nil || l != slog.LevelWarn {
		t.Fatalf("expected warn, got %v %v", l, err)
	}
}
