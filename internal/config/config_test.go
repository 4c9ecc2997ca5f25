package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Decode(DefaultYAML(), FormatYAML)
	if err != nil {
		t.Fatalf("Decode(embedded) failed: %v", err)
	}

	want := DefaultRunnerConfig()
	if cfg.Gameplay != want.Gameplay {
		t.Errorf("gameplay = %+v, expected %+v", cfg.Gameplay, want.Gameplay)
	}
	if cfg.Player != want.Player {
		t.Errorf("player = %+v, expected %+v", cfg.Player, want.Player)
	}
	if cfg.Viewport != want.Viewport {
		t.Errorf("viewport = %+v, expected %+v", cfg.Viewport, want.Viewport)
	}
	if cfg.Theme != want.Theme || cfg.Sprites != want.Sprites {
		t.Error("theme or sprites differ from hardcoded defaults")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded defaults should be valid: %v", err)
	}
}

func TestGroundY(t *testing.T) {
	cfg := DefaultRunnerConfig()
	if got := cfg.GroundY(); got != 440 {
		t.Errorf("GroundY() = %v, expected 440", got)
	}
}

func TestDecodeRangeForms(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		format Format
		want   Range
	}{
		{"yaml list", "gameplay:\n  spawn_interval: [0.5, 2]\n", FormatYAML, Range{0.5, 2}},
		{"yaml mapping", "gameplay:\n  spawn_interval: {min: 0.7, max: 1.1}\n", FormatYAML, Range{0.7, 1.1}},
		{"toml array", "[gameplay]\nspawn_interval = [1, 1.25]\n", FormatTOML, Range{1, 1.25}},
		{"toml table", "[gameplay]\nspawn_interval = { min = 0.4, max = 3 }\n", FormatTOML, Range{0.4, 3}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Decode([]byte(tc.doc), tc.format)
			if err != nil {
				t.Fatalf("Decode() failed: %v", err)
			}
			if cfg.Gameplay.SpawnInterval != tc.want {
				t.Errorf("spawn_interval = %+v, expected %+v", cfg.Gameplay.SpawnInterval, tc.want)
			}
			// Fields the document does not mention keep their defaults
			if cfg.Gameplay.Gravity != 1800 {
				t.Errorf("gravity = %v, expected default 1800", cfg.Gameplay.Gravity)
			}
		})
	}
}

func TestDecodeRangeWrongLength(t *testing.T) {
	if _, err := Decode([]byte("gameplay:\n  obstacle_size: [1, 2, 3]\n"), FormatYAML); err == nil {
		t.Error("expected error for three-element range")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatYAML, FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			data, err := Encode(DefaultRunnerConfig(), format)
			if err != nil {
				t.Fatalf("Encode() failed: %v", err)
			}
			cfg, err := Decode(data, format)
			if err != nil {
				t.Fatalf("Decode(Encode()) failed: %v\n%s", err, data)
			}
			if cfg.Gameplay != DefaultRunnerConfig().Gameplay {
				t.Errorf("gameplay did not survive %s encoding:\n%s", format, data)
			}
		})
	}
}

func TestLoadRunnerCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fast.toml")
	doc := "[gameplay]\nspeed = 600.0\ngravity = 2400.0\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Gameplay.Speed != 600 || cfg.Gameplay.Gravity != 2400 {
		t.Errorf("custom values not applied: %+v", cfg.Gameplay)
	}
}

func TestLoadRunnerMissingCustomPath(t *testing.T) {
	_, _, err := LoadRunner(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config")
	}
	if !strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadRunnerFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, source, err := LoadRunner("")
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if source != "embedded" {
		t.Errorf("source = %q, expected embedded", source)
	}
	if cfg.Gameplay.Speed != 420 {
		t.Errorf("speed = %v, expected 420", cfg.Gameplay.Speed)
	}
}

func TestLoadRunnerSearchPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	work := t.TempDir()
	t.Chdir(work)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "runner.yaml"), []byte("gameplay:\n  speed: 300\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := LoadRunner("")
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if source != filepath.Join("configs", "runner.yaml") {
		t.Errorf("source = %q", source)
	}
	if cfg.Gameplay.Speed != 300 {
		t.Errorf("speed = %v, expected 300", cfg.Gameplay.Speed)
	}
}
