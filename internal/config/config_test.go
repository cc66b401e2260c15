package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := parsePentix(defaultPentixYAML)
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultPentixConfig() {
		t.Errorf("embedded default = %+v, want %+v", cfg, DefaultPentixConfig())
	}
}

func TestLoadPentixFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadPentix("")
	if err != nil {
		t.Fatalf("LoadPentix: %v", err)
	}
	if cfg.Board.Width != 10 || cfg.Board.Height != 20 {
		t.Errorf("board = %dx%d, want 10x20", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.Timing.BaseInterval() != 270*time.Millisecond {
		t.Errorf("base interval = %v, want 270ms", cfg.Timing.BaseInterval())
	}
}

func TestLoadPentixUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "pentix.yaml"), []byte("pieces:\n  catalog: classic\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPentix("")
	if err != nil {
		t.Fatalf("LoadPentix: %v", err)
	}
	if cfg.Pieces.Catalog != "classic" {
		t.Errorf("catalog = %q, want classic", cfg.Pieces.Catalog)
	}
}

func TestLoadPentixCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pentix.yaml")
	data := "board:\n  width: 12\n  height: 24\ntiming:\n  base_interval_ms: 300\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPentix(path)
	if err != nil {
		t.Fatalf("LoadPentix: %v", err)
	}
	if cfg.Board.Width != 12 || cfg.Board.Height != 24 {
		t.Errorf("board = %dx%d, want 12x24", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.Timing.BaseIntervalMS != 300 {
		t.Errorf("base interval = %d, want 300", cfg.Timing.BaseIntervalMS)
	}
	if cfg.Timing.BoostIntervalMS != 60 {
		t.Errorf("boost interval = %d, want default 60", cfg.Timing.BoostIntervalMS)
	}
}

func TestLoadPentixCustomPathErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("board:\n  width: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{"missing file", filepath.Join(dir, "missing.yaml"), "failed to read"},
		{"bad yaml", bad, "failed to parse"},
		{"invalid values", invalid, "at least 4x4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadPentix(tt.path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *PentixConfig)
		ok     bool
	}{
		{"default", func(c *PentixConfig) {}, true},
		{"sqlite backend without path", func(c *PentixConfig) { c.Saves.Backend = BackendSQLite; c.Saves.Path = "" }, true},
		{"narrow board", func(c *PentixConfig) { c.Board.Width = 3 }, false},
		{"board narrower than I5", func(c *PentixConfig) { c.Board.Width = 4 }, false},
		{"widest pentix shape fits", func(c *PentixConfig) { c.Board.Width = 5 }, true},
		{"classic on a 4 wide board", func(c *PentixConfig) { c.Board.Width = 4; c.Pieces.Catalog = "classic" }, true},
		{"short board", func(c *PentixConfig) { c.Board.Height = 0 }, false},
		{"zero base interval", func(c *PentixConfig) { c.Timing.BaseIntervalMS = 0 }, false},
		{"negative boost", func(c *PentixConfig) { c.Timing.BoostIntervalMS = -1 }, false},
		{"zero hold", func(c *PentixConfig) { c.Timing.BoostHoldMS = 0 }, false},
		{"unknown catalog", func(c *PentixConfig) { c.Pieces.Catalog = "hexomino" }, false},
		{"unknown backend", func(c *PentixConfig) { c.Saves.Backend = "s3" }, false},
		{"file backend without path", func(c *PentixConfig) { c.Saves.Path = "" }, false},
		{"unknown preset", func(c *PentixConfig) { c.Difficulty.Preset = "nightmare" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultPentixConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestEngineOptions(t *testing.T) {
	cfg := DefaultPentixConfig()
	cfg.Pieces.Catalog = "classic"

	opts := cfg.EngineOptions(99)

	if opts.Width != 10 || opts.Height != 20 {
		t.Errorf("size = %dx%d, want 10x20", opts.Width, opts.Height)
	}
	if opts.Catalog.Name != "classic" {
		t.Errorf("catalog = %q, want classic", opts.Catalog.Name)
	}
	if opts.BaseInterval != 270*time.Millisecond || opts.BoostInterval != 60*time.Millisecond {
		t.Errorf("intervals = %v/%v", opts.BaseInterval, opts.BoostInterval)
	}
	if opts.Seed != 99 {
		t.Errorf("seed = %d, want 99", opts.Seed)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		name  string
		want  DifficultyPreset
		level int
	}{
		{"easy", DifficultyEasy, 1},
		{"medium", DifficultyMedium, 2},
		{"normal", DifficultyMedium, 2},
		{"hard", DifficultyHard, 3},
	}
	for _, tt := range tests {
		p, err := ParseDifficultyPreset(tt.name)
		if err != nil {
			t.Fatalf("ParseDifficultyPreset(%q): %v", tt.name, err)
		}
		if p != tt.want {
			t.Errorf("ParseDifficultyPreset(%q) = %q, want %q", tt.name, p, tt.want)
		}
		if p.Level() != tt.level {
			t.Errorf("%q.Level() = %d, want %d", p, p.Level(), tt.level)
		}
		if PresetForLevel(tt.level) != tt.want {
			t.Errorf("PresetForLevel(%d) = %q, want %q", tt.level, PresetForLevel(tt.level), tt.want)
		}
	}

	if _, err := ParseDifficultyPreset("fixed"); err == nil {
		t.Error("expected error for unknown preset")
	}
	if PresetForLevel(7) != DifficultyHard {
		t.Error("levels above hard should report hard")
	}
}
