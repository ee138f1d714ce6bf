package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg FilletsConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	def := DefaultFilletsConfig()

	if cfg.Timing != def.Timing {
		t.Errorf("timing = %+v, expected %+v", cfg.Timing, def.Timing)
	}
	if cfg.Phases != def.Phases {
		t.Errorf("phases = %+v, expected %+v", cfg.Phases, def.Phases)
	}
	if cfg.Storage != def.Storage {
		t.Errorf("storage = %+v, expected %+v", cfg.Storage, def.Storage)
	}
	for name := range def.Sound.Cues {
		if len(cfg.Sound.Cues[name]) == 0 {
			t.Errorf("embedded defaults have no variants for cue %q", name)
		}
	}
}

func TestLoadFilletsCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fillets.yaml")
	data := []byte("timing:\n  tick_rate: 0\nphases:\n  move: 4\n  fall: -2\nsound:\n  volume: 3\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFillets(path)
	if err != nil {
		t.Fatalf("LoadFillets: %v", err)
	}

	def := DefaultFilletsConfig()
	if cfg.Phases.Move != 4 {
		t.Errorf("Phases.Move = %d, expected 4", cfg.Phases.Move)
	}
	if cfg.Phases.Fall != 0 {
		t.Errorf("negative Phases.Fall should clamp to 0, got %d", cfg.Phases.Fall)
	}
	if cfg.Phases.Exit != def.Phases.Exit {
		t.Errorf("missing Phases.Exit should keep default %d, got %d", def.Phases.Exit, cfg.Phases.Exit)
	}
	if cfg.Timing.TickRate != def.Timing.TickRate {
		t.Errorf("zero tick rate should fall back to %d, got %d", def.Timing.TickRate, cfg.Timing.TickRate)
	}
	if cfg.Sound.Volume != 1 {
		t.Errorf("Sound.Volume = %v, expected clamp to 1", cfg.Sound.Volume)
	}
}

func TestLoadFilletsErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadFillets(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected an error for a missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("phases: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFillets(bad); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	testCases := []struct {
		in       string
		expected string
	}{
		{"~/.fillets/fillets.db", filepath.Join(home, ".fillets", "fillets.db")},
		{"~", home},
		{"/tmp/x.db", "/tmp/x.db"},
		{"relative/x.db", "relative/x.db"},
		{"~other/x", "~other/x"},
	}

	for _, tc := range testCases {
		if got := ExpandHome(tc.in); got != tc.expected {
			t.Errorf("ExpandHome(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}

	cfg := DefaultFilletsConfig()
	for _, d := range cfg.LevelDirs() {
		if strings.HasPrefix(d, "~") {
			t.Errorf("LevelDirs() left %q unexpanded", d)
		}
	}
}

func TestApplyPacePreset(t *testing.T) {
	testCases := []struct {
		preset   PacePreset
		expected PhasesConfig
	}{
		{PaceRelaxed, PhasesConfig{Move: 3, Fall: 2, Exit: 5}},
		{PaceNormal, DefaultFilletsConfig().Phases},
		{PaceFast, PhasesConfig{Move: 1, Fall: 0, Exit: 2}},
		{PaceInstant, PhasesConfig{}},
	}

	for _, tc := range testCases {
		cfg := DefaultFilletsConfig()
		ApplyPacePreset(&cfg, tc.preset)
		if cfg.Phases != tc.expected {
			t.Errorf("%s: phases = %+v, expected %+v", tc.preset, cfg.Phases, tc.expected)
		}
		if cfg.Timing.TickRate <= 0 {
			t.Errorf("%s: tick rate must stay positive", tc.preset)
		}
	}

	if _, ok := ParsePacePreset("warp"); ok {
		t.Error("ParsePacePreset should reject unknown names")
	}
	if p, ok := ParsePacePreset("fast"); !ok || p != PaceFast {
		t.Errorf("ParsePacePreset(fast) = %v, %v", p, ok)
	}
}
