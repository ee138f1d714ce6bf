package config

import (
	_ "embed"
)

//go:embed defaults/fillets.yaml
var defaultFilletsYAML []byte

// DefaultFilletsConfig returns the default configuration.
func DefaultFilletsConfig() FilletsConfig {
	return FilletsConfig{
		Timing: TimingConfig{
			TickRate: 20,
		},
		Phases: PhasesConfig{
			Move: 2,
			Fall: 1,
			Exit: 3,
		},
		Sound: SoundConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     0.6,
			Cues: map[string][]CueConfig{
				"impact_light": {{Wave: "sine", Freq: 220, Sweep: -80, DurationMs: 90}},
				"impact_heavy": {{Wave: "square", Freq: 90, Sweep: -40, DurationMs: 180}},
				"dead_small":   {{Wave: "sine", Freq: 660, Sweep: -420, DurationMs: 400}},
				"dead_big":     {{Wave: "square", Freq: 330, Sweep: -220, DurationMs: 550}},
			},
		},
		Levels: LevelsConfig{
			Dirs: []string{"~/.fillets/levels", "./levels"},
		},
		Storage: StorageConfig{
			Path: "~/.fillets/fillets.db",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultFilletsYAML
}
