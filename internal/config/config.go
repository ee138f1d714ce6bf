// Package config provides YAML-based configuration loading and pace presets
// for the fillets game.
package config

// FilletsConfig contains all configuration for the game.
type FilletsConfig struct {
	Timing  TimingConfig  `yaml:"timing"`
	Phases  PhasesConfig  `yaml:"phases"`
	Sound   SoundConfig   `yaml:"sound"`
	Levels  LevelsConfig  `yaml:"levels"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// TimingConfig defines how fast the simulation ticks.
type TimingConfig struct {
	TickRate int `yaml:"tick_rate"` // Ticks per second
}

// PhasesConfig defines how many rounds visible events hold new input.
type PhasesConfig struct {
	Move int `yaml:"move"`
	Fall int `yaml:"fall"`
	Exit int `yaml:"exit"`
}

// SoundConfig defines synthesized sound cues.
type SoundConfig struct {
	Enabled    bool                   `yaml:"enabled"`
	SampleRate int                    `yaml:"sample_rate"`
	Volume     float64                `yaml:"volume"` // Master volume, 0.0 to 1.0
	Record     string                 `yaml:"record"` // Optional WAV file receiving every played cue
	Cues       map[string][]CueConfig `yaml:"cues"`   // Cue name -> variants, one picked at random
}

// CueConfig defines one variant of a sound cue.
type CueConfig struct {
	Wave       string  `yaml:"wave"` // "sine", "square" or "noise"
	Freq       float64 `yaml:"freq"`
	Sweep      float64 `yaml:"sweep"` // Frequency change over the cue, Hz
	DurationMs int     `yaml:"duration_ms"`
}

// LevelsConfig defines where extra levels are loaded from.
type LevelsConfig struct {
	Dirs []string `yaml:"dirs"`
}

// StorageConfig defines where solutions and saves are kept.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"` // "debug", "info", "warn" or "error"
}
