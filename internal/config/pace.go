package config

// PacePreset represents a named animation pace.
type PacePreset string

const (
	PaceRelaxed PacePreset = "relaxed"
	PaceNormal  PacePreset = "normal"
	PaceFast    PacePreset = "fast"
	PaceInstant PacePreset = "instant"
)

// ParsePacePreset returns the preset with the given name.
func ParsePacePreset(name string) (PacePreset, bool) {
	switch p := PacePreset(name); p {
	case PaceRelaxed, PaceNormal, PaceFast, PaceInstant:
		return p, true
	default:
		return PaceNormal, false
	}
}

// ApplyPacePreset modifies phase locks and tick rate for a pace preset.
func ApplyPacePreset(cfg *FilletsConfig, preset PacePreset) {
	switch preset {
	case PaceRelaxed:
		cfg.Phases = PhasesConfig{Move: 3, Fall: 2, Exit: 5}
		cfg.Timing.TickRate = 20
	case PaceFast:
		cfg.Phases = PhasesConfig{Move: 1, Fall: 0, Exit: 2}
		cfg.Timing.TickRate = 30
	case PaceInstant:
		// Every tick runs a round.
		cfg.Phases = PhasesConfig{}
		cfg.Timing.TickRate = 60
	default:
		def := DefaultFilletsConfig()
		cfg.Phases = def.Phases
		cfg.Timing.TickRate = def.Timing.TickRate
	}
}
