// Package audio synthesizes the game's sound cues with beep.
//
// Playback devices are not opened here. Cues are rendered as beep streamers and
// handed to a Sink; the Recorder sink writes them to a WAV file.
package audio

import (
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tui-fillets/internal/config"
)

// Sink receives rendered cues.
type Sink interface {
	Play(s beep.Streamer)
}

// Cue records one played sound.
type Cue struct {
	Name    string
	Variant int
	Volume  int
}

// Synth implements the room's Sound collaborator.
type Synth struct {
	cfg    config.SoundConfig
	rate   beep.SampleRate
	rng    *rand.Rand
	sink   Sink
	logger *log.Logger
	played []Cue
}

// NewSynth creates a synthesizer. Variant choice and noise are driven by seed.
func NewSynth(cfg config.SoundConfig, seed int64, sink Sink, logger *log.Logger) *Synth {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rate := cfg.SampleRate
	if rate <= 0 {
		rate = 44100
	}
	return &Synth{
		cfg:    cfg,
		rate:   beep.SampleRate(rate),
		rng:    rand.New(rand.NewSource(seed)),
		sink:   sink,
		logger: logger,
	}
}

// SampleRate returns the rate cues are rendered at.
func (s *Synth) SampleRate() beep.SampleRate {
	return s.rate
}

// PlaySound renders a random variant of the named cue at volume percent.
func (s *Synth) PlaySound(name string, volume int) {
	if !s.cfg.Enabled {
		return
	}
	variants := s.cfg.Cues[name]
	if len(variants) == 0 {
		s.logger.Debug("unknown sound cue", "name", name)
		return
	}

	idx := s.rng.Intn(len(variants))
	s.played = append(s.played, Cue{Name: name, Variant: idx, Volume: volume})
	s.logger.Debug("sound", "name", name, "variant", idx, "volume", volume)

	if s.sink != nil {
		s.sink.Play(s.render(variants[idx], volume))
	}
}

// Played returns every cue played so far.
func (s *Synth) Played() []Cue {
	return s.played
}

func (s *Synth) render(c config.CueConfig, volume int) beep.Streamer {
	d := time.Duration(c.DurationMs) * time.Millisecond
	osc := NewOscillator(c.Freq, c.Sweep, d, ParseWave(c.Wave), s.rate, s.rng)
	return newVolume(osc, s.cfg.Volume*float64(volume)/100)
}

// newVolume maps linear gain onto effects.Volume. Zero gain is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
