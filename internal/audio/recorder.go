package audio

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// Recorder is a Sink that collects cues and encodes them back to back as WAV.
type Recorder struct {
	rate    beep.SampleRate
	gap     time.Duration
	cues    []beep.Streamer
	samples int
}

// NewRecorder creates a recorder. gap is the silence inserted after each cue.
func NewRecorder(rate beep.SampleRate, gap time.Duration) *Recorder {
	return &Recorder{rate: rate, gap: gap}
}

// Play buffers the cue so the streamer can be encoded later.
func (r *Recorder) Play(s beep.Streamer) {
	buf := beep.NewBuffer(r.format())
	buf.Append(s)
	r.cues = append(r.cues, buf.Streamer(0, buf.Len()))
	r.samples += buf.Len()
	if n := r.rate.N(r.gap); n > 0 {
		r.cues = append(r.cues, beep.Silence(n))
		r.samples += n
	}
}

// Len returns the number of recorded samples, silence included.
func (r *Recorder) Len() int {
	return r.samples
}

// Encode writes every recorded cue to w as a 16-bit stereo WAV.
func (r *Recorder) Encode(w io.WriteSeeker) error {
	if err := wav.Encode(w, beep.Seq(r.cues...), r.format()); err != nil {
		return fmt.Errorf("audio: encode wav: %w", err)
	}
	return nil
}

// Save writes the recording to a file.
func (r *Recorder) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("audio: create %s: %w", path, err)
	}
	if err := r.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (r *Recorder) format() beep.Format {
	return beep.Format{SampleRate: r.rate, NumChannels: 2, Precision: 2}
}
