// Package replay stores and replays move logs.
//
// A session file holds the level ID and the move log. The encoding follows the
// file extension: YAML for .yaml/.yml and MessagePack for .msgpack/.mpk.
package replay

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for unsupported file extensions.
var ErrUnknownFormat = errors.New("unknown replay format")

// Format selects a session encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatMsgpack
)

// Session is a recorded play of one level.
type Session struct {
	Level   string    `yaml:"level" msgpack:"level"`
	Moves   string    `yaml:"moves" msgpack:"moves"`
	Seed    int64     `yaml:"seed,omitempty" msgpack:"seed,omitempty"`
	Cycles  int       `yaml:"cycles,omitempty" msgpack:"cycles,omitempty"`
	Created time.Time `yaml:"created" msgpack:"created"`
}

// Steps returns the number of recorded moves.
func (s Session) Steps() int {
	return len([]rune(s.Moves))
}

// FormatFor picks the encoding from a file name.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".msgpack", ".mpk":
		return FormatMsgpack, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Encode writes the session to w.
func Encode(w io.Writer, s Session, f Format) error {
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case FormatMsgpack:
		if err := msgpack.NewEncoder(w).Encode(&s); err != nil {
			return fmt.Errorf("encoding msgpack: %w", err)
		}
		return nil
	default:
		return ErrUnknownFormat
	}
}

// Decode reads a session from data.
func Decode(data []byte, f Format) (Session, error) {
	var s Session
	switch f {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return Session{}, fmt.Errorf("decoding yaml: %w", err)
		}
	case FormatMsgpack:
		if err := msgpack.Unmarshal(data, &s); err != nil {
			return Session{}, fmt.Errorf("decoding msgpack: %w", err)
		}
	default:
		return Session{}, ErrUnknownFormat
	}
	if s.Level == "" {
		return Session{}, errors.New("session has no level")
	}
	return s, nil
}

// Save writes the session to path, creating parent directories.
func Save(path string, s Session) error {
	f, err := FormatFor(path)
	if err != nil {
		return err
	}
	if s.Created.IsZero() {
		s.Created = time.Now().UTC().Truncate(time.Second)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, s, f); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Load reads a session file.
func Load(path string) (Session, error) {
	f, err := FormatFor(path)
	if err != nil {
		return Session{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Session{}, fmt.Errorf("reading %s: %w", path, err)
	}
	s, err := Decode(data, f)
	if err != nil {
		return Session{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
