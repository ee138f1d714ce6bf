// Package levels provides level loading functionality for fillets.
// This package depends on core but core does not depend on levels.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-fillets/internal/games/fillets/core"
	"github.com/vovakirdan/tui-fillets/internal/games/fillets/levels/formats"
	"github.com/vovakirdan/tui-fillets/internal/registry"
)

//go:embed bundled/*.yaml
var bundledFS embed.FS

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Width    int
	Height   int
	Models   []formats.ModelDef
	Solution string
	Metadata map[string]string
	FilePath string
}

// Build creates a fresh room holding the level's models in definition order.
func (l *Level) Build(opts ...core.Option) (*core.Room, error) {
	room := core.NewRoom(l.Width, l.Height, opts...)
	for _, def := range l.Models {
		rules, err := registry.Create(def.Config.Kind)
		if err != nil {
			return nil, fmt.Errorf("level %s: %w", l.ID, err)
		}

		var unit *core.Unit
		if def.Codes != "" {
			unit, err = core.NewUnit(def.Codes)
			if err != nil {
				return nil, fmt.Errorf("level %s: symbol %q: %w", l.ID, def.Symbol, err)
			}
		}

		if _, err := room.AddModel(core.NewModel(def.Config, rules), unit); err != nil {
			return nil, fmt.Errorf("level %s: symbol %q: %w", l.ID, def.Symbol, err)
		}
	}
	return room, nil
}

// Loader handles loading levels from a file tree.
type Loader struct {
	Root string
	fsys fs.FS
}

// NewLoader creates a loader reading levels below a directory.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, fsys: os.DirFS(root)}
}

// Bundled returns a loader over the levels embedded in the binary.
func Bundled() *Loader {
	sub, err := fs.Sub(bundledFS, "bundled")
	if err != nil {
		panic(fmt.Sprintf("levels: bundled levels: %v", err))
	}
	return &Loader{Root: "bundled", fsys: sub}
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(p))
		if !isSupportedExtension(ext) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			// Skip invalid files
			return nil
		}

		levels = append(levels, level)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	// Sort by ID for determinism
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads a single level file, relative to the loader root.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	ext := strings.ToLower(path.Ext(p))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}

	return Level{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Width:    parsed.Width,
		Height:   parsed.Height,
		Models:   parsed.Models,
		Solution: parsed.Solution,
		Metadata: parsed.Metadata,
		FilePath: path.Join(l.Root, p),
	}, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}

// Catalog merges bundled levels with the levels found below extra directories.
// Levels from directories replace bundled levels with the same ID.
func Catalog(dirs ...string) ([]Level, error) {
	byID := make(map[string]Level)

	bundled, err := Bundled().LoadAll()
	if err != nil {
		return nil, err
	}
	for _, lvl := range bundled {
		byID[lvl.ID] = lvl
	}

	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		found, err := NewLoader(dir).LoadAll()
		if err != nil {
			return nil, err
		}
		for _, lvl := range found {
			byID[lvl.ID] = lvl
		}
	}

	levels := make([]Level, 0, len(byID))
	for _, lvl := range byID {
		levels = append(levels, lvl)
	}
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// Find returns the level with the given ID from the catalog.
func Find(id string, dirs ...string) (Level, error) {
	all, err := Catalog(dirs...)
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range all {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("level not found: %s", id)
}
