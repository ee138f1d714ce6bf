package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFillets loads the game configuration.
// Search order: customPath -> ~/.fillets/configs/fillets.yaml -> ./configs/fillets.yaml -> embedded default
// Missing keys keep their default values.
func LoadFillets(customPath string) (FilletsConfig, error) {
	cfg := DefaultFilletsConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(ExpandHome(customPath))
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg.normalized(), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("fillets.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg.normalized(), nil
			}
			cfg = DefaultFilletsConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/fillets.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg.normalized(), nil
		}
		cfg = DefaultFilletsConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultFilletsYAML, &cfg); err != nil {
		return DefaultFilletsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg.normalized(), nil
}

// normalized replaces unusable values with defaults.
func (c FilletsConfig) normalized() FilletsConfig {
	def := DefaultFilletsConfig()
	if c.Timing.TickRate <= 0 {
		c.Timing.TickRate = def.Timing.TickRate
	}
	if c.Phases.Move < 0 {
		c.Phases.Move = 0
	}
	if c.Phases.Fall < 0 {
		c.Phases.Fall = 0
	}
	if c.Phases.Exit < 0 {
		c.Phases.Exit = 0
	}
	if c.Sound.SampleRate <= 0 {
		c.Sound.SampleRate = def.Sound.SampleRate
	}
	if c.Sound.Volume < 0 {
		c.Sound.Volume = 0
	}
	if c.Sound.Volume > 1 {
		c.Sound.Volume = 1
	}
	if c.Storage.Path == "" {
		c.Storage.Path = def.Storage.Path
	}
	return c
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fillets", "configs", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// LevelDirs returns the configured level directories with ~ expanded.
func (c FilletsConfig) LevelDirs() []string {
	dirs := make([]string, 0, len(c.Levels.Dirs))
	for _, d := range c.Levels.Dirs {
		if d = strings.TrimSpace(d); d != "" {
			dirs = append(dirs, ExpandHome(d))
		}
	}
	return dirs
}
