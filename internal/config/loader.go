package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	platformcore "github.com/vovakirdan/blobblab/internal/core"
	"github.com/vovakirdan/blobblab/internal/games/blobblab/core"
)

// MaxPreview caps the preview queue length.
const MaxPreview = 5

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// LoadBlobblab loads the Blobblab configuration.
// Search order: customPath -> ~/.blobblab/configs/blobblab.yaml -> ./configs/blobblab.yaml -> embedded default.
// Files are decoded over the built-in defaults, so a file may set only the
// keys it cares about.
func LoadBlobblab(customPath string) (BlobblabConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultBlobblabConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decode(data, customPath)
		if err != nil {
			return DefaultBlobblabConfig(), err
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("blobblab.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(data, userCfgPath); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", "blobblab.yaml")
	if data, err := os.ReadFile(localPath); err == nil {
		if cfg, err := decode(data, localPath); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode(defaultBlobblabYAML, "embedded")
	if err != nil {
		return DefaultBlobblabConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode parses YAML on top of the built-in defaults.
func decode(data []byte, source string) (BlobblabConfig, error) {
	cfg := DefaultBlobblabConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", source, err)
	}
	cfg.Source = source
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blobblab", "configs", filename)
}

// Footprints parses the configured piece table.
// An empty table yields the built-in pieces.
func (c BlobblabConfig) Footprints() ([]core.Footprint, error) {
	if len(c.Spawn.Pieces) == 0 {
		return core.DefaultFootprints(), nil
	}

	fps := make([]core.Footprint, 0, len(c.Spawn.Pieces))
	for i, p := range c.Spawn.Pieces {
		name := p.Name
		if name == "" {
			name = fmt.Sprintf("piece#%d", i+1)
		}
		fp, err := core.ParseFootprint(name, p.Rows)
		if err != nil {
			return nil, fmt.Errorf("%w: spawn.pieces[%d]: %w", ErrInvalidConfig, i, err)
		}
		fps = append(fps, fp)
	}
	return fps, nil
}

// Tags returns the configured color tags, or DefaultTags when none are set.
func (c BlobblabConfig) Tags() []string {
	if len(c.Spawn.Tags) == 0 {
		return DefaultTags
	}
	return c.Spawn.Tags
}

// Validate checks the config for a board of the given size.
// A size of 0 validates against Board.Size.
func (c BlobblabConfig) Validate(size int) error {
	if size == 0 {
		size = c.Board.Size
	}
	if size <= 0 {
		return fmt.Errorf("%w: board size %d must be positive", ErrInvalidConfig, size)
	}
	if c.Board.InitialShapes < 0 {
		return fmt.Errorf("%w: board.initial_shapes %d is negative", ErrInvalidConfig, c.Board.InitialShapes)
	}
	if c.Spawn.Preview < 0 || c.Spawn.Preview > MaxPreview {
		return fmt.Errorf("%w: spawn.preview %d outside [0, %d]", ErrInvalidConfig, c.Spawn.Preview, MaxPreview)
	}
	if c.Scoring.LineBase <= 0 {
		return fmt.Errorf("%w: scoring.line_base %d must be positive", ErrInvalidConfig, c.Scoring.LineBase)
	}
	for _, tag := range c.Tags() {
		if _, ok := platformcore.ParseColor(tag); !ok {
			return fmt.Errorf("%w: spawn.tags: unknown color %q", ErrInvalidConfig, tag)
		}
	}

	fps, err := c.Footprints()
	if err != nil {
		return err
	}
	for _, fp := range fps {
		if !fp.FitsBoard(size) {
			return fmt.Errorf("%w: piece %s (%dx%d) does not fit a %dx%d board",
				ErrInvalidConfig, fp.Name, fp.Rows(), fp.Cols(), size, size)
		}
	}
	return nil
}

// ToOptions validates the config and converts it into engine options
// for a board of the given size (0 means Board.Size).
func (c BlobblabConfig) ToOptions(size int) (core.Options, error) {
	if size == 0 {
		size = c.Board.Size
	}
	if err := c.Validate(size); err != nil {
		return core.Options{}, err
	}

	fps, err := c.Footprints()
	if err != nil {
		return core.Options{}, err
	}

	return core.Options{
		Size:          size,
		InitialShapes: c.Board.InitialShapes,
		LineBase:      c.Scoring.LineBase,
		StuckEndsGame: c.Rules.StuckEndsGame,
		Footprints:    fps,
		Tags:          c.Tags(),
	}, nil
}
