package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wricardo/hero-battle/game/engine"
)

const (
	DefaultMaxUsersPerTeam = 12
	DefaultMaxTurns        = 1250

	MinBoardSize = 2
	MaxBoardSize = 50

	KeyBoardSize       = "boardSize"
	KeyMaxUsersPerTeam = "maxUsersPerTeam"
	KeyMaxTurns        = "maxTurns"
)

var ErrInvalidSettings = errors.New("invalid settings")

// Settings are the engine-wide options used when planning games
type Settings struct {
	BoardSize       int `yaml:"boardSize" json:"boardSize"`
	MaxUsersPerTeam int `yaml:"maxUsersPerTeam" json:"maxUsersPerTeam"`
	MaxTurns        int `yaml:"maxTurns" json:"maxTurns"`

	// Extra holds keys the engine does not recognize, passed through unvalidated
	Extra map[string]any `yaml:",inline" json:"extra,omitempty"`
}

// Defaults returns the default settings
func Defaults() Settings {
	return Settings{
		BoardSize:       engine.DefaultBoardSize,
		MaxUsersPerTeam: DefaultMaxUsersPerTeam,
		MaxTurns:        DefaultMaxTurns,
		Extra:           map[string]any{},
	}
}

// Merge applies host overrides over the defaults
func Merge(overrides map[string]any) (Settings, error) {
	return Defaults().With(overrides)
}

// With returns a copy of s with overrides applied. Known keys must hold whole
// numbers; any other key is copied into Extra.
func (s Settings) With(overrides map[string]any) (Settings, error) {
	merged := s
	merged.Extra = make(map[string]any, len(s.Extra))
	for k, v := range s.Extra {
		merged.Extra[k] = v
	}

	for key, value := range overrides {
		var target *int
		switch key {
		case KeyBoardSize:
			target = &merged.BoardSize
		case KeyMaxUsersPerTeam:
			target = &merged.MaxUsersPerTeam
		case KeyMaxTurns:
			target = &merged.MaxTurns
		default:
			merged.Extra[key] = value
			continue
		}

		n, err := toInt(value)
		if err != nil {
			return Settings{}, fmt.Errorf("%w: %s: %v", ErrInvalidSettings, key, err)
		}
		*target = n
	}

	return merged, nil
}

// Validate checks that the settings can be used to plan games
func (s Settings) Validate() error {
	if s.BoardSize < MinBoardSize || s.BoardSize > MaxBoardSize {
		return fmt.Errorf("%w: boardSize must be between %d and %d, got %d",
			ErrInvalidSettings, MinBoardSize, MaxBoardSize, s.BoardSize)
	}
	if s.MaxUsersPerTeam < 1 {
		return fmt.Errorf("%w: maxUsersPerTeam must be at least 1, got %d", ErrInvalidSettings, s.MaxUsersPerTeam)
	}
	if s.MaxTurns < 1 {
		return fmt.Errorf("%w: maxTurns must be at least 1, got %d", ErrInvalidSettings, s.MaxTurns)
	}
	return nil
}

// Parse reads YAML settings merged over the defaults
func Parse(data []byte) (Settings, error) {
	settings := Defaults()
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	if settings.Extra == nil {
		settings.Extra = map[string]any{}
	}
	return settings, nil
}

// LoadFile reads a YAML settings file merged over the defaults
func LoadFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings file: %w", err)
	}
	return Parse(data)
}

func toInt(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case uint:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("expected a whole number, got %v", v)
		}
		return int(v), nil
	case float32:
		if v != float32(int(v)) {
			return 0, fmt.Errorf("expected a whole number, got %v", v)
		}
		return int(v), nil
	}
	return 0, fmt.Errorf("expected a number, got %T", value)
}
