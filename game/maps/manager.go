package maps

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/wricardo/hero-battle/game/engine"
	"github.com/wricardo/hero-battle/game/service"
)

// Extension is the file extension of map files inside the maps directory
const Extension = ".txt"

var ErrMapNotFound = errors.New("map not found")

// Manager loads maps from a directory and caches their parsed layouts.
// Every Load builds a new Game, so callers never share board state.
type Manager struct {
	mapDir  string
	layouts map[string]Layout
	mu      sync.RWMutex
}

// NewManager creates a map manager for mapDir
func NewManager(mapDir string) (*Manager, error) {
	info, err := os.Stat(mapDir)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("map directory does not exist: %s", mapDir)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat map directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("map path is not a directory: %s", mapDir)
	}

	return &Manager{
		mapDir:  mapDir,
		layouts: make(map[string]Layout),
	}, nil
}

// Dir returns the directory the manager reads from
func (m *Manager) Dir() string {
	return m.mapDir
}

// List returns the names of all available maps, sorted
func (m *Manager) List() ([]string, error) {
	entries, err := os.ReadDir(m.mapDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read map directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Extension) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), Extension))
	}
	sort.Strings(names)

	return names, nil
}

// Layout returns the parsed layout of a map by name
func (m *Manager) Layout(name string) (Layout, error) {
	name = strings.TrimSuffix(name, Extension)

	m.mu.RLock()
	// Check cache first
	if layout, exists := m.layouts[name]; exists {
		m.mu.RUnlock()
		return layout, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if layout, exists := m.layouts[name]; exists {
		return layout, nil
	}

	file, err := os.Open(filepath.Join(m.mapDir, name+Extension))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMapNotFound, name)
		}
		return nil, fmt.Errorf("failed to open map file: %w", err)
	}
	defer file.Close()

	layout, err := ParseLayout(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse map %s: %w", name, err)
	}

	m.layouts[name] = layout
	return layout, nil
}

// Load builds a new game from the named map
func (m *Manager) Load(name string) (*engine.Game, error) {
	layout, err := m.Layout(name)
	if err != nil {
		return nil, err
	}
	return layout.Build(), nil
}

// Describe returns information about every map that parses
func (m *Manager) Describe() ([]*service.MapInfo, error) {
	names, err := m.List()
	if err != nil {
		return nil, err
	}

	var infos []*service.MapInfo
	for _, name := range names {
		layout, err := m.Layout(name)
		if err != nil {
			// Skip maps that do not parse
			continue
		}
		stats := Analyze(layout)
		infos = append(infos, &service.MapInfo{
			Name:         name,
			Filename:     name + Extension,
			Size:         stats.Size,
			DiamondMines: stats.DiamondMines,
			HealthWells:  stats.HealthWells,
			Impassable:   stats.Impassable,
			SpawnPoints: map[string]int{
				engine.TeamOne.String(): stats.SpawnOne,
				engine.TeamTwo.String(): stats.SpawnTwo,
				engine.TeamAny.String(): stats.SpawnAny,
			},
			MaxTeamSize: stats.MaxTeamSize(),
		})
	}

	return infos, nil
}

// Refresh drops every cached layout so maps are re-read from disk
func (m *Manager) Refresh() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.layouts = make(map[string]Layout)
}

// Save writes a layout to the maps directory and caches it
func (m *Manager) Save(name string, layout Layout) error {
	if layout.Size() == 0 {
		return ErrEmptyMap
	}
	name = strings.TrimSuffix(name, Extension)

	var b strings.Builder
	for _, tokens := range layout {
		b.WriteString(strings.Join(tokens, CellSeparator))
		b.WriteByte('\n')
	}

	path := filepath.Join(m.mapDir, name+Extension)
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write map file: %w", err)
	}

	m.mu.Lock()
	m.layouts[name] = layout
	m.mu.Unlock()

	return nil
}

// ValidateAll validates every map in the directory. Maps that fail to parse
// are reported as invalid rather than returned as an error.
func (m *Manager) ValidateAll(boardSize, maxPerTeam int) ([]ValidationResult, error) {
	names, err := m.List()
	if err != nil {
		return nil, err
	}

	results := make([]ValidationResult, 0, len(names))
	for _, name := range names {
		layout, err := m.Layout(name)
		if err != nil {
			results = append(results, ValidationResult{
				Map:    name,
				Errors: []string{err.Error()},
				Info:   []string{},
			})
			continue
		}
		results = append(results, Validate(name, layout, boardSize, maxPerTeam))
	}
	return results, nil
}
