package match

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wricardo/hero-battle/game/engine"
	"github.com/wricardo/hero-battle/game/planner"
)

var (
	ErrMatchNotFound = errors.New("match not found")
	ErrGameIndex     = errors.New("game index out of range")
)

// Match is one planned set of games handed over to the host.
// ID, Plan and CreatedAt do not change once the match is stored.
type Match struct {
	ID        string
	Plan      *planner.Plan
	CreatedAt time.Time

	accessMu       sync.Mutex
	lastAccessedAt time.Time

	// one lock per game; a Game is not safe for concurrent use
	locks []sync.Mutex
}

func newMatch(plan *planner.Plan, now time.Time) *Match {
	return &Match{
		ID:             uuid.NewString(),
		Plan:           plan,
		CreatedAt:      now,
		lastAccessedAt: now,
		locks:          make([]sync.Mutex, len(plan.Games)),
	}
}

// LastAccessed returns when the match was created or last touched
func (m *Match) LastAccessed() time.Time {
	m.accessMu.Lock()
	defer m.accessMu.Unlock()
	return m.lastAccessedAt
}

func (m *Match) touch(now time.Time) {
	m.accessMu.Lock()
	m.lastAccessedAt = now
	m.accessMu.Unlock()
}

// NumGames returns how many games the match holds
func (m *Match) NumGames() int {
	return len(m.Plan.Games)
}

// WithGame runs fn while holding the lock of the game at index.
// Calls for different games of the same match do not block each other.
func (m *Match) WithGame(index int, fn func(*engine.Game) error) error {
	if index < 0 || index >= len(m.Plan.Games) {
		return ErrGameIndex
	}

	m.locks[index].Lock()
	defer m.locks[index].Unlock()

	return fn(m.Plan.Games[index])
}

// Registry keeps planned matches in memory
type Registry struct {
	matches map[string]*Match
	mu      sync.RWMutex
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		matches: make(map[string]*Match),
	}
}

// Create stores a plan under a new match ID
func (r *Registry) Create(plan *planner.Plan) *Match {
	m := newMatch(plan, time.Now())

	r.mu.Lock()
	r.matches[m.ID] = m
	r.mu.Unlock()

	return m
}

// Get retrieves a match by ID (case-insensitive)
func (r *Registry) Get(id string) (*Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, exists := r.matches[strings.ToLower(id)]
	if !exists {
		return nil, ErrMatchNotFound
	}
	return m, nil
}

// Touch updates the last access time of a match
func (r *Registry) Touch(id string) error {
	r.mu.RLock()
	m, exists := r.matches[strings.ToLower(id)]
	r.mu.RUnlock()
	if !exists {
		return ErrMatchNotFound
	}

	m.touch(time.Now())
	return nil
}

// List returns all matches, oldest first
func (r *Registry) List() []*Match {
	r.mu.RLock()
	result := make([]*Match, 0, len(r.matches))
	for _, m := range r.matches {
		result = append(result, m)
	}
	r.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result
}

// Delete removes a match
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(id)
	if _, exists := r.matches[key]; !exists {
		return ErrMatchNotFound
	}
	delete(r.matches, key)
	return nil
}

// CleanupExpired removes matches that haven't been accessed in the given duration
func (r *Registry) CleanupExpired(maxAge time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	removed := 0

	for id, m := range r.matches {
		if m.LastAccessed().Before(cutoff) {
			delete(r.matches, id)
			removed++
		}
	}

	return removed
}

// Count returns the number of stored matches
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.matches)
}
