package strategy

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrDuplicate is returned when an identity is registered twice.
var ErrDuplicate = errors.New("strategy: player already registered")

// Info contains metadata about a registered player.
type Info struct {
	ID     string
	Source string // "builtin" or the script path
}

// Registry is a typed table of players keyed by identity.
// Incomplete players are rejected when registered, never mid-match.
type Registry struct {
	mu      sync.RWMutex
	players map[string]Player
	sources map[string]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		players: make(map[string]Player),
		sources: make(map[string]string),
	}
}

// Default holds the built-in players, filled from init() functions.
var Default = NewRegistry()

// Register adds a player under id.
func (r *Registry) Register(id, source string, p Player) error {
	if id == "" {
		return fmt.Errorf("strategy: empty player id")
	}
	if p == nil {
		return fmt.Errorf("strategy: player %q: %w", id, ErrIncomplete)
	}
	if v, ok := p.(Validator); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("strategy: player %q: %w", id, err)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.players[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicate, id)
	}
	r.players[id] = p
	r.sources[id] = source
	return nil
}

// MustRegister adds a built-in player to the Default registry.
// Typically called from init(). Panics on any registration error.
func MustRegister(id string, p Player) {
	if err := Default.Register(id, "builtin", p); err != nil {
		panic(err)
	}
}

// Lookup returns the player registered under id.
func (r *Registry) Lookup(id string) (Player, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.players[id]
	return p, ok
}

// IDs returns all registered identities, sorted.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.players))
	for id := range r.players {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// List returns metadata for all registered players, sorted by ID.
func (r *Registry) List() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Info, 0, len(r.players))
	for id := range r.players {
		result = append(result, Info{ID: id, Source: r.sources[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Clone returns a new registry with the same entries.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c := NewRegistry()
	for id, p := range r.players {
		c.players[id] = p
		c.sources[id] = r.sources[id]
	}
	return c
}

// Len returns the number of registered players.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.players)
}
