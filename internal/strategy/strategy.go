// Package strategy defines the contract a hide and seek player implements
// and the registry that resolves player identities to implementations.
//
// A player provides two decision functions, one per role. The engine calls
// the function for the acting role once per tick with a Turn scoped to the
// acting agent. Sensing through the Turn is read-only; Move is the only way
// to change position.
package strategy

import (
	"errors"

	"github.com/vovakirdan/hideseek/internal/grid"
)

var (
	// ErrIncomplete is returned when a player lacks one of the two roles.
	ErrIncomplete = errors.New("strategy: player must provide both hider and seeker")

	// ErrMissingCapability is reported when a bound role has no decision function.
	ErrMissingCapability = errors.New("strategy: missing capability")
)

// Turn is the view a strategy gets of the match during one decision.
type Turn interface {
	// Walls reports which grid edges the agent is standing on.
	Walls() grid.Sides

	// Obstacles reports which neighbouring cells are blocked (edges or obstacles).
	Obstacles() grid.Sides

	// RemainingTicks returns the ticks left in the whole match, regardless of phase.
	RemainingTicks() int

	// Move requests a one-cell step. Blocked destinations are silently ignored.
	Move(dir grid.Direction)
}

// Decide is a decision function for one role.
// A non-nil error is a strategy fault and ends the match.
type Decide func(t Turn) error

// Player is a complete strategy for both roles.
type Player interface {
	Hide(t Turn) error
	Seek(t Turn) error
}

// Validator is implemented by players that can be incomplete at runtime.
type Validator interface {
	Validate() error
}

// Funcs adapts a pair of decision functions to Player.
type Funcs struct {
	HideFunc Decide
	SeekFunc Decide
}

// Hide calls HideFunc.
func (f Funcs) Hide(t Turn) error {
	if f.HideFunc == nil {
		return ErrMissingCapability
	}
	return f.HideFunc(t)
}

// Seek calls SeekFunc.
func (f Funcs) Seek(t Turn) error {
	if f.SeekFunc == nil {
		return ErrMissingCapability
	}
	return f.SeekFunc(t)
}

// Validate reports ErrIncomplete unless both functions are set.
func (f Funcs) Validate() error {
	if f.HideFunc == nil || f.SeekFunc == nil {
		return ErrIncomplete
	}
	return nil
}

// Role is the part a player takes in one match.
type Role int

const (
	RoleHider Role = iota
	RoleSeeker
)

// String returns a human-readable name for the role.
func (r Role) String() string {
	switch r {
	case RoleHider:
		return "Hider"
	case RoleSeeker:
		return "Seeker"
	default:
		return "Unknown"
	}
}

// Bind selects the decision function of p for role r.
// A nil player yields nil, which the engine treats as a missing capability.
func Bind(p Player, r Role) Decide {
	if p == nil {
		return nil
	}
	switch r {
	case RoleHider:
		return p.Hide
	case RoleSeeker:
		return p.Seek
	default:
		return nil
	}
}
