// Package script loads JavaScript players.
//
// A player module assigns two functions on exports (or module.exports):
//
//	exports.hider = function(detectWalls, detectObstacles, getRemainingTime, move) { ... };
//	exports.seeker = function(detectWalls, detectObstacles, getRemainingTime, move) { ... };
//
// detectWalls and detectObstacles return {left, right, up, down} booleans,
// getRemainingTime returns the remaining tick budget and move takes a
// direction name. Each module runs in its own sandboxed goja runtime without
// require or eval.
package script

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dop251/goja"

	"github.com/vovakirdan/hideseek/internal/grid"
	"github.com/vovakirdan/hideseek/internal/strategy"
)

const (
	initTimeout = 2 * time.Second
	callTimeout = 1 * time.Second
)

// ErrTimeout is wrapped when a script exceeds its time budget.
var ErrTimeout = errors.New("script: execution timeout")

// Player is a strategy backed by a JavaScript module.
type Player struct {
	id   string
	path string

	mu      sync.Mutex
	rt      *goja.Runtime
	hider   goja.Callable
	seeker  goja.Callable
	timeout time.Duration
}

// Load compiles and evaluates the module at path. The player identity is the
// file name. A module missing either function is rejected with
// strategy.ErrIncomplete.
func Load(path string) (*Player, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: cannot read %s: %w", path, err)
	}
	return compile(filepath.Base(path), path, string(src))
}

func compile(id, path, src string) (*Player, error) {
	rt := goja.New()
	sandbox(rt)

	exports := rt.NewObject()
	module := rt.NewObject()
	if err := module.Set("exports", exports); err != nil {
		return nil, fmt.Errorf("script: %s: %w", id, err)
	}
	rt.Set("exports", exports)
	rt.Set("module", module)

	err := withTimeout(rt, initTimeout, func() error {
		_, err := rt.RunScript(path, src)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("script: %s: evaluation failed: %w", id, err)
	}

	// module.exports may have been replaced wholesale
	obj := module.Get("exports")
	if obj == nil || goja.IsUndefined(obj) || goja.IsNull(obj) {
		return nil, fmt.Errorf("script: %s: no exports: %w", id, strategy.ErrIncomplete)
	}
	target := obj.ToObject(rt)

	p := &Player{id: id, path: path, rt: rt, timeout: callTimeout}
	p.hider, _ = goja.AssertFunction(target.Get("hider"))
	p.seeker, _ = goja.AssertFunction(target.Get("seeker"))
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("script: %s: %w", id, err)
	}
	return p, nil
}

// sandbox removes globals a player has no business with.
func sandbox(rt *goja.Runtime) {
	rt.Set("require", goja.Undefined())
	rt.Set("eval", goja.Undefined())
	rt.Set("fetch", goja.Undefined())
	rt.Set("XMLHttpRequest", goja.Undefined())
}

// ID returns the player identity.
func (p *Player) ID() string { return p.id }

// Path returns the module path.
func (p *Player) Path() string { return p.path }

// Validate reports strategy.ErrIncomplete unless both roles are exported.
func (p *Player) Validate() error {
	switch {
	case p.hider == nil && p.seeker == nil:
		return fmt.Errorf("hider and seeker not exported: %w", strategy.ErrIncomplete)
	case p.hider == nil:
		return fmt.Errorf("hider not exported: %w", strategy.ErrIncomplete)
	case p.seeker == nil:
		return fmt.Errorf("seeker not exported: %w", strategy.ErrIncomplete)
	}
	return nil
}

// Hide calls the exported hider function.
func (p *Player) Hide(t strategy.Turn) error {
	return p.call(p.hider, "hider", t)
}

// Seek calls the exported seeker function.
func (p *Player) Seek(t strategy.Turn) error {
	return p.call(p.seeker, "seeker", t)
}

func (p *Player) call(fn goja.Callable, name string, t strategy.Turn) error {
	if fn == nil {
		return strategy.ErrMissingCapability
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	rt := p.rt
	detectWalls := func(goja.FunctionCall) goja.Value { return sidesValue(rt, t.Walls()) }
	detectObstacles := func(goja.FunctionCall) goja.Value { return sidesValue(rt, t.Obstacles()) }
	remaining := func(goja.FunctionCall) goja.Value { return rt.ToValue(t.RemainingTicks()) }
	move := func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) > 0 {
			t.Move(grid.Direction(call.Argument(0).String()))
		}
		return goja.Undefined()
	}

	return withTimeout(rt, p.timeout, func() error {
		_, err := fn(goja.Undefined(),
			rt.ToValue(detectWalls),
			rt.ToValue(detectObstacles),
			rt.ToValue(remaining),
			rt.ToValue(move),
		)
		if err != nil {
			return fmt.Errorf("script: %s %s: %w", p.id, name, err)
		}
		return nil
	})
}

func sidesValue(rt *goja.Runtime, s grid.Sides) goja.Value {
	obj := rt.NewObject()
	_ = obj.Set(string(grid.Left), s.Left)
	_ = obj.Set(string(grid.Right), s.Right)
	_ = obj.Set(string(grid.Up), s.Up)
	_ = obj.Set(string(grid.Down), s.Down)
	return obj
}

// withTimeout runs fn on the calling goroutine and interrupts the runtime if
// it is still executing after d.
func withTimeout(rt *goja.Runtime, d time.Duration, fn func() error) error {
	rt.ClearInterrupt()
	timer := time.AfterFunc(d, func() {
		rt.Interrupt(ErrTimeout)
	})
	err := fn()
	timer.Stop()
	rt.ClearInterrupt()

	var interrupted *goja.InterruptedError
	if errors.As(err, &interrupted) {
		return fmt.Errorf("%w after %v", ErrTimeout, d)
	}
	return err
}
