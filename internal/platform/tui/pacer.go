package tui

import (
	"context"
	"sync"
	"time"
)

// Pacer is a match.Sleeper that can be paused from the UI. Sleeps return
// early once its context is done.
type Pacer struct {
	ctx context.Context

	mu     sync.Mutex
	paused bool
	resume chan struct{}
}

// NewPacer creates a running pacer bound to ctx.
func NewPacer(ctx context.Context) *Pacer {
	return &Pacer{ctx: ctx}
}

// Sleep waits for d, then for as long as the pacer is paused.
func (p *Pacer) Sleep(d time.Duration) {
	if d > 0 {
		timer := time.NewTimer(d)
		select {
		case <-p.ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}

	for {
		p.mu.Lock()
		if !p.paused {
			p.mu.Unlock()
			return
		}
		resume := p.resume
		p.mu.Unlock()

		select {
		case <-p.ctx.Done():
			return
		case <-resume:
		}
	}
}

// Toggle flips the paused state and returns the new state.
func (p *Pacer) Toggle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.paused {
		p.paused = false
		close(p.resume)
	} else {
		p.paused = true
		p.resume = make(chan struct{})
	}
	return p.paused
}

// Paused reports whether the pacer is paused.
func (p *Pacer) Paused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.paused
}
