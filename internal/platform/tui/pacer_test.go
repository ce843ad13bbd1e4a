package tui

import (
	"context"
	"testing"
	"time"
)

func TestPacerSleeps(t *testing.T) {
	p := NewPacer(context.Background())

	start := time.Now()
	p.Sleep(20 * time.Millisecond)
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("Sleep returned after %v", elapsed)
	}
}

func TestPacerPauseBlocks(t *testing.T) {
	p := NewPacer(context.Background())
	p.Toggle()

	done := make(chan struct{})
	go func() {
		p.Sleep(0)
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Sleep should block while paused")
	case <-time.After(50 * time.Millisecond):
	}

	if p.Toggle() {
		t.Fatal("second Toggle should resume")
	}
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Sleep did not return after resume")
	}
}

func TestPacerCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := NewPacer(ctx)
	p.Toggle()

	done := make(chan struct{})
	go func() {
		p.Sleep(time.Hour)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Sleep did not return after cancel")
	}
}
