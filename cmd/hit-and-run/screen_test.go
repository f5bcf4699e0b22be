package main

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestScreenServiceLifecycle(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	svc := newScreenService(screen)

	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	screen.SetSize(40, 10)
	if w, h := screen.Size(); w != 40 || h != 10 {
		t.Errorf("Size = %dx%d, want 40x10", w, h)
	}
	if err := svc.Stop(); err != nil {
		t.Errorf("Stop: %v", err)
	}
	// Idempotent
	if err := svc.Stop(); err != nil {
		t.Errorf("second Stop: %v", err)
	}
}
