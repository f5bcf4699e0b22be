package main

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hit-and-run/core"
)

// screenService owns terminal setup and teardown
type screenService struct {
	screen tcell.Screen
	active bool
}

func newScreenService(screen tcell.Screen) *screenService {
	return &screenService{screen: screen}
}

func (s *screenService) Name() string           { return "screen" }
func (s *screenService) Dependencies() []string { return nil }

// Start initializes the terminal, enables mouse reporting and registers it for crash cleanup
func (s *screenService) Start(context.Context) error {
	if s.active {
		return nil
	}
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	s.screen.EnableMouse(tcell.MouseMotionEvents)
	s.screen.HideCursor()
	core.RegisterTerminal(s.screen)
	s.active = true
	return nil
}

// Stop restores the terminal
func (s *screenService) Stop() error {
	if !s.active {
		return nil
	}
	core.RegisterTerminal(nil)
	s.screen.Fini()
	s.active = false
	return nil
}
