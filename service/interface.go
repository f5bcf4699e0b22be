package service

import "context"

// Service defines the lifecycle interface for infrastructure subsystems
// Services manage long-lived resources: the terminal screen and the audio device
//
// Lifecycle:
//  1. Construction
//  2. Register with a Hub
//  3. Start(ctx) in dependency order
//  4. [runtime operation]
//  5. Stop() in reverse order
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must start before this one
	Dependencies() []string

	// Start acquires the resource
	Start(ctx context.Context) error

	// Stop releases the resource; must be idempotent
	Stop() error
}

// Optional is implemented by services the program can run without
// A failed optional start is logged and skipped instead of aborting startup
type Optional interface {
	Optional() bool
}
