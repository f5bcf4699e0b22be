package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
)

// Hub is the runtime container for service instances
// Manages lifecycle in dependency order
type Hub struct {
	mu       sync.Mutex
	services map[string]Service
	started  []string // Services that completed Start, for rollback and StopAll
	log      *slog.Logger
}

// NewHub creates an empty service hub
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		services: make(map[string]Service),
		log:      logger.With("component", "services"),
	}
}

// Register adds a service instance to the hub
func (h *Hub) Register(svc Service) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	name := svc.Name()
	if _, exists := h.services[name]; exists {
		return fmt.Errorf("service already registered: %s", name)
	}
	h.services[name] = svc
	return nil
}

// Get retrieves a service by name
func (h *Hub) Get(name string) (Service, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	svc, ok := h.services[name]
	return svc, ok
}

// StartAll starts every service in topological order
// On a required failure, stops already-started services in reverse order
func (h *Hub) StartAll(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	order, err := h.topologicalSort()
	if err != nil {
		return err
	}

	h.started = nil
	for _, name := range order {
		svc := h.services[name]
		if err := svc.Start(ctx); err != nil {
			if opt, ok := svc.(Optional); ok && opt.Optional() {
				h.log.Warn("optional service unavailable", "service", name, "error", err)
				continue
			}
			h.stopStarted()
			return fmt.Errorf("service %s start failed: %w", name, err)
		}
		h.started = append(h.started, name)
		h.log.Debug("service started", "service", name)
	}
	return nil
}

// StopAll stops all started services in reverse order
// Every service gets Stop called; errors are joined
func (h *Hub) StopAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stopStarted()
}

func (h *Hub) stopStarted() error {
	var errs []error
	for _, name := range slices.Backward(h.started) {
		if err := h.services[name].Stop(); err != nil {
			errs = append(errs, fmt.Errorf("service %s stop: %w", name, err))
		}
	}
	h.started = nil
	return errors.Join(errs...)
}

// Started reports whether name completed Start
func (h *Hub) Started(name string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Contains(h.started, name)
}

// topologicalSort computes start order using Kahn's algorithm
// Ties are broken by name so the order is stable
func (h *Hub) topologicalSort() ([]string, error) {
	inDegree := make(map[string]int, len(h.services))
	dependents := make(map[string][]string)

	for name := range h.services {
		inDegree[name] = 0
	}
	for name, svc := range h.services {
		for _, dep := range svc.Dependencies() {
			if _, exists := h.services[dep]; !exists {
				return nil, fmt.Errorf("service %s depends on unregistered service: %s", name, dep)
			}
			inDegree[name]++
			dependents[dep] = append(dependents[dep], name)
		}
	}

	var queue []string
	for name, degree := range inDegree {
		if degree == 0 {
			queue = append(queue, name)
		}
	}
	slices.Sort(queue)

	var result []string
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		result = append(result, name)

		var ready []string
		for _, dependent := range dependents[name] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				ready = append(ready, dependent)
			}
		}
		slices.Sort(ready)
		queue = append(queue, ready...)
	}

	if len(result) != len(h.services) {
		return nil, fmt.Errorf("circular dependency detected in services")
	}
	return result, nil
}
