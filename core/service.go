package core

import (
	"context"
	"fmt"
	"log"
)

// Interface is implemented by every long-running component
type Interface interface {
	Start(ctx context.Context) error
	Stop()
}

type entry struct {
	name    string
	service Interface
}

// Registry starts components in registration order and stops them in reverse
type Registry struct {
	services []entry
	started  int
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		services: make([]entry, 0),
	}
}

// Register appends a named component
func (sr *Registry) Register(name string, service Interface) {
	sr.services = append(sr.services, entry{name: name, service: service})
}

// Names returns the registered component names in start order
func (sr *Registry) Names() []string {
	names := make([]string, len(sr.services))
	for i, e := range sr.services {
		names[i] = e.name
	}
	return names
}

// StartAll starts every component. If one fails, the components already started
// are stopped again and the error is returned.
func (sr *Registry) StartAll(ctx context.Context) error {
	for i, e := range sr.services {
		log.Printf("Core: Starting %s", e.name)
		if err := e.service.Start(ctx); err != nil {
			sr.started = i
			sr.StopAll()
			return fmt.Errorf("failed to start %s: %w", e.name, err)
		}
	}
	sr.started = len(sr.services)
	return nil
}

// StopAll stops the started components in reverse order
func (sr *Registry) StopAll() {
	for i := sr.started - 1; i >= 0; i-- {
		e := sr.services[i]
		log.Printf("Core: Stopping %s", e.name)
		e.service.Stop()
	}
	sr.started = 0
}
