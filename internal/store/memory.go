// internal/store/memory.go
//
// In-memory implementation of Catalog.
//
// Characteristics:
//   - Definitions keyed by name in two maps.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Contents are lost when the process restarts.

package store

import (
	"context"
	"sync"
)

// Memory is a map-backed Catalog and Writer.
type Memory struct {
	mu      sync.RWMutex      // guards both maps
	planets map[string]string // name -> definition
	rovers  map[string]string
}

// NewMemory constructs an empty Memory catalog.
func NewMemory() *Memory {
	return &Memory{planets: make(map[string]string), rovers: make(map[string]string)}
}

func (m *Memory) PutPlanet(_ context.Context, name, definition string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.planets[name] = definition
	return nil
}

func (m *Memory) PutRover(_ context.Context, name, definition string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rovers[name] = definition
	return nil
}

func (m *Memory) Planet(_ context.Context, name string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if d, ok := m.planets[name]; ok {
		return d, nil
	}
	return "", notFound("planet", name)
}

func (m *Memory) Rover(_ context.Context, name string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if d, ok := m.rovers[name]; ok {
		return d, nil
	}
	return "", notFound("rover", name)
}
