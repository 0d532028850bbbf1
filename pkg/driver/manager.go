package driver

import (
	"fmt"
	"sync"

	"github.com/pion/screencapture/pkg/platform"
)

type manager struct {
	mu        sync.RWMutex
	factories map[platform.Platform]Factory
}

var man = &manager{
	factories: make(map[platform.Platform]Factory),
}

// GetManager gets manager singleton instance
func GetManager() *manager {
	return man
}

// Register binds a backend factory to a platform. Backends call it from
// their init functions.
func (m *manager) Register(p platform.Platform, f Factory) error {
	if !p.Supported() {
		return fmt.Errorf("driver: can't register a backend for %s", p)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.factories[p]; ok {
		return fmt.Errorf("driver: backend for %s is already registered", p)
	}
	m.factories[p] = f
	return nil
}

// Open builds the backend registered for p.
func (m *manager) Open(p platform.Platform, cfg Config) (Backend, error) {
	m.mu.RLock()
	f, ok := m.factories[p]
	m.mu.RUnlock()
	if !ok {
		return nil, &PlatformError{Platform: p}
	}
	return f(cfg)
}

// Platforms lists every platform with a registered backend.
func (m *manager) Platforms() []platform.Platform {
	m.mu.RLock()
	defer m.mu.RUnlock()

	results := make([]platform.Platform, 0, len(m.factories))
	for p := range m.factories {
		results = append(results, p)
	}
	return results
}

// Register binds f to p on the default manager.
func Register(p platform.Platform, f Factory) error {
	return man.Register(p, f)
}

// Open builds the backend for p from the default manager.
func Open(p platform.Platform, cfg Config) (Backend, error) {
	return man.Open(p, cfg)
}
