/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package addressregistry

import (
	"fmt"
	"sync"
)

// Manager tracks deployed Registry instances by their own address, so
// that a consumer configured with nothing but a registry address can
// resolve a live instance to query. Note that resolution is by opaque
// address; the caller receives the concrete instance and wraps it in
// whatever view handle it needs.
type Manager struct {
	mu        sync.RWMutex
	instances map[Address]*Registry
}

// NewManager creates and returns an empty instance manager.
func NewManager() *Manager {
	return &Manager{
		instances: make(map[Address]*Registry),
	}
}

// Add registers a Registry instance under its deployment address.
func (m *Manager) Add(addr Address, r *Registry) error {
	if err := addr.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.instances[addr]; exists {
		return fmt.Errorf("registry instance at %q already present", addr)
	}
	m.instances[addr] = r
	return nil
}

// Instance retrieves the Registry instance deployed at the given address.
func (m *Manager) Instance(addr Address) (*Registry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, exists := m.instances[addr]
	if !exists {
		return nil, fmt.Errorf("no registry instance at %q", addr)
	}
	return r, nil
}

// Addresses returns the deployment addresses of all known instances.
func (m *Manager) Addresses() []Address {
	m.mu.RLock()
	defer m.mu.RUnlock()

	addrs := make([]Address, 0, len(m.instances))
	for a := range m.instances {
		addrs = append(addrs, a)
	}
	return addrs
}
