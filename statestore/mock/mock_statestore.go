/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory implementation of the RegistryStore interface for testing
package mock

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/suparena/addressregistry/errors"
	"github.com/suparena/addressregistry/storagemodels"
)

// RegistryStore is a mock implementation of statestore.RegistryStore for testing
type RegistryStore struct {
	mu          sync.RWMutex
	entries     map[string]storagemodels.RegistryEntry // keyed by address
	byID        map[string]string                      // id -> address
	counter     string
	initialized bool
	putError    error
	getError    error
	streamError error
}

// New creates a new mock RegistryStore
func New() *RegistryStore {
	return &RegistryStore{
		entries: make(map[string]storagemodels.RegistryEntry),
		byID:    make(map[string]string),
	}
}

// WithPutError makes PutEntry operations return an error
func (m *RegistryStore) WithPutError(err error) *RegistryStore {
	m.putError = err
	return m
}

// WithGetError makes read operations return an error
func (m *RegistryStore) WithGetError(err error) *RegistryStore {
	m.getError = err
	return m
}

// WithStreamError makes Stream emit an error result
func (m *RegistryStore) WithStreamError(err error) *RegistryStore {
	m.streamError = err
	return m
}

// InitCounter seeds the counter if the store is not initialized yet.
func (m *RegistryStore) InitCounter(ctx context.Context, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	m.counter = value
	m.initialized = true
	return nil
}

// PutEntry inserts a new entry and advances the counter, enforcing the
// same conditional guarantees as a real backend.
func (m *RegistryStore) PutEntry(ctx context.Context, entry storagemodels.RegistryEntry, expectedCounter string) error {
	if m.putError != nil {
		return m.putError
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return fmt.Errorf("counter record not initialized")
	}
	if _, exists := m.entries[entry.Address]; exists {
		return errors.NewAlreadyRegisteredError(entry.Address)
	}
	if m.counter != expectedCounter {
		return errors.NewCounterAssertionError(expectedCounter, m.counter)
	}
	next, err := successor(expectedCounter)
	if err != nil {
		return err
	}
	m.entries[entry.Address] = entry
	m.byID[entry.ID] = entry.Address
	m.counter = next
	return nil
}

// GetByAddress retrieves the entry for an address, or nil if absent.
func (m *RegistryStore) GetByAddress(ctx context.Context, address string) (*storagemodels.RegistryEntry, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.entries[address]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

// GetByID retrieves the entry for an id, or nil if absent.
func (m *RegistryStore) GetByID(ctx context.Context, id string) (*storagemodels.RegistryEntry, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	address, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	entry := m.entries[address]
	return &entry, nil
}

// Counter returns the stored counter value.
func (m *RegistryStore) Counter(ctx context.Context) (string, error) {
	if m.getError != nil {
		return "", m.getError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.initialized {
		return "", fmt.Errorf("counter record not initialized")
	}
	return m.counter, nil
}

// Stream emits every stored entry ordered by insertion id.
func (m *RegistryStore) Stream(ctx context.Context, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult {
	options := storagemodels.DefaultStreamOptions()
	for _, opt := range opts {
		opt(&options)
	}
	resultCh := make(chan storagemodels.StreamResult, options.BufferSize)

	m.mu.RLock()
	snapshot := make([]storagemodels.RegistryEntry, 0, len(m.entries))
	for _, entry := range m.entries {
		snapshot = append(snapshot, entry)
	}
	streamErr := m.streamError
	m.mu.RUnlock()

	// Decimal ids of equal length order lexicographically; shorter ids first.
	sort.Slice(snapshot, func(i, j int) bool {
		if len(snapshot[i].ID) != len(snapshot[j].ID) {
			return len(snapshot[i].ID) < len(snapshot[j].ID)
		}
		return snapshot[i].ID < snapshot[j].ID
	})

	go func() {
		defer close(resultCh)
		if streamErr != nil {
			resultCh <- storagemodels.StreamResult{
				Error: streamErr,
				Meta:  storagemodels.StreamMeta{Timestamp: time.Now()},
			}
			return
		}
		for i := range snapshot {
			entry := snapshot[i]
			result := storagemodels.StreamResult{
				Entry: &entry,
				Meta: storagemodels.StreamMeta{
					Index:      int64(i),
					PageNumber: 1,
					Timestamp:  time.Now(),
				},
			}
			select {
			case <-ctx.Done():
				return
			case resultCh <- result:
			}
		}
	}()

	return resultCh
}

// successor returns the decimal successor of a counter value without
// assuming it fits a machine word.
func successor(value string) (string, error) {
	digits := []byte(value)
	if len(digits) == 0 {
		return "", fmt.Errorf("empty counter value")
	}
	for i := len(digits) - 1; i >= 0; i-- {
		if digits[i] < '0' || digits[i] > '9' {
			return "", fmt.Errorf("counter value %q is not a decimal integer", value)
		}
		if digits[i] < '9' {
			digits[i]++
			return string(digits), nil
		}
		digits[i] = '0'
	}
	return "1" + string(digits), nil
}
