/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package addressregistry

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-openapi/strfmt"

	"github.com/suparena/addressregistry/errors"
	"github.com/suparena/addressregistry/statestore"
	"github.com/suparena/addressregistry/storagemodels"
)

// PersistentRegistry composes the in-memory core with a RegistryStore
// so that registry state survives process restarts. Registrations
// write through: the store's conditional transaction commits first and
// the core mirrors it only afterwards, so a storage failure leaves the
// in-memory state untouched. Reads are served from the core.
type PersistentRegistry struct {
	mu    sync.Mutex
	core  *Registry
	store statestore.RegistryStore
}

// LoadPersistent hydrates a registry from the store. On a fresh store
// the counter is initialized to initialCounter; on an existing store
// initialCounter is ignored and the persisted state wins. Seeding a
// fresh registry with the conventional entries is just two ordinary
// registrations starting from counter 0.
func LoadPersistent(ctx context.Context, store statestore.RegistryStore, initialCounter ID) (*PersistentRegistry, error) {
	if err := store.InitCounter(ctx, initialCounter.Key()); err != nil {
		return nil, fmt.Errorf("failed to initialize counter: %w", err)
	}
	counterValue, err := store.Counter(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read counter: %w", err)
	}
	counter, err := ParseID(counterValue)
	if err != nil {
		return nil, fmt.Errorf("persisted counter is malformed: %w", err)
	}

	seed := make(map[Address]ID)
	for result := range store.Stream(ctx) {
		if result.Error != nil {
			return nil, fmt.Errorf("failed to hydrate entries: %w", result.Error)
		}
		addr, err := ParseAddress(result.Entry.Address)
		if err != nil {
			return nil, fmt.Errorf("persisted entry %q is malformed: %w", result.Entry.Address, err)
		}
		id, err := ParseID(result.Entry.ID)
		if err != nil {
			return nil, fmt.Errorf("persisted id %q is malformed: %w", result.Entry.ID, err)
		}
		seed[addr] = id
	}
	// The stream workers exit without an error result when the context
	// is cancelled; a truncated seed must not load as a valid registry.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("hydration interrupted: %w", err)
	}

	core, err := New(seed, counter)
	if err != nil {
		return nil, fmt.Errorf("persisted state is inconsistent: %w", err)
	}
	return &PersistentRegistry{core: core, store: store}, nil
}

// Register registers the transaction originator, persisting the entry
// before mirroring it in memory.
func (p *PersistentRegistry) Register(ctx context.Context, call Call) error {
	if err := call.Validate(); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.register(ctx, call.Originator)
}

// RegisterAddress registers an explicit address on its behalf,
// persisting the entry before mirroring it in memory.
func (p *PersistentRegistry) RegisterAddress(ctx context.Context, call Call, addr Address) error {
	if err := call.Validate(); err != nil {
		return err
	}
	if err := addr.Validate(); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.register(ctx, addr)
}

// register performs the write-through insert. Callers hold p.mu.
func (p *PersistentRegistry) register(ctx context.Context, addr Address) error {
	if p.core.HasAddress(addr) {
		return errors.NewAlreadyRegisteredError(addr.String())
	}
	id := p.core.Counter()
	now := strfmt.DateTime(time.Now().UTC())
	entry := storagemodels.RegistryEntry{
		Address:   addr.String(),
		ID:        id.Key(),
		CreatedAt: &now,
	}
	if err := p.store.PutEntry(ctx, entry, id.Key()); err != nil {
		return err
	}
	// The store committed; the core insert cannot fail past this point.
	return p.core.RegisterAddress(DirectCall(addr), addr)
}

// Core returns the in-memory registry serving reads, suitable for
// wrapping in a consumer view handle.
func (p *PersistentRegistry) Core() *Registry {
	return p.core
}

// HasAddress reports whether the address is a registered key.
func (p *PersistentRegistry) HasAddress(addr Address) bool {
	return p.core.HasAddress(addr)
}

// Counter returns the next unassigned id.
func (p *PersistentRegistry) Counter() ID {
	return p.core.Counter()
}

// AddressToID resolves an address to its id.
func (p *PersistentRegistry) AddressToID(addr Address) (ID, error) {
	return p.core.AddressToID(addr)
}

// IDToAddress resolves an id to its address.
func (p *PersistentRegistry) IDToAddress(id ID) (Address, error) {
	return p.core.IDToAddress(id)
}

// CheckIDEqualsOriginator verifies that the id resolves to the
// transaction originator.
func (p *PersistentRegistry) CheckIDEqualsOriginator(call Call, id ID) error {
	return p.core.CheckIDEqualsOriginator(call, id)
}

// CheckIDEqualsAddress verifies that the id resolves to the claimed
// address.
func (p *PersistentRegistry) CheckIDEqualsAddress(id ID, addr Address) error {
	return p.core.CheckIDEqualsAddress(id, addr)
}

// AssertCounter verifies that the counter holds the expected value.
func (p *PersistentRegistry) AssertCounter(expected ID) error {
	return p.core.AssertCounter(expected)
}

// Entries returns all registered pairs ordered by ascending id.
func (p *PersistentRegistry) Entries() []Entry {
	return p.core.Entries()
}
