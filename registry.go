/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package addressregistry

import (
	"sort"
	"sync"

	"github.com/suparena/addressregistry/errors"
)

// Entry is one registered address/id pair.
type Entry struct {
	Address Address
	ID      ID
}

// Registry maintains a durable, bijective mapping between addresses
// and sequentially assigned ids. Entries are write-once: no operation
// removes, reassigns or renumbers an entry. The two internal maps are
// always mutated together so the bijection holds in every reachable
// state.
//
// Every mutating operation validates completely before touching state.
// A failed operation therefore leaves the registry exactly as it was,
// which gives the all-or-nothing semantics callers rely on without any
// internal rollback machinery.
type Registry struct {
	mu       sync.RWMutex
	addrToID map[Address]ID
	idToAddr map[string]Address
	counter  ID
}

// New creates a registry from an initial seed map and counter value.
// The seed must be a bijection and every seeded id must be strictly
// below the initial counter.
func New(seed map[Address]ID, counter ID) (*Registry, error) {
	r := &Registry{
		addrToID: make(map[Address]ID, len(seed)),
		idToAddr: make(map[string]Address, len(seed)),
		counter:  counter,
	}
	for addr, id := range seed {
		if err := addr.Validate(); err != nil {
			return nil, err
		}
		if id.Cmp(counter) >= 0 {
			return nil, errors.NewValidationError("seed", "seeded id must be below the initial counter")
		}
		if _, exists := r.idToAddr[id.Key()]; exists {
			return nil, errors.NewValidationError("seed", "seeded ids must be unique")
		}
		r.addrToID[addr] = id
		r.idToAddr[id.Key()] = addr
	}
	return r, nil
}

// NewEmpty creates a registry with no entries and counter 0.
func NewEmpty() *Registry {
	r, _ := New(nil, NewID(0))
	return r
}

// Register registers the transaction originator as a new entry and
// assigns it the current counter value. It fails with
// ErrAlreadyRegistered if the originator is already a key.
func (r *Registry) Register(call Call) error {
	if err := call.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.insert(call.Originator)
}

// RegisterAddress registers an explicit address as a new entry on its
// behalf; any caller may do so. It fails with ErrAlreadyRegistered if
// the address is already a key. An ill-formed address is a decode-time
// failure, not a domain one.
func (r *Registry) RegisterAddress(call Call, addr Address) error {
	if err := call.Validate(); err != nil {
		return err
	}
	if err := addr.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.insert(addr)
}

// insert performs the guarded write-once insert. Callers hold r.mu.
func (r *Registry) insert(addr Address) error {
	if _, exists := r.addrToID[addr]; exists {
		return errors.NewAlreadyRegisteredError(addr.String())
	}
	id := r.counter
	r.addrToID[addr] = id
	r.idToAddr[id.Key()] = addr
	r.counter = r.counter.Next()
	return nil
}

// HasAddress reports whether the address is a registered key.
func (r *Registry) HasAddress(addr Address) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.addrToID[addr]
	return ok
}

// HasSender reports whether the immediate caller is registered.
func (r *Registry) HasSender(call Call) bool {
	return r.HasAddress(call.Caller)
}

// HasOriginator reports whether the transaction originator is registered.
func (r *Registry) HasOriginator(call Call) bool {
	return r.HasAddress(call.Originator)
}

// Counter returns the next unassigned id. Every id ever assigned is
// strictly below this value.
func (r *Registry) Counter() ID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.counter
}

// AddressToID resolves an address to its id. It fails with ErrUnknown
// if the address is not registered.
func (r *Registry) AddressToID(addr Address) (ID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.addrToID[addr]
	if !ok {
		return ID{}, errors.NewUnknownAddressError(addr.String())
	}
	return id, nil
}

// IDToAddress resolves an id to its address. It fails with ErrUnknown
// if the id has not been assigned.
func (r *Registry) IDToAddress(id ID) (Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	addr, ok := r.idToAddr[id.Key()]
	if !ok {
		return "", errors.NewUnknownIDError(id.Key())
	}
	return addr, nil
}

// CheckIDEqualsOriginator verifies that the id resolves to the
// transaction originator. An unassigned id is treated as a plain
// mismatch: it fails with ErrIDNotOriginator, the same as an id that
// resolves to somebody else.
func (r *Registry) CheckIDEqualsOriginator(call Call, id ID) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	addr, ok := r.idToAddr[id.Key()]
	if !ok || addr != call.Originator {
		return errors.NewNotOriginatorError(id.Key(), call.Originator.String())
	}
	return nil
}

// CheckIDEqualsAddress verifies that the id resolves to the claimed
// address. It fails with ErrIDUnknown if the id has not been assigned,
// and with ErrIDAddressMismatch if it resolves to a different address.
func (r *Registry) CheckIDEqualsAddress(id ID, addr Address) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	registered, ok := r.idToAddr[id.Key()]
	if !ok {
		return errors.NewIDUnknownError(id.Key())
	}
	if registered != addr {
		return errors.NewAddressMismatchError(id.Key(), addr.String())
	}
	return nil
}

// AssertCounter verifies that the counter holds the expected value,
// failing with ErrBadCounterAssertion otherwise.
func (r *Registry) AssertCounter(expected ID) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.counter.Equal(expected) {
		return errors.NewCounterAssertionError(expected.Key(), r.counter.Key())
	}
	return nil
}

// Len returns the number of registered entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.addrToID)
}

// Entries returns all registered pairs ordered by ascending id.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := make([]Entry, 0, len(r.addrToID))
	for addr, id := range r.addrToID {
		entries = append(entries, Entry{Address: addr, ID: id})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID.Cmp(entries[j].ID) < 0
	})
	return entries
}
