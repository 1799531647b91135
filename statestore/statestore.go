/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package statestore

import (
	"context"

	"github.com/suparena/addressregistry/storagemodels"
)

// RegistryStore persists the state of one registry instance: one
// record per address/id entry plus a single counter record.
//
// PutEntry is the only mutation and is doubly guarded: it must fail
// with errors.ErrAlreadyRegistered if the entry's address is already
// persisted, and with errors.ErrBadCounterAssertion if the stored
// counter no longer equals expectedCounter. Both the entry insert and
// the counter advance commit together or not at all.
type RegistryStore interface {
	// InitCounter seeds the counter record if, and only if, it does not
	// exist yet. Calling it against an initialized store is a no-op.
	InitCounter(ctx context.Context, value string) error

	// PutEntry inserts a new entry and advances the counter from
	// expectedCounter to its successor as one atomic conditional write.
	PutEntry(ctx context.Context, entry storagemodels.RegistryEntry, expectedCounter string) error

	// GetByAddress retrieves the entry for an address, or nil if no
	// such entry is persisted.
	GetByAddress(ctx context.Context, address string) (*storagemodels.RegistryEntry, error)

	// GetByID retrieves the entry for an id, or nil if no such entry
	// is persisted.
	GetByID(ctx context.Context, id string) (*storagemodels.RegistryEntry, error)

	// Counter returns the persisted counter value.
	Counter(ctx context.Context) (string, error)

	// Stream emits every persisted entry. The channel is closed when
	// the stream is exhausted or the context is cancelled.
	Stream(ctx context.Context, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult
}
