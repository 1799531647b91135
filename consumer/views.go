/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package consumer

import (
	"github.com/suparena/addressregistry"
)

// One capability interface per registry view, so a component can be
// granted exactly the read access it needs. Every method can fail:
// a handle stands in for a cross-component call, and the target being
// absent or reverting is an error the caller must treat as fatal.

// AddressChecker answers whether an address is registered.
type AddressChecker interface {
	HasAddress(addr addressregistry.Address) (bool, error)
}

// CounterReader reads the registry counter.
type CounterReader interface {
	Counter() (addressregistry.ID, error)
}

// IDResolver resolves an address to its id.
type IDResolver interface {
	AddressToID(addr addressregistry.Address) (addressregistry.ID, error)
}

// AddressResolver resolves an id to its address.
type AddressResolver interface {
	IDToAddress(id addressregistry.ID) (addressregistry.Address, error)
}

// OriginatorChecker verifies that an id resolves to the transaction
// originator.
type OriginatorChecker interface {
	CheckIDEqualsOriginator(call addressregistry.Call, id addressregistry.ID) error
}

// PairChecker verifies that an id resolves to a claimed address.
type PairChecker interface {
	CheckIDEqualsAddress(id addressregistry.ID, addr addressregistry.Address) error
}

// RegistryViews bundles the full read-only view surface of a registry
// instance.
type RegistryViews interface {
	AddressChecker
	CounterReader
	IDResolver
	AddressResolver
	OriginatorChecker
	PairChecker
}
