/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package consumer

import (
	"sync"

	"github.com/suparena/addressregistry"
	"github.com/suparena/addressregistry/errors"
)

// Record is one locally stored resolution, keyed by a caller-chosen
// index. The consumer never copies registry state wholesale: a record
// exists only because an entrypoint resolved it through the registry's
// views at the time of the call.
type Record struct {
	ID      addressregistry.ID
	Address addressregistry.Address
}

// Consumer holds a read-only handle to a registry instance and a set
// of local records resolved through it. All id↔address resolution is
// delegated to the registry; the consumer performs its local mutation
// only after the delegated view succeeds, so a failed view leaves the
// consumer exactly as it was.
type Consumer struct {
	mu      sync.RWMutex
	views   RegistryViews
	records map[string]Record
}

// New creates a consumer bound to the given registry views.
func New(views RegistryViews) *Consumer {
	return &Consumer{
		views:   views,
		records: make(map[string]Record),
	}
}

func (c *Consumer) guard(view string, call addressregistry.Call) error {
	if err := call.Validate(); err != nil {
		return err
	}
	if c.views == nil {
		return errors.NewViewCallError(view, "", nil)
	}
	return nil
}

// StoreAddress resolves the id via the registry and stores the
// resolved address under the local index.
func (c *Consumer) StoreAddress(call addressregistry.Call, index string, id addressregistry.ID) error {
	if err := c.guard("idToAddress", call); err != nil {
		return err
	}
	addr, err := c.views.IDToAddress(id)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records[index] = Record{ID: id, Address: addr}
	return nil
}

// StoreID resolves the address via the registry and stores the
// resolved id under the local index.
func (c *Consumer) StoreID(call addressregistry.Call, index string, addr addressregistry.Address) error {
	if err := c.guard("addressToId", call); err != nil {
		return err
	}
	id, err := c.views.AddressToID(addr)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records[index] = Record{ID: id, Address: addr}
	return nil
}

// Record retrieves the locally stored record for an index.
func (c *Consumer) Record(index string) (Record, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	record, ok := c.records[index]
	return record, ok
}

// Len returns the number of locally stored records.
func (c *Consumer) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

// AssertRegistered fails with ErrUnknown unless the address is a
// registered key.
func (c *Consumer) AssertRegistered(call addressregistry.Call, addr addressregistry.Address) error {
	if err := c.guard("hasAddress", call); err != nil {
		return err
	}
	ok, err := c.views.HasAddress(addr)
	if err != nil {
		return err
	}
	if !ok {
		return errors.NewUnknownAddressError(addr.String())
	}
	return nil
}

// AssertSenderRegistered fails with ErrUnknown unless the immediate
// caller is a registered key.
func (c *Consumer) AssertSenderRegistered(call addressregistry.Call) error {
	return c.AssertRegistered(call, call.Caller)
}

// AssertOriginatorRegistered fails with ErrUnknown unless the
// transaction originator is a registered key.
func (c *Consumer) AssertOriginatorRegistered(call addressregistry.Call) error {
	return c.AssertRegistered(call, call.Originator)
}

// AssertIDEqualsOriginator delegates the originator check to the
// registry and fails the whole invocation on a mismatch.
func (c *Consumer) AssertIDEqualsOriginator(call addressregistry.Call, id addressregistry.ID) error {
	if err := c.guard("checkIdEqualsOriginator", call); err != nil {
		return err
	}
	return c.views.CheckIDEqualsOriginator(call, id)
}

// AssertIDEqualsAddress delegates the pair check to the registry and
// fails the whole invocation on an unknown id or a mismatch.
func (c *Consumer) AssertIDEqualsAddress(call addressregistry.Call, id addressregistry.ID, addr addressregistry.Address) error {
	if err := c.guard("checkIdEqualsAddress", call); err != nil {
		return err
	}
	return c.views.CheckIDEqualsAddress(id, addr)
}

// AssertCounter fails with ErrBadCounterAssertion unless the registry
// counter holds the expected value.
func (c *Consumer) AssertCounter(call addressregistry.Call, expected addressregistry.ID) error {
	if err := c.guard("getCounter", call); err != nil {
		return err
	}
	actual, err := c.views.Counter()
	if err != nil {
		return err
	}
	if !actual.Equal(expected) {
		return errors.NewCounterAssertionError(expected.Key(), actual.Key())
	}
	return nil
}
