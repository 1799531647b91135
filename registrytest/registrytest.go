/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package registrytest provides deterministic fixtures for registry
// tests: well-formed test accounts and the conventional pre-seeded
// registry (null address at id 0, burn address at id 1, counter 2).
package registrytest

import (
	"testing"

	"github.com/suparena/addressregistry"
)

// Deterministic, well-formed test accounts.
const (
	Account1 addressregistry.Address = "tz1TestAccount1aaaaaaaaaaaaaaaaaaaaa"
	Account2 addressregistry.Address = "tz1TestAccount2bbbbbbbbbbbbbbbbbbbbb"
	Account3 addressregistry.Address = "tz1TestAccount3ccccccccccccccccccccc"

	// RegistryAddress is a deployment address for registry instances
	// under test.
	RegistryAddress addressregistry.Address = "KT1TestRegistry1dddddddddddddddddddd"
)

// Seed returns the conventional initial mapping.
func Seed() map[addressregistry.Address]addressregistry.ID {
	return map[addressregistry.Address]addressregistry.ID{
		addressregistry.NullAddress: addressregistry.NewID(0),
		addressregistry.BurnAddress: addressregistry.NewID(1),
	}
}

// SeedCounter returns the counter value matching Seed.
func SeedCounter() addressregistry.ID {
	return addressregistry.NewID(2)
}

// NewSeeded creates a registry pre-seeded with Seed and SeedCounter.
func NewSeeded(t *testing.T) *addressregistry.Registry {
	t.Helper()
	reg, err := addressregistry.New(Seed(), SeedCounter())
	if err != nil {
		t.Fatalf("Failed to create seeded registry: %v", err)
	}
	return reg
}
