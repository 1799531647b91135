//go:build integration
// +build integration

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package addressregistry_test

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/suparena/addressregistry"
	"github.com/suparena/addressregistry/config"
	"github.com/suparena/addressregistry/consumer"
	"github.com/suparena/addressregistry/errors"
	"github.com/suparena/addressregistry/registrytest"
	"github.com/suparena/addressregistry/statestore/ddb"
)

func setupTestStore(t *testing.T) *ddb.RegistryStore {
	t.Helper()

	tableName := os.Getenv("DDB_TEST_TABLE_NAME")
	if tableName == "" {
		t.Skip("DDB_TEST_TABLE_NAME not set, skipping integration test")
	}
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "us-east-1"
	}
	creds, err := config.LoadCredentials()
	if err != nil {
		t.Skipf("AWS credentials not available: %v", err)
	}

	store, err := ddb.NewRegistryStore(creds.AccessKey, creds.SecretKey, region, tableName, slog.Default())
	if err != nil {
		t.Fatalf("Failed to create registry store: %v", err)
	}
	return store
}

// uniqueAddress derives a well-formed address that is unique per test
// run. Decimal digits map onto base58 letters so '0' never appears.
func uniqueAddress(n int64) addressregistry.Address {
	const letters = "abcdefghij"
	raw := fmt.Sprintf("%d%d", time.Now().UnixNano(), n)
	body := make([]byte, 0, 33)
	for i := 0; i < len(raw) && len(body) < 33; i++ {
		body = append(body, letters[raw[i]-'0'])
	}
	for len(body) < 33 {
		body = append(body, 'z')
	}
	return addressregistry.Address("tz1" + string(body))
}

func TestIntegrationRegisterAndResolve(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	store := setupTestStore(t)

	reg, err := addressregistry.LoadPersistent(ctx, store, addressregistry.NewID(0))
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	addr := uniqueAddress(1)
	expectedID := reg.Counter()

	if err := reg.Register(ctx, addressregistry.DirectCall(addr)); err != nil {
		t.Fatalf("Failed to register address: %v", err)
	}

	// Resolve both directions in memory
	id, err := reg.AddressToID(addr)
	if err != nil {
		t.Fatalf("Failed to resolve address: %v", err)
	}
	if !id.Equal(expectedID) {
		t.Errorf("Expected id %s, got %s", expectedID.Key(), id.Key())
	}
	resolved, err := reg.IDToAddress(id)
	if err != nil {
		t.Fatalf("Failed to resolve id: %v", err)
	}
	if resolved != addr {
		t.Errorf("Expected address %s, got %s", addr, resolved)
	}

	// Re-registration is rejected without moving the counter
	counterBefore := reg.Counter()
	err = reg.Register(ctx, addressregistry.DirectCall(addr))
	if !errors.IsAlreadyRegistered(err) {
		t.Errorf("Expected already registered error, got: %v", err)
	}
	if !reg.Counter().Equal(counterBefore) {
		t.Errorf("Counter moved on failed registration: %s -> %s", counterBefore.Key(), reg.Counter().Key())
	}

	// The entry is persisted, not just mirrored
	persisted, err := store.GetByAddress(ctx, addr.String())
	if err != nil {
		t.Fatalf("Failed to read persisted entry: %v", err)
	}
	if persisted == nil || persisted.ID != id.Key() {
		t.Errorf("Persisted entry mismatch: %+v", persisted)
	}
	byID, err := store.GetByID(ctx, id.Key())
	if err != nil {
		t.Fatalf("Failed to read persisted entry by id: %v", err)
	}
	if byID == nil || byID.Address != addr.String() {
		t.Errorf("Persisted entry mismatch on reverse lookup: %+v", byID)
	}
}

func TestIntegrationRehydration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	store := setupTestStore(t)

	first, err := addressregistry.LoadPersistent(ctx, store, addressregistry.NewID(0))
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	addr := uniqueAddress(2)
	if err := first.Register(ctx, addressregistry.DirectCall(addr)); err != nil {
		t.Fatalf("Failed to register address: %v", err)
	}
	counter := first.Counter()

	// A second load sees the same state
	second, err := addressregistry.LoadPersistent(ctx, store, addressregistry.NewID(0))
	if err != nil {
		t.Fatalf("Failed to reload registry: %v", err)
	}
	if !second.Counter().Equal(counter) {
		t.Errorf("Expected counter %s after reload, got %s", counter.Key(), second.Counter().Key())
	}
	if !second.HasAddress(addr) {
		t.Errorf("Expected address %s to survive reload", addr)
	}
}

func TestIntegrationConsumerViews(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	store := setupTestStore(t)

	reg, err := addressregistry.LoadPersistent(ctx, store, addressregistry.NewID(0))
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	addr := uniqueAddress(3)
	if err := reg.Register(ctx, addressregistry.DirectCall(addr)); err != nil {
		t.Fatalf("Failed to register address: %v", err)
	}
	id, err := reg.AddressToID(addr)
	if err != nil {
		t.Fatalf("Failed to resolve address: %v", err)
	}

	c := consumer.New(consumer.NewHandle(registrytest.RegistryAddress, reg.Core()))
	call := addressregistry.DirectCall(addr)

	if err := c.AssertSenderRegistered(call); err != nil {
		t.Errorf("AssertSenderRegistered failed: %v", err)
	}
	if err := c.AssertIDEqualsOriginator(call, id); err != nil {
		t.Errorf("AssertIDEqualsOriginator failed: %v", err)
	}
	if err := c.StoreID(call, "sender", addr); err != nil {
		t.Errorf("StoreID failed: %v", err)
	}
	record, ok := c.Record("sender")
	if !ok || !record.ID.Equal(id) {
		t.Errorf("Expected record for id %s, got %+v", id.Key(), record)
	}
}
