/*
Package addressregistry provides a minimal on-chain style registry that
establishes a durable, bijective mapping between opaque actor addresses
and compact numeric ids, so that other components can reference actors
cheaply by id instead of repeatedly storing the full address.

The registry enforces three invariants across every reachable state:
  - Bijection: the address→id and id→address maps always agree and are
    mutated together, never independently.
  - Write-once: once an address or id appears as a key, its mapped
    value never changes for the lifetime of the registry.
  - Monotonic counter: every assigned id is strictly below the current
    counter, which increases by exactly one per successful registration.

Basic Usage:

	// Create a registry pre-seeded with the conventional addresses
	seed := map[addressregistry.Address]addressregistry.ID{
	    addressregistry.NullAddress: addressregistry.NewID(0),
	    addressregistry.BurnAddress: addressregistry.NewID(1),
	}
	reg, _ := addressregistry.New(seed, addressregistry.NewID(2))

	// Register an actor and resolve it back
	call := addressregistry.DirectCall(actor)
	err := reg.Register(call)
	id, _ := reg.AddressToID(actor)

Dependent components never duplicate registry state; they hold a view
handle (see the consumer package) and delegate every id↔address
resolution and trust check to the registry through it.

Persistence backends live under statestore, with a DynamoDB
implementation in statestore/ddb and an in-memory one in
statestore/mock. LoadPersistent composes a backend with the in-memory
core for registries that must survive process restarts.
*/
package addressregistry
