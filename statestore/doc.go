/*
Package statestore defines the persistence contract for registry state.

The main interface is RegistryStore, which persists write-once
address/id entries plus the registry counter:

	type RegistryStore interface {
	    InitCounter(ctx context.Context, value string) error
	    PutEntry(ctx context.Context, entry storagemodels.RegistryEntry, expectedCounter string) error
	    GetByAddress(ctx context.Context, address string) (*storagemodels.RegistryEntry, error)
	    GetByID(ctx context.Context, id string) (*storagemodels.RegistryEntry, error)
	    Counter(ctx context.Context) (string, error)
	    Stream(ctx context.Context, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult
	}

Implementations:
  - ddb: DynamoDB implementation using conditional transactional writes
  - mock: In-memory implementation for testing

The conditional PutEntry contract is what lets a persistent registry
keep the write-once and counter invariants across processes: the
storage layer itself refuses a duplicate address or a stale counter.
*/
package statestore
