/*
Package storagemodels defines the persisted shapes shared by the
statestore backends.

A registry instance persists as a set of RegistryEntry records (one per
address/id pair, write-once) plus a single CounterRecord holding the
next unassigned id. StreamResult and StreamOptions support streaming
the full entry set out of a backend, which is how a persistent registry
hydrates its in-memory core at startup.
*/
package storagemodels
