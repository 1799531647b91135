/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package addressregistry

import (
	"math/big"

	"github.com/suparena/addressregistry/errors"
)

// ID is a compact numeric handle for an address, assigned sequentially
// by the registry. IDs are arbitrary-precision non-negative integers
// with no enforced upper bound. The zero value is the id 0.
type ID struct {
	n *big.Int
}

// NewID returns the ID with the given value.
func NewID(v uint64) ID {
	return ID{n: new(big.Int).SetUint64(v)}
}

// ParseID parses a canonical decimal id string.
// Negative or non-numeric input is rejected with ErrInvalidInput.
func ParseID(s string) (ID, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return ID{}, errors.NewValidationError("id", "must be a decimal integer")
	}
	if n.Sign() < 0 {
		return ID{}, errors.NewValidationError("id", "must be non-negative")
	}
	return ID{n: n}, nil
}

func (id ID) value() *big.Int {
	if id.n == nil {
		return new(big.Int)
	}
	return id.n
}

// Key returns the canonical decimal representation, suitable as a map
// or storage key.
func (id ID) Key() string {
	return id.value().String()
}

func (id ID) String() string {
	return id.Key()
}

// Next returns the successor id. The receiver is unchanged.
func (id ID) Next() ID {
	return ID{n: new(big.Int).Add(id.value(), big.NewInt(1))}
}

// Equal reports whether two ids have the same value.
func (id ID) Equal(other ID) bool {
	return id.value().Cmp(other.value()) == 0
}

// Cmp compares two ids, returning -1, 0 or +1.
func (id ID) Cmp(other ID) int {
	return id.value().Cmp(other.value())
}

// BigInt returns a copy of the underlying integer value.
func (id ID) BigInt() *big.Int {
	return new(big.Int).Set(id.value())
}
