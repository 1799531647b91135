/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package addressregistry

import (
	"strings"

	"github.com/suparena/addressregistry/errors"
)

// Address is an opaque, fixed-format external actor identifier.
// The format is a 36-character base58 string carrying one of the
// known prefixes (tz1, tz2, tz3 for implicit actors, KT1 for
// originated ones). Addresses are immutable once assigned to an id.
type Address string

// Well-known addresses commonly pre-seeded at registry creation.
const (
	// NullAddress is the conventional all-zero implicit address.
	NullAddress Address = "tz1Ke2h7sDdakHJQh8WX4Z372du1KChsksyU"

	// BurnAddress is the conventional unspendable sink address.
	BurnAddress Address = "tz1burnburnburnburnburnburnburjAYjjX"
)

const addressLength = 36

const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

var addressPrefixes = []string{"tz1", "tz2", "tz3", "KT1"}

// ParseAddress validates s as a well-formed address and returns it.
// An ill-formed input is a decode-time failure (ErrInvalidInput),
// distinct from the domain's not-registered failures.
func ParseAddress(s string) (Address, error) {
	a := Address(s)
	if err := a.Validate(); err != nil {
		return "", err
	}
	return a, nil
}

// Validate reports whether the address is well-formed.
func (a Address) Validate() error {
	if a == "" {
		return errors.NewValidationError("address", "must not be empty")
	}
	if len(a) != addressLength {
		return errors.NewValidationError("address", "must be exactly 36 characters")
	}
	s := string(a)
	hasPrefix := false
	for _, p := range addressPrefixes {
		if strings.HasPrefix(s, p) {
			hasPrefix = true
			break
		}
	}
	if !hasPrefix {
		return errors.NewValidationError("address", "must start with tz1, tz2, tz3 or KT1")
	}
	for _, c := range s {
		if !strings.ContainsRune(base58Alphabet, c) {
			return errors.NewValidationError("address", "must contain only base58 characters")
		}
	}
	return nil
}

func (a Address) String() string {
	return string(a)
}
