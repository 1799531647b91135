/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package addressregistry

import (
	"testing"

	"github.com/suparena/addressregistry/errors"
)

func TestParseAddress(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:  "implicit account",
			input: "tz1Ke2h7sDdakHJQh8WX4Z372du1KChsksyU",
		},
		{
			name:  "burn address",
			input: "tz1burnburnburnburnburnburnburjAYjjX",
		},
		{
			name:  "originated account",
			input: "KT1TestRegistry1dddddddddddddddddddd",
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "too short",
			input:   "tz1short",
			wantErr: true,
		},
		{
			name:    "too long",
			input:   "tz1Ke2h7sDdakHJQh8WX4Z372du1KChsksyUX",
			wantErr: true,
		},
		{
			name:    "bad prefix",
			input:   "xx1Ke2h7sDdakHJQh8WX4Z372du1KChsksyU",
			wantErr: true,
		},
		{
			name:    "non-base58 character",
			input:   "tz1Ke2h7sDdakHJQh8WX4Z372du1KChsks0U",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := ParseAddress(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error for input %q", tt.input)
				}
				if !errors.IsValidationError(err) {
					t.Errorf("Expected validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if addr.String() != tt.input {
				t.Errorf("Expected address %q, got %q", tt.input, addr)
			}
		})
	}
}

func TestWellKnownAddressesAreValid(t *testing.T) {
	if err := NullAddress.Validate(); err != nil {
		t.Errorf("NullAddress should be well-formed: %v", err)
	}
	if err := BurnAddress.Validate(); err != nil {
		t.Errorf("BurnAddress should be well-formed: %v", err)
	}
}
