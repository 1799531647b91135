/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package addressregistry

import (
	"strings"
	"testing"

	"github.com/suparena/addressregistry/errors"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantKey string
		wantErr bool
	}{
		{name: "zero", input: "0", wantKey: "0"},
		{name: "small", input: "42", wantKey: "42"},
		{name: "beyond uint64", input: "18446744073709551616", wantKey: "18446744073709551616"},
		{name: "huge", input: strings.Repeat("9", 40), wantKey: strings.Repeat("9", 40)},
		{name: "negative", input: "-1", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "not a number", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ParseID(tt.input)
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
			if id.Key() != tt.wantKey {
				t.Errorf("Expected key %q, got %q", tt.wantKey, id.Key())
			}
		})
	}
}

func TestIDZeroValue(t *testing.T) {
	var id ID
	if id.Key() != "0" {
		t.Errorf("Zero value should have key 0, got %q", id.Key())
	}
	if !id.Equal(NewID(0)) {
		t.Error("Zero value should equal NewID(0)")
	}
}

func TestIDNext(t *testing.T) {
	id := NewID(7)
	next := id.Next()

	if next.Key() != "8" {
		t.Errorf("Expected successor 8, got %q", next.Key())
	}
	if id.Key() != "7" {
		t.Errorf("Next must not mutate the receiver, got %q", id.Key())
	}
	if id.Cmp(next) >= 0 {
		t.Error("Expected id < id.Next()")
	}
}

func TestIDNextCarries(t *testing.T) {
	id, err := ParseID("18446744073709551615")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := id.Next().Key(); got != "18446744073709551616" {
		t.Errorf("Expected carry past uint64, got %q", got)
	}
}

func TestIDBigIntIsACopy(t *testing.T) {
	id := NewID(5)
	n := id.BigInt()
	n.SetUint64(99)
	if id.Key() != "5" {
		t.Errorf("Mutating the returned big.Int must not affect the id, got %q", id.Key())
	}
}
