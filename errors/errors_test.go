/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestAlreadyRegisteredError(t *testing.T) {
	err := NewAlreadyRegisteredError("tz1Ke2h7sDdakHJQh8WX4Z372du1KChsksyU")

	// Test error message
	expected := `address "tz1Ke2h7sDdakHJQh8WX4Z372du1KChsksyU" already registered`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	// Test Is method
	if !errors.Is(err, ErrAlreadyRegistered) {
		t.Error("AlreadyRegisteredError should match ErrAlreadyRegistered")
	}

	// Test helper function
	if !IsAlreadyRegistered(err) {
		t.Error("IsAlreadyRegistered should return true for AlreadyRegisteredError")
	}
}

func TestUnknownErrors(t *testing.T) {
	// Both lookup failures collapse onto the same sentinel, regardless of
	// which side of the mapping was queried.
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "unknown address",
			err:      NewUnknownAddressError("tz1burnburnburnburnburnburnburjAYjjX"),
			expected: `address "tz1burnburnburnburnburnburnburjAYjjX" not registered`,
		},
		{
			name:     "unknown id",
			err:      NewUnknownIDError("42"),
			expected: "id 42 not registered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, tt.err.Error())
			}

			if !errors.Is(tt.err, ErrUnknown) {
				t.Error("lookup failure should match ErrUnknown")
			}

			if !IsUnknown(tt.err) {
				t.Error("IsUnknown should return true for lookup failures")
			}
		})
	}
}

func TestIDUnknownError(t *testing.T) {
	err := NewIDUnknownError("10")

	expected := "verification failed: id 10 not registered"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrIDUnknown) {
		t.Error("IDUnknownError should match ErrIDUnknown")
	}

	// The verification sentinel is distinct from the lookup sentinel.
	if errors.Is(err, ErrUnknown) {
		t.Error("IDUnknownError should not match ErrUnknown")
	}

	if !IsIDUnknown(err) {
		t.Error("IsIDUnknown should return true for IDUnknownError")
	}
}

func TestNotOriginatorError(t *testing.T) {
	err := NewNotOriginatorError("2", "tz1Ke2h7sDdakHJQh8WX4Z372du1KChsksyU")

	expected := `id 2 does not resolve to originator "tz1Ke2h7sDdakHJQh8WX4Z372du1KChsksyU"`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrIDNotOriginator) {
		t.Error("NotOriginatorError should match ErrIDNotOriginator")
	}

	if !IsIDNotOriginator(err) {
		t.Error("IsIDNotOriginator should return true for NotOriginatorError")
	}
}

func TestAddressMismatchError(t *testing.T) {
	err := NewAddressMismatchError("1", "tz1Ke2h7sDdakHJQh8WX4Z372du1KChsksyU")

	expected := `id 1 does not resolve to address "tz1Ke2h7sDdakHJQh8WX4Z372du1KChsksyU"`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrIDAddressMismatch) {
		t.Error("AddressMismatchError should match ErrIDAddressMismatch")
	}

	if !IsIDAddressMismatch(err) {
		t.Error("IsIDAddressMismatch should return true for AddressMismatchError")
	}
}

func TestCounterAssertionError(t *testing.T) {
	err := NewCounterAssertionError("4", "3")

	expected := "counter assertion failed: expected 4, actual 3"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrBadCounterAssertion) {
		t.Error("CounterAssertionError should match ErrBadCounterAssertion")
	}

	if !IsBadCounterAssertion(err) {
		t.Error("IsBadCounterAssertion should return true for CounterAssertionError")
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "with field",
			field:    "address",
			message:  "must be exactly 36 characters",
			expected: `validation failed for field "address": must be exactly 36 characters`,
		},
		{
			name:     "without field",
			field:    "",
			message:  "missing required fields",
			expected: "validation failed: missing required fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)

			if err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, err.Error())
			}

			if !errors.Is(err, ErrInvalidInput) {
				t.Error("ValidationError should match ErrInvalidInput")
			}

			if !IsValidationError(err) {
				t.Error("IsValidationError should return true for ValidationError")
			}
		})
	}
}

func TestViewCallError(t *testing.T) {
	cause := errors.New("no registry deployed at address")
	err := NewViewCallError("getCounter", "KT1TestRegistry1dddddddddddddddddddd", cause)

	expected := `view "getCounter" on registry "KT1TestRegistry1dddddddddddddddddddd" failed: no registry deployed at address`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrViewCall) {
		t.Error("ViewCallError should match ErrViewCall")
	}

	if !IsViewCall(err) {
		t.Error("IsViewCall should return true for ViewCallError")
	}

	// Test Unwrap
	if !errors.Is(err, cause) {
		t.Error("ViewCallError should unwrap to its cause")
	}

	// Without a cause the message drops the suffix
	bare := NewViewCallError("hasAddress", "", nil)
	expected = `view "hasAddress" on registry "" failed`
	if bare.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, bare.Error())
	}
}

func TestErrorWrapping(t *testing.T) {
	// Test that wrapped errors still match
	original := NewAlreadyRegisteredError("tz1Ke2h7sDdakHJQh8WX4Z372du1KChsksyU")
	wrapped := fmt.Errorf("registration failed: %w", original)

	if !errors.Is(wrapped, ErrAlreadyRegistered) {
		t.Error("Wrapped AlreadyRegisteredError should still match ErrAlreadyRegistered")
	}

	if !IsAlreadyRegistered(wrapped) {
		t.Error("IsAlreadyRegistered should work with wrapped errors")
	}
}

func TestSentinelErrors(t *testing.T) {
	// Ensure sentinel errors are distinct
	sentinels := []error{
		ErrAlreadyRegistered,
		ErrUnknown,
		ErrIDUnknown,
		ErrIDNotOriginator,
		ErrIDAddressMismatch,
		ErrBadCounterAssertion,
		ErrInvalidInput,
		ErrViewCall,
	}

	for i, err1 := range sentinels {
		for j, err2 := range sentinels {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("Sentinel errors should be distinct: %v matches %v", err1, err2)
			}
		}
	}
}
