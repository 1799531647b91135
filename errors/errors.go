/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrAlreadyRegistered is returned when registering an address that is already a key
	ErrAlreadyRegistered = errors.New("address already registered")

	// ErrUnknown is returned when a lookup hits an unregistered address or id
	ErrUnknown = errors.New("address or id not registered")

	// ErrIDUnknown is returned when a verification view is given an unassigned id
	ErrIDUnknown = errors.New("id not registered")

	// ErrIDNotOriginator is returned when an id does not resolve to the transaction originator
	ErrIDNotOriginator = errors.New("id does not match originator")

	// ErrIDAddressMismatch is returned when an id resolves to a different address than claimed
	ErrIDAddressMismatch = errors.New("id does not match address")

	// ErrBadCounterAssertion is returned when an asserted counter value differs from actual state
	ErrBadCounterAssertion = errors.New("counter assertion failed")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrViewCall is returned when a cross-registry view call cannot be completed
	ErrViewCall = errors.New("view call failed")
)

// AlreadyRegisteredError represents an attempt to re-register an existing key
type AlreadyRegisteredError struct {
	Address string
}

func (e *AlreadyRegisteredError) Error() string {
	return fmt.Sprintf("address %q already registered", e.Address)
}

func (e *AlreadyRegisteredError) Is(target error) bool {
	return target == ErrAlreadyRegistered
}

// UnknownAddressError represents a lookup of an unregistered address
type UnknownAddressError struct {
	Address string
}

func (e *UnknownAddressError) Error() string {
	return fmt.Sprintf("address %q not registered", e.Address)
}

func (e *UnknownAddressError) Is(target error) bool {
	return target == ErrUnknown
}

// UnknownIDError represents a lookup of an unassigned id
type UnknownIDError struct {
	ID string
}

func (e *UnknownIDError) Error() string {
	return fmt.Sprintf("id %s not registered", e.ID)
}

func (e *UnknownIDError) Is(target error) bool {
	return target == ErrUnknown
}

// IDUnknownError represents a verification view given an unassigned id
type IDUnknownError struct {
	ID string
}

func (e *IDUnknownError) Error() string {
	return fmt.Sprintf("verification failed: id %s not registered", e.ID)
}

func (e *IDUnknownError) Is(target error) bool {
	return target == ErrIDUnknown
}

// NotOriginatorError represents an id that does not resolve to the transaction originator
type NotOriginatorError struct {
	ID         string
	Originator string
}

func (e *NotOriginatorError) Error() string {
	return fmt.Sprintf("id %s does not resolve to originator %q", e.ID, e.Originator)
}

func (e *NotOriginatorError) Is(target error) bool {
	return target == ErrIDNotOriginator
}

// AddressMismatchError represents an id that resolves to a different address than claimed
type AddressMismatchError struct {
	ID      string
	Claimed string
}

func (e *AddressMismatchError) Error() string {
	return fmt.Sprintf("id %s does not resolve to address %q", e.ID, e.Claimed)
}

func (e *AddressMismatchError) Is(target error) bool {
	return target == ErrIDAddressMismatch
}

// CounterAssertionError represents a counter assertion that does not match actual state
type CounterAssertionError struct {
	Expected string
	Actual   string
}

func (e *CounterAssertionError) Error() string {
	return fmt.Sprintf("counter assertion failed: expected %s, actual %s", e.Expected, e.Actual)
}

func (e *CounterAssertionError) Is(target error) bool {
	return target == ErrBadCounterAssertion
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// ViewCallError represents a cross-registry view call that could not be completed:
// the target registry is absent, the view reverted, or the handle is not configured.
type ViewCallError struct {
	View   string
	Target string
	Err    error
}

func (e *ViewCallError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("view %q on registry %q failed: %v", e.View, e.Target, e.Err)
	}
	return fmt.Sprintf("view %q on registry %q failed", e.View, e.Target)
}

func (e *ViewCallError) Is(target error) bool {
	return target == ErrViewCall
}

func (e *ViewCallError) Unwrap() error {
	return e.Err
}

// Helper functions for creating errors

// NewAlreadyRegisteredError creates a new AlreadyRegisteredError
func NewAlreadyRegisteredError(address string) error {
	return &AlreadyRegisteredError{Address: address}
}

// NewUnknownAddressError creates a new UnknownAddressError
func NewUnknownAddressError(address string) error {
	return &UnknownAddressError{Address: address}
}

// NewUnknownIDError creates a new UnknownIDError
func NewUnknownIDError(id string) error {
	return &UnknownIDError{ID: id}
}

// NewIDUnknownError creates a new IDUnknownError
func NewIDUnknownError(id string) error {
	return &IDUnknownError{ID: id}
}

// NewNotOriginatorError creates a new NotOriginatorError
func NewNotOriginatorError(id, originator string) error {
	return &NotOriginatorError{ID: id, Originator: originator}
}

// NewAddressMismatchError creates a new AddressMismatchError
func NewAddressMismatchError(id, claimed string) error {
	return &AddressMismatchError{ID: id, Claimed: claimed}
}

// NewCounterAssertionError creates a new CounterAssertionError
func NewCounterAssertionError(expected, actual string) error {
	return &CounterAssertionError{Expected: expected, Actual: actual}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewViewCallError creates a new ViewCallError
func NewViewCallError(view, target string, err error) error {
	return &ViewCallError{View: view, Target: target, Err: err}
}

// IsAlreadyRegistered checks if an error is an already registered error
func IsAlreadyRegistered(err error) bool {
	return errors.Is(err, ErrAlreadyRegistered)
}

// IsUnknown checks if an error is an unknown address or id error
func IsUnknown(err error) bool {
	return errors.Is(err, ErrUnknown)
}

// IsIDUnknown checks if an error is an unknown id verification error
func IsIDUnknown(err error) bool {
	return errors.Is(err, ErrIDUnknown)
}

// IsIDNotOriginator checks if an error is a not-originator verification error
func IsIDNotOriginator(err error) bool {
	return errors.Is(err, ErrIDNotOriginator)
}

// IsIDAddressMismatch checks if an error is an id/address mismatch error
func IsIDAddressMismatch(err error) bool {
	return errors.Is(err, ErrIDAddressMismatch)
}

// IsBadCounterAssertion checks if an error is a counter assertion error
func IsBadCounterAssertion(err error) bool {
	return errors.Is(err, ErrBadCounterAssertion)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsViewCall checks if an error is a failed view call error
func IsViewCall(err error) bool {
	return errors.Is(err, ErrViewCall)
}
