/*
Package errors provides semantic error types for the AddressRegistry library.

The package defines the registry's failure taxonomy with specific types that
can be checked using the standard errors.Is() function or the provided helper
functions. Every error is fatal to the enclosing operation: callers observe
the operation as never having happened, tagged with the specific kind.

Common Errors:

	var (
	    ErrAlreadyRegistered   = errors.New("address already registered")
	    ErrUnknown             = errors.New("address or id not registered")
	    ErrIDUnknown           = errors.New("id not registered")
	    ErrIDNotOriginator     = errors.New("id does not match originator")
	    ErrIDAddressMismatch   = errors.New("id does not match address")
	    ErrBadCounterAssertion = errors.New("counter assertion failed")
	    ErrInvalidInput        = errors.New("invalid input")
	    ErrViewCall            = errors.New("view call failed")
	)

Usage:

	// Check error type
	id, err := reg.AddressToID(addr)
	if err != nil {
	    if errors.IsUnknown(err) {
	        // Handle unregistered address
	        return fmt.Errorf("address %s has no id", addr)
	    }
	    return err
	}

	// Create typed errors
	err := errors.NewAlreadyRegisteredError("tz1...")
	err := errors.NewAddressMismatchError("7", "tz1...")
	err := errors.NewViewCallError("idToAddress", "tz1...", cause)

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
