/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package addressregistry

// Call identifies the actors behind one invocation: the immediate
// caller of the entrypoint and the originator of the entire call
// chain. The two differ when the invocation was relayed through an
// intermediate component. Identity is always passed explicitly; the
// registry never reads it from ambient state.
type Call struct {
	Caller     Address
	Originator Address
}

// DirectCall returns a Call for an actor invoking an entrypoint
// directly, so caller and originator coincide.
func DirectCall(actor Address) Call {
	return Call{Caller: actor, Originator: actor}
}

// RelayedCall returns a Call for an invocation forwarded by an
// intermediate component on behalf of an originator.
func RelayedCall(caller, originator Address) Call {
	return Call{Caller: caller, Originator: originator}
}

// Validate reports whether both actors are well-formed addresses.
func (c Call) Validate() error {
	if err := c.Caller.Validate(); err != nil {
		return err
	}
	return c.Originator.Validate()
}
