/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package consumer

import (
	"github.com/suparena/addressregistry"
	"github.com/suparena/addressregistry/errors"
)

// Handle is a RegistryViews implementation bound to one live registry
// instance. It is the local stand-in for a synchronous cross-component
// view call: if the handle was never bound to an instance, every view
// fails with ErrViewCall rather than guessing at a default.
type Handle struct {
	target   addressregistry.Address
	instance *addressregistry.Registry
}

// NewHandle binds a handle directly to a registry instance.
func NewHandle(target addressregistry.Address, instance *addressregistry.Registry) *Handle {
	return &Handle{target: target, instance: instance}
}

// Dial resolves the registry instance deployed at the configured
// address and returns a handle bound to it. An unknown address is a
// view-call failure, not a recoverable absence.
func Dial(m *addressregistry.Manager, target addressregistry.Address) (*Handle, error) {
	instance, err := m.Instance(target)
	if err != nil {
		return nil, errors.NewViewCallError("dial", target.String(), err)
	}
	return &Handle{target: target, instance: instance}, nil
}

// Target returns the deployment address this handle is bound to.
func (h *Handle) Target() addressregistry.Address {
	return h.target
}

func (h *Handle) unbound(view string) error {
	return errors.NewViewCallError(view, h.target.String(), nil)
}

// HasAddress implements AddressChecker.
func (h *Handle) HasAddress(addr addressregistry.Address) (bool, error) {
	if h.instance == nil {
		return false, h.unbound("hasAddress")
	}
	return h.instance.HasAddress(addr), nil
}

// Counter implements CounterReader.
func (h *Handle) Counter() (addressregistry.ID, error) {
	if h.instance == nil {
		return addressregistry.ID{}, h.unbound("getCounter")
	}
	return h.instance.Counter(), nil
}

// AddressToID implements IDResolver.
func (h *Handle) AddressToID(addr addressregistry.Address) (addressregistry.ID, error) {
	if h.instance == nil {
		return addressregistry.ID{}, h.unbound("addressToId")
	}
	return h.instance.AddressToID(addr)
}

// IDToAddress implements AddressResolver.
func (h *Handle) IDToAddress(id addressregistry.ID) (addressregistry.Address, error) {
	if h.instance == nil {
		return "", h.unbound("idToAddress")
	}
	return h.instance.IDToAddress(id)
}

// CheckIDEqualsOriginator implements OriginatorChecker.
func (h *Handle) CheckIDEqualsOriginator(call addressregistry.Call, id addressregistry.ID) error {
	if h.instance == nil {
		return h.unbound("checkIdEqualsOriginator")
	}
	return h.instance.CheckIDEqualsOriginator(call, id)
}

// CheckIDEqualsAddress implements PairChecker.
func (h *Handle) CheckIDEqualsAddress(id addressregistry.ID, addr addressregistry.Address) error {
	if h.instance == nil {
		return h.unbound("checkIdEqualsAddress")
	}
	return h.instance.CheckIDEqualsAddress(id, addr)
}
