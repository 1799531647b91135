/*
Package consumer implements the cross-component verification protocol
against a registry instance.

A Consumer never duplicates registry state. It holds a RegistryViews
handle (bound to an instance directly via NewHandle, or resolved from
a Manager via Dial with the deployment address held as configuration)
and delegates every id↔address resolution and trust check to the
registry through it. Capabilities are split one interface per view, so
a component that only resolves ids can be granted an AddressResolver
and nothing more.

Entrypoints compose a delegated view with a local mutation, in that
order: the view runs first, and the local record is written only on
success. A failed view, including a handle that was never bound
(ErrViewCall), therefore aborts the invocation with no partial effect.

	handle := consumer.NewHandle(regAddr, reg)
	c := consumer.New(handle)

	// look up id 2 via the registry, then store the resolved address
	err := c.StoreAddress(addressregistry.DirectCall(actor), "member-0", addressregistry.NewID(2))

	// delegate a trust check without importing registry state
	err = c.AssertIDEqualsAddress(call, id, claimed)
*/
package consumer
