package registry

import "github.com/vanitychain/registry/core/types"

// Event is the closed set of notifications the registry emits to the host.
// The unexported method keeps the set closed to this package.
type Event interface {
	isRegistryEvent()
}

// NameOwned is emitted when a reveal succeeds and ownership is (re)assigned.
// PreviousOwner is non-nil when this reveal dislodged an earlier incumbent.
type NameOwned struct {
	Name          types.Name
	Account       types.Address
	PreviousOwner *types.Address
}

func (NameOwned) isRegistryEvent() {}

// NameFreed is emitted when ownership is removed, by unregister or expiry.
type NameFreed struct {
	Name types.Name
}

func (NameFreed) isRegistryEvent() {}

// RevealDiscredited is emitted when a reveal is consumed but the incumbent
// owner's commit began no later than the revealer's; the incumbent is left
// untouched.
type RevealDiscredited struct {
	Name    types.Name
	Account types.Address
}

func (RevealDiscredited) isRegistryEvent() {}

// CommitExpired is emitted when a pending commit ages out during a
// finalization sweep without ever being revealed.
type CommitExpired struct {
	Commit  types.Hash
	Account types.Address
}

func (CommitExpired) isRegistryEvent() {}

// EventSink receives every event the registry emits, in emission order.
type EventSink interface {
	Emit(Event)
}

// EventSinkFunc adapts a plain function to EventSink.
type EventSinkFunc func(Event)

// Emit implements EventSink.
func (f EventSinkFunc) Emit(e Event) { f(e) }

// DiscardEvents is an EventSink that drops every event; useful in tests
// that only care about storage/collateral state.
type DiscardEvents struct{}

// Emit implements EventSink.
func (DiscardEvents) Emit(Event) {}

// CollectEvents is an EventSink that appends every event to a slice, for
// tests that assert on emission order and content.
type CollectEvents struct {
	Events []Event
}

// Emit implements EventSink.
func (c *CollectEvents) Emit(e Event) {
	c.Events = append(c.Events, e)
}
