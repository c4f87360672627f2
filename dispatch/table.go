package dispatch

import "sync/atomic"

// Table is a process-wide record of the active capability mask. It holds a
// single mask shared by every operation, not one function slot per
// operation: NewTable installs the detected mask, and engines call
// Strongest on each call to choose between their own implementations.
//
// Table is safe for concurrent reads; Reset updates it atomically from the
// caller's perspective (last writer wins) but callers resetting
// concurrently with in-flight use of the table must synchronise
// externally, per spec.md §4.B/§9.
type Table struct {
	active atomic.Uint32 // Capability, boxed for atomic access
}

// NewTable builds a table initialised against the process's detected
// capabilities.
func NewTable() *Table {
	t := &Table{}
	t.active.Store(uint32(Detect()))
	return t
}

// Active returns the capability mask currently installed in the table.
func (t *Table) Active() Capability {
	return Capability(t.active.Load())
}

// Reset intersects want with the process's detected hardware capabilities
// and installs the result. If the intersection is empty, the table falls
// back to Serial. Reset is the only public mutator; it does not pause or
// drain in-flight calls using the previous mask.
func (t *Table) Reset(want Capability) {
	detected := Detect()
	next := want & detected
	if next == 0 {
		next = Serial
	}
	// Serial is always implicitly available as the universal fallback tier.
	next |= Serial
	t.active.Store(uint32(next))
}

// Strongest returns the highest tier bit set in the table's active mask,
// scanning tiersStrongToWeak from strongest to weakest. Engines use
// this to pick one implementation per call without re-deriving the scan.
func (t *Table) Strongest() Capability {
	active := t.Active()
	for _, tier := range tiersStrongToWeak {
		if active&tier != 0 {
			return tier
		}
	}
	return Serial
}
