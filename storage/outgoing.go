package storage

import (
	"github.com/onrelay/relay-go/model/relay"
)

// OutgoingParas represents the set of paras scheduled for offboarding at the
// next epoch boundary. The session orchestrator writes the set once per
// epoch; the lifecycle sweep drains it exactly once. The single-writer,
// single-reader handoff is part of the contract: a drained para must not
// reappear unless scheduled again.
type OutgoingParas interface {

	// Schedule adds a para to the outgoing set. Scheduling an already
	// scheduled para is a no-op.
	Schedule(para relay.ParaID) error

	// Peek returns the currently scheduled paras in ascending order without
	// consuming them.
	Peek() (relay.ParaIDList, error)

	// Drain atomically returns all scheduled paras in ascending order and
	// empties the set. A second Drain without new Schedule calls returns an
	// empty list.
	Drain() (relay.ParaIDList, error)
}
