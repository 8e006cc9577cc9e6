package storage

import (
	"github.com/onrelay/relay-go/model/relay"
)

// Queues represents persistent storage for per-para downward message queues
// and their chain heads. A para either has both a queue and a head or
// neither; Append creates the pair on first use and RemoveAll destroys it as
// a unit. Implementations must apply each mutation atomically with respect to
// concurrent reads of the same para.
//
// Mutations on the same para are serialized by the caller; mutations on
// distinct paras are independent and may run concurrently.
type Queues interface {

	// Append adds one message to the back of the para's queue and replaces
	// the chain head with newHead, as a single atomic update. The head is
	// computed by the caller via relay.NextChainHead so that it commits to
	// the full append history.
	Append(para relay.ParaID, msg *relay.InboundMessage, newHead relay.Hash) error

	// Length returns the number of messages currently in the para's queue.
	// It returns 0 for an unknown para.
	Length(para relay.ParaID) (uint64, error)

	// Head returns the current chain head of the para's queue.
	// Expected errors during normal operations:
	//   - storage.ErrNotFound if the para has no queue (genesis head)
	Head(para relay.ParaID) (relay.Hash, error)

	// Contents returns all messages currently in the para's queue in append
	// order. It returns an empty slice for an unknown para.
	Contents(para relay.ParaID) ([]*relay.InboundMessage, error)

	// RemovePrefix deletes the first n messages from the para's queue. The
	// chain head is left untouched: it commits to append history, not to
	// resident messages. The caller validates n against the queue length
	// beforehand; n exceeding it is a contract violation and implementations
	// may fail on it.
	RemovePrefix(para relay.ParaID, n uint64) error

	// RemoveAll deletes the para's queue and chain head together. It is
	// idempotent: removing an unknown para is a no-op.
	RemoveAll(para relay.ParaID) error

	// Paras returns the IDs of all paras that currently have a queue, in
	// ascending order.
	Paras() (relay.ParaIDList, error)
}
