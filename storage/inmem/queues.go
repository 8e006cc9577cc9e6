package inmem

import (
	"fmt"
	"sync"

	"github.com/ef-ds/deque"

	"github.com/onrelay/relay-go/model/relay"
	"github.com/onrelay/relay-go/storage"
)

// queue is one para's in-memory downward queue: the live messages in append
// order plus the current chain head.
type queue struct {
	messages deque.Deque
	head     relay.Hash
}

// Queues implements storage.Queues in memory. It backs tests and candidate
// validation runs that must not touch disk. All methods are safe for
// concurrent use; mutations on the same para are serialized by the caller
// like for every other implementation.
type Queues struct {
	mu     sync.RWMutex
	queues map[relay.ParaID]*queue
}

var _ storage.Queues = (*Queues)(nil)

func NewQueues() *Queues {
	return &Queues{
		queues: make(map[relay.ParaID]*queue),
	}
}

func (q *Queues) Append(para relay.ParaID, msg *relay.InboundMessage, newHead relay.Hash) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	// the first append creates the queue and the head as a pair
	qu, ok := q.queues[para]
	if !ok {
		qu = &queue{}
		q.queues[para] = qu
	}

	qu.messages.PushBack(msg)
	qu.head = newHead
	return nil
}

func (q *Queues) Length(para relay.ParaID) (uint64, error) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	qu, ok := q.queues[para]
	if !ok {
		return 0, nil
	}
	return uint64(qu.messages.Len()), nil
}

func (q *Queues) Head(para relay.ParaID) (relay.Hash, error) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	qu, ok := q.queues[para]
	if !ok {
		return relay.ZeroHash, storage.ErrNotFound
	}
	return qu.head, nil
}

func (q *Queues) Contents(para relay.ParaID) ([]*relay.InboundMessage, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	messages := make([]*relay.InboundMessage, 0)
	qu, ok := q.queues[para]
	if !ok {
		return messages, nil
	}

	// rotate the deque once around to read it in order without an index API
	for i, n := 0, qu.messages.Len(); i < n; i++ {
		element, ok := qu.messages.PopFront()
		if !ok {
			return nil, fmt.Errorf("queue shorter than its length")
		}
		messages = append(messages, element.(*relay.InboundMessage))
		qu.messages.PushBack(element)
	}
	return messages, nil
}

func (q *Queues) RemovePrefix(para relay.ParaID, n uint64) error {
	if n == 0 {
		return nil
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	qu, ok := q.queues[para]
	if !ok || n > uint64(qu.messages.Len()) {
		return fmt.Errorf("cannot remove %d messages from queue of length %d", n, qu.length())
	}

	for i := uint64(0); i < n; i++ {
		qu.messages.PopFront()
	}
	return nil
}

func (q *Queues) RemoveAll(para relay.ParaID) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	// the queue and the chain head are destroyed as a pair; removal of an
	// unknown para is a no-op
	delete(q.queues, para)
	return nil
}

func (q *Queues) Paras() (relay.ParaIDList, error) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	paras := make(relay.ParaIDList, 0, len(q.queues))
	for para := range q.queues {
		paras = append(paras, para)
	}
	return paras.Sort(), nil
}

func (qu *queue) length() uint64 {
	if qu == nil {
		return 0
	}
	return uint64(qu.messages.Len())
}
