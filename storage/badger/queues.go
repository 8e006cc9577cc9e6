package badger

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v2"

	"github.com/onrelay/relay-go/model/relay"
	"github.com/onrelay/relay-go/module"
	"github.com/onrelay/relay-go/module/metrics"
	"github.com/onrelay/relay-go/storage"
	"github.com/onrelay/relay-go/storage/badger/operation"
)

// queueState bundles the live window and chain head of one para's queue, the
// state consulted by every queue operation.
type queueState struct {
	window operation.QueueWindow
	head   relay.Hash
}

// Queues implements storage.Queues backed by a badger DB. Window and head
// lookups are served from a read-through cache keyed by para.
type Queues struct {
	db    *badger.DB
	cache *Cache
}

var _ storage.Queues = (*Queues)(nil)

func NewQueues(collector module.CacheMetrics, db *badger.DB) *Queues {

	q := &Queues{db: db}

	q.cache = newCache(collector,
		withLimit(1000),
		withResource(metrics.ResourceQueueState),
		withRetrieve(func(para relay.ParaID) (interface{}, error) {
			var state queueState
			err := db.View(func(tx *badger.Txn) error {
				err := operation.RetrieveQueueWindow(para, &state.window)(tx)
				if err != nil {
					return err
				}
				return operation.RetrieveQueueHead(para, &state.head)(tx)
			})
			if err != nil {
				return nil, err
			}
			return &state, nil
		}),
	)

	return q
}

func (q *Queues) state(para relay.ParaID) (*queueState, error) {
	state, err := q.cache.Get(para)
	if err != nil {
		return nil, err
	}
	return state.(*queueState), nil
}

func (q *Queues) Append(para relay.ParaID, msg *relay.InboundMessage, newHead relay.Hash) error {

	var state queueState
	err := q.db.Update(func(tx *badger.Txn) error {

		var window operation.QueueWindow
		err := operation.RetrieveQueueWindow(para, &window)(tx)
		isFirst := errors.Is(err, storage.ErrNotFound)
		if err != nil && !isFirst {
			return fmt.Errorf("could not retrieve queue window: %w", err)
		}

		err = operation.InsertMessage(para, window.End, msg)(tx)
		if err != nil {
			return fmt.Errorf("could not insert message: %w", err)
		}
		window.End++

		if isFirst {
			// the first append creates the queue window and the chain head
			// as a pair
			err = operation.InsertQueueWindow(para, window)(tx)
			if err != nil {
				return fmt.Errorf("could not insert queue window: %w", err)
			}
			err = operation.InsertQueueHead(para, newHead)(tx)
			if err != nil {
				return fmt.Errorf("could not insert queue head: %w", err)
			}
		} else {
			err = operation.UpdateQueueWindow(para, window)(tx)
			if err != nil {
				return fmt.Errorf("could not update queue window: %w", err)
			}
			err = operation.UpdateQueueHead(para, newHead)(tx)
			if err != nil {
				return fmt.Errorf("could not update queue head: %w", err)
			}
		}

		state = queueState{window: window, head: newHead}
		return nil
	})
	if err != nil {
		return err
	}

	q.cache.Insert(para, &state)
	return nil
}

func (q *Queues) Length(para relay.ParaID) (uint64, error) {
	state, err := q.state(para)
	if errors.Is(err, storage.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("could not retrieve queue state: %w", err)
	}
	return state.window.Length(), nil
}

func (q *Queues) Head(para relay.ParaID) (relay.Hash, error) {
	state, err := q.state(para)
	if err != nil {
		return relay.ZeroHash, err
	}
	return state.head, nil
}

func (q *Queues) Contents(para relay.ParaID) ([]*relay.InboundMessage, error) {
	messages := make([]*relay.InboundMessage, 0)
	err := q.db.View(operation.LookupMessages(para, &messages))
	if err != nil {
		return nil, fmt.Errorf("could not look up messages: %w", err)
	}
	return messages, nil
}

func (q *Queues) RemovePrefix(para relay.ParaID, n uint64) error {

	if n == 0 {
		return nil
	}

	var state queueState
	err := q.db.Update(func(tx *badger.Txn) error {

		var window operation.QueueWindow
		err := operation.RetrieveQueueWindow(para, &window)(tx)
		if err != nil {
			return fmt.Errorf("could not retrieve queue window: %w", err)
		}
		if n > window.Length() {
			return fmt.Errorf("cannot remove %d messages from queue of length %d", n, window.Length())
		}

		for slot := window.Begin; slot < window.Begin+n; slot++ {
			err = operation.RemoveMessage(para, slot)(tx)
			if err != nil {
				return fmt.Errorf("could not remove message at slot %d: %w", slot, err)
			}
		}

		window.Begin += n
		err = operation.UpdateQueueWindow(para, window)(tx)
		if err != nil {
			return fmt.Errorf("could not update queue window: %w", err)
		}

		// the head is untouched by pruning; read it to refresh the cache
		var head relay.Hash
		err = operation.RetrieveQueueHead(para, &head)(tx)
		if err != nil {
			return fmt.Errorf("could not retrieve queue head: %w", err)
		}

		state = queueState{window: window, head: head}
		return nil
	})
	if err != nil {
		return err
	}

	q.cache.Insert(para, &state)
	return nil
}

func (q *Queues) RemoveAll(para relay.ParaID) error {

	err := q.db.Update(func(tx *badger.Txn) error {

		var window operation.QueueWindow
		err := operation.RetrieveQueueWindow(para, &window)(tx)
		if errors.Is(err, storage.ErrNotFound) {
			// removal is idempotent
			return nil
		}
		if err != nil {
			return fmt.Errorf("could not retrieve queue window: %w", err)
		}

		for slot := window.Begin; slot < window.End; slot++ {
			err = operation.RemoveMessage(para, slot)(tx)
			if err != nil {
				return fmt.Errorf("could not remove message at slot %d: %w", slot, err)
			}
		}

		// the queue window and the chain head are destroyed as a pair
		err = operation.RemoveQueueWindow(para)(tx)
		if err != nil {
			return fmt.Errorf("could not remove queue window: %w", err)
		}
		err = operation.RemoveQueueHead(para)(tx)
		if err != nil {
			return fmt.Errorf("could not remove queue head: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	q.cache.Remove(para)
	return nil
}

func (q *Queues) Paras() (relay.ParaIDList, error) {
	paras := make(relay.ParaIDList, 0)
	err := q.db.View(operation.LookupQueuedParas(&paras))
	if err != nil {
		return nil, fmt.Errorf("could not look up queued paras: %w", err)
	}
	return paras, nil
}
