package operation

import (
	"github.com/dgraph-io/badger/v2"

	"github.com/onrelay/relay-go/model/relay"
)

// QueueWindow tracks the live slots of a para's downward message queue.
// Messages occupy the contiguous slots [Begin, End): appends write slot End,
// pruning deletes from Begin upwards. Slot numbers are never reused within a
// queue's lifetime, so the window also counts total appends.
type QueueWindow struct {
	Begin uint64
	End   uint64
}

// Length returns the number of live slots.
func (w QueueWindow) Length() uint64 {
	return w.End - w.Begin
}

func InsertQueueWindow(para relay.ParaID, window QueueWindow) func(*badger.Txn) error {
	return insert(makePrefix(codeQueueWindow, para), window)
}

func UpdateQueueWindow(para relay.ParaID, window QueueWindow) func(*badger.Txn) error {
	return update(makePrefix(codeQueueWindow, para), window)
}

func RetrieveQueueWindow(para relay.ParaID, window *QueueWindow) func(*badger.Txn) error {
	return retrieve(makePrefix(codeQueueWindow, para), window)
}

func RemoveQueueWindow(para relay.ParaID) func(*badger.Txn) error {
	return remove(makePrefix(codeQueueWindow, para))
}

func InsertQueueHead(para relay.ParaID, head relay.Hash) func(*badger.Txn) error {
	return insert(makePrefix(codeQueueHead, para), head)
}

func UpdateQueueHead(para relay.ParaID, head relay.Hash) func(*badger.Txn) error {
	return update(makePrefix(codeQueueHead, para), head)
}

func RetrieveQueueHead(para relay.ParaID, head *relay.Hash) func(*badger.Txn) error {
	return retrieve(makePrefix(codeQueueHead, para), head)
}

func RemoveQueueHead(para relay.ParaID) func(*badger.Txn) error {
	return remove(makePrefix(codeQueueHead, para))
}

func InsertMessage(para relay.ParaID, slot uint64, msg *relay.InboundMessage) func(*badger.Txn) error {
	return insert(makePrefix(codeMessage, para, slot), msg)
}

func RetrieveMessage(para relay.ParaID, slot uint64, msg *relay.InboundMessage) func(*badger.Txn) error {
	return retrieve(makePrefix(codeMessage, para, slot), msg)
}

func RemoveMessage(para relay.ParaID, slot uint64) func(*badger.Txn) error {
	return remove(makePrefix(codeMessage, para, slot))
}

// TraverseMessages iterates over the live messages of the given para in slot
// order, which is append order.
func TraverseMessages(para relay.ParaID, iteration iterationFunc) func(*badger.Txn) error {
	return traverse(makePrefix(codeMessage, para), iteration)
}

// TraverseQueueWindows iterates over the queue windows of all paras in
// ascending para order.
func TraverseQueueWindows(iteration iterationFunc) func(*badger.Txn) error {
	return traverse(makePrefix(codeQueueWindow), iteration)
}

// lookupMessages collects every message visited during an iteration over a
// para's message keyspace.
func lookupMessages(messages *[]*relay.InboundMessage) iterationFunc {
	return func() (checkFunc, createFunc, handleFunc) {
		check := func(key []byte) bool {
			return true
		}
		var msg relay.InboundMessage
		create := func() interface{} {
			msg = relay.InboundMessage{}
			return &msg
		}
		handle := func() error {
			stored := msg
			*messages = append(*messages, &stored)
			return nil
		}
		return check, create, handle
	}
}

// LookupMessages retrieves all live messages of the given para in append
// order.
func LookupMessages(para relay.ParaID, messages *[]*relay.InboundMessage) func(*badger.Txn) error {
	return TraverseMessages(para, lookupMessages(messages))
}

// lookupParas collects the para of every key visited during an iteration over
// a per-para keyspace.
func lookupParas(paras *relay.ParaIDList) iterationFunc {
	return keyonly(func(key []byte) {
		*paras = append(*paras, paraFromKey(key))
	})
}

// LookupQueuedParas retrieves the IDs of all paras that currently have a
// queue, in ascending order.
func LookupQueuedParas(paras *relay.ParaIDList) func(*badger.Txn) error {
	return TraverseQueueWindows(lookupParas(paras))
}
