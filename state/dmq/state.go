package dmq

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/onrelay/relay-go/model/relay"
	"github.com/onrelay/relay-go/module"
	"github.com/onrelay/relay-go/storage"
)

// State tracks the downward message queues of all paras registered with the
// relay. It runs inside the deterministic state-transition step of block
// processing: mutations on the same para are serialized by the surrounding
// pipeline, and every compound update is atomic at the storage layer.
type State struct {
	log      zerolog.Logger
	metrics  module.DownwardQueueMetrics
	queues   storage.Queues
	outgoing storage.OutgoingParas
}

func NewState(
	log zerolog.Logger,
	collector module.DownwardQueueMetrics,
	queues storage.Queues,
	outgoing storage.OutgoingParas,
) *State {
	return &State{
		log:      log.With().Str("component", "dmq_state").Logger(),
		metrics:  collector,
		queues:   queues,
		outgoing: outgoing,
	}
}

// QueueLength returns the number of messages currently pending for the para.
func (s *State) QueueLength(para relay.ParaID) (uint64, error) {
	return s.queues.Length(para)
}

// QueueHead returns the para's current chain head. A para without a queue is
// at the genesis head.
func (s *State) QueueHead(para relay.ParaID) (relay.Hash, error) {
	head, err := s.queues.Head(para)
	if errors.Is(err, storage.ErrNotFound) {
		return relay.ZeroHash, nil
	}
	if err != nil {
		return relay.ZeroHash, fmt.Errorf("could not retrieve queue head: %w", err)
	}
	return head, nil
}

// QueueContents returns the para's pending messages in the order they were
// admitted. A consumer can fold them into a chain resumed from its last
// verified head and compare against QueueHead to verify completeness.
func (s *State) QueueContents(para relay.ParaID) ([]*relay.InboundMessage, error) {
	return s.queues.Contents(para)
}
