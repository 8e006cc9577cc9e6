package dmq

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/onrelay/relay-go/model/relay"
	"github.com/onrelay/relay-go/storage"
)

// QueueMessage admits one downward message for the para. The payload is
// checked against maxSize, the per-block bound supplied by the configuration
// collaborator; oversized payloads are rejected with OversizedMessageError
// and nothing is mutated. On success the message is appended and the para's
// chain head advances to commit to it, as one atomic storage update.
//
// Expected errors during normal operations:
//   - OversizedMessageError if the payload exceeds maxSize
func (s *State) QueueMessage(para relay.ParaID, payload []byte, sentAt relay.BlockNumber, maxSize uint32) error {

	if uint64(len(payload)) > uint64(maxSize) {
		s.metrics.MessageRejected()
		return NewOversizedMessageErrorf("message size %d exceeds configured maximum %d", len(payload), maxSize)
	}

	msg := &relay.InboundMessage{
		Payload: payload,
		SentAt:  sentAt,
	}

	// an absent head reads as the genesis head
	prev, err := s.queues.Head(para)
	if errors.Is(err, storage.ErrNotFound) {
		prev = relay.ZeroHash
	} else if err != nil {
		return fmt.Errorf("could not retrieve queue head: %w", err)
	}

	newHead := relay.NextChainHead(prev, sentAt, msg.Hash())
	err = s.queues.Append(para, msg, newHead)
	if err != nil {
		return fmt.Errorf("could not append message: %w", err)
	}

	s.metrics.MessageAdmitted(msg.Size())
	if length, err := s.queues.Length(para); err == nil {
		s.metrics.QueueLength(length)
	}

	s.log.Debug().
		Uint32("para", uint32(para)).
		Uint64("sent_at", uint64(sentAt)).
		Uint32("size", msg.Size()).
		Hex("head", newHead[:]).
		Msg("downward message admitted")

	return nil
}

// Pruning is the validated intent to remove a verified prefix from one
// para's queue. A usable value can only be obtained from CheckProcessed,
// which ties every enactment to a prior successful check of the same
// candidate.
type Pruning struct {
	para      relay.ParaID
	processed uint64
	checked   bool
}

// Para returns the para the pruning was validated for.
func (p Pruning) Para() relay.ParaID {
	return p.para
}

// Processed returns the number of messages the pruning will remove.
func (p Pruning) Processed() uint64 {
	return p.processed
}

// CheckProcessed validates a para's processed-count report against the
// current queue, without mutating anything. Validation of a candidate block
// calls it for every para the candidate touches; only if all checks pass may
// the returned pruning intents be enacted.
//
// Expected errors during normal operations:
//   - QueueTooShortError if processed exceeds the queue length
//   - ZeroProcessedError if processed is zero while the queue is not empty
func (s *State) CheckProcessed(para relay.ParaID, processed uint64) (Pruning, error) {

	length, err := s.queues.Length(para)
	if err != nil {
		return Pruning{}, fmt.Errorf("could not retrieve queue length: %w", err)
	}

	if processed > length {
		return Pruning{}, NewQueueTooShortErrorf("processed count %d exceeds queue length %d", processed, length)
	}
	if processed == 0 && length > 0 {
		return Pruning{}, NewZeroProcessedErrorf("queue of length %d reported zero processed messages", length)
	}

	return Pruning{
		para:      para,
		processed: processed,
		checked:   true,
	}, nil
}

// EnactPruning removes the prefix validated by a prior CheckProcessed. The
// caller must have confirmed the checks of every para touched by the
// candidate before enacting any of them; the pruning token makes skipping
// the check unrepresentable, and passing a zero token panics.
//
// No error is expected during normal operations. A failure here means the
// state changed between check and enactment or the store is corrupt; either
// breaks the all-or-nothing guarantee of block application and the caller
// must treat it as fatal.
func (s *State) EnactPruning(pruning Pruning) error {

	if !pruning.checked {
		panic(fmt.Errorf("pruning enacted without prior check"))
	}

	err := s.queues.RemovePrefix(pruning.para, pruning.processed)
	if err != nil {
		return fmt.Errorf("could not prune %d messages of para %d: %w", pruning.processed, pruning.para, err)
	}

	if pruning.processed == 0 {
		return nil
	}

	s.metrics.MessagesPruned(pruning.processed)
	if length, err := s.queues.Length(pruning.para); err == nil {
		s.metrics.QueueLength(length)
	}

	s.log.Debug().
		Uint32("para", uint32(pruning.para)).
		Uint64("processed", pruning.processed).
		Msg("downward messages pruned")

	return nil
}

// Sweep purges the queue and chain head of every para in the outgoing list.
// It runs once per epoch boundary, strictly after the final block of the
// epoch is enacted and before admission resumes for the next epoch. Paras
// without a queue are no-ops, so offboarding a para that never received a
// message is fine. Failures are collected per para; one bad entry does not
// strand the rest of the list.
func (s *State) Sweep(outgoing relay.ParaIDList) error {

	var result *multierror.Error
	for _, para := range outgoing {
		err := s.queues.RemoveAll(para)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("could not remove queue of para %d: %w", para, err))
			continue
		}
		s.metrics.QueueSwept()
	}

	err := result.ErrorOrNil()
	if err != nil {
		return err
	}

	s.log.Info().
		Int("outgoing", len(outgoing)).
		Msg("offboarded queues swept")

	return nil
}

// SweepOutgoing drains the outgoing set exactly once and sweeps the drained
// paras. The drain preserves the single-writer/single-reader handoff with
// the session orchestrator: a second call without new scheduling sweeps
// nothing. It returns the paras that were swept.
func (s *State) SweepOutgoing() (relay.ParaIDList, error) {

	outgoing, err := s.outgoing.Drain()
	if err != nil {
		return nil, fmt.Errorf("could not drain outgoing paras: %w", err)
	}

	err = s.Sweep(outgoing)
	if err != nil {
		return nil, err
	}

	return outgoing, nil
}
