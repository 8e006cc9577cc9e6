package relay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/onrelay/relay-go/model/relay"
)

func TestNextChainHead(t *testing.T) {
	msg := relay.InboundMessage{Payload: []byte("ping"), SentAt: 100}

	head := relay.NextChainHead(relay.ZeroHash, msg.SentAt, msg.Hash())
	require.False(t, head.IsZero())

	t.Run("deterministic", func(t *testing.T) {
		again := relay.NextChainHead(relay.ZeroHash, msg.SentAt, msg.Hash())
		assert.Equal(t, head, again)
	})

	t.Run("sensitive to previous head", func(t *testing.T) {
		other := relay.NextChainHead(head, msg.SentAt, msg.Hash())
		assert.NotEqual(t, head, other)
	})

	t.Run("sensitive to sent-at block", func(t *testing.T) {
		other := relay.NextChainHead(relay.ZeroHash, msg.SentAt+1, msg.Hash())
		assert.NotEqual(t, head, other)
	})

	t.Run("sensitive to message hash", func(t *testing.T) {
		changed := relay.InboundMessage{Payload: []byte("pong"), SentAt: msg.SentAt}
		other := relay.NextChainHead(relay.ZeroHash, msg.SentAt, changed.Hash())
		assert.NotEqual(t, head, other)
	})
}

// TestMessageQueueChain_MatchesFold checks that folding messages one by one
// through MessageQueueChain yields the same head as computing NextChainHead
// by hand over the full history, for arbitrary message sequences.
func TestMessageQueueChain_MatchesFold(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 32).Draw(t, "n")
		sentAt := relay.BlockNumber(rapid.Uint64Range(0, 1<<40).Draw(t, "first-block"))

		var chain relay.MessageQueueChain
		expected := relay.ZeroHash
		for i := 0; i < n; i++ {
			// sent-at stamps never decrease in append order
			sentAt += relay.BlockNumber(rapid.Uint64Range(0, 5).Draw(t, "step"))
			msg := relay.InboundMessage{
				Payload: rapid.SliceOfN(rapid.Byte(), 0, 64).Draw(t, "payload"),
				SentAt:  sentAt,
			}

			expected = relay.NextChainHead(expected, msg.SentAt, msg.Hash())
			head := chain.Extend(&msg)

			require.Equal(t, expected, head)
			require.Equal(t, expected, chain.Head())
		}
	})
}

// TestMessageQueueChain_Resume checks that a chain resumed from an observed
// head extends exactly like the chain that produced the head.
func TestMessageQueueChain_Resume(t *testing.T) {
	first := relay.InboundMessage{Payload: []byte("a"), SentAt: 1}
	second := relay.InboundMessage{Payload: []byte("b"), SentAt: 2}

	var full relay.MessageQueueChain
	full.Extend(&first)
	observed := full.Extend(&second)

	resumed := relay.NewMessageQueueChain(full.Head())
	require.Equal(t, observed, resumed.Head())

	third := relay.InboundMessage{Payload: []byte("c"), SentAt: 3}
	assert.Equal(t, full.Extend(&third), resumed.Extend(&third))
}

// TestMessageQueueChain_DetectsReorder checks that swapping two distinct
// messages produces a different head, so a consumer replaying an out-of-order
// stream cannot reproduce the advertised head.
func TestMessageQueueChain_DetectsReorder(t *testing.T) {
	a := relay.InboundMessage{Payload: []byte("first"), SentAt: 10}
	b := relay.InboundMessage{Payload: []byte("second"), SentAt: 10}

	var ordered relay.MessageQueueChain
	ordered.Extend(&a)
	ordered.Extend(&b)

	var swapped relay.MessageQueueChain
	swapped.Extend(&b)
	swapped.Extend(&a)

	assert.NotEqual(t, ordered.Head(), swapped.Head())
}
