package inmem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onrelay/relay-go/model/relay"
	"github.com/onrelay/relay-go/storage"
	"github.com/onrelay/relay-go/storage/inmem"
	"github.com/onrelay/relay-go/utils/unittest"
)

func appendFixture(t *testing.T, store storage.Queues, para relay.ParaID, msg *relay.InboundMessage) relay.Hash {
	prev, err := store.Head(para)
	if err != nil {
		require.ErrorIs(t, err, storage.ErrNotFound)
		prev = relay.ZeroHash
	}
	newHead := relay.NextChainHead(prev, msg.SentAt, msg.Hash())
	require.NoError(t, store.Append(para, msg, newHead))
	return newHead
}

func TestQueuesLifecycle(t *testing.T) {
	store := inmem.NewQueues()
	para := unittest.ParaIDFixture()

	// unknown para: zero length, no head, empty contents
	length, err := store.Length(para)
	require.NoError(t, err)
	assert.Zero(t, length)

	_, err = store.Head(para)
	require.ErrorIs(t, err, storage.ErrNotFound)

	contents, err := store.Contents(para)
	require.NoError(t, err)
	assert.Empty(t, contents)

	// appends accumulate in order and advance the head
	messages := unittest.InboundMessagesFixture(4)
	var head relay.Hash
	for _, msg := range messages {
		head = appendFixture(t, store, para, msg)
	}

	length, err = store.Length(para)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), length)

	actualHead, err := store.Head(para)
	require.NoError(t, err)
	assert.Equal(t, head, actualHead)

	contents, err = store.Contents(para)
	require.NoError(t, err)
	assert.Equal(t, messages, contents)

	// reading the contents must not disturb the queue
	contents, err = store.Contents(para)
	require.NoError(t, err)
	assert.Equal(t, messages, contents)

	// pruning drops from the front and leaves the head alone
	err = store.RemovePrefix(para, 2)
	require.NoError(t, err)

	contents, err = store.Contents(para)
	require.NoError(t, err)
	assert.Equal(t, messages[2:], contents)

	actualHead, err = store.Head(para)
	require.NoError(t, err)
	assert.Equal(t, head, actualHead)

	// over-pruning is rejected
	err = store.RemovePrefix(para, 3)
	require.Error(t, err)

	// full removal destroys queue and head together, idempotently
	err = store.RemoveAll(para)
	require.NoError(t, err)
	err = store.RemoveAll(para)
	require.NoError(t, err)

	length, err = store.Length(para)
	require.NoError(t, err)
	assert.Zero(t, length)

	_, err = store.Head(para)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestQueuesParas(t *testing.T) {
	store := inmem.NewQueues()

	paras, err := store.Paras()
	require.NoError(t, err)
	assert.Empty(t, paras)

	expected := unittest.ParaIDListFixture(3)
	for _, para := range expected {
		appendFixture(t, store, para, unittest.InboundMessageFixture())
	}

	paras, err = store.Paras()
	require.NoError(t, err)
	assert.Equal(t, expected, paras)

	require.NoError(t, store.RemoveAll(expected[0]))

	paras, err = store.Paras()
	require.NoError(t, err)
	assert.Equal(t, expected[1:], paras)
}

func TestOutgoingParas(t *testing.T) {
	store := inmem.NewOutgoingParas()

	expected := unittest.ParaIDListFixture(3)
	for _, para := range expected {
		require.NoError(t, store.Schedule(para))
	}
	require.NoError(t, store.Schedule(expected[1]))

	peeked, err := store.Peek()
	require.NoError(t, err)
	assert.Equal(t, expected, peeked)

	drained, err := store.Drain()
	require.NoError(t, err)
	assert.Equal(t, expected, drained)

	// drained exactly once
	again, err := store.Drain()
	require.NoError(t, err)
	assert.Empty(t, again)
}
