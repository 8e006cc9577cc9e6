package operation

import (
	"testing"

	"github.com/dgraph-io/badger/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onrelay/relay-go/model/relay"
	"github.com/onrelay/relay-go/storage"
	"github.com/onrelay/relay-go/utils/unittest"
)

func TestQueueWindowInsertRetrieve(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		para := unittest.ParaIDFixture()
		expected := QueueWindow{Begin: 3, End: 7}

		err := db.Update(InsertQueueWindow(para, expected))
		require.NoError(t, err)

		var actual QueueWindow
		err = db.View(RetrieveQueueWindow(para, &actual))
		require.NoError(t, err)
		assert.Equal(t, expected, actual)
		assert.Equal(t, uint64(4), actual.Length())

		// a second insert for the same para must be rejected
		err = db.Update(InsertQueueWindow(para, expected))
		require.ErrorIs(t, err, storage.ErrAlreadyExists)

		expected.End = 9
		err = db.Update(UpdateQueueWindow(para, expected))
		require.NoError(t, err)

		err = db.View(RetrieveQueueWindow(para, &actual))
		require.NoError(t, err)
		assert.Equal(t, expected, actual)
	})
}

func TestQueueWindowRetrieveUnknown(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		var window QueueWindow
		err := db.View(RetrieveQueueWindow(unittest.ParaIDFixture(), &window))
		require.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestQueueHeadInsertRetrieve(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		para := unittest.ParaIDFixture()
		expected := unittest.HashFixture()

		err := db.Update(InsertQueueHead(para, expected))
		require.NoError(t, err)

		var actual relay.Hash
		err = db.View(RetrieveQueueHead(para, &actual))
		require.NoError(t, err)
		assert.Equal(t, expected, actual)

		expected = unittest.HashFixture()
		err = db.Update(UpdateQueueHead(para, expected))
		require.NoError(t, err)

		err = db.View(RetrieveQueueHead(para, &actual))
		require.NoError(t, err)
		assert.Equal(t, expected, actual)

		err = db.Update(RemoveQueueHead(para))
		require.NoError(t, err)

		err = db.View(RetrieveQueueHead(para, &actual))
		require.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestMessageInsertRetrieve(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		para := unittest.ParaIDFixture()
		expected := unittest.InboundMessageFixture()

		err := db.Update(InsertMessage(para, 0, expected))
		require.NoError(t, err)

		var actual relay.InboundMessage
		err = db.View(RetrieveMessage(para, 0, &actual))
		require.NoError(t, err)
		assert.Equal(t, *expected, actual)

		err = db.Update(RemoveMessage(para, 0))
		require.NoError(t, err)

		err = db.View(RetrieveMessage(para, 0, &actual))
		require.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestLookupMessagesOrdered(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		para := unittest.ParaIDFixture()
		expected := unittest.InboundMessagesFixture(5)

		// insert out of slot order to check iteration order is slot order
		for _, slot := range []uint64{3, 0, 4, 1, 2} {
			err := db.Update(InsertMessage(para, slot, expected[slot]))
			require.NoError(t, err)
		}

		// messages of another para must not leak into the iteration
		err := db.Update(InsertMessage(para+1, 0, unittest.InboundMessageFixture()))
		require.NoError(t, err)

		var actual []*relay.InboundMessage
		err = db.View(LookupMessages(para, &actual))
		require.NoError(t, err)
		assert.Equal(t, expected, actual)
	})
}

func TestLookupQueuedParas(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		expected := unittest.ParaIDListFixture(4)
		for _, para := range expected {
			err := db.Update(InsertQueueWindow(para, QueueWindow{Begin: 0, End: 1}))
			require.NoError(t, err)
		}

		var actual relay.ParaIDList
		err := db.View(LookupQueuedParas(&actual))
		require.NoError(t, err)
		assert.Equal(t, expected, actual)
	})
}
