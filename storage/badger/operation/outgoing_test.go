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

func TestOutgoingParas(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		expected := unittest.ParaIDListFixture(3)

		for _, para := range expected {
			err := db.Update(UpsertOutgoingPara(para))
			require.NoError(t, err)
		}

		// scheduling twice is a no-op
		err := db.Update(UpsertOutgoingPara(expected[0]))
		require.NoError(t, err)

		var actual relay.ParaIDList
		err = db.View(LookupOutgoingParas(&actual))
		require.NoError(t, err)
		assert.Equal(t, expected, actual)

		err = db.Update(RemoveOutgoingPara(expected[1]))
		require.NoError(t, err)

		actual = nil
		err = db.View(LookupOutgoingParas(&actual))
		require.NoError(t, err)
		assert.Equal(t, relay.ParaIDList{expected[0], expected[2]}, actual)

		err = db.Update(RemoveOutgoingPara(expected[1]))
		require.ErrorIs(t, err, storage.ErrNotFound)
	})
}
