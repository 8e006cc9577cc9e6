package relay_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onrelay/relay-go/model/relay"
)

func TestMakeHash(t *testing.T) {
	msg := relay.InboundMessage{Payload: []byte("payload"), SentAt: 42}

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, relay.MakeHash(msg), relay.MakeHash(msg))
	})

	t.Run("sensitive to payload", func(t *testing.T) {
		other := relay.InboundMessage{Payload: []byte("payloae"), SentAt: 42}
		assert.NotEqual(t, relay.MakeHash(msg), relay.MakeHash(other))
	})

	t.Run("sensitive to sent-at block", func(t *testing.T) {
		other := relay.InboundMessage{Payload: []byte("payload"), SentAt: 43}
		assert.NotEqual(t, relay.MakeHash(msg), relay.MakeHash(other))
	})
}

func TestHashFromBytes(t *testing.T) {
	expected := relay.HashBytes([]byte("some entity"))

	actual, err := relay.HashFromBytes(expected[:])
	require.NoError(t, err)
	assert.Equal(t, expected, actual)

	_, err = relay.HashFromBytes(expected[:16])
	require.Error(t, err)
}

func TestHexStringToHash(t *testing.T) {
	expected := relay.HashBytes([]byte("some entity"))

	actual, err := relay.HexStringToHash(expected.String())
	require.NoError(t, err)
	assert.Equal(t, expected, actual)

	_, err = relay.HexStringToHash("not hex at all")
	require.Error(t, err)

	_, err = relay.HexStringToHash("abcdef")
	require.Error(t, err)
}

func TestHashJSON(t *testing.T) {
	expected := relay.HashBytes([]byte("some entity"))

	data, err := json.Marshal(expected)
	require.NoError(t, err)
	assert.JSONEq(t, `"`+expected.String()+`"`, string(data))

	var actual relay.Hash
	require.NoError(t, json.Unmarshal(data, &actual))
	assert.Equal(t, expected, actual)
}

func TestZeroHash(t *testing.T) {
	assert.True(t, relay.ZeroHash.IsZero())
	assert.False(t, relay.HashBytes([]byte("x")).IsZero())
}
