package operation

import (
	"encoding/binary"
	"fmt"

	"github.com/onrelay/relay-go/model/relay"
)

const (

	// codes for per-para downward queue state
	codeQueueWindow = 10 // window of live slots per para
	codeMessage     = 11 // one message per live slot
	codeQueueHead   = 12 // chain head per para

	// codes for lifecycle state
	codeOutgoingPara = 20 // paras scheduled for offboarding
)

func makePrefix(code byte, keys ...interface{}) []byte {
	prefix := make([]byte, 1)
	prefix[0] = code
	for _, key := range keys {
		prefix = append(prefix, b(key)...)
	}
	return prefix
}

func b(v interface{}) []byte {
	switch i := v.(type) {
	case uint8:
		return []byte{i}
	case uint32:
		b := make([]byte, 4)
		binary.BigEndian.PutUint32(b, i)
		return b
	case uint64:
		b := make([]byte, 8)
		binary.BigEndian.PutUint64(b, i)
		return b
	case string:
		return []byte(i)
	case relay.ParaID:
		return b(uint32(i))
	case relay.BlockNumber:
		return b(uint64(i))
	case relay.Hash:
		return i[:]
	default:
		panic(fmt.Sprintf("unsupported type to convert (%T)", v))
	}
}

// paraFromKey parses the para out of a key of the form code|para|..., the
// shared layout of all per-para keyspaces.
func paraFromKey(key []byte) relay.ParaID {
	return relay.ParaID(binary.BigEndian.Uint32(key[1:5]))
}
