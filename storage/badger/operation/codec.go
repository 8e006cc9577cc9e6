package operation

import (
	"fmt"

	"github.com/golang/snappy"
	"github.com/vmihailenco/msgpack/v4"
)

// encodeEntity encodes the given entity using msgpack and compresses the
// result with snappy.
func encodeEntity(entity interface{}) ([]byte, error) {
	val, err := msgpack.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("could not encode entity: %w", err)
	}
	return snappy.Encode(nil, val), nil
}

// decodeValue decodes a stored value into the given entity, reversing
// encodeEntity.
func decodeValue(val []byte, entity interface{}) error {
	uncompressed, err := snappy.Decode(nil, val)
	if err != nil {
		return fmt.Errorf("could not uncompress value: %w", err)
	}
	err = msgpack.Unmarshal(uncompressed, entity)
	if err != nil {
		return fmt.Errorf("could not decode entity: %w", err)
	}
	return nil
}
