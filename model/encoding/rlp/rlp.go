package rlp

import (
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/onrelay/relay-go/model/encoding"
)

var _ encoding.Marshaler = (*Marshaler)(nil)

// Marshaler marshals values with RLP, the canonical encoding used for
// fingerprinting entities before hashing.
type Marshaler struct{}

func NewMarshaler() *Marshaler {
	return &Marshaler{}
}

func (m *Marshaler) Marshal(val interface{}) ([]byte, error) {
	return rlp.EncodeToBytes(val)
}

func (m *Marshaler) Unmarshal(b []byte, val interface{}) error {
	return rlp.DecodeBytes(b, val)
}

func (m *Marshaler) MustMarshal(val interface{}) []byte {
	b, err := m.Marshal(val)
	if err != nil {
		panic(fmt.Errorf("could not marshal value: %w", err))
	}
	return b
}

func (m *Marshaler) MustUnmarshal(b []byte, val interface{}) {
	err := m.Unmarshal(b, val)
	if err != nil {
		panic(fmt.Errorf("could not unmarshal value: %w", err))
	}
}
