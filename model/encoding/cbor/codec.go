package cbor

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/onrelay/relay-go/model/encoding"
)

var _ encoding.Marshaler = (*Marshaler)(nil)

// EncMode is the CBOR encoding mode used for all serialization. Core
// deterministic encoding keeps snapshot exports byte-stable across runs.
var EncMode = func() cbor.EncMode {
	options := cbor.CoreDetEncOptions()
	mode, err := options.EncMode()
	if err != nil {
		panic(fmt.Errorf("could not create cbor encoding mode: %w", err))
	}
	return mode
}()

// Marshaler marshals values with deterministic CBOR. It is used for
// interchange surfaces, such as snapshot exports, where a self-describing
// encoding is preferred over the internal storage codec.
type Marshaler struct{}

func NewMarshaler() *Marshaler {
	return &Marshaler{}
}

func (m *Marshaler) Marshal(val interface{}) ([]byte, error) {
	return EncMode.Marshal(val)
}

func (m *Marshaler) Unmarshal(b []byte, val interface{}) error {
	return cbor.Unmarshal(b, val)
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
