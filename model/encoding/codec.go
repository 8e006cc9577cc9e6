package encoding

// Marshaler marshals and unmarshals values to and from bytes. Implementations
// must be deterministic: marshaling the same value twice yields the same
// bytes, so that hashes over the output are stable.
type Marshaler interface {
	// Marshal encodes a value as bytes.
	//
	// This function returns an error if the value type is not supported.
	Marshal(interface{}) ([]byte, error)

	// Unmarshal decodes bytes into a value.
	//
	// This function returns an error if the bytes do not fit the provided value type.
	Unmarshal([]byte, interface{}) error

	// MustMarshal encodes a value as bytes.
	//
	// This function panics if encoding fails.
	MustMarshal(interface{}) []byte

	// MustUnmarshal decodes bytes into a value.
	//
	// This function panics if decoding fails.
	MustUnmarshal([]byte, interface{})
}
