package fingerprint

import (
	"github.com/onrelay/relay-go/model/encoding/rlp"
)

// Fingerprinter is implemented by entities that define their own canonical
// byte representation, overriding the default encoding.
type Fingerprinter interface {
	Fingerprint() []byte
}

// Fingerprint returns a canonical byte representation of the given entity.
// Two entities are identical exactly when their fingerprints are identical,
// which makes the fingerprint the input of choice for hashing.
func Fingerprint(entity interface{}) []byte {
	if fingerprinter, ok := entity.(Fingerprinter); ok {
		return fingerprinter.Fingerprint()
	}

	return rlp.NewMarshaler().MustMarshal(entity)
}
