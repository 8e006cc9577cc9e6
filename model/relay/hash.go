package relay

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"github.com/onrelay/relay-go/model/fingerprint"
)

// HashLen is the byte length of a Hash.
const HashLen = 32

// Hash is a blake2b-256 digest committing to the canonical encoding of an
// entity. The zero hash doubles as the genesis head of a message queue chain.
type Hash [HashLen]byte

// ZeroHash is the zero value of Hash, the head of a chain no message was ever
// folded into.
var ZeroHash = Hash{}

// MakeHash hashes the canonical fingerprint of the given entity.
func MakeHash(entity interface{}) Hash {
	data := fingerprint.Fingerprint(entity)
	return HashBytes(data)
}

// HashBytes hashes raw bytes.
func HashBytes(data []byte) Hash {
	return blake2b.Sum256(data)
}

// HashFromBytes converts a byte slice to a Hash. It returns an error if the
// slice is not exactly HashLen bytes long.
func HashFromBytes(b []byte) (Hash, error) {
	var h Hash
	if len(b) != HashLen {
		return h, fmt.Errorf("invalid hash length: expected %d, got %d", HashLen, len(b))
	}
	copy(h[:], b)
	return h, nil
}

// HexStringToHash converts a hex string to a Hash.
func HexStringToHash(hexString string) (Hash, error) {
	b, err := hex.DecodeString(hexString)
	if err != nil {
		return ZeroHash, fmt.Errorf("could not decode hex string: %w", err)
	}
	return HashFromBytes(b)
}

func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// IsZero returns true for the genesis head.
func (h Hash) IsZero() bool {
	return h == ZeroHash
}

func (h Hash) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", h.String())), nil
}

func (h *Hash) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("invalid hash json: %s", string(data))
	}
	dec, err := HexStringToHash(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*h = dec
	return nil
}
