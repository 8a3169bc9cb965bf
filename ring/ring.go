package ring

import (
	"fmt"
	"strings"

	secp256k1 "gitlab.com/yawning/secp256k1-voi"
)

// Ring is an ordered, non-deduplicated sequence of public keys. Order is
// semantically significant: it is not sorted or canonicalized in any way
// before serialization.
type Ring []*secp256k1.Point

// Serialize concatenates the compressed-hex encoding of every member, in
// order, with no separator. This is the exact byte string that feeds the
// challenge-recompute hash transcript, so its determinism across
// implementations is load-bearing.
func (r Ring) Serialize() (string, error) {
	var b strings.Builder
	b.Grow(len(r) * compressedHexSize)

	for i, p := range r {
		s, err := SerializePoint(p)
		if err != nil {
			return "", fmt.Errorf("ring: failed to serialize ring member %d: %w", i, err)
		}
		b.WriteString(s)
	}

	return b.String(), nil
}

// DeserializeRing parses a sequence of compressed-hex point strings (not a
// single concatenated blob) into a Ring, preserving order.
func DeserializeRing(hexPoints []string) (Ring, error) {
	r := make(Ring, len(hexPoints))
	for i, s := range hexPoints {
		p, err := DeserializePoint(s)
		if err != nil {
			return nil, fmt.Errorf("ring: failed to deserialize ring member %d: %w", i, err)
		}
		r[i] = p
	}
	return r, nil
}
