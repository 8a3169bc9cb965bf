// Package ring implements the secp256k1 curve primitives and the LSAG
// ring-walk: scalar and point codecs, hash-to-curve, ring serialization,
// challenge recomputation, and the verifier itself. Everything here is
// pure: no I/O, no wall clock, safe to call concurrently on independent
// inputs.
package ring

import (
	"encoding/hex"
	"fmt"

	secp256k1 "gitlab.com/yawning/secp256k1-voi"
)

// ScalarFromHex parses a 64-character, case-insensitive hex string into a
// secp256k1 scalar. It fails if the string is not exactly 64 hex characters,
// or if the decoded value is not strictly less than the group order n.
func ScalarFromHex(s string) (*secp256k1.Scalar, error) {
	if len(s) != secp256k1.ScalarSize*2 {
		return nil, fmt.Errorf("ring: scalar hex must be %d characters, got %d", secp256k1.ScalarSize*2, len(s))
	}

	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("ring: invalid scalar hex: %w", err)
	}

	var buf [secp256k1.ScalarSize]byte
	copy(buf[:], raw)

	scalar, err := secp256k1.NewScalarFromCanonicalBytes(&buf)
	if err != nil {
		return nil, fmt.Errorf("ring: scalar out of range: %w", err)
	}

	return scalar, nil
}

// ScalarToHex renders a scalar as 64 lowercase hex characters, big-endian.
func ScalarToHex(s *secp256k1.Scalar) string {
	return hex.EncodeToString(s.Bytes())
}
