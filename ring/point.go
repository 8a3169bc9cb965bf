package ring

import (
	"encoding/hex"
	"fmt"

	secp256k1 "gitlab.com/yawning/secp256k1-voi"
)

// compressedHexSize is the length, in hex characters, of a SEC 1
// compressed point (33 bytes: 1 prefix byte + 32-byte x-coordinate).
const compressedHexSize = secp256k1.CompressedPointSize * 2

// SerializePoint renders a point as its SEC 1 compressed encoding: a
// "02"/"03" prefix (even/odd y) followed by the 64-char, zero-padded
// big-endian x-coordinate. Fails only if p is the identity point, which
// has no compressed encoding.
func SerializePoint(p *secp256k1.Point) (string, error) {
	if p.IsIdentity() == 1 {
		return "", fmt.Errorf("ring: cannot serialize the identity point")
	}
	return hex.EncodeToString(p.CompressedBytes()), nil
}

// DeserializePoint parses a SEC 1 compressed point from a 66-character hex
// string, failing if the string is the wrong length, not hex, or does not
// decompress to a point on the curve.
func DeserializePoint(s string) (*secp256k1.Point, error) {
	if len(s) != compressedHexSize {
		return nil, fmt.Errorf("ring: point hex must be %d characters, got %d", compressedHexSize, len(s))
	}

	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("ring: invalid point hex: %w", err)
	}

	if raw[0] != 0x02 && raw[0] != 0x03 {
		return nil, fmt.Errorf("ring: point hex must use a compressed (02/03) prefix")
	}

	p, err := secp256k1.NewPointFromBytes(raw)
	if err != nil {
		return nil, fmt.Errorf("ring: failed to decompress point: %w", err)
	}

	return p, nil
}

// XCoordinate returns the 32-byte big-endian x-coordinate of p, which is
// just the tail of its compressed encoding. Used by the "minimal" canonical
// digest variant (digest.VariantMinimal), which commits to ring members and the
// key image by x-coordinate alone.
func XCoordinate(p *secp256k1.Point) ([]byte, error) {
	if p.IsIdentity() == 1 {
		return nil, fmt.Errorf("ring: identity point has no x-coordinate")
	}
	return p.CompressedBytes()[1:], nil
}
