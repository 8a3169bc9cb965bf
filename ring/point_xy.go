package ring

import (
	"fmt"

	secp256k1 "gitlab.com/yawning/secp256k1-voi"
)

// Coordinates returns the 32-byte big-endian (x, y) affine coordinates of
// p. Used by the "full" canonical digest variant (digest.VariantFull), which
// encodes both coordinates instead of x alone.
func Coordinates(p *secp256k1.Point) (x, y []byte, err error) {
	if p.IsIdentity() == 1 {
		return nil, nil, fmt.Errorf("ring: identity point has no affine coordinates")
	}
	uncompressed := p.UncompressedBytes()
	return uncompressed[1:33], uncompressed[33:65], nil
}
