// Package digest produces the canonical on-chain commitment of a verified
// LSAG signature: a 32-byte SHA-256 hash of an Ethereum ABI dynamic-tuple
// encoding of the signature's public material. A contract holding this
// digest can cheaply confirm "a signature over this exact ring, message,
// and key image was verified" without re-running the curve arithmetic
// itself.
package digest

import (
	"crypto/sha256"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	secp256k1 "gitlab.com/yawning/secp256k1-voi"

	"github.com/cypher-laboratory/lsag-verifier-go/ring"
)

// Variant selects which canonical encoding Compute uses. Minimal commits to
// each point by x-coordinate alone, matching the original signer's legacy
// digest. Full additionally commits to the y-coordinate, resolving the
// "use both x and y coordinate" open question the original left as a TODO.
type Variant int

const (
	// VariantMinimal commits to every point by x-coordinate only.
	VariantMinimal Variant = iota
	// VariantFull commits to every point by both coordinates.
	VariantFull
)

var (
	typeString, _     = abi.NewType("string", "", nil)
	typeUint256, _    = abi.NewType("uint256", "", nil)
	typeUint256Arr, _ = abi.NewType("uint256[]", "", nil)

	minimalArgs = abi.Arguments{
		{Type: typeString},
		{Type: typeString},
		{Type: typeUint256},
		{Type: typeUint256Arr},
	}

	pointTupleComponents = []abi.ArgumentMarshaling{
		{Name: "x", Type: "uint256"},
		{Name: "y", Type: "uint256"},
	}
)

func mustTupleType(components []abi.ArgumentMarshaling) abi.Type {
	t, err := abi.NewType("tuple", "", components)
	if err != nil {
		panic(fmt.Sprintf("digest: invalid tuple type: %v", err))
	}
	return t
}

func mustTupleArrayType(components []abi.ArgumentMarshaling) abi.Type {
	t, err := abi.NewType("tuple[]", "", components)
	if err != nil {
		panic(fmt.Sprintf("digest: invalid tuple[] type: %v", err))
	}
	return t
}

var (
	typePointTuple      = mustTupleType(pointTupleComponents)
	typePointTupleArray = mustTupleArrayType(pointTupleComponents)

	fullArgs = abi.Arguments{
		{Type: typeString},
		{Type: typeString},
		{Type: typePointTuple},
		{Type: typePointTupleArray},
	}
)

// pointXY mirrors the (x, y) tuple ABI shape; field names and order must
// match pointTupleComponents for go-ethereum's reflection-based packer.
type pointXY struct {
	X *big.Int
	Y *big.Int
}

// Compute produces the canonical digest of a signature's public material:
// the signed message, the linkability flag, the key image, and the full
// ring, in that order. variant selects whether points commit by x-coordinate
// alone or by both coordinates.
func Compute(variant Variant, r ring.Ring, message, linkabilityFlag string, keyImage *secp256k1.Point) ([32]byte, error) {
	switch variant {
	case VariantFull:
		return computeFull(r, message, linkabilityFlag, keyImage)
	default:
		return computeMinimal(r, message, linkabilityFlag, keyImage)
	}
}

// computeMinimal implements the original signer's abi_encode_minimal_lsag:
// ABI-encode (string message, string linkabilityFlag, uint256 keyImageX,
// uint256[] ringX), prefix the result with a single 32-byte word whose last
// byte is 0x20 (simulating a dynamic-bytes return-value wrapper), then
// SHA-256 the whole thing.
func computeMinimal(r ring.Ring, message, linkabilityFlag string, keyImage *secp256k1.Point) ([32]byte, error) {
	keyImageX, err := xCoordinateUint256(keyImage)
	if err != nil {
		return [32]byte{}, fmt.Errorf("digest: key image: %w", err)
	}

	ringX := make([]*big.Int, len(r))
	for i, p := range r {
		x, err := xCoordinateUint256(p)
		if err != nil {
			return [32]byte{}, fmt.Errorf("digest: ring member %d: %w", i, err)
		}
		ringX[i] = x
	}

	packed, err := minimalArgs.Pack(message, linkabilityFlag, keyImageX, ringX)
	if err != nil {
		return [32]byte{}, fmt.Errorf("digest: abi encode: %w", err)
	}

	return sha256Of(prependOffsetWord(packed)), nil
}

// computeFull is the (x, y) companion variant: the same shape as
// computeMinimal, but the key image and every ring member are encoded as
// (uint256 x, uint256 y) tuples instead of a bare x-coordinate.
func computeFull(r ring.Ring, message, linkabilityFlag string, keyImage *secp256k1.Point) ([32]byte, error) {
	keyImageXY, err := coordinatesXY(keyImage)
	if err != nil {
		return [32]byte{}, fmt.Errorf("digest: key image: %w", err)
	}

	ringXY := make([]pointXY, len(r))
	for i, p := range r {
		xy, err := coordinatesXY(p)
		if err != nil {
			return [32]byte{}, fmt.Errorf("digest: ring member %d: %w", i, err)
		}
		ringXY[i] = xy
	}

	packed, err := fullArgs.Pack(message, linkabilityFlag, keyImageXY, ringXY)
	if err != nil {
		return [32]byte{}, fmt.Errorf("digest: abi encode: %w", err)
	}

	return sha256Of(prependOffsetWord(packed)), nil
}

// prependOffsetWord prefixes packed with a 32-byte word whose last byte is
// 0x20, matching the original source's "set the offset" step.
func prependOffsetWord(packed []byte) []byte {
	out := make([]byte, 32+len(packed))
	out[31] = 0x20
	copy(out[32:], packed)
	return out
}

func sha256Of(b []byte) [32]byte {
	return sha256.Sum256(b)
}

func xCoordinateUint256(p *secp256k1.Point) (*big.Int, error) {
	x, err := ring.XCoordinate(p)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(x), nil
}

func coordinatesXY(p *secp256k1.Point) (pointXY, error) {
	x, y, err := ring.Coordinates(p)
	if err != nil {
		return pointXY{}, err
	}
	return pointXY{X: new(big.Int).SetBytes(x), Y: new(big.Int).SetBytes(y)}, nil
}
