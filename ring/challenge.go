package ring

import (
	"fmt"
	"math/big"

	secp256k1 "gitlab.com/yawning/secp256k1-voi"
)

// ChallengeParams bundles the per-step inputs to ComputeC. PreviousIndex
// selects the ring member the step pivots around; the other members enter
// a step only through the serialized ring in the hash transcript (only the
// running challenge and response thread state across steps).
type ChallengeParams struct {
	PreviousR       *secp256k1.Scalar
	PreviousC       *secp256k1.Scalar
	PreviousIndex   int
	KeyImage        *secp256k1.Point
	LinkabilityFlag string
}

// ComputeC recomputes the next challenge scalar in the LSAG ring walk. r
// and serializedRing describe the full ring; messageDigestHex is the
// lowercase hex SHA-256 of the signed message.
func ComputeC(r Ring, serializedRing, messageDigestHex string, params ChallengeParams) (*secp256k1.Scalar, error) {
	if params.PreviousIndex < 0 || params.PreviousIndex >= len(r) {
		return nil, fmt.Errorf("ring: previous index %d out of range for ring of length %d", params.PreviousIndex, len(r))
	}
	pivot := r[params.PreviousIndex]

	// P = G·previous_r + ring[previous_index]·previous_c
	p := new(secp256k1.Point).DoubleScalarMultBasepointVartime(params.PreviousR, params.PreviousC, pivot)

	pivotHex, err := SerializePoint(pivot)
	if err != nil {
		return nil, fmt.Errorf("ring: compute_c: %w", err)
	}

	mapped, err := HashToSecp256k1(pivotHex + params.LinkabilityFlag)
	if err != nil {
		return nil, fmt.Errorf("ring: compute_c: %w", err)
	}

	// Q = H·previous_r + key_image·previous_c
	hr := new(secp256k1.Point).ScalarMult(params.PreviousR, mapped)
	kc := new(secp256k1.Point).ScalarMult(params.PreviousC, params.KeyImage)
	q := new(secp256k1.Point).Add(hr, kc)

	pHex, err := SerializePoint(p)
	if err != nil {
		return nil, fmt.Errorf("ring: compute_c: %w", err)
	}
	qHex, err := SerializePoint(q)
	if err != nil {
		return nil, fmt.Errorf("ring: compute_c: %w", err)
	}

	decimalDigest, err := hexToDecimal(messageDigestHex)
	if err != nil {
		return nil, fmt.Errorf("ring: compute_c: %w", err)
	}

	hashContent := serializedRing + decimalDigest + pHex + qHex
	cNext, err := ScalarFromHex(sha256Hex(hashContent))
	if err != nil {
		return nil, fmt.Errorf("ring: compute_c: challenge hash out of range: %w", err)
	}

	return cNext, nil
}

// hexToDecimal converts a hex digest string to its canonical base-10
// representation: no leading zeros, no sign, no digit grouping. This is an
// intentional, legacy contract inherited from the original JavaScript
// signer: the hash transcript mixes hex for points and decimal for the
// message digest.
func hexToDecimal(h string) (string, error) {
	n, ok := new(big.Int).SetString(h, 16)
	if !ok {
		return "", fmt.Errorf("invalid hex digest %q", h)
	}
	return n.String(), nil
}
