package ring

import (
	"fmt"

	secp256k1 "gitlab.com/yawning/secp256k1-voi"
)

// scalarHex renders a small non-negative integer as a 64-character scalar
// hex string, purely to build deterministic test fixtures below.
func scalarHex(n uint64) string {
	return fmt.Sprintf("%064x", n)
}

func mustScalar(n uint64) *secp256k1.Scalar {
	s, err := ScalarFromHex(scalarHex(n))
	if err != nil {
		panic(err)
	}
	return s
}

func pubkeyFromScalar(x *secp256k1.Scalar) *secp256k1.Point {
	return new(secp256k1.Point).ScalarBaseMult(x)
}

// buildValidSignature constructs an LSAG ring signature that Verify accepts,
// using the package's own ComputeC/HashToSecp256k1 so the fixture is valid
// by the algorithm's own cyclic-closure property rather than by a
// precomputed external vector: the signer sits at the last ring index,
// decoy responses for every other index are arbitrary, and the final
// response is solved for so the walk closes back to c0.
//
// decoyScalars supplies one private scalar per non-signer ring member,
// purely to derive an arbitrary-but-valid public key for that slot.
func buildValidSignature(message, flag string, signerX uint64, nonce uint64, decoyScalars []uint64, decoyResponses []uint64) (r Ring, c0 *secp256k1.Scalar, responses []*secp256k1.Scalar, keyImage *secp256k1.Point, err error) {
	m := len(decoyScalars) + 1
	if len(decoyResponses) != m-1 {
		return nil, nil, nil, nil, fmt.Errorf("need %d decoy responses, got %d", m-1, len(decoyResponses))
	}

	x := mustScalar(signerX)
	k := mustScalar(nonce)

	r = make(Ring, m)
	for i, ds := range decoyScalars {
		r[i] = pubkeyFromScalar(mustScalar(ds))
	}
	signerIndex := m - 1
	r[signerIndex] = pubkeyFromScalar(x)

	serializedRing, err := r.Serialize()
	if err != nil {
		return nil, nil, nil, nil, err
	}
	messageDigest := MessageDigestHex(message)

	signerPivotHex, err := SerializePoint(r[signerIndex])
	if err != nil {
		return nil, nil, nil, nil, err
	}
	mappedSigner, err := HashToSecp256k1(signerPivotHex + flag)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	keyImage = new(secp256k1.Point).ScalarMult(x, mappedSigner)

	pInit := new(secp256k1.Point).ScalarBaseMult(k)
	qInit := new(secp256k1.Point).ScalarMult(k, mappedSigner)
	pInitHex, err := SerializePoint(pInit)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	qInitHex, err := SerializePoint(qInit)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	decimalDigest, err := hexToDecimal(messageDigest)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	c0, err = ScalarFromHex(sha256Hex(serializedRing + decimalDigest + pInitHex + qInitHex))
	if err != nil {
		return nil, nil, nil, nil, err
	}

	responses = make([]*secp256k1.Scalar, m)
	lastC := c0
	for i := 0; i < signerIndex; i++ {
		responses[i] = mustScalar(decoyResponses[i])
		next, err := ComputeC(r, serializedRing, messageDigest, ChallengeParams{
			PreviousR:       responses[i],
			PreviousC:       lastC,
			PreviousIndex:   i,
			KeyImage:        keyImage,
			LinkabilityFlag: flag,
		})
		if err != nil {
			return nil, nil, nil, nil, err
		}
		lastC = next
	}

	// r_signer = k - x * c_{signerIndex} mod n, closing the loop: the
	// verifier's step at signerIndex recomputes P = G*r_signer +
	// ring[signerIndex]*lastC = G*(k - x*lastC) + x*G*lastC = G*k = pInit,
	// and likewise for Q, so it reproduces c0 exactly.
	xc := new(secp256k1.Scalar).Multiply(x, lastC)
	responses[signerIndex] = new(secp256k1.Scalar).Subtract(k, xc)

	return r, c0, responses, keyImage, nil
}
