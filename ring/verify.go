package ring

import (
	secp256k1 "gitlab.com/yawning/secp256k1-voi"
)

// Verify checks an LSAG ring signature: it walks the ring once, ascending
// from index 0, recomputing the challenge at each step, and accepts iff
// the walk closes back to c0. Any internal failure — a bad point, an
// out-of-range scalar, a failed hash-to-curve call, or a ring/response
// length mismatch — is reported as rejection, never a panic.
func Verify(r Ring, message string, c0 *secp256k1.Scalar, responses []*secp256k1.Scalar, keyImage *secp256k1.Point, linkabilityFlag string) bool {
	if len(r) != len(responses) {
		return false
	}

	messageDigest := MessageDigestHex(message)

	serializedRing, err := r.Serialize()
	if err != nil {
		return false
	}

	lastC := c0
	for i, resp := range responses {
		next, err := ComputeC(r, serializedRing, messageDigest, ChallengeParams{
			PreviousR:       resp,
			PreviousC:       lastC,
			PreviousIndex:   i,
			KeyImage:        keyImage,
			LinkabilityFlag: linkabilityFlag,
		})
		if err != nil {
			return false
		}
		lastC = next
	}

	return lastC.Equal(c0) == 1
}
