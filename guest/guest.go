// Package guest models the zkVM guest boundary: inside a zero-knowledge
// proof, there is no caller left to hand a bool to, so an absent digest
// must fail the whole execution rather than return. This mirrors the
// original source's risc0 guest main, which panics on a nil verification
// result instead of committing one.
package guest

import (
	"github.com/cypher-laboratory/lsag-verifier-go/digest"
	"github.com/cypher-laboratory/lsag-verifier-go/lsag"
)

// MustVerify verifies b64Input and returns its canonical digest, panicking
// if the envelope is malformed or the signature does not verify. Use this
// only at a boundary — like a zkVM guest's entrypoint — where there is no
// caller to report failure to; every other caller should use
// lsag.VerifyBase64 and check its bool.
func MustVerify(b64Input string, variant digest.Variant) [32]byte {
	d, ok := lsag.VerifyBase64(b64Input, variant)
	if !ok {
		panic("guest: ring signature is not valid")
	}
	return d
}
