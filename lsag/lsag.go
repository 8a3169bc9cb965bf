// Package lsag is the top-level entry point of the verifier: it wires the
// envelope, ring, and digest packages together into the single call a
// host program or zkVM guest makes.
package lsag

import (
	"github.com/cypher-laboratory/lsag-verifier-go/digest"
	"github.com/cypher-laboratory/lsag-verifier-go/envelope"
	"github.com/cypher-laboratory/lsag-verifier-go/ring"
)

// VerifyBase64 decodes b64Input as an LSAG signature envelope, verifies the
// ring signature it describes, and — only if verification succeeds —
// computes its canonical digest under variant. The returned bool reports
// whether a digest is present: it is false both when the envelope is
// malformed and when it is well-formed but the signature does not verify,
// so a caller never needs to distinguish the two failure modes.
func VerifyBase64(b64Input string, variant digest.Variant) ([32]byte, bool) {
	decoded, ok := decode(b64Input)
	if !ok {
		return [32]byte{}, false
	}

	if !ring.Verify(decoded.Ring, decoded.Message, decoded.C, decoded.Responses, decoded.KeyImage, decoded.LinkabilityFlag) {
		return [32]byte{}, false
	}

	d, err := digest.Compute(variant, decoded.Ring, decoded.Message, decoded.LinkabilityFlag, decoded.KeyImage)
	if err != nil {
		return [32]byte{}, false
	}

	return d, true
}

func decode(b64Input string) (*envelope.Decoded, bool) {
	sig, err := envelope.Decode(b64Input)
	if err != nil {
		return nil, false
	}

	decoded, err := sig.Decoded()
	if err != nil {
		return nil, false
	}

	return decoded, true
}
