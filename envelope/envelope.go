// Package envelope decodes the base64/JSON transport framing around an
// LSAG signature into the typed inputs ring.Verify and digest.Compute
// consume. Decoding never panics: every malformed envelope surfaces as an
// error, which the caller (lsag.VerifyBase64) maps to an absent digest.
package envelope

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	secp256k1 "gitlab.com/yawning/secp256k1-voi"

	"github.com/cypher-laboratory/lsag-verifier-go/ring"
)

// wireSignature mirrors the original source's StringifiedLsag: exactly the
// message, ring, c, responses, keyImage, and linkabilityFlag fields. Extra
// fields the producer includes (the original source's own test fixtures
// carry "curve", "config", and "evmWitnesses") are ignored by
// encoding/json's default unmarshal behavior.
type wireSignature struct {
	Message         string   `json:"message"`
	Ring            []string `json:"ring"`
	C               string   `json:"c"`
	Responses       []string `json:"responses"`
	KeyImage        string   `json:"keyImage"`
	LinkabilityFlag string   `json:"linkabilityFlag"`
}

// Signature is the decoded, still string-typed envelope. Curve types are
// derived lazily by Decoded(), so a caller that only needs to inspect or
// re-log the envelope never pays for point/scalar parsing.
type Signature struct {
	wire wireSignature
}

// Message returns the signed message exactly as transported.
func (s *Signature) Message() string { return s.wire.Message }

// LinkabilityFlag returns the linkability flag, or the empty string if the
// producer omitted it; the two are treated as equivalent throughout.
func (s *Signature) LinkabilityFlag() string { return s.wire.LinkabilityFlag }

// Decode base64-decodes b64 (standard alphabet, padded), interprets the
// result as UTF-8, and parses it as the fixed-field signature envelope.
func Decode(b64 string) (*Signature, error) {
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, fmt.Errorf("envelope: invalid base64: %w", err)
	}

	var wire wireSignature
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("envelope: invalid JSON: %w", err)
	}

	return &Signature{wire: wire}, nil
}

// Decoded is the fully curve-typed form of the envelope, ready to hand to
// ring.Verify and digest.Compute.
type Decoded struct {
	Ring            ring.Ring
	Message         string
	C               *secp256k1.Scalar
	Responses       []*secp256k1.Scalar
	KeyImage        *secp256k1.Point
	LinkabilityFlag string
}

// Decoded parses every string field into its curve type. The ring and
// responses must be the same length; that is checked here so a mismatch
// surfaces as a decode error rather than being silently carried into
// Verify, even though Verify itself also guards against it.
func (s *Signature) Decoded() (*Decoded, error) {
	if len(s.wire.Ring) != len(s.wire.Responses) {
		return nil, fmt.Errorf("envelope: ring has %d members but there are %d responses", len(s.wire.Ring), len(s.wire.Responses))
	}

	r, err := ring.DeserializeRing(s.wire.Ring)
	if err != nil {
		return nil, fmt.Errorf("envelope: %w", err)
	}

	keyImage, err := ring.DeserializePoint(s.wire.KeyImage)
	if err != nil {
		return nil, fmt.Errorf("envelope: invalid keyImage: %w", err)
	}

	c, err := ring.ScalarFromHex(s.wire.C)
	if err != nil {
		return nil, fmt.Errorf("envelope: invalid c: %w", err)
	}

	responses := make([]*secp256k1.Scalar, len(s.wire.Responses))
	for i, hexResp := range s.wire.Responses {
		scalar, err := ring.ScalarFromHex(hexResp)
		if err != nil {
			return nil, fmt.Errorf("envelope: invalid response %d: %w", i, err)
		}
		responses[i] = scalar
	}

	return &Decoded{
		Ring:            r,
		Message:         s.wire.Message,
		C:               c,
		Responses:       responses,
		KeyImage:        keyImage,
		LinkabilityFlag: s.wire.LinkabilityFlag,
	}, nil
}
