package ring

import (
	"crypto/sha256"
	"fmt"

	secp256k1 "gitlab.com/yawning/secp256k1-voi"
)

// hashToCurveDST is the domain separation tag for the
// secp256k1_XMD:SHA-256_SSWU_RO_ suite (RFC 9380 §8.7).
const hashToCurveDST = "secp256k1_XMD:SHA-256_SSWU_RO_"

// hashToFieldL is the number of pseudo-random bytes hashed into each of the
// two field elements consumed by the random-oracle (_RO_) construction:
// ceil((ceil(log2(p)) + k) / 8) = ceil((256 + 128) / 8) = 48 for secp256k1's
// 128-bit target security level.
const hashToFieldL = 48

// hashToFieldCount is 2 for the random-oracle variant (map_to_curve is
// applied to two independent field elements and the results are added).
const hashToFieldCount = 2

// HashToSecp256k1 maps an arbitrary UTF-8 string to a secp256k1 point via
// RFC 9380's hash_to_curve, instantiated with expand_message_xmd(SHA-256)
// and the simplified-SWU map with 3-isogeny, as specified by the
// secp256k1_XMD:SHA-256_SSWU_RO_ suite. Failure is a hard error; there is no
// adversarial input that fails "softly" here, since expand_message_xmd is
// defined for every input length this verifier can observe.
func HashToSecp256k1(msg string) (*secp256k1.Point, error) {
	uniform, err := expandMessageXMD([]byte(msg), []byte(hashToCurveDST), hashToFieldL*hashToFieldCount)
	if err != nil {
		return nil, fmt.Errorf("ring: hash_to_curve: %w", err)
	}

	q0 := new(secp256k1.Point).SetUniformBytes(uniform[:hashToFieldL])
	q1 := new(secp256k1.Point).SetUniformBytes(uniform[hashToFieldL:])

	return new(secp256k1.Point).Add(q0, q1), nil
}

// expandMessageXMD implements expand_message_xmd from RFC 9380 §5.3.1,
// using SHA-256 as the underlying hash (b_in_bytes = 32, r_in_bytes = 64).
func expandMessageXMD(msg, dst []byte, lenInBytes int) ([]byte, error) {
	const bInBytes = sha256.Size // 32
	const rInBytes = sha256.BlockSize // 64

	if len(dst) > 255 {
		return nil, fmt.Errorf("expand_message_xmd: DST too long (%d bytes)", len(dst))
	}

	ell := (lenInBytes + bInBytes - 1) / bInBytes
	if ell > 255 {
		return nil, fmt.Errorf("expand_message_xmd: requested output too large (%d bytes)", lenInBytes)
	}

	// DST_prime = DST || I2OSP(len(DST), 1)
	dstPrime := append(append([]byte{}, dst...), byte(len(dst)))

	// msg_prime = Z_pad || msg || l_i_b_str || I2OSP(0, 1) || DST_prime
	zPad := make([]byte, rInBytes)
	libStr := []byte{byte(lenInBytes >> 8), byte(lenInBytes)}

	h := sha256.New()
	h.Write(zPad)
	h.Write(msg)
	h.Write(libStr)
	h.Write([]byte{0})
	h.Write(dstPrime)
	b0 := h.Sum(nil)

	h.Reset()
	h.Write(b0)
	h.Write([]byte{1})
	h.Write(dstPrime)
	bPrev := h.Sum(nil)

	uniform := make([]byte, 0, ell*bInBytes)
	uniform = append(uniform, bPrev...)

	for i := 2; i <= ell; i++ {
		xored := make([]byte, bInBytes)
		for j := range xored {
			xored[j] = b0[j] ^ bPrev[j]
		}

		h.Reset()
		h.Write(xored)
		h.Write([]byte{byte(i)})
		h.Write(dstPrime)
		bPrev = h.Sum(nil)

		uniform = append(uniform, bPrev...)
	}

	return uniform[:lenInBytes], nil
}
