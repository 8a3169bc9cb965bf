package ring

import (
	"crypto/sha256"
	"encoding/hex"
)

// sha256Hex returns the lowercase hex SHA-256 digest of s's UTF-8 bytes.
func sha256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// MessageDigestHex returns the message digest ComputeC and Verify consume:
// the lowercase hex SHA-256 of the UTF-8 message bytes.
func MessageDigestHex(message string) string {
	return sha256Hex(message)
}
