package ring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScalarFromHex_ToHex_RoundTrip(t *testing.T) {
	s, err := ScalarFromHex(scalarHex(777))
	require.NoError(t, err)
	require.Equal(t, scalarHex(777), ScalarToHex(s))
}

func TestScalarFromHex_RejectsWrongLength(t *testing.T) {
	_, err := ScalarFromHex("abcd")
	require.Error(t, err)
}

func TestScalarFromHex_RejectsNonHex(t *testing.T) {
	_, err := ScalarFromHex(strings.Repeat("zz", 32))
	require.Error(t, err)
}

func TestScalarFromHex_RejectsOutOfRange(t *testing.T) {
	// n, the secp256k1 group order: must be rejected, since valid scalars
	// are strictly less than n.
	const groupOrder = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"
	_, err := ScalarFromHex(groupOrder)
	require.Error(t, err)

	// n - 1 is the largest valid scalar and must be accepted.
	const orderMinusOne = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140"
	_, err = ScalarFromHex(orderMinusOne)
	require.NoError(t, err)
}
