package ring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRingSerialize_DeserializeRing_RoundTrip(t *testing.T) {
	r := Ring{
		pubkeyFromScalar(mustScalar(1)),
		pubkeyFromScalar(mustScalar(2)),
		pubkeyFromScalar(mustScalar(3)),
	}

	serialized, err := r.Serialize()
	require.NoError(t, err)
	require.Len(t, serialized, compressedHexSize*len(r))

	hexMembers := make([]string, len(r))
	for i, p := range r {
		h, err := SerializePoint(p)
		require.NoError(t, err)
		hexMembers[i] = h
	}

	deserialized, err := DeserializeRing(hexMembers)
	require.NoError(t, err)
	require.Len(t, deserialized, len(r))
	for i := range r {
		require.EqualValues(t, 1, deserialized[i].Equal(r[i]))
	}
}

func TestDeserializeRing_RejectsBadMember(t *testing.T) {
	_, err := DeserializeRing([]string{"not-a-point"})
	require.Error(t, err)
}

func TestRingSerialize_Empty(t *testing.T) {
	var r Ring
	serialized, err := r.Serialize()
	require.NoError(t, err)
	require.Equal(t, "", serialized)
}
