package partition_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborix/partkit/partition"
)

func TestMessageRoundTrip(t *testing.T) {
	m := partition.Message{SourceID: 42, Partition: 7, Signal: 3.5}
	buf, err := m.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, buf, partition.MessageSize)

	var decoded partition.Message
	require.NoError(t, decoded.UnmarshalBinary(buf))
	require.Equal(t, m, decoded)
}

func TestMessageUnmarshalShortBuffer(t *testing.T) {
	var m partition.Message
	err := m.UnmarshalBinary(make([]byte, partition.MessageSize-1))
	require.Error(t, err)
}

func TestMessageNegativeSourceIDRoundTrips(t *testing.T) {
	m := partition.Message{SourceID: -1, Partition: -1, Signal: 0}
	buf, err := m.MarshalBinary()
	require.NoError(t, err)

	var decoded partition.Message
	require.NoError(t, decoded.UnmarshalBinary(buf))
	require.Equal(t, m, decoded)
}
