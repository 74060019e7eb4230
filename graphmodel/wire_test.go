package graphmodel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborix/partkit/graphmodel"
)

func TestEdgeValueRoundTrip(t *testing.T) {
	cases := []graphmodel.EdgeValue{
		{Partition: 0, Weight: 1},
		{Partition: -1, Weight: 0},
		{Partition: 32767, Weight: 127},
		{Partition: -32768, Weight: -128},
	}
	for _, want := range cases {
		buf, err := want.MarshalBinary()
		require.NoError(t, err)
		require.Len(t, buf, graphmodel.EdgeValueSize)

		var got graphmodel.EdgeValue
		require.NoError(t, got.UnmarshalBinary(buf))
		require.Equal(t, want, got)
	}
}

func TestEdgeValueUnmarshalShortBuffer(t *testing.T) {
	var v graphmodel.EdgeValue
	err := v.UnmarshalBinary([]byte{1, 2})
	require.ErrorIs(t, err, graphmodel.ErrShortBuffer)
}

func TestVertexValueRoundTrip(t *testing.T) {
	cases := []graphmodel.VertexValue{
		{ID: 0, Partition: -1},
		{ID: 42, Partition: 7},
		{ID: -1, Partition: 32767},
	}
	for _, want := range cases {
		buf, err := want.MarshalBinary()
		require.NoError(t, err)
		require.Len(t, buf, graphmodel.VertexValueSize)

		var got graphmodel.VertexValue
		require.NoError(t, got.UnmarshalBinary(buf))
		require.Equal(t, want, got)
	}
}

func TestVertexValueUnmarshalShortBuffer(t *testing.T) {
	var v graphmodel.VertexValue
	err := v.UnmarshalBinary(make([]byte, graphmodel.VertexValueSize-1))
	require.ErrorIs(t, err, graphmodel.ErrVertexValueShortBuffer)
}
