package ioformat_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborix/partkit/ioformat"
)

func TestWriteAssignmentsOrdersByVertexID(t *testing.T) {
	partitions := map[int64]int16{3: 1, 1: 0, 2: 2}
	var buf bytes.Buffer
	require.NoError(t, ioformat.WriteAssignments(&buf, partitions, " "))
	require.Equal(t, "1 0\n2 2\n3 1\n", buf.String())
}

func TestWriteAssignmentsUsesConfiguredDelimiter(t *testing.T) {
	partitions := map[int64]int16{1: 0}
	var buf bytes.Buffer
	require.NoError(t, ioformat.WriteAssignments(&buf, partitions, "\t"))
	require.Equal(t, "1\t0\n", buf.String())
}
