package ioformat_test

import (
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"

	"github.com/arborix/partkit/ioformat"
)

func TestParseVerticesDefaultsMissingPriorToFreshInit(t *testing.T) {
	in := "1\n2\x013\n3\t4\n4 -1\n"
	priors, err := ioformat.ParseVertices(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, int16(-1), priors[1])
	require.Equal(t, int16(3), priors[2])
	require.Equal(t, int16(4), priors[3])
	require.Equal(t, int16(-1), priors[4])
}

func TestParseVerticesCollectsEveryMalformedLine(t *testing.T) {
	in := "1 0\nnotanumber 2\n3\nbad\x015\n"
	priors, err := ioformat.ParseVertices(strings.NewReader(in))
	require.Error(t, err)

	merr, ok := err.(*multierror.Error)
	require.True(t, ok, "expected a *multierror.Error aggregate")
	require.Len(t, merr.Errors, 2)

	require.Equal(t, int16(0), priors[1])
	require.Equal(t, int16(-1), priors[3])
}

func TestParseVerticesSkipsBlankLines(t *testing.T) {
	in := "1\n\n   \n2\n"
	priors, err := ioformat.ParseVertices(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, priors, 2)
}
