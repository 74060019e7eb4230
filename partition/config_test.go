package partition_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborix/partkit/partition"
)

func TestDefaultConfigValidates(t *testing.T) {
	c := partition.DefaultConfig()
	require.NoError(t, c.Validate())
	require.Equal(t, 32, c.K())
}

func TestNewConfigAppliesOptions(t *testing.T) {
	c, err := partition.NewConfig(
		partition.WithNumberOfPartitions(8),
		partition.WithRepartition(2),
		partition.WithRates(0.9, 0.1),
	)
	require.NoError(t, err)
	require.Equal(t, 10, c.K())
	require.Equal(t, 0.9, c.Alpha)
	require.Equal(t, 0.1, c.Beta)
}

func TestNewConfigRejectsInvalidPartitionCount(t *testing.T) {
	_, err := partition.NewConfig(partition.WithNumberOfPartitions(0))
	require.ErrorIs(t, err, partition.ErrInvalidPartitionCount)
}

func TestNewConfigRejectsRescaleBelowOne(t *testing.T) {
	_, err := partition.NewConfig(
		partition.WithNumberOfPartitions(4),
		partition.WithRepartition(-4),
	)
	require.ErrorIs(t, err, partition.ErrInvalidRescale)
}

func TestNewConfigRejectsOutOfRangeRate(t *testing.T) {
	_, err := partition.NewConfig(partition.WithRates(1.5, 0))
	require.ErrorIs(t, err, partition.ErrInvalidRate)
}

func TestNewConfigRejectsNonPositiveMaxIterations(t *testing.T) {
	_, err := partition.NewConfig(partition.WithMaxIterations(0))
	require.ErrorIs(t, err, partition.ErrInvalidMaxIterations)
}
