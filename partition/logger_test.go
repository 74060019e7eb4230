package partition_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborix/partkit/graphmodel"
	"github.com/arborix/partkit/partition"
)

type recordingLogger struct {
	infos []string
}

func (r *recordingLogger) Debugf(string, ...interface{}) {}
func (r *recordingLogger) Infof(format string, args ...interface{}) {
	r.infos = append(r.infos, format)
}
func (r *recordingLogger) Warnf(string, ...interface{}) {}

func TestCoordinatorLogsThroughSuppliedLogger(t *testing.T) {
	g := ringGraph(t, 4)
	cfg, err := partition.NewConfig(partition.WithNumberOfPartitions(2), partition.WithMaxIterations(5))
	require.NoError(t, err)

	rl := &recordingLogger{}
	co, err := partition.NewCoordinator(g, cfg, 3, partition.WithLogger(rl))
	require.NoError(t, err)

	_, err = co.Run(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, rl.infos)
}

func TestCoordinatorDefaultsToSilentLogger(t *testing.T) {
	g := graphmodel.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 1))
	cfg, err := partition.NewConfig(partition.WithNumberOfPartitions(2), partition.WithMaxIterations(3))
	require.NoError(t, err)

	_, err = partition.NewCoordinator(g, cfg, 1)
	require.NoError(t, err, "no Logger option must not panic on the default noop logger")
}
