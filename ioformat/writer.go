package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"sort"
)

// WriteAssignments writes the final partition output (spec §6):
// `<vertexId><delim><finalPartition>` one line per vertex, ordered by
// vertex ID for a deterministic byte-identical output across runs.
func WriteAssignments(w io.Writer, partitions map[int64]int16, delim string) error {
	ids := make([]int64, 0, len(partitions))
	for id := range partitions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	bw := bufio.NewWriter(w)
	for _, id := range ids {
		if _, err := fmt.Fprintf(bw, "%d%s%d\n", id, delim, partitions[id]); err != nil {
			return err
		}
	}
	return bw.Flush()
}
