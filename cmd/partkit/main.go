// Command partkit runs the edge-balanced k-way graph partitioning engine
// against text edge/vertex input files.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
