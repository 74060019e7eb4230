package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "partkit",
	Short: "Edge-balanced k-way graph partitioning via label propagation + learning automata",
	Long: `partkit partitions a large directed graph into k roughly capacity-balanced
partitions, maximizing edge locality, by alternating score-and-propose and
admission/migration supersteps over a bulk-synchronous vertex program.`,
}

func init() {
	rootCmd.AddCommand(newRunCmd())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
