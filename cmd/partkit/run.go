package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/arborix/partkit/graphmodel"
	"github.com/arborix/partkit/ioformat"
	"github.com/arborix/partkit/partition"
)

func newRunCmd() *cobra.Command {
	var (
		edgesPath    string
		verticesPath string
		outputPath   string
		configPath   string
		delim        string
		seed         int64
		partitions   int
		debug        bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Partition a graph read from edge/vertex input files",
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := uuid.New()
			logger := partition.NewStdLogger(debug)
			logger.Infof("run %s starting", runID)

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if partitions > 0 {
				cfg.NumberOfPartitions = partitions
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("partkit: invalid config: %w", err)
			}

			g := graphmodel.NewGraph()
			if err := loadEdges(g, edgesPath, cfg.EdgeWeight, logger); err != nil {
				return err
			}

			priors, err := loadPriors(verticesPath, logger)
			if err != nil {
				return err
			}

			opts := []partition.CoordinatorOption{partition.WithLogger(logger)}
			if priors != nil {
				opts = append(opts, partition.WithPriorPartitions(priors))
			}
			co, err := partition.NewCoordinator(g, cfg, seed, opts...)
			if err != nil {
				return fmt.Errorf("partkit: building coordinator: %w", err)
			}

			result, err := co.Run(context.Background())
			if err != nil {
				return fmt.Errorf("partkit: run failed: %w", err)
			}

			if err := writeResult(result, outputPath, delim); err != nil {
				return err
			}

			logger.Infof("run %s complete: supersteps=%d migrations=%d localEdgesPct=%.4f cutEdges=%d",
				runID, result.Supersteps, result.Migrations, result.LocalEdgesPct, result.CutEdges)
			return nil
		},
	}

	cmd.Flags().StringVar(&edgesPath, "edges", "", "path to the edge input file (required)")
	cmd.Flags().StringVar(&verticesPath, "vertices", "", "path to the vertex-value input file (optional prior partitions)")
	cmd.Flags().StringVar(&outputPath, "output", "", "path to write the final assignment (default stdout)")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML configuration file")
	cmd.Flags().StringVar(&delim, "delim", " ", "output field delimiter")
	cmd.Flags().Int64Var(&seed, "seed", 1, "deterministic RNG seed for per-vertex streams")
	cmd.Flags().IntVar(&partitions, "partitions", 0, "override numberOfPartitions from the config (0 = use config)")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug-level logging")
	_ = cmd.MarkFlagRequired("edges")

	return cmd
}

func loadEdges(g *graphmodel.Graph, path string, defaultWeight int8, logger partition.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("partkit: opening edges file: %w", err)
	}
	defer f.Close()

	if err := ioformat.ParseEdges(f, g, defaultWeight); err != nil {
		logger.Warnf("edge input had data faults: %v", err)
	}
	return nil
}

func loadPriors(path string, logger partition.Logger) (map[int64]int16, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("partkit: opening vertices file: %w", err)
	}
	defer f.Close()

	priors, err := ioformat.ParseVertices(f)
	if err != nil {
		logger.Warnf("vertex input had data faults: %v", err)
	}
	return priors, nil
}

func writeResult(result partition.Result, outputPath, delim string) error {
	out := os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("partkit: creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}
	if err := ioformat.WriteAssignments(out, result.Partitions, delim); err != nil {
		return fmt.Errorf("partkit: writing output: %w", err)
	}
	return nil
}
