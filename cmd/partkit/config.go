package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arborix/partkit/partition"
)

// fileConfig mirrors partition.Config's recognized YAML keys (spec §6).
// ReinforceArgmax is a pointer so an omitted key leaves the pre-populated
// default untouched rather than forcing it to YAML's bool zero value.
type fileConfig struct {
	NumberOfPartitions   int     `yaml:"numberOfPartitions"`
	Repartition          int     `yaml:"repartition"`
	AdditionalCapacity   float64 `yaml:"additionalCapacity"`
	Lambda               float64 `yaml:"lambda"`
	Alpha                float64 `yaml:"alpha"`
	Beta                 float64 `yaml:"beta"`
	MaxIterations        int     `yaml:"maxIterations"`
	ConvergenceThreshold float64 `yaml:"convergenceThreshold"`
	WindowSize           int     `yaml:"windowSize"`
	EdgeWeight           int8    `yaml:"edgeWeight"`
	EnforceConvergence   bool    `yaml:"enforceConvergence"`
	ReinforceArgmax      *bool   `yaml:"reinforceArgmax"`
}

// loadConfig returns partition.DefaultConfig() when path is empty, otherwise
// that default overlaid with whatever keys the YAML file sets.
func loadConfig(path string) (partition.Config, error) {
	cfg := partition.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return partition.Config{}, fmt.Errorf("partkit: reading config %s: %w", path, err)
	}

	fc := fileConfig{
		NumberOfPartitions:   cfg.NumberOfPartitions,
		Repartition:          cfg.Repartition,
		AdditionalCapacity:   cfg.AdditionalCapacity,
		Lambda:               cfg.Lambda,
		Alpha:                cfg.Alpha,
		Beta:                 cfg.Beta,
		MaxIterations:        cfg.MaxIterations,
		ConvergenceThreshold: cfg.ConvergenceThreshold,
		WindowSize:           cfg.WindowSize,
		EdgeWeight:           cfg.EdgeWeight,
		EnforceConvergence:   cfg.EnforceConvergence,
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return partition.Config{}, fmt.Errorf("partkit: parsing config %s: %w", path, err)
	}

	cfg.NumberOfPartitions = fc.NumberOfPartitions
	cfg.Repartition = fc.Repartition
	cfg.AdditionalCapacity = fc.AdditionalCapacity
	cfg.Lambda = fc.Lambda
	cfg.Alpha = fc.Alpha
	cfg.Beta = fc.Beta
	cfg.MaxIterations = fc.MaxIterations
	cfg.ConvergenceThreshold = fc.ConvergenceThreshold
	cfg.WindowSize = fc.WindowSize
	cfg.EdgeWeight = fc.EdgeWeight
	cfg.EnforceConvergence = fc.EnforceConvergence
	if fc.ReinforceArgmax != nil {
		cfg.ReinforceArgmax = *fc.ReinforceArgmax
	}

	return cfg, nil
}
