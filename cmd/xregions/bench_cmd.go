package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/arborists/xregions/bench"
)

var (
	benchModelsDir string
	benchOut       string
	benchSeedGen   string
	benchPoint     string
	benchTimeout   time.Duration
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark enumerate_explanations across every model in a directory",
	RunE:  runBench,
}

func init() {
	benchCmd.Flags().StringVar(&benchModelsDir, "models", "", "directory of ensemble model JSON files")
	benchCmd.Flags().StringVar(&benchOut, "out", "", "CSV output path")
	benchCmd.Flags().StringVar(&benchSeedGen, "seed-gen", "greedy", "seed generator policy")
	benchCmd.Flags().StringVar(&benchPoint, "point", "random", `anchor point, as "v0,v1,..." or "random"`)
	benchCmd.Flags().DurationVar(&benchTimeout, "timeout", 30*time.Second, "per-model wall-clock timeout")
	benchCmd.MarkFlagRequired("models")
	benchCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	entries, err := os.ReadDir(benchModelsDir)
	if err != nil {
		return fmt.Errorf("xregions: read models dir: %w", err)
	}

	var tasks []bench.Task
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		modelPath := filepath.Join(benchModelsDir, e.Name())
		prog, space, err := buildProgram(modelPath, "", benchSeedGen)
		if err != nil {
			fmt.Fprintf(os.Stderr, "xregions: skip %s: %v\n", e.Name(), err)
			continue
		}
		x, err := parsePoint(benchPoint, space)
		if err != nil {
			fmt.Fprintf(os.Stderr, "xregions: skip %s: %v\n", e.Name(), err)
			continue
		}
		tasks = append(tasks, bench.Task{ModelName: e.Name(), Program: prog, Anchor: x})
	}

	out, err := os.Create(benchOut)
	if err != nil {
		return fmt.Errorf("xregions: create %s: %w", benchOut, err)
	}
	defer out.Close()

	errs := bench.RunMany(context.Background(), out, tasks, benchTimeout)
	for _, e := range errs {
		fmt.Fprintln(os.Stderr, e)
	}
	return nil
}
