package main

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arborists/xregions/config"
	"github.com/arborists/xregions/ensemble"
	"github.com/arborists/xregions/explain"
	"github.com/arborists/xregions/featurespace"
	"github.com/arborists/xregions/limits"
	"github.com/arborists/xregions/oracle"
)

var rootCmd = &cobra.Command{
	Use:   "xregions",
	Short: "Abstract explanations for gradient-boosted tree predictions",
}

// buildProgram loads modelPath/limitsPath and wires up an explain.Program
// for the named seed-gen policy, shared by every subcommand.
func buildProgram(modelPath, limitsPath, seedGen string) (*explain.Program, *featurespace.Space, error) {
	model, err := ensemble.Load(modelPath)
	if err != nil {
		return nil, nil, fmt.Errorf("xregions: load model: %w", err)
	}

	var lim featurespace.Limits
	if limitsPath != "" {
		raw, err := limits.Load(limitsPath)
		if err != nil {
			return nil, nil, fmt.Errorf("xregions: load limits: %w", err)
		}
		lim = make(featurespace.Limits, len(raw))
		for f, b := range raw {
			lim[f] = b
		}
		if err := limits.Validate(raw, featuresOf(model)); err != nil {
			return nil, nil, fmt.Errorf("xregions: %w", err)
		}
	}

	space, err := featurespace.New(model.Thresholds, lim)
	if err != nil {
		return nil, nil, fmt.Errorf("xregions: build feature space: %w", err)
	}

	o := oracle.New(model)
	cfg, err := config.Parse([]byte("seed_gen: " + seedGen + "\n"))
	if err != nil {
		return nil, nil, err
	}
	gen, err := cfg.NewGenerator(space)
	if err != nil {
		return nil, nil, err
	}

	prog := explain.New(space, o, gen, config.TriviallyOptimal(seedGen), nil)
	return prog, space, nil
}

func featuresOf(m *ensemble.Model) []int {
	out := make([]int, 0, len(m.Thresholds))
	for f := range m.Thresholds {
		out = append(out, f)
	}
	return out
}

// parsePoint parses a single-row CSV of feature values, or generates a
// uniformly random point within space's domain when raw is "random".
func parsePoint(raw string, space *featurespace.Space) ([]float64, error) {
	if strings.EqualFold(raw, "random") {
		numFeat := 0
		for _, f := range space.Features() {
			if f+1 > numFeat {
				numFeat = f + 1
			}
		}
		x := make([]float64, numFeat)
		for _, f := range space.Features() {
			lo, hi := space.DMin(f), space.DMax(f)
			x[f] = lo + rand.Float64()*(hi-lo)
		}
		return x, nil
	}

	fields := strings.Split(strings.TrimSpace(raw), ",")
	x := make([]float64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, fmt.Errorf("xregions: parse point field %d: %w", i, err)
		}
		x[i] = v
	}
	return x, nil
}
