package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	enumerateModel      string
	enumerateLimits     string
	enumeratePoint      string
	enumerateSeedGen    string
	enumerateBlockScore bool
)

var enumerateCmd = &cobra.Command{
	Use:   "enumerate",
	Short: "Enumerate maximal entailing explanation regions for one point",
	RunE:  runEnumerate,
}

func init() {
	enumerateCmd.Flags().StringVar(&enumerateModel, "model", "", "path to the ensemble model JSON")
	enumerateCmd.Flags().StringVar(&enumerateLimits, "limits", "", "path to the limits CSV (optional)")
	enumerateCmd.Flags().StringVarP(&enumeratePoint, "point", "E", "", `anchor point, as "v0,v1,..." or "random"`)
	enumerateCmd.Flags().StringVar(&enumerateSeedGen, "seed-gen", "greedy", "seed generator policy")
	enumerateCmd.Flags().BoolVar(&enumerateBlockScore, "block-score", false, "require strictly increasing score between yields")
	enumerateCmd.MarkFlagRequired("model")
	enumerateCmd.MarkFlagRequired("point")
	rootCmd.AddCommand(enumerateCmd)
}

func runEnumerate(cmd *cobra.Command, args []string) error {
	prog, space, err := buildProgram(enumerateModel, enumerateLimits, enumerateSeedGen)
	if err != nil {
		return err
	}

	x, err := parsePoint(enumeratePoint, space)
	if err != nil {
		return err
	}

	stream, err := prog.Enumerate(x, enumerateBlockScore)
	if err != nil {
		return err
	}

	ctx := context.Background()
	for {
		r, ok, err := stream.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		fmt.Printf("region=%s score=%s\n", r, prog.Score(r))
	}
	return nil
}
