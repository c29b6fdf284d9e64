package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	explainModel  string
	explainLimits string
	explainPoint  string
)

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Compute a single grown explanation region for one point",
	RunE:  runExplain,
}

func init() {
	explainCmd.Flags().StringVar(&explainModel, "model", "", "path to the ensemble model JSON")
	explainCmd.Flags().StringVar(&explainLimits, "limits", "", "path to the limits CSV (optional)")
	explainCmd.Flags().StringVarP(&explainPoint, "point", "e", "", `anchor point, as "v0,v1,..." or "random"`)
	explainCmd.MarkFlagRequired("model")
	explainCmd.MarkFlagRequired("point")
	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	prog, space, err := buildProgram(explainModel, explainLimits, "greedy")
	if err != nil {
		return err
	}

	x, err := parsePoint(explainPoint, space)
	if err != nil {
		return err
	}

	r, class, err := prog.Explain(x)
	if err != nil {
		return err
	}

	fmt.Printf("class=%d region=%s\n", class, r)
	return nil
}
