package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uyouii/measurement-stats/common"
	"github.com/uyouii/measurement-stats/kde"
)

var (
	overlapA           []string
	overlapB           []string
	overlapUncertainty float64
	overlapAdaptive    bool
)

var overlapCmd = &cobra.Command{
	Use:   "overlap",
	Short: "Overlap of two sets of measurements",
	Long: `Prints how much the distributions of two sets of measurements overlap,
1 for identical distributions and 0 for disjoint ones.

  mstats overlap --a 1:0.5,2:0.5 --b 1.5:0.5`,
	RunE: runOverlap,
}

func init() {
	overlapCmd.Flags().StringSliceVar(&overlapA, "a", nil, "first set of measurements")
	overlapCmd.Flags().StringSliceVar(&overlapB, "b", nil, "second set of measurements")
	overlapCmd.Flags().Float64VarP(&overlapUncertainty, "uncertainty", "u", 1,
		"uncertainty of measurements given without one")
	overlapCmd.Flags().BoolVar(&overlapAdaptive, "adaptive", false,
		"integrate adaptively and report the error estimate")
	rootCmd.AddCommand(overlapCmd)
}

func runOverlap(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		printError("loading settings", err)
		return err
	}

	var dists []*kde.Distribution
	for _, set := range [][]string{overlapA, overlapB} {
		measurements, err := parseMeasurements(set, overlapUncertainty)
		if err != nil {
			printError("reading measurements", err)
			return err
		}
		if len(measurements) == 0 {
			err = fmt.Errorf("both --a and --b are required: %w", common.ErrorNoMeasurements)
			printError("reading measurements", err)
			return err
		}
		kernel := kde.NewGaussianKernel()
		kernel.MaxSigma = settings.MaxSigma
		dists = append(dists, kde.NewDistribution(measurements, kernel))
	}

	out := cmd.OutOrStdout()
	if overlapAdaptive {
		result := kde.Overlap2(dists[0], dists[1])
		fmt.Fprintf(out, "%s\n", result.RawLabel())
		return nil
	}
	fmt.Fprintf(out, "%.4f\n", kde.Overlap(dists[0], dists[1]))
	return nil
}
