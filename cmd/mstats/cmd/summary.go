package cmd

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/uyouii/measurement-stats/kde"
	"github.com/uyouii/measurement-stats/model"
)

var summaryUncertainty float64

var summaryCmd = &cobra.Command{
	Use:   "summary [measurement...]",
	Short: "Summarize a set of measurements",
	Long: `Builds the distribution of the measurements and prints its extremes,
median, median absolute deviation, quantiles and weighted tukey box.

Without arguments measurements are read from stdin.`,
	RunE: runSummary,
}

func init() {
	summaryCmd.Flags().Float64VarP(&summaryUncertainty, "uncertainty", "u", 1,
		"uncertainty of measurements given without one")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		printError("loading settings", err)
		return err
	}

	measurements, err := parseMeasurements(args, summaryUncertainty)
	if err == nil && len(args) == 0 {
		measurements, err = readMeasurements(cmd.InOrStdin(), summaryUncertainty)
	}
	if err != nil {
		printError("reading measurements", err)
		return err
	}

	summary, err := kde.CalculateSummary(commandContext(), measurements, settings)
	if err != nil {
		printError("calculating summary", err)
		return err
	}
	return writeSummary(cmd.OutOrStdout(), summary)
}

func writeSummary(out io.Writer, s *model.Summary) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "count\t%d\n", s.Count)
	fmt.Fprintf(w, "minimum\t%s\n", s.MinimumValue.Label())
	fmt.Fprintf(w, "maximum\t%s\n", s.MaximumValue.Label())
	fmt.Fprintf(w, "boundaries\t[%g, %g]\n", s.MinimumBoundary, s.MaximumBoundary)
	fmt.Fprintf(w, "median\t%g\n", s.Median)
	fmt.Fprintf(w, "mad\t%g\n", s.MAD)

	quantiles := make([]*model.QuantileValue, 0, len(s.QuantileValues))
	for _, q := range s.QuantileValues {
		quantiles = append(quantiles, q)
	}
	sort.Slice(quantiles, func(i, j int) bool {
		return quantiles[i].Quantile < quantiles[j].Quantile
	})
	for _, q := range quantiles {
		fmt.Fprintf(w, "q%g\t%g\n", q.Quantile, q.Value)
	}

	b := s.WeightedTukey
	fmt.Fprintf(w, "tukey\t%g\t%g\t%g\t%g\t%g\n", b.Minimum, b.LowerQuartile, b.Median, b.UpperQuartile, b.Maximum)
	return w.Flush()
}
