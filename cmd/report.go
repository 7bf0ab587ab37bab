package cmd

import (
	"fmt"

	"github.com/jsphweid/gripdex/chord"
	"github.com/jsphweid/gripdex/model"
	"github.com/jsphweid/gripdex/score"
	"github.com/jsphweid/gripdex/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Creates a report",
	Long:  `Generates grips for major, minor and dominant seventh chords on every root and prints how many were found and how good the best one is.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tuning, err := cfg.ResolvedTuning()
		if err != nil {
			return err
		}
		opts := cfg.GeneratorOptions()

		for _, q := range []chord.Quality{chord.Major, chord.Minor, chord.Dominant7} {
			var counts []int
			var best []float64
			for root := model.C; root < model.NumPitchClasses; root++ {
				spec := chord.FromQuality(root, q)
				ranked, err := score.Rank(cmd.Context(), spec, tuning, opts)
				if err != nil {
					return err
				}
				counts = append(counts, len(ranked))
				if len(ranked) == 0 {
					fmt.Printf("%-5s %-4s no grips\n", root, q.Name)
					continue
				}
				best = append(best, score.Score(ranked[0]))
				fmt.Printf("%-5s %-4s %4d grips, best %-18s %6.2f\n", root, q.Name, len(ranked), ranked[0].Grip, best[len(best)-1])
			}
			fmt.Printf("%s: %d grips in total, mean best score %.2f\n\n", q.Name, util.Sum(counts), util.Mean(best))
		}
		return nil
	},
}
