package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/gripdex/chord"
	"github.com/jsphweid/gripdex/model"
	"github.com/jsphweid/gripdex/score"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	gripsChord     chordFlags
	gripsGenerator generatorFlags
	gripsLimit     int
	gripsExplain   bool
)

func init() {
	gripsChord.register(gripsCmd)
	gripsGenerator.register(gripsCmd)
	gripsCmd.Flags().IntVar(&gripsLimit, "limit", 0, "number of grips to print (default from config)")
	gripsCmd.Flags().BoolVar(&gripsExplain, "explain", false, "print the score breakdown of every grip")
	rootCmd.AddCommand(gripsCmd)
}

var gripsCmd = &cobra.Command{
	Use:   "grips",
	Short: "Prints the best grips for a chord",
	Long: `Generates every grip for a chord and prints the easiest ones first.

Example:
  gripdex grips --root C --notes C,E,G --limit 5`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, err := gripsChord.spec()
		if err != nil {
			return err
		}
		tuning, err := gripsChord.resolvedTuning()
		if err != nil {
			return err
		}
		opts, err := gripsGenerator.options(cmd)
		if err != nil {
			return err
		}

		ranked, err := score.Rank(cmd.Context(), spec, tuning, opts)
		if err != nil {
			return err
		}
		logger.Debug("generated grips", zap.String("chord", chord.Key(spec)), zap.Int("num_grips", len(ranked)))

		if len(ranked) == 0 {
			fmt.Println("No grips found, try relaxing the options.")
			return nil
		}

		limit := gripsLimit
		if limit <= 0 {
			limit = cfg.ResolvedLimit()
		}
		fmt.Printf("%d grips for %s, showing %d\n", len(ranked), chord.Key(spec), min(limit, len(ranked)))
		for i, tg := range ranked[:min(limit, len(ranked))] {
			printGrip(i+1, tg)
			if gripsExplain {
				fmt.Printf("      %+v\n", score.Explain(tg))
			}
		}
		return nil
	},
}

func printGrip(rank int, tg model.TunedGrip) {
	fmt.Printf("%3d.  %-18s %-26s %-5s %6.2f\n",
		rank,
		tg.Grip.String(),
		noteList(tg),
		tg.Inversion,
		score.Score(tg))
}

func noteList(tg model.TunedGrip) string {
	names := tg.NoteNames()
	for i, n := range names {
		if n == "" {
			names[i] = "-"
		}
	}
	return strings.Join(names, " ")
}
