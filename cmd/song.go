package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/jsphweid/gripdex/chord"
	"github.com/jsphweid/gripdex/midi"
	"github.com/jsphweid/gripdex/model"
	"github.com/jsphweid/gripdex/sample"
	"github.com/jsphweid/gripdex/score"
	"github.com/jsphweid/gripdex/util"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	songMaxFiles int
	songOut      string
)

func init() {
	songCmd.Flags().IntVar(&songMaxFiles, "max-files", 0, "stop after this many files, 0 reads all")
	songCmd.Flags().StringVar(&songOut, "out", "", "also write the best grip of every chord change to this .mid file")
	rootCmd.AddCommand(songCmd)
}

var songCmd = &cobra.Command{
	Use:   "song <file or directory>",
	Short: "Suggests a grip for every chord change in midi files",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tuning, err := cfg.ResolvedTuning()
		if err != nil {
			return err
		}
		opts := cfg.GeneratorOptions()

		paths, err := util.GatherAllMidiPaths(args[0], songMaxFiles)
		if err != nil {
			return err
		}

		var progression []model.TunedGrip
		for _, path := range paths {
			s, err := midi.ReadMidiFile(path)
			if err != nil {
				logger.Warn("skipping file", zap.String("path", path), zap.Error(err))
				continue
			}
			changes, err := chord.GetChanges(s)
			if err != nil {
				logger.Warn("skipping file", zap.String("path", path), zap.Error(err))
				continue
			}

			fmt.Printf("%s: %d chord changes\n", filepath.Base(path), len(changes))
			for _, c := range changes {
				spec, ok := chord.FromKeys(c.Keys)
				if !ok {
					continue
				}
				ranked, err := score.Rank(cmd.Context(), spec, tuning, opts)
				if err != nil {
					return err
				}
				if len(ranked) == 0 {
					fmt.Printf("%9.2fs  %-16s no grip\n", float64(c.Offset)/1e6, chord.Key(spec))
					continue
				}
				best := ranked[0]
				progression = append(progression, best)
				fmt.Printf("%9.2fs  %-16s %-18s %s\n", float64(c.Offset)/1e6, chord.Key(spec), best.Grip, noteList(best))
			}
		}

		if songOut == "" || len(progression) == 0 {
			return nil
		}
		s, err := sample.Progression(progression, sample.DefaultStrumOptions())
		if err != nil {
			return err
		}
		if err := util.EnsureDir(filepath.Dir(songOut)); err != nil {
			return err
		}
		if err := midi.WriteFile(songOut, s); err != nil {
			return err
		}
		logger.Info("wrote progression", zap.String("path", songOut), zap.Int("grips", len(progression)))
		return nil
	},
}
