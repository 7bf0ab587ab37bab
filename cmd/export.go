package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jsphweid/gripdex/midi"
	"github.com/jsphweid/gripdex/sample"
	"github.com/jsphweid/gripdex/score"
	"github.com/jsphweid/gripdex/util"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	exportChord     chordFlags
	exportGenerator generatorFlags
	exportRank      int
	exportOut       string
	exportBPM       float64
)

func init() {
	exportChord.register(exportCmd)
	exportGenerator.register(exportCmd)
	exportCmd.Flags().IntVar(&exportRank, "rank", 1, "which ranked grip to strum, 1 is the best")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output .mid path (default a new file in the out dir)")
	exportCmd.Flags().Float64Var(&exportBPM, "bpm", sample.DefaultStrumOptions().BPM, "tempo of the strum")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Writes a strummed grip as a midi file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, err := exportChord.spec()
		if err != nil {
			return err
		}
		tuning, err := exportChord.resolvedTuning()
		if err != nil {
			return err
		}
		opts, err := exportGenerator.options(cmd)
		if err != nil {
			return err
		}

		ranked, err := score.Rank(cmd.Context(), spec, tuning, opts)
		if err != nil {
			return err
		}
		if exportRank < 1 || exportRank > len(ranked) {
			return fmt.Errorf("--rank %d is out of range, %d grips found", exportRank, len(ranked))
		}
		tg := ranked[exportRank-1]

		strum := sample.DefaultStrumOptions()
		strum.BPM = exportBPM
		s, err := sample.Strum(tg, strum)
		if err != nil {
			return err
		}

		path := exportOut
		if path == "" {
			path = filepath.Join(cfg.ResolvedOutDir(), uuid.New().String()+".mid")
		}
		if err := util.EnsureDir(filepath.Dir(path)); err != nil {
			return err
		}
		if err := midi.WriteFile(path, s); err != nil {
			return err
		}

		logger.Info("exported", zap.String("grip", tg.Grip.String()), zap.String("path", path))
		fmt.Printf("%s -> %s\n", tg.Grip, path)
		return nil
	},
}
