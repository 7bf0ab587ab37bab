package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/bep/debounce"
	"github.com/jsphweid/gripdex/chord"
	"github.com/jsphweid/gripdex/constants"
	"github.com/jsphweid/gripdex/score"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
	"go.uber.org/zap"
)

var (
	listenPort  int
	listenList  bool
	listenLimit int
)

func init() {
	listenCmd.Flags().IntVar(&listenPort, "port", 0, "midi input port number")
	listenCmd.Flags().BoolVar(&listenList, "list", false, "list midi input ports and exit")
	listenCmd.Flags().IntVar(&listenLimit, "limit", 3, "grips to print per chord")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Prints grips for the chord held on a midi keyboard",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if listenLimit < 0 {
			return fmt.Errorf("--limit must not be negative, got %d", listenLimit)
		}
		drv, err := rtmididrv.New()
		if err != nil {
			return fmt.Errorf("opening midi driver: %w", err)
		}
		defer drv.Close()

		ins, err := drv.Ins()
		if err != nil {
			return fmt.Errorf("listing midi inputs: %w", err)
		}
		if listenList {
			for i, in := range ins {
				fmt.Printf("%d: %s\n", i, in)
			}
			return nil
		}
		if listenPort < 0 || listenPort >= len(ins) {
			return fmt.Errorf("no midi input on port %d, found %d", listenPort, len(ins))
		}
		return listen(cmd, ins[listenPort])
	},
}

func listen(cmd *cobra.Command, in drivers.In) error {
	tuning, err := cfg.ResolvedTuning()
	if err != nil {
		return err
	}
	opts := cfg.GeneratorOptions()

	held := chord.NewHeld()
	debounced := debounce.New(constants.ListenDebounce)
	show := func() {
		keys := held.Keys()
		spec, ok := chord.FromKeys(keys)
		if !ok {
			return
		}
		ranked, err := score.Rank(cmd.Context(), spec, tuning, opts)
		if err != nil {
			logger.Warn("generating grips failed", zap.String("chord", chord.Key(spec)), zap.Error(err))
			return
		}
		fmt.Printf("\n%s (keys %s): %d grips\n", chord.Key(spec), chord.CreateChordKey(keys), len(ranked))
		for i, tg := range ranked[:min(listenLimit, len(ranked))] {
			printGrip(i+1, tg)
		}
	}

	if err := in.Open(); err != nil {
		return fmt.Errorf("opening %s: %w", in, err)
	}
	defer in.Close()

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		if held.Handle(msg) {
			debounced(show)
		}
	}, midi.HandleError(func(listenErr error) {
		logger.Warn("midi listener error", zap.String("device", in.String()), zap.Error(listenErr))
	}))
	if err != nil {
		return fmt.Errorf("listening to %s: %w", in, err)
	}
	defer stop()

	logger.Info("listening", zap.String("device", in.String()))
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer cancel()
	<-ctx.Done()
	return nil
}
