package cmd

import (
	"context"
	"fmt"

	"github.com/jsphweid/gripdex/config"
	"github.com/jsphweid/gripdex/constants"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose    bool
	configPath string

	cfg    config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "gripdex",
	Short: "Guitar grip generator",
	Long: `gripdex finds every playable fingering of a chord on a six string guitar,
drops the redundant ones and ranks the rest by how easy they are to play.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zc := zap.NewProductionConfig()
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		path := configPath
		if path == "" {
			path = constants.GetConfigPath()
		}
		if path == "" {
			path = config.DefaultConfigPath()
		}
		cfg, err = config.LoadOrDefault(path)
		if err != nil {
			return err
		}
		logger.Debug("config loaded", zap.String("path", path))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $"+constants.ConfigEnv+")")
}

func Execute() {
	cobra.CheckErr(rootCmd.ExecuteContext(context.Background()))
}
