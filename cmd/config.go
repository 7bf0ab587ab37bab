package cmd

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/jsphweid/gripdex/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configWrite string

func init() {
	configCmd.Flags().StringVar(&configWrite, "write", "", "save the effective configuration to this path")
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Prints the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tuning, err := cfg.ResolvedTuning()
		if err != nil {
			return err
		}
		opts := cfg.GeneratorOptions()

		effective := config.Config{
			Tuning: tuning.String(),
			OutDir: cfg.ResolvedOutDir(),
			Limit:  cfg.ResolvedLimit(),
			Server: config.ServerConfig{
				Addr:           cfg.ResolvedAddr(),
				CacheSize:      cfg.ResolvedCacheSize(),
				AllowedOrigins: cfg.ResolvedAllowedOrigins(),
			},
			Generator: config.GripOptionsOf(opts),
		}

		if configWrite != "" {
			if err := config.Save(configWrite, effective); err != nil {
				return err
			}
			logger.Info("config written", zap.String("path", configWrite))
			fmt.Printf("wrote %s\n", configWrite)
			return nil
		}
		return toml.NewEncoder(os.Stdout).Encode(effective)
	},
}
