package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/jsphweid/gripdex/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config or $GRIPDEX_ADDR)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves grips over HTTP",
	Long: `Serves the grip generator over HTTP.

  POST /grips   {"root": "C", "notes": ["C", "E", "G"], "limit": 5}
  GET  /tuning`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := server.New(cfg, logger)
		if err != nil {
			return err
		}

		addr := serveAddr
		if addr == "" {
			addr = cfg.ResolvedAddr()
		}
		srv := &http.Server{
			Addr:              addr,
			Handler:           s.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Warn("shutdown failed", zap.Error(err))
			}
		}()

		logger.Info("serving", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}
