package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/amonks/lists/internal/logging"
	"github.com/amonks/lists/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the todo lists over HTTP",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address or port (default 127.0.0.1:4567)")
	addAddrFlagAliases(serveCmd)
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log, verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	addr, err := server.ResolveAddr(cfg, serveAddr)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(server.Options{Config: cfg, Logger: logger})
	if err := srv.Serve(ctx, addr); err != nil {
		logger.Error("server stopped", zap.Error(err))
		return err
	}
	return nil
}
