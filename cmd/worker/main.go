package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/lovesurprise/internal/buildinfo"
	"github.com/dmitrijs2005/lovesurprise/internal/server"
	"github.com/dmitrijs2005/lovesurprise/internal/server/config"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:                "lovesurprise-worker",
		Short:              "Process LoveSurprise background jobs",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(args)
			if err != nil {
				return err
			}
			w, err := server.NewWorker(cmd.Context(), cfg, server.NewLogger(cfg))
			if err != nil {
				return err
			}
			return w.Run(cmd.Context())
		},
	}

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
		},
	})
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
