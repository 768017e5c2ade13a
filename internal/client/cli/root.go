package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/lovesurprise/internal/buildinfo"
	"github.com/dmitrijs2005/lovesurprise/internal/client/config"
	"github.com/dmitrijs2005/lovesurprise/internal/logging"
)

// NewRootCommand builds the client command. Its flags are handled by the
// config package (-c, -a, -d, -n, -i, -s, -o), so cobra passes them through.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:                "lovesurprise",
		Short:              "Create, publish and share LoveSurprise pages",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(args)
			if err != nil {
				return err
			}
			log := logging.NewText(os.Stderr, logging.ParseLevel(cfg.LogLevel))

			app, err := NewApp(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			app.Run(cmd.Context())
			return nil
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
