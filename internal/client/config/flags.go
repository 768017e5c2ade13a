package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/lovesurprise/internal/flagx"
)

// parseFlags overlays cfg with command-line flags:
//
//	-a string   address and port of the backend server
//	-d string   local database file
//	-n int      session poll attempts
//	-i int      session poll interval (seconds)
//	-s string   base URL of public share links
//	-o string   directory for exported QR codes and PDFs
//
// Other arguments are ignored (see flagx.FilterArgs).
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-n", "-i", "-s", "-o"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "local database file")
	fs.IntVar(&cfg.SessionPollAttempts, "n", cfg.SessionPollAttempts, "session poll attempts")
	interval := fs.Int("i", int(cfg.SessionPollInterval.Seconds()), "session poll interval (in seconds)")
	fs.StringVar(&cfg.ShareBaseURL, "s", cfg.ShareBaseURL, "base URL of share links")
	fs.StringVar(&cfg.ExportDir, "o", cfg.ExportDir, "export directory")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "i" {
			cfg.SessionPollInterval = time.Duration(*interval) * time.Second
		}
	})
	return nil
}
