package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/lovesurprise/internal/flagx"
)

var flagNames = []string{"-a", "-d", "-k", "-t", "-l", "-m", "-u", "-p", "-b", "-g", "-e", "-r", "-w"}

// parseFlags overlays cfg with command-line flags:
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN
//	-k string   JWT HMAC secret key
//	-t int      access token validity, minutes
//	-l int      refresh token validity, minutes
//	-m string   storage driver ("s3" or "minio")
//	-u string   object storage user
//	-p string   object storage password
//	-b string   bucket name
//	-g string   region
//	-e string   object storage endpoint (e.g., "http://127.0.0.1:9000/")
//	-r string   Redis address
//	-w int      worker concurrency
//
// Duration flags are whole minutes and only override cfg when given.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, flagNames)

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.EndpointAddrGRPC, "a", cfg.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.SecretKey, "k", cfg.SecretKey, "secret key")

	access := fs.Int("t", int(cfg.AccessTokenValidityDuration.Minutes()), "access token validity (in minutes)")
	refresh := fs.Int("l", int(cfg.RefreshTokenValidityDuration.Minutes()), "refresh token validity (in minutes)")

	fs.StringVar(&cfg.StorageDriver, "m", cfg.StorageDriver, "storage driver")
	fs.StringVar(&cfg.S3RootUser, "u", cfg.S3RootUser, "S3 root user")
	fs.StringVar(&cfg.S3RootPassword, "p", cfg.S3RootPassword, "S3 root password")
	fs.StringVar(&cfg.S3Bucket, "b", cfg.S3Bucket, "S3 bucket")
	fs.StringVar(&cfg.S3Region, "g", cfg.S3Region, "S3 region")
	fs.StringVar(&cfg.S3BaseEndpoint, "e", cfg.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "redis address")
	fs.IntVar(&cfg.WorkerConcurrency, "w", cfg.WorkerConcurrency, "worker concurrency")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			cfg.AccessTokenValidityDuration = time.Duration(*access) * time.Minute
		case "l":
			cfg.RefreshTokenValidityDuration = time.Duration(*refresh) * time.Minute
		}
	})
	return nil
}
