package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/cameportal/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string     gRPC bind address (e.g., ":50051")
//	-m string     metrics bind address, empty disables it
//	-driver str   database driver: sqlite or postgres
//	-d string     database DSN
//	-s string     session token secret key
//	-k string     staff admin key
//	-t duration   per-operation timeout (e.g., "30s")
//	-f string     roster feed path
//	-vault str    vault backend: fs or s3
//	-u string     vault directory for the fs backend
//	-b string     S3 bucket
//	-g string     S3 region
//	-e string     S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-l string     log level
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, so -c/-config can be parsed separately.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{
		"-a", "-m", "-driver", "-d", "-s", "-k", "-t", "-f", "-vault", "-u", "-b", "-g", "-e", "-l",
	})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.MetricsAddr, "m", config.MetricsAddr, "address and port of the metrics endpoint")
	fs.StringVar(&config.DatabaseDriver, "driver", config.DatabaseDriver, "database driver (sqlite, postgres)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.AdminKey, "k", config.AdminKey, "admin key")
	fs.DurationVar(&config.OperationTimeout, "t", config.OperationTimeout, "operation timeout")
	fs.StringVar(&config.RosterPath, "f", config.RosterPath, "roster feed path")
	fs.StringVar(&config.VaultBackend, "vault", config.VaultBackend, "vault backend (fs, s3)")
	fs.StringVar(&config.VaultDir, "u", config.VaultDir, "vault directory")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
