// Package config handles configuration for the portal server: defaults,
// an optional JSON overlay and command-line flags, applied in that order.
package config

import "time"

// ConfigEnvVar names the JSON config file when -c/-config is absent.
const ConfigEnvVar = "CAMEPORTAL_CONFIG"

// Vault backends.
const (
	VaultBackendFS = "fs"
	VaultBackendS3 = "s3"
)

// Config holds runtime settings for the portal server.
//
// Fields:
//   - EndpointAddrGRPC / MetricsAddr: bind addresses of the Portal service
//     and the Prometheus endpoint (empty MetricsAddr disables it).
//   - DatabaseDriver / DatabaseDSN: "sqlite" or "postgres" and its DSN.
//   - SecretKey: HMAC secret for session tokens (HS256).
//   - AdminKey: staff key expected in the admin_key metadata header.
//   - OperationTimeout: upper bound for every RPC.
//   - RosterPath: delimited roster feed.
//   - VaultBackend, VaultDir and the S3 fields: where evidence files live.
//   - MaxUploadBytes / DownloadURLTTL: upload cap and presigned link lifetime.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	EndpointAddrGRPC string
	MetricsAddr      string
	DatabaseDriver   string
	DatabaseDSN      string
	SecretKey        string
	AdminKey         string
	OperationTimeout time.Duration
	RosterPath       string
	VaultBackend     string
	VaultDir         string
	S3Region         string
	S3BaseEndpoint   string
	S3Bucket         string
	S3Prefix         string
	S3AccessKey      string
	S3SecretKey      string
	S3PathStyle      bool
	MaxUploadBytes   int64
	DownloadURLTTL   time.Duration
	LogLevel         string
}

// LoadDefaults populates Config with development defaults.
// NOTE: SecretKey and AdminKey must be overridden in production.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.MetricsAddr = ":9090"
	c.DatabaseDriver = "sqlite"
	c.DatabaseDSN = "portal.db"
	c.SecretKey = "secretKey"
	c.AdminKey = "adminKey"
	c.OperationTimeout = 30 * time.Second
	c.RosterPath = "entidades.csv"
	c.VaultBackend = VaultBackendFS
	c.VaultDir = "uploads"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = ""
	c.S3Bucket = "came-documents"
	c.S3Prefix = "uploads"
	c.S3PathStyle = false
	c.MaxUploadBytes = 20 << 20
	c.DownloadURLTTL = 15 * time.Minute
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
