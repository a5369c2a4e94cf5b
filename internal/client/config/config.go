package config

import "time"

// ConfigEnvVar names the JSON config file when -c/-config is absent.
const ConfigEnvVar = "CAMEPORTAL_CLI_CONFIG"

// Config holds runtime settings for the portal CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the Portal gRPC endpoint.
//   - AdminKey: staff key; leave empty for member-only use.
//   - RequestTimeout: upper bound for each call to the server.
//   - MaxUploadBytes: largest document the client sends or receives; it
//     must match the server's upload cap.
type Config struct {
	ServerEndpointAddr string
	AdminKey           string
	RequestTimeout     time.Duration
	MaxUploadBytes     int64
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.AdminKey = ""
	c.RequestTimeout = 30 * time.Second
	c.MaxUploadBytes = 20 << 20
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
