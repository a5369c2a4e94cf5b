package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/cameportal/internal/flagx"
	"github.com/dmitrijs2005/cameportal/internal/timex"
)

// JsonConfig is the on-disk shape of the server config. Durations accept
// strings such as "30s" or integer nanoseconds. Pointer fields distinguish
// "absent" from the zero value.
type JsonConfig struct {
	EndpointAddrGRPC string          `json:"endpoint_addr_grpc"`
	MetricsAddr      *string         `json:"metrics_addr"`
	DatabaseDriver   string          `json:"database_driver"`
	DatabaseDSN      string          `json:"database_dsn"`
	SecretKey        string          `json:"secret_key"`
	AdminKey         string          `json:"admin_key"`
	OperationTimeout *timex.Duration `json:"operation_timeout"`
	RosterPath       string          `json:"roster_path"`
	VaultBackend     string          `json:"vault_backend"`
	VaultDir         string          `json:"vault_dir"`
	S3Region         string          `json:"s3_region"`
	S3BaseEndpoint   string          `json:"s3_base_endpoint"`
	S3Bucket         string          `json:"s3_bucket"`
	S3Prefix         *string         `json:"s3_prefix"`
	S3AccessKey      string          `json:"s3_access_key"`
	S3SecretKey      string          `json:"s3_secret_key"`
	S3PathStyle      *bool           `json:"s3_path_style"`
	MaxUploadBytes   *int64          `json:"max_upload_bytes"`
	DownloadURLTTL   *timex.Duration `json:"download_url_ttl"`
	LogLevel         string          `json:"log_level"`
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// parseJson overlays values from the JSON file named by -c/-config (or
// CAMEPORTAL_CONFIG). Keys missing from the file keep their current value.
// It panics when the file cannot be read or parsed.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigPath(ConfigEnvVar)

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	if c.MetricsAddr != nil {
		config.MetricsAddr = *c.MetricsAddr
	}
	setString(&config.DatabaseDriver, c.DatabaseDriver)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.AdminKey, c.AdminKey)
	if c.OperationTimeout != nil {
		config.OperationTimeout = c.OperationTimeout.Duration
	}
	setString(&config.RosterPath, c.RosterPath)
	setString(&config.VaultBackend, c.VaultBackend)
	setString(&config.VaultDir, c.VaultDir)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.S3Bucket, c.S3Bucket)
	if c.S3Prefix != nil {
		config.S3Prefix = *c.S3Prefix
	}
	setString(&config.S3AccessKey, c.S3AccessKey)
	setString(&config.S3SecretKey, c.S3SecretKey)
	if c.S3PathStyle != nil {
		config.S3PathStyle = *c.S3PathStyle
	}
	if c.MaxUploadBytes != nil {
		config.MaxUploadBytes = *c.MaxUploadBytes
	}
	if c.DownloadURLTTL != nil {
		config.DownloadURLTTL = c.DownloadURLTTL.Duration
	}
	setString(&config.LogLevel, c.LogLevel)
}
