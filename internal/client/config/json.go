package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/cameportal/internal/flagx"
	"github.com/dmitrijs2005/cameportal/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	ServerEndpointAddr string          `json:"server_endpoint_addr"`
	AdminKey           string          `json:"admin_key"`
	RequestTimeout     *timex.Duration `json:"request_timeout"`
	MaxUploadBytes     int64           `json:"max_upload_bytes"`
}

// parseJson overlays Config with values loaded from a JSON file. Keys
// missing from the file keep their current value. It panics on read or
// unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigPath(ConfigEnvVar)
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.AdminKey != "" {
		cfg.AdminKey = jc.AdminKey
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.MaxUploadBytes > 0 {
		cfg.MaxUploadBytes = jc.MaxUploadBytes
	}
}
