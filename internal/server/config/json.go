package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/gatekeeper/internal/flagx"
	"github.com/dmitrijs2005/gatekeeper/internal/timex"
)

// JsonConfig is the intermediate DTO for reading JSON configuration files.
// Interval fields use timex.Duration, which accepts both string values
// such as "24h" and integer nanoseconds. After unmarshalling, its fields
// are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddr    string         `json:"endpoint_addr"`
	AuthBackend     string         `json:"auth_backend"`
	StoreDriver     string         `json:"store_driver"`
	DatabaseDSN     string         `json:"database_dsn"`
	SecretKey       string         `json:"secret_key"`
	TokenValidity   timex.Duration `json:"token_validity"`
	UpstreamBaseURL string         `json:"upstream_base_url"`
	UpstreamTimeout timex.Duration `json:"upstream_timeout"`
	SecureCookies   *bool          `json:"secure_cookies"`
}

// parseJson loads configuration values from a JSON file into cfg.
//
// The file path comes from the -c or -config command-line flags; when
// neither is set, no JSON file is loaded. Fields absent from the file
// keep their current values. A file that cannot be read or parsed is a
// hard startup failure.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		cfg.EndpointAddr = c.EndpointAddr
	}
	if c.AuthBackend != "" {
		cfg.AuthBackend = c.AuthBackend
	}
	if c.StoreDriver != "" {
		cfg.StoreDriver = c.StoreDriver
	}
	if c.DatabaseDSN != "" {
		cfg.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		cfg.SecretKey = c.SecretKey
	}
	if c.TokenValidity.Duration != 0 {
		cfg.TokenValidity = time.Duration(c.TokenValidity.Duration)
	}
	if c.UpstreamBaseURL != "" {
		cfg.UpstreamBaseURL = c.UpstreamBaseURL
	}
	if c.UpstreamTimeout.Duration != 0 {
		cfg.UpstreamTimeout = time.Duration(c.UpstreamTimeout.Duration)
	}
	if c.SecureCookies != nil {
		cfg.SecureCookies = *c.SecureCookies
	}
}
