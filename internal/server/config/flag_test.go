package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags_OverlaysValues(t *testing.T) {
	withArgs(t,
		"-a", ":7070",
		"-b", BackendProxy,
		"-m", StoreMemory,
		"-d", "postgres://flags/db",
		"-s", "flag-secret",
		"-t", "60",
		"-u", "http://identity.internal:8080",
		"-o", "7",
		"-w=false",
	)

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, c.EndpointAddr, ":7070")
	assert.Equal(t, c.AuthBackend, BackendProxy)
	assert.Equal(t, c.StoreDriver, StoreMemory)
	assert.Equal(t, c.DatabaseDSN, "postgres://flags/db")
	assert.Equal(t, c.SecretKey, "flag-secret")
	assert.Equal(t, c.TokenValidity, 60*time.Minute)
	assert.Equal(t, c.UpstreamBaseURL, "http://identity.internal:8080")
	assert.Equal(t, c.UpstreamTimeout, 7*time.Second)
	assert.False(t, c.SecureCookies)
}

func TestParseFlags_NoFlagsKeepDefaults(t *testing.T) {
	withArgs(t)

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, c.EndpointAddr, ":8080")
	assert.Equal(t, c.TokenValidity, 24*time.Hour)
	assert.Equal(t, c.UpstreamTimeout, 5*time.Second)
	assert.True(t, c.SecureCookies)
}
