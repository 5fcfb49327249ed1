package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/gatekeeper/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-b string   auth backend, "local" or "proxy"
//	-m string   store driver, "postgres" or "memory"
//	-d string   PostgreSQL DSN
//	-s string   token signing secret key
//	-t int      session token validity, minutes
//	-u string   upstream identity service base URL
//	-o int      upstream request timeout, seconds
//	-w bool     mark the session cookie Secure (use -w=false for local dev)
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components. Duration
// flags are accepted as integers and converted to time.Duration values.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-b", "-m", "-d", "-s", "-t", "-u", "-o", "-w"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.AuthBackend, "b", config.AuthBackend, "auth backend (local or proxy)")
	fs.StringVar(&config.StoreDriver, "m", config.StoreDriver, "store driver (postgres or memory)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	tokenValidity := fs.Int("t", int(config.TokenValidity.Minutes()), "token validity (in minutes)")

	fs.StringVar(&config.UpstreamBaseURL, "u", config.UpstreamBaseURL, "upstream identity service base URL")
	upstreamTimeout := fs.Int("o", int(config.UpstreamTimeout.Seconds()), "upstream timeout (in seconds)")

	fs.BoolVar(&config.SecureCookies, "w", config.SecureCookies, "set the Secure attribute on session cookies")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenValidity = time.Duration(*tokenValidity) * time.Minute
	config.UpstreamTimeout = time.Duration(*upstreamTimeout) * time.Second
}
