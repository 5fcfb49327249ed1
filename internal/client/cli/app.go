// Package cli implements the interactive command-line client for the
// Gatekeeper authentication service.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/dmitrijs2005/gatekeeper/internal/client/client"
	"github.com/dmitrijs2005/gatekeeper/internal/client/config"
)

type App struct {
	config *config.Config
	api    *client.Client
	reader *bufio.Reader

	// session state after a successful login
	token    string
	userName string
}

func NewApp(c *config.Config) (*App, error) {
	api := client.New(c.ServerBaseURL, c.RequestTimeout)
	return &App{config: c, api: api, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) isLoggedIn() bool {
	return a.token != ""
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}
