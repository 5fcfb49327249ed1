// Package db owns the process-scoped credential store handle: opened once
// at startup, shared by repositories, and closed explicitly on shutdown.
package db

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gatekeeper/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	Close() error
}
