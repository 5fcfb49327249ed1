// Package identity defines the contract shared by the local and proxied
// authentication backends, plus the input validation the gateway applies
// before touching either backend.
package identity

import (
	"context"
	"fmt"
	"regexp"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/server/users"
)

// Provider is implemented by both backends. The gateway holds exactly one
// Provider, selected at startup; handlers never branch on the backend.
//
// Register creates an account and returns the profile; it does not log
// the user in. Login returns the user and a session token. Authenticate
// resolves a session token back to the current user record.
type Provider interface {
	Register(ctx context.Context, email, password, name string) (*users.User, error)
	Login(ctx context.Context, email, password string) (*users.User, string, error)
	Authenticate(ctx context.Context, token string) (*users.User, error)
}

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateRegistration checks the register inputs. Violations wrap
// common.ErrInvalidInput so the gateway maps them to a 400 response.
func ValidateRegistration(email, password, name string) error {
	if email == "" || password == "" || name == "" {
		return fmt.Errorf("%w: email, password and name are required", common.ErrInvalidInput)
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: malformed email address", common.ErrInvalidInput)
	}
	if len(password) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", common.ErrInvalidInput, MinPasswordLength)
	}
	return nil
}

// ValidateLogin checks the login inputs.
func ValidateLogin(email, password string) error {
	if email == "" || password == "" {
		return fmt.Errorf("%w: email and password are required", common.ErrInvalidInput)
	}
	return nil
}
