package users

import (
	"context"
)

// Repository is the credential store contract. Create must enforce email
// uniqueness atomically at the storage layer: under concurrent creates for
// one email, exactly one succeeds and the rest fail with
// common.ErrConflict.
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}
