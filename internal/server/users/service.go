// Package users holds the identity records and the local authentication
// backend built on top of them.
package users

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/server/auth"
	"github.com/dmitrijs2005/gatekeeper/internal/server/config"
	"github.com/dmitrijs2005/gatekeeper/internal/server/password"
)

// Service is the local authentication backend: it mediates between the
// credential store, the password hasher and the token service.
type Service struct {
	repo          Repository
	hasher        *password.Hasher
	jwtSecret     []byte
	tokenValidity time.Duration
}

func NewService(repo Repository, hasher *password.Hasher, cfg *config.Config) *Service {
	return &Service{
		repo:          repo,
		hasher:        hasher,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidity,
	}
}

// Register hashes the password and creates the user. The store's unique
// constraint turns a duplicate email into common.ErrConflict; there is no
// racy read-then-write here. Registration does not log the user in.
func (s *Service) Register(ctx context.Context, email, pass, name string) (*User, error) {
	hash, err := s.hasher.Hash(pass)
	if err != nil {
		return nil, common.ErrInternal
	}

	user := &User{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrConflict) {
			return nil, common.ErrConflict
		}
		return nil, common.ErrInternal
	}

	return user, nil
}

// Login verifies the credentials and issues a session token. An unknown
// email and a wrong password return the same common.ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, pass string) (*User, string, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, "", common.ErrInvalidCredentials
		}
		return nil, "", common.ErrInternal
	}

	if !s.hasher.Verify(pass, user.PasswordHash) {
		return nil, "", common.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Email, user.Name, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, "", common.ErrInternal
	}

	return user, token, nil
}

// Authenticate verifies a session token and re-resolves the user by id
// from the store, so a deleted account is reported as common.ErrNotFound
// even while its token is still unexpired.
func (s *Service) Authenticate(ctx context.Context, token string) (*User, error) {
	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return nil, common.ErrUnauthenticated
	}

	user, err := s.repo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, common.ErrInternal
	}

	return user, nil
}
