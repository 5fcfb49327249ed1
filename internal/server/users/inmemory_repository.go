package users

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
)

// InMemoryRepository keeps users in process memory. The mutex gives Create
// the same atomic uniqueness guarantee the Postgres unique index provides.
// Used by tests and by the "memory" store driver.
type InMemoryRepository struct {
	mu      sync.Mutex
	byEmail map[string]*User
	byID    map[string]*User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		byEmail: make(map[string]*User),
		byID:    make(map[string]*User),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return nil, common.ErrConflict
	}

	now := time.Now()
	stored := &User{
		ID:           uuid.NewString(),
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Name:         user.Name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	r.byEmail[stored.Email] = stored
	r.byID[stored.ID] = stored

	clone := *stored
	return &clone, nil
}

func (r *InMemoryRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrNotFound
	}

	clone := *user
	return &clone, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}

	clone := *user
	return &clone, nil
}

// Delete removes a user by id. Not part of the Repository contract; tests
// use it to simulate accounts that vanish while a token is still valid.
func (r *InMemoryRepository) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user, ok := r.byID[id]; ok {
		delete(r.byEmail, user.Email)
		delete(r.byID, id)
	}
}
