package users

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/server/auth"
	"github.com/dmitrijs2005/gatekeeper/internal/server/config"
	"github.com/dmitrijs2005/gatekeeper/internal/server/password"
)

const testSecret = "test-secret"

func newTestService(t *testing.T) (*Service, *InMemoryRepository) {
	t.Helper()
	repo := NewInMemoryRepository()
	cfg := &config.Config{SecretKey: testSecret, TokenValidity: 24 * time.Hour}
	return NewService(repo, password.NewWithCost(bcrypt.MinCost), cfg), repo
}

func TestService_RegisterThenLogin(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "a@b.com", "secret1", "A")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if registered.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if registered.PasswordHash == "secret1" {
		t.Fatalf("password stored in plaintext")
	}

	user, token, err := svc.Login(ctx, "a@b.com", "secret1")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("login resolved a different user: %q vs %q", user.ID, registered.ID)
	}

	claims, err := auth.ParseToken(token, []byte(testSecret))
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.UserID != registered.ID {
		t.Fatalf("token claims wrong user id: %q vs %q", claims.UserID, registered.ID)
	}
	if claims.Email != "a@b.com" || claims.Name != "A" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestService_Login_AntiEnumeration(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "a@b.com", "secret1", "A"); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	_, _, wrongPass := svc.Login(ctx, "a@b.com", "wrong-password")
	_, _, noUser := svc.Login(ctx, "nobody@b.com", "whatever")

	// A wrong password and an unknown email must be indistinguishable.
	if !errors.Is(wrongPass, common.ErrInvalidCredentials) {
		t.Fatalf("expected common.ErrInvalidCredentials for wrong password, got %v", wrongPass)
	}
	if !errors.Is(noUser, common.ErrInvalidCredentials) {
		t.Fatalf("expected common.ErrInvalidCredentials for unknown email, got %v", noUser)
	}
	if wrongPass.Error() != noUser.Error() {
		t.Fatalf("error messages differ: %q vs %q", wrongPass, noUser)
	}
}

func TestService_Register_Duplicate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "a@b.com", "secret1", "A"); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	_, err := svc.Register(ctx, "a@b.com", "secret2", "B")
	if !errors.Is(err, common.ErrConflict) {
		t.Fatalf("expected common.ErrConflict, got %v", err)
	}
}

func TestService_Register_ConcurrentSameEmail(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	const n = 8
	errs := make([]error, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Register(ctx, "race@b.com", "secret1", "R")
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		} else if !errors.Is(err, common.ErrConflict) {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if successes != 1 {
		t.Fatalf("expected exactly one successful registration, got %d", successes)
	}
}

func TestService_Authenticate(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "a@b.com", "secret1", "A")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	_, token, err := svc.Login(ctx, "a@b.com", "secret1")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	user, err := svc.Authenticate(ctx, token)
	if err != nil {
		t.Fatalf("Authenticate error: %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("authenticated as a different user")
	}

	// Deleted account: the token still verifies but the user is gone.
	repo.Delete(registered.ID)
	_, err = svc.Authenticate(ctx, token)
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected common.ErrNotFound after account deletion, got %v", err)
	}
}

func TestService_Authenticate_BadToken(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Authenticate(ctx, "garbage"); !errors.Is(err, common.ErrUnauthenticated) {
		t.Fatalf("expected common.ErrUnauthenticated for garbage token, got %v", err)
	}

	// Token signed with a different secret.
	other, err := auth.GenerateToken("u-1", "a@b.com", "A", []byte("other-secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	if _, err := svc.Authenticate(ctx, other); !errors.Is(err, common.ErrUnauthenticated) {
		t.Fatalf("expected common.ErrUnauthenticated for foreign token, got %v", err)
	}

	// Expired token for an existing user.
	registered, err := svc.Register(ctx, "e@b.com", "secret1", "E")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	expired, err := auth.GenerateToken(registered.ID, registered.Email, registered.Name, []byte(testSecret), -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	if _, err := svc.Authenticate(ctx, expired); !errors.Is(err, common.ErrUnauthenticated) {
		t.Fatalf("expected common.ErrUnauthenticated for expired token, got %v", err)
	}
}
