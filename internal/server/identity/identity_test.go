package identity

import (
	"errors"
	"testing"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
)

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		userName string
		wantErr  bool
	}{
		{"valid", "a@b.com", "secret1", "A", false},
		{"valid subdomain", "user@mail.example.org", "secret1", "U", false},
		{"missing email", "", "secret1", "A", true},
		{"missing password", "a@b.com", "", "A", true},
		{"missing name", "a@b.com", "secret1", "", true},
		{"no at sign", "ab.com", "secret1", "A", true},
		{"no domain dot", "a@bcom", "secret1", "A", true},
		{"whitespace in email", "a b@c.com", "secret1", "A", true},
		{"short password", "a@b.com", "five5", "A", true},
		{"six char password", "a@b.com", "sixsix", "A", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRegistration(tc.email, tc.password, tc.userName)
			if tc.wantErr {
				if !errors.Is(err, common.ErrInvalidInput) {
					t.Fatalf("expected common.ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateLogin(t *testing.T) {
	if err := ValidateLogin("a@b.com", "secret1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateLogin("", "secret1"); !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("expected common.ErrInvalidInput for empty email, got %v", err)
	}
	if err := ValidateLogin("a@b.com", ""); !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("expected common.ErrInvalidInput for empty password, got %v", err)
	}
}
