package users

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestSignupHashesPassword(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	user, err := svc.Signup(context.Background(), "Ann", "Ann@X.com", "secret1")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected generated id")
	}
	if user.Email != "ann@x.com" {
		t.Fatalf("expected lowercased email, got %q", user.Email)
	}
	if user.PasswordHash == "" || strings.Contains(user.PasswordHash, "secret1") {
		t.Fatalf("password stored in recoverable form: %q", user.PasswordHash)
	}

	stored, err := svc.Repo.GetByEmail(context.Background(), "ann@x.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if strings.Contains(stored.PasswordHash, "secret1") {
		t.Fatalf("stored password recoverable in plaintext")
	}
}

func TestSignupValidation(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	cases := []struct {
		name     string
		userName string
		email    string
		password string
		want     string
	}{
		{"missing name", "", "a@x.com", "secret1", "Please provide all required fields"},
		{"missing email", "Ann", "", "secret1", "Please provide all required fields"},
		{"missing password", "Ann", "a@x.com", "", "Please provide all required fields"},
		{"short password", "Ann", "a@x.com", "12345", "Password must be at least 6 characters"},
		{"bad email", "Ann", "not-an-email", "secret1", "Please provide a valid email address"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Signup(context.Background(), tc.userName, tc.email, tc.password)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Message != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, verr.Message)
			}
		})
	}
}

func TestSignupDuplicateEmailCaseInsensitive(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	if _, err := svc.Signup(context.Background(), "Ann", "ANN@x.com", "secret1"); err != nil {
		t.Fatalf("first signup: %v", err)
	}
	_, err := svc.Signup(context.Background(), "Ann Again", "ann@X.COM", "secret2")
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	if _, err := svc.Signup(context.Background(), "Ann", "ann@x.com", "secret1"); err != nil {
		t.Fatalf("signup: %v", err)
	}

	user, err := svc.Authenticate(context.Background(), "ANN@x.com", "secret1")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if user.Email != "ann@x.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := svc.Authenticate(context.Background(), "ann@x.com", "wrong-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "nobody@x.com", "secret1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestVerifyPasswordCorruptHash(t *testing.T) {
	ok, err := VerifyPassword(User{PasswordHash: "not-a-bcrypt-hash"}, "secret1")
	if ok {
		t.Fatalf("expected verification failure")
	}
	if err == nil {
		t.Fatalf("expected corrupt credential error")
	}
}
