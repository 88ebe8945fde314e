package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	sharedauth "visioon-backend/internal/shared/auth"
)

func TestProviderResolverResolvesValidToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/oauth2/v2/userinfo" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer provider-token" {
			t.Errorf("unexpected auth header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"sub":"123","email":"ann@x.com","name":"Ann"}`))
	}))
	defer srv.Close()

	r := &ProviderResolver{BaseURL: srv.URL, HTTPClient: srv.Client()}
	id, err := r.Resolve(context.Background(), "provider-token")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if id.UserID != "google:123" || id.Email != "ann@x.com" || id.Name != "Ann" {
		t.Fatalf("unexpected identity: %+v", id)
	}
}

func TestProviderResolverFallsBackToIDField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"456","email":"ann@x.com"}`))
	}))
	defer srv.Close()

	r := &ProviderResolver{BaseURL: srv.URL, HTTPClient: srv.Client()}
	id, err := r.Resolve(context.Background(), "tok")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if id.UserID != "google:456" {
		t.Fatalf("unexpected user id: %q", id.UserID)
	}
}

func TestProviderResolverRejectsNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid_token"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	r := &ProviderResolver{BaseURL: srv.URL, HTTPClient: srv.Client()}
	if _, err := r.Resolve(context.Background(), "bad"); !errors.Is(err, sharedauth.ErrUnresolved) {
		t.Fatalf("expected ErrUnresolved, got %v", err)
	}
}

func TestProviderResolverNetworkFailureIsUnresolved(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	r := &ProviderResolver{BaseURL: srv.URL}
	if _, err := r.Resolve(context.Background(), "tok"); !errors.Is(err, sharedauth.ErrUnresolved) {
		t.Fatalf("expected ErrUnresolved, got %v", err)
	}
}

func TestProviderResolverRejectsProfileWithoutSubject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"email":"ann@x.com"}`))
	}))
	defer srv.Close()

	r := &ProviderResolver{BaseURL: srv.URL, HTTPClient: srv.Client()}
	if _, err := r.Resolve(context.Background(), "tok"); !errors.Is(err, sharedauth.ErrUnresolved) {
		t.Fatalf("expected ErrUnresolved, got %v", err)
	}
}

func TestAppendTokenPreservesExistingQuery(t *testing.T) {
	got, err := appendToken("https://ui.example.com/auth?next=%2Fdash", "tok123")
	if err != nil {
		t.Fatalf("append token: %v", err)
	}
	if got != "https://ui.example.com/auth?next=%2Fdash&token=tok123" {
		t.Fatalf("unexpected redirect url: %q", got)
	}
}

func TestAppendTokenRequiresURL(t *testing.T) {
	if _, err := appendToken("", "tok"); err == nil {
		t.Fatalf("expected error for empty redirect url")
	}
}
