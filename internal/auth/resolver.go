package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	sharedauth "visioon-backend/internal/shared/auth"
)

const defaultUserInfoBase = "https://www.googleapis.com"

// ProviderResolver validates a bearer token directly against the hosted
// identity provider's userinfo endpoint. It sits ahead of the session
// verifier in the resolver chain, so provider-issued access tokens work on
// protected routes without a separate login step.
type ProviderResolver struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewProviderResolver builds a ProviderResolver against the real provider.
func NewProviderResolver() *ProviderResolver {
	return &ProviderResolver{
		BaseURL:    defaultUserInfoBase,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Resolve asks the provider who the token belongs to. Any failure, network
// or otherwise, yields ErrUnresolved so the chain can fall through to the
// next resolver.
func (r *ProviderResolver) Resolve(ctx context.Context, token string) (sharedauth.Identity, error) {
	base := r.BaseURL
	if base == "" {
		base = defaultUserInfoBase
	}
	client := r.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/oauth2/v2/userinfo", nil)
	if err != nil {
		return sharedauth.Identity{}, sharedauth.ErrUnresolved
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := client.Do(req)
	if err != nil {
		return sharedauth.Identity{}, sharedauth.ErrUnresolved
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return sharedauth.Identity{}, sharedauth.ErrUnresolved
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return sharedauth.Identity{}, sharedauth.ErrUnresolved
	}
	if info.Sub == "" {
		info.Sub = info.ID
	}
	if info.Sub == "" {
		return sharedauth.Identity{}, sharedauth.ErrUnresolved
	}

	return sharedauth.Identity{
		UserID: "google:" + info.Sub,
		Email:  info.Email,
		Name:   info.Name,
	}, nil
}
