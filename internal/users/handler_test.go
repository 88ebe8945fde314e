package users_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"visioon-backend/internal/shared/auth"
	"visioon-backend/internal/shared/config"
	"visioon-backend/internal/shared/server"
	"visioon-backend/internal/users"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := auth.NewSessions("test-secret", time.Hour)
	svc := users.NewService(users.NewMemoryRepo())
	return server.NewRouter(server.RouterDeps{
		Config:       config.Config{Env: "dev"},
		Resolver:     auth.Chain{sessions},
		UsersHandler: users.NewHandler(svc, sessions),
	})
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decodeError(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body.Error
}

func TestSignupCreatesUser(t *testing.T) {
	router := newTestRouter(t)

	resp := postJSON(router, "/api/auth/signup", `{"name":"Ann","email":"ANN@x.com","password":"secret1"}`)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var out struct {
		Success bool `json:"success"`
		User    struct {
			ID    string `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !out.Success {
		t.Fatalf("expected success flag")
	}
	if out.User.Email != "ann@x.com" {
		t.Fatalf("email not lowercased: %q", out.User.Email)
	}
	if out.User.ID == "" {
		t.Fatalf("expected generated user id")
	}
	if strings.Contains(resp.Body.String(), "password") {
		t.Fatalf("credential material leaked in response: %s", resp.Body.String())
	}
}

func TestSignupDuplicateEmailCaseInsensitive(t *testing.T) {
	router := newTestRouter(t)

	first := postJSON(router, "/api/auth/signup", `{"name":"Ann","email":"ANN@x.com","password":"secret1"}`)
	if first.Code != http.StatusCreated {
		t.Fatalf("first signup failed: %d", first.Code)
	}

	second := postJSON(router, "/api/auth/signup", `{"name":"Other","email":"ann@x.com","password":"secret2"}`)
	if second.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate, got %d", second.Code)
	}
	if got := decodeError(t, second); got != "User with this email already exists" {
		t.Fatalf("unexpected error: %q", got)
	}
}

func TestSignupValidationMessages(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		name string
		body string
		want string
	}{
		{"missing fields", `{"name":"Ann"}`, "Please provide all required fields"},
		{"short password", `{"name":"Ann","email":"ann@x.com","password":"12345"}`, "Password must be at least 6 characters"},
		{"bad email", `{"name":"Ann","email":"not-an-email","password":"secret1"}`, "Please provide a valid email address"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postJSON(router, "/api/auth/signup", tc.body)
			if resp.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", resp.Code)
			}
			if got := decodeError(t, resp); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestLoginReturnsSessionToken(t *testing.T) {
	router := newTestRouter(t)

	if resp := postJSON(router, "/api/auth/signup", `{"name":"Ann","email":"ann@x.com","password":"secret1"}`); resp.Code != http.StatusCreated {
		t.Fatalf("signup failed: %d", resp.Code)
	}

	resp := postJSON(router, "/api/auth/login", `{"email":"ANN@X.COM","password":"secret1"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var out struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Token == "" || out.User.ID == "" {
		t.Fatalf("expected token and user in login response: %s", resp.Body.String())
	}

	sessions := auth.NewSessions("test-secret", time.Hour)
	id, err := sessions.Resolve(t.Context(), out.Token)
	if err != nil {
		t.Fatalf("issued token did not verify: %v", err)
	}
	if id.UserID != out.User.ID {
		t.Fatalf("token subject %q does not match user %q", id.UserID, out.User.ID)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router := newTestRouter(t)

	if resp := postJSON(router, "/api/auth/signup", `{"name":"Ann","email":"ann@x.com","password":"secret1"}`); resp.Code != http.StatusCreated {
		t.Fatalf("signup failed: %d", resp.Code)
	}

	cases := []struct {
		name string
		body string
	}{
		{"wrong password", `{"email":"ann@x.com","password":"wrong-1"}`},
		{"unknown email", `{"email":"ghost@x.com","password":"secret1"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postJSON(router, "/api/auth/login", tc.body)
			if resp.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", resp.Code)
			}
			if got := decodeError(t, resp); got != "Invalid email or password" {
				t.Fatalf("unexpected error: %q", got)
			}
		})
	}
}
