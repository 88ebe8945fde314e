package users

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ErrInvalidCredentials covers both unknown email and wrong password so
// login failures don't reveal which one it was.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ValidationError describes rejected signup input. Messages are surfaced
// verbatim to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Signup validates the payload, hashes the password and stores the user.
// Emails are stored lowercased; duplicates (case-insensitive) return
// ErrDuplicateEmail.
func (s *Service) Signup(ctx context.Context, name, email, password string) (User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" || email == "" || password == "" {
		return User{}, &ValidationError{Message: "Please provide all required fields"}
	}
	if len(password) < minPasswordLength {
		return User{}, &ValidationError{Message: "Password must be at least 6 characters"}
	}
	if !emailPattern.MatchString(email) {
		return User{}, &ValidationError{Message: "Please provide a valid email address"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Repo.Create(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}

// Authenticate resolves an email (case-insensitive) and verifies the
// password. Unknown users and mismatches are indistinguishable.
func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	user, err := s.Repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}

	ok, err := VerifyPassword(user, password)
	if err != nil {
		return User{}, err
	}
	if !ok {
		return User{}, ErrInvalidCredentials
	}
	return user, nil
}

// VerifyPassword compares a candidate against the stored hash. A mismatch
// is a false result, not an error; only a malformed stored hash errors.
func VerifyPassword(user User, candidate string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(candidate))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("corrupt stored credential: %w", err)
}
