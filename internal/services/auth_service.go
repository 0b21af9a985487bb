package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"diario/internal/models"
	"diario/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrValidation covers recoverable bad-input failures; the wrapped
	// message says which rule was violated.
	ErrValidation = errors.New("validation failed")
	// ErrUsernameTaken is returned when registering an existing username.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrInvalidCredentials is deliberately generic: it never reveals
	// whether the username or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// sessionTokenBytes is the random length of a bearer token; hex-encoded
// it yields a fixed 64-character string.
const sessionTokenBytes = 32

// AuthService handles registration, login, logout, and identity
// resolution from persisted session tokens.
type AuthService struct {
	userRepo    repositories.UserRepository
	sessionRepo repositories.SessionRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, sessionRepo repositories.SessionRepository) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
	}
}

// RegisterUser validates the credentials, hashes the password, and stores
// the new account. Validation failures are recoverable; the caller
// re-prompts.
func (s *AuthService) RegisterUser(username, password string) error {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	if username == "" || password == "" {
		return fmt.Errorf("%w: all fields are required", ErrValidation)
	}
	if len(username) < 3 {
		return fmt.Errorf("%w: username must be at least 3 characters", ErrValidation)
	}
	if len(password) < 4 {
		return fmt.Errorf("%w: password must be at least 4 characters", ErrValidation)
	}

	if _, err := s.userRepo.GetByUsername(username); err == nil {
		return ErrUsernameTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("failed to check username: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: username,
		Password: string(hashedPassword),
	}
	if err := s.userRepo.Create(user); err != nil {
		return fmt.Errorf("failed to register user: %w", err)
	}
	return nil
}

// LoginUser authenticates a user and, on success, mints a random session
// token, persists it, and returns it alongside the user record.
func (s *AuthService) LoginUser(username, password string) (string, *models.User, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	if username == "" || password == "" {
		return "", nil, fmt.Errorf("%w: all fields are required", ErrValidation)
	}

	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := generateSessionToken()
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	session := &models.Session{
		UserID: user.ID,
		Token:  token,
	}
	if err := s.sessionRepo.Create(session); err != nil {
		return "", nil, fmt.Errorf("failed to persist session: %w", err)
	}

	return token, user, nil
}

// Logout invalidates the session for the token. Logging out a token that
// no longer exists succeeds: logout is idempotent.
func (s *AuthService) Logout(token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessionRepo.DeleteByToken(token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// UserFromToken resolves a bearer token to a user, or (nil, nil) when the
// token matches no session. Resolution is read-only and re-run on every
// request; identity is never cached.
func (s *AuthService) UserFromToken(token string) (*models.User, error) {
	if token == "" {
		return nil, nil
	}
	user, err := s.sessionRepo.FindUserByToken(token)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve token: %w", err)
	}
	return user, nil
}

// generateSessionToken returns a cryptographically random fixed-length
// hex token.
func generateSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
