package repositories

import "diario/internal/models"

// SessionRepository defines the interface for persisted session tokens.
type SessionRepository interface {
	Create(session *models.Session) error
	// FindUserByToken resolves a bearer token to the user it was minted
	// for, or ErrNotFound if no session row matches.
	FindUserByToken(token string) (*models.User, error)
	// DeleteByToken removes the session for the token. Deleting a token
	// that doesn't exist is not an error (idempotent logout).
	DeleteByToken(token string) error
}
