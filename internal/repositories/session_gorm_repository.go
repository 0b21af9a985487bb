package repositories

import (
	"errors"
	"fmt"

	"diario/internal/models"

	"gorm.io/gorm"
)

// GORMSessionRepository is a GORM implementation of SessionRepository.
type GORMSessionRepository struct {
	db *gorm.DB
}

// NewGORMSessionRepository creates a new instance of GORMSessionRepository.
func NewGORMSessionRepository(db *gorm.DB) *GORMSessionRepository {
	return &GORMSessionRepository{
		db: db,
	}
}

// Create persists a new session row.
func (r *GORMSessionRepository) Create(session *models.Session) error {
	if err := r.db.Create(session).Error; err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// FindUserByToken joins sessions against users to recover the caller's
// identity from a bearer token.
func (r *GORMSessionRepository) FindUserByToken(token string) (*models.User, error) {
	var user models.User
	err := r.db.
		Joins("JOIN sessions ON sessions.user_id = users.id").
		Where("sessions.token = ?", token).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("session token: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to resolve session token: %w", err)
	}
	return &user, nil
}

// DeleteByToken removes the session matching the token, if any.
func (r *GORMSessionRepository) DeleteByToken(token string) error {
	if err := r.db.Delete(&models.Session{}, "token = ?", token).Error; err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
