package repositories

import (
	"errors"

	"diario/internal/models"
)

// ErrNotFound is returned when a lookup matches no row. For entries it
// deliberately covers both "no such id" and "owned by someone else" so
// callers cannot tell the two apart.
var ErrNotFound = errors.New("record not found")

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	GetByID(id uint) (*models.User, error)
}
