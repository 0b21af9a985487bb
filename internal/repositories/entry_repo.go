package repositories

import "diario/internal/models"

// EntryRepository defines the interface for diary entry data access.
//
// Every per-entry operation is scoped to the owning user: the owner id is
// part of the lookup itself, so an entry belonging to another user is
// indistinguishable from one that does not exist.
type EntryRepository interface {
	ListByUser(userID uint) ([]models.Entry, error)
	GetOwned(id, userID uint) (*models.Entry, error)
	Create(entry *models.Entry) error
	Update(entry *models.Entry) error
	DeleteOwned(id, userID uint) error
}
