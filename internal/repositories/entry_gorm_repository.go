package repositories

import (
	"errors"
	"fmt"

	"diario/internal/models"

	"gorm.io/gorm"
)

// GORMEntryRepository is a GORM implementation of EntryRepository.
type GORMEntryRepository struct {
	db *gorm.DB
}

// NewGORMEntryRepository creates a new instance of GORMEntryRepository.
func NewGORMEntryRepository(db *gorm.DB) *GORMEntryRepository {
	return &GORMEntryRepository{
		db: db,
	}
}

// ListByUser retrieves all entries owned by the user, newest first
// (id descending, i.e. insertion order).
func (r *GORMEntryRepository) ListByUser(userID uint) ([]models.Entry, error) {
	var entries []models.Entry
	if err := r.db.Where("user_id = ?", userID).Order("id DESC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list entries for user %d: %w", userID, err)
	}
	return entries, nil
}

// GetOwned retrieves a single entry by id, but only if it belongs to userID.
func (r *GORMEntryRepository) GetOwned(id, userID uint) (*models.Entry, error) {
	var entry models.Entry
	if err := r.db.First(&entry, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("entry %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get entry %d: %w", id, err)
	}
	return &entry, nil
}

// Create creates a new entry in the database.
func (r *GORMEntryRepository) Create(entry *models.Entry) error {
	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create entry: %w", err)
	}
	return nil
}

// Update persists the full state of an existing entry.
func (r *GORMEntryRepository) Update(entry *models.Entry) error {
	res := r.db.Save(entry) // Save writes all fields, including nils
	if res.Error != nil {
		return fmt.Errorf("failed to update entry: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// GORM's Save doesn't return ErrRecordNotFound for an update that
		// matched nothing, so we check RowsAffected.
		return fmt.Errorf("entry %d: %w", entry.ID, ErrNotFound)
	}
	return nil
}

// DeleteOwned deletes the entry by id if it belongs to userID.
func (r *GORMEntryRepository) DeleteOwned(id, userID uint) error {
	res := r.db.Delete(&models.Entry{}, "id = ? AND user_id = ?", id, userID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete entry %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("entry %d: %w", id, ErrNotFound)
	}
	return nil
}
