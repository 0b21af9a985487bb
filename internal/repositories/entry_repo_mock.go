package repositories

import (
	"fmt"
	"sort"
	"sync"

	"diario/internal/models"
)

// MockEntryRepository is an in-memory implementation of EntryRepository.
type MockEntryRepository struct {
	entries map[uint]models.Entry
	nextID  uint
	mu      sync.RWMutex
}

// NewMockEntryRepository creates a new instance of MockEntryRepository.
func NewMockEntryRepository() *MockEntryRepository {
	return &MockEntryRepository{
		entries: make(map[uint]models.Entry),
		nextID:  1,
	}
}

// ListByUser returns the user's entries, newest first (id descending).
func (r *MockEntryRepository) ListByUser(userID uint) ([]models.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entryList := make([]models.Entry, 0, len(r.entries))
	for _, e := range r.entries {
		if e.UserID == userID {
			entryList = append(entryList, e)
		}
	}
	sort.Slice(entryList, func(i, j int) bool {
		return entryList[i].ID > entryList[j].ID
	})
	return entryList, nil
}

// GetOwned returns the entry by id if it belongs to userID.
func (r *MockEntryRepository) GetOwned(id, userID uint) (*models.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[id]
	if !ok || entry.UserID != userID {
		return nil, fmt.Errorf("entry %d: %w", id, ErrNotFound)
	}
	return &entry, nil
}

// Create adds a new entry, assigning the next id.
func (r *MockEntryRepository) Create(entry *models.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.ID == 0 {
		entry.ID = r.nextID
		r.nextID++
	}
	r.entries[entry.ID] = *entry
	return nil
}

// Update overwrites an existing entry.
func (r *MockEntryRepository) Update(entry *models.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[entry.ID]; !ok {
		return fmt.Errorf("entry %d: %w", entry.ID, ErrNotFound)
	}
	r.entries[entry.ID] = *entry
	return nil
}

// DeleteOwned removes the entry by id if it belongs to userID.
func (r *MockEntryRepository) DeleteOwned(id, userID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[id]
	if !ok || entry.UserID != userID {
		return fmt.Errorf("entry %d: %w", id, ErrNotFound)
	}
	delete(r.entries, id)
	return nil
}
