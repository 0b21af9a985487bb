package services

import (
	"fmt"
	"strings"
	"time"

	"diario/internal/models"
	"diario/internal/repositories"
)

// EntryService handles business logic for diary entries: input
// validation, ownership enforcement, and timestamp management.
type EntryService struct {
	repo repositories.EntryRepository
}

// NewEntryService creates a new EntryService.
func NewEntryService(repo repositories.EntryRepository) *EntryService {
	return &EntryService{
		repo: repo,
	}
}

// ListEntries retrieves the user's entries, newest first.
func (s *EntryService) ListEntries(userID uint) ([]models.Entry, error) {
	return s.repo.ListByUser(userID)
}

// CreateEntry creates a new entry for the user. Content must be
// non-blank; an absent or empty mood is normalized to no mood.
func (s *EntryService) CreateEntry(userID uint, content, mood string) (*models.Entry, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: content cannot be empty", ErrValidation)
	}

	entry := &models.Entry{
		UserID:    userID,
		Content:   content,
		Mood:      normalizeMood(mood),
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// UpdateEntry overwrites content and mood of an entry owned by the user
// and stamps updated_at. CreatedAt and ID never change. A mood that is
// not resent becomes no mood. Editing an entry that doesn't exist or
// belongs to another user yields the identical not-found outcome.
func (s *EntryService) UpdateEntry(userID, entryID uint, content, mood string) (*models.Entry, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: content cannot be empty", ErrValidation)
	}

	entry, err := s.repo.GetOwned(entryID, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	entry.Content = content
	entry.Mood = normalizeMood(mood)
	entry.UpdatedAt = &now

	if err := s.repo.Update(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// DeleteEntry removes an entry owned by the user, with the same
// ownership-or-not-found collapse as UpdateEntry.
func (s *EntryService) DeleteEntry(userID, entryID uint) error {
	return s.repo.DeleteOwned(entryID, userID)
}

func normalizeMood(mood string) *string {
	mood = strings.TrimSpace(mood)
	if mood == "" {
		return nil
	}
	return &mood
}
