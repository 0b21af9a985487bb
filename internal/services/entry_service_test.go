package services_test

import (
	"testing"

	"diario/internal/repositories"
	"diario/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestEntryService_CreateEntry(t *testing.T) {
	repo := repositories.NewMockEntryRepository()
	service := services.NewEntryService(repo)

	entry, err := service.CreateEntry(1, "dia bom", "feliz")
	assert.NoError(t, err)
	assert.NotZero(t, entry.ID)
	assert.Equal(t, "dia bom", entry.Content)
	assert.NotNil(t, entry.Mood)
	assert.Equal(t, "feliz", *entry.Mood)
	assert.False(t, entry.CreatedAt.IsZero())
	assert.Nil(t, entry.UpdatedAt)

	// Mood is optional; blank normalizes to no mood
	entry, err = service.CreateEntry(1, "sem humor", "   ")
	assert.NoError(t, err)
	assert.Nil(t, entry.Mood)

	// Blank content is rejected, whitespace-only included
	_, err = service.CreateEntry(1, "", "feliz")
	assert.ErrorIs(t, err, services.ErrValidation)
	_, err = service.CreateEntry(1, "   ", "")
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestEntryService_ListEntries(t *testing.T) {
	repo := repositories.NewMockEntryRepository()
	service := services.NewEntryService(repo)

	first, _ := service.CreateEntry(1, "primeiro", "")
	second, _ := service.CreateEntry(1, "segundo", "")
	_, _ = service.CreateEntry(2, "de outro usuario", "")

	entries, err := service.ListEntries(1)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)

	// Newest first: insertion order descending
	assert.Equal(t, second.ID, entries[0].ID)
	assert.Equal(t, first.ID, entries[1].ID)

	// A user with no entries gets an empty list, not an error
	entries, err = service.ListEntries(99)
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEntryService_UpdateEntry(t *testing.T) {
	repo := repositories.NewMockEntryRepository()
	service := services.NewEntryService(repo)

	created, err := service.CreateEntry(1, "dia bom", "feliz")
	assert.NoError(t, err)

	updated, err := service.UpdateEntry(1, created.ID, "dia otimo", "radiante")
	assert.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "dia otimo", updated.Content)
	assert.Equal(t, "radiante", *updated.Mood)
	assert.NotNil(t, updated.UpdatedAt)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	// Mood not resent on update becomes no mood
	updated, err = service.UpdateEntry(1, created.ID, "dia otimo", "")
	assert.NoError(t, err)
	assert.Nil(t, updated.Mood)

	// Blank content rejected before any write
	_, err = service.UpdateEntry(1, created.ID, "  ", "feliz")
	assert.ErrorIs(t, err, services.ErrValidation)

	// Nonexistent entry
	_, err = service.UpdateEntry(1, 9999, "conteudo", "")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestEntryService_Ownership(t *testing.T) {
	repo := repositories.NewMockEntryRepository()
	service := services.NewEntryService(repo)

	created, err := service.CreateEntry(1, "segredo do usuario A", "")
	assert.NoError(t, err)

	// Another user touching the entry gets the same not-found outcome as a
	// missing id — never a different error, never success.
	_, err = service.UpdateEntry(2, created.ID, "tentativa de B", "")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	err = service.DeleteEntry(2, created.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	// The entry is untouched
	entries, err := service.ListEntries(1)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "segredo do usuario A", entries[0].Content)
}

func TestEntryService_DeleteEntry(t *testing.T) {
	repo := repositories.NewMockEntryRepository()
	service := services.NewEntryService(repo)

	created, err := service.CreateEntry(1, "para deletar", "")
	assert.NoError(t, err)

	assert.NoError(t, service.DeleteEntry(1, created.ID))

	// Deleting again reports not found both times
	assert.ErrorIs(t, service.DeleteEntry(1, created.ID), repositories.ErrNotFound)
	assert.ErrorIs(t, service.DeleteEntry(1, created.ID), repositories.ErrNotFound)
}
