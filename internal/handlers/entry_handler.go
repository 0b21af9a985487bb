package handlers

import (
	"errors"
	"log"

	"diario/internal/middleware"
	"diario/internal/models"
	"diario/internal/repositories"
	"diario/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// EntryHandler handles HTTP requests for diary entries.
type EntryHandler struct {
	service  *services.EntryService
	validate *validator.Validate
}

// NewEntryHandler creates a new EntryHandler.
func NewEntryHandler(service *services.EntryService) *EntryHandler {
	return &EntryHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the entry routes with the Fiber app. Every
// route requires the auth middleware: unauthenticated requests never
// reach the handlers.
func (h *EntryHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	entryRoutes := router.Group("/entries", auth)
	entryRoutes.Get("/", h.HandleListEntries)
	entryRoutes.Post("/", h.HandleCreateEntry)
	entryRoutes.Put("/:id", h.HandleUpdateEntry)
	entryRoutes.Delete("/:id", h.HandleDeleteEntry)
}

// EntryRequest represents the request body for creating or updating an
// entry. Mood is optional; when it is not resent on update, the entry
// ends up with no mood.
type EntryRequest struct {
	Content string `json:"content" validate:"required"`
	Mood    string `json:"mood"`
}

// entryJSON is the wire shape of an entry, with timestamps in the fixed
// display format.
type entryJSON struct {
	ID        uint    `json:"id"`
	Content   string  `json:"content"`
	Mood      *string `json:"mood"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt *string `json:"updated_at"`
}

func toEntryJSON(entry models.Entry) entryJSON {
	out := entryJSON{
		ID:        entry.ID,
		Content:   entry.Content,
		Mood:      entry.Mood,
		CreatedAt: entry.CreatedAt.Format(models.TimeLayout),
	}
	if entry.UpdatedAt != nil {
		formatted := entry.UpdatedAt.Format(models.TimeLayout)
		out.UpdatedAt = &formatted
	}
	return out
}

// HandleListEntries retrieves all entries of the authenticated user,
// newest first.
func (h *EntryHandler) HandleListEntries(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	entries, err := h.service.ListEntries(user.ID)
	if err != nil {
		log.Printf("Error listing entries for user %d: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "could not retrieve entries",
		})
	}

	entryList := make([]entryJSON, 0, len(entries))
	for _, entry := range entries {
		entryList = append(entryList, toEntryJSON(entry))
	}
	return c.JSON(fiber.Map{
		"entries": entryList,
	})
}

// HandleCreateEntry creates a new entry for the authenticated user.
func (h *EntryHandler) HandleCreateEntry(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req EntryRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create entry request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": validationMessage(err),
		})
	}

	entry, err := h.service.CreateEntry(user.ID, req.Content, req.Mood)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		log.Printf("Error creating entry for user %d: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "could not create entry",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "entry created successfully",
		"entry":   toEntryJSON(*entry),
	})
}

// HandleUpdateEntry overwrites an existing entry owned by the
// authenticated user.
func (h *EntryHandler) HandleUpdateEntry(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	entryID, err := c.ParamsInt("id")
	if err != nil || entryID <= 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "entry not found",
		})
	}

	var req EntryRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update entry request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": validationMessage(err),
		})
	}

	entry, err := h.service.UpdateEntry(user.ID, uint(entryID), req.Content, req.Mood)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "entry not found",
			})
		}
		log.Printf("Error updating entry %d for user %d: %v", entryID, user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "could not update entry",
		})
	}

	return c.JSON(fiber.Map{
		"message": "entry updated successfully",
		"entry":   toEntryJSON(*entry),
	})
}

// HandleDeleteEntry removes an entry owned by the authenticated user.
func (h *EntryHandler) HandleDeleteEntry(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	entryID, err := c.ParamsInt("id")
	if err != nil || entryID <= 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "entry not found",
		})
	}

	if err := h.service.DeleteEntry(user.ID, uint(entryID)); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "entry not found",
			})
		}
		log.Printf("Error deleting entry %d for user %d: %v", entryID, user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "could not delete entry",
		})
	}

	return c.JSON(fiber.Map{
		"message": "entry deleted successfully",
	})
}
