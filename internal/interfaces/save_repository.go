package interfaces

import (
	"context"

	"vn-backend/internal/models"
)

// SaveRepository defines the interface for interacting with save slots.
//
//go:generate mockery --name SaveRepository --output ./mocks --outpkg mocks --case=underscore
type SaveRepository interface {
	// Create inserts a new save, serializing its variables for storage,
	// and fills in the assigned ID and server-side save_time.
	Create(ctx context.Context, save *models.Save) error

	// ListByUser returns all saves for a user, most recent save_time
	// first, with variables decoded (empty mapping when absent).
	ListByUser(ctx context.Context, userID int64) ([]models.Save, error)

	// UpdateSlot replaces the manual save-slot fields and refreshes
	// save_time. Returns ErrSaveNotFound when no row matched.
	UpdateSlot(ctx context.Context, id int64, saveName, currentScene string, variables models.Variables) error

	// UpdateAutosave replaces the progress-tracking fields and refreshes
	// save_time. Returns ErrSaveNotFound when no row matched.
	UpdateAutosave(ctx context.Context, id int64, sceneHistory, currentScene string, variables models.Variables) error

	// Delete removes one save. Returns ErrSaveNotFound when no row matched.
	Delete(ctx context.Context, id int64) error
}
