package service

import (
	"context"

	"vn-backend/internal/interfaces"
	"vn-backend/internal/models"

	"go.uber.org/zap"
)

// SaveService implements the save-slot operations. Two distinct update
// flows exist: the manual "save slot" flow rewrites identity fields, the
// continuous autosave flow rewrites only progress-tracking fields.
type SaveService struct {
	saves  interfaces.SaveRepository
	logger *zap.Logger
}

// NewSaveService creates a new SaveService.
func NewSaveService(saves interfaces.SaveRepository, logger *zap.Logger) *SaveService {
	return &SaveService{
		saves:  saves,
		logger: logger.Named("SaveService"),
	}
}

// Create stores a new save slot and returns it with id and save_time filled.
func (s *SaveService) Create(ctx context.Context, save *models.Save) (*models.Save, error) {
	if err := s.saves.Create(ctx, save); err != nil {
		return nil, err
	}
	return save, nil
}

// ListByUser returns the user's saves, most recent first.
func (s *SaveService) ListByUser(ctx context.Context, userID int64) ([]models.Save, error) {
	return s.saves.ListByUser(ctx, userID)
}

// UpdateSlot handles the manual save flow: name, scene pointer and
// variables are replaced, save_time is refreshed.
func (s *SaveService) UpdateSlot(ctx context.Context, id int64, saveName, currentScene string, variables models.Variables) error {
	return s.saves.UpdateSlot(ctx, id, saveName, currentScene, variables)
}

// UpdateAutosave handles the continuous flow: history, variables and scene
// pointer are replaced, save_time is refreshed. The slot name stays as-is.
func (s *SaveService) UpdateAutosave(ctx context.Context, id int64, sceneHistory, currentScene string, variables models.Variables) error {
	return s.saves.UpdateAutosave(ctx, id, sceneHistory, currentScene, variables)
}

// Delete removes one save slot.
func (s *SaveService) Delete(ctx context.Context, id int64) error {
	return s.saves.Delete(ctx, id)
}
