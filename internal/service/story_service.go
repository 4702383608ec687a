package service

import (
	"context"
	"fmt"

	"vn-backend/internal/interfaces"
	"vn-backend/internal/models"

	"go.uber.org/zap"
)

// StoryService implements authoring operations over the scene graph.
type StoryService struct {
	scenes interfaces.StorySceneRepository
	logger *zap.Logger
}

// NewStoryService creates a new StoryService.
func NewStoryService(scenes interfaces.StorySceneRepository, logger *zap.Logger) *StoryService {
	return &StoryService{
		scenes: scenes,
		logger: logger.Named("StoryService"),
	}
}

// Create stores a new scene. Only scene_id is mandatory; edges are stored
// without checking that the referenced scenes exist.
func (s *StoryService) Create(ctx context.Context, scene *models.StoryScene) error {
	return s.scenes.Create(ctx, scene)
}

// List returns every scene in insertion order.
func (s *StoryService) List(ctx context.Context) ([]models.StoryScene, error) {
	return s.scenes.List(ctx)
}

// Get returns one scene by its natural key.
func (s *StoryService) Get(ctx context.Context, sceneID string) (*models.StoryScene, error) {
	return s.scenes.GetBySceneID(ctx, sceneID)
}

// UpdatePartial applies an author-supplied field mapping through the fixed
// allow-list. A mapping that contains no updatable field is rejected rather
// than silently doing nothing.
func (s *StoryService) UpdatePartial(ctx context.Context, sceneID string, fields map[string]interface{}) error {
	allowed := models.FilterSceneFields(fields)
	if len(allowed) == 0 {
		s.logger.Debug("Scene update contained no updatable fields", zap.String("sceneID", sceneID))
		return fmt.Errorf("%w: no updatable scene fields supplied", models.ErrInvalidInput)
	}
	return s.scenes.UpdateFields(ctx, sceneID, allowed)
}

// Delete removes a scene by scene_id. Missing scenes are not an error.
func (s *StoryService) Delete(ctx context.Context, sceneID string) error {
	return s.scenes.Delete(ctx, sceneID)
}
