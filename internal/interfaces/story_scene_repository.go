package interfaces

import (
	"context"

	"vn-backend/internal/models"
)

// StorySceneRepository defines the interface for interacting with story scenes.
//
//go:generate mockery --name StorySceneRepository --output ./mocks --outpkg mocks --case=underscore
type StorySceneRepository interface {
	// Create inserts a new scene. Returns ErrSceneAlreadyExists when the
	// scene_id is already taken.
	Create(ctx context.Context, scene *models.StoryScene) error

	// List returns every scene in insertion order (ascending surrogate id).
	List(ctx context.Context) ([]models.StoryScene, error)

	// GetBySceneID retrieves one scene by its natural key. Returns
	// ErrSceneNotFound when absent.
	GetBySceneID(ctx context.Context, sceneID string) (*models.StoryScene, error)

	// UpdateFields rewrites exactly the supplied columns, leaving all
	// others untouched. The caller is responsible for allow-listing the
	// field names. Returns ErrSceneNotFound when no row matched.
	UpdateFields(ctx context.Context, sceneID string, fields map[string]interface{}) error

	// Delete removes a scene by scene_id. Deleting a scene_id that does
	// not exist is not an error.
	Delete(ctx context.Context, sceneID string) error
}
