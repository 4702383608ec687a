package mocks

import (
	"context"

	"vn-backend/internal/models"

	"github.com/stretchr/testify/mock"
)

// Mock StorySceneRepository
type StorySceneRepository struct {
	mock.Mock
}

func (m *StorySceneRepository) Create(ctx context.Context, scene *models.StoryScene) error {
	args := m.Called(ctx, scene)
	return args.Error(0)
}

func (m *StorySceneRepository) List(ctx context.Context) ([]models.StoryScene, error) {
	args := m.Called(ctx)
	scenes, _ := args.Get(0).([]models.StoryScene)
	return scenes, args.Error(1)
}

func (m *StorySceneRepository) GetBySceneID(ctx context.Context, sceneID string) (*models.StoryScene, error) {
	args := m.Called(ctx, sceneID)
	scene, _ := args.Get(0).(*models.StoryScene)
	return scene, args.Error(1)
}

func (m *StorySceneRepository) UpdateFields(ctx context.Context, sceneID string, fields map[string]interface{}) error {
	args := m.Called(ctx, sceneID, fields)
	return args.Error(0)
}

func (m *StorySceneRepository) Delete(ctx context.Context, sceneID string) error {
	args := m.Called(ctx, sceneID)
	return args.Error(0)
}
