package mocks

import (
	"context"

	"vn-backend/internal/models"

	"github.com/stretchr/testify/mock"
)

// Mock SaveRepository
type SaveRepository struct {
	mock.Mock
}

func (m *SaveRepository) Create(ctx context.Context, save *models.Save) error {
	args := m.Called(ctx, save)
	return args.Error(0)
}

func (m *SaveRepository) ListByUser(ctx context.Context, userID int64) ([]models.Save, error) {
	args := m.Called(ctx, userID)
	saves, _ := args.Get(0).([]models.Save)
	return saves, args.Error(1)
}

func (m *SaveRepository) UpdateSlot(ctx context.Context, id int64, saveName, currentScene string, variables models.Variables) error {
	args := m.Called(ctx, id, saveName, currentScene, variables)
	return args.Error(0)
}

func (m *SaveRepository) UpdateAutosave(ctx context.Context, id int64, sceneHistory, currentScene string, variables models.Variables) error {
	args := m.Called(ctx, id, sceneHistory, currentScene, variables)
	return args.Error(0)
}

func (m *SaveRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
