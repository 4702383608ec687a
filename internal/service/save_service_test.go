package service_test

import (
	"context"
	"testing"
	"time"

	"vn-backend/internal/interfaces/mocks"
	"vn-backend/internal/models"
	"vn-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go.uber.org/zap"
)

func newSaveService(repo *mocks.SaveRepository) *service.SaveService {
	return service.NewSaveService(repo, zap.NewNop())
}

func TestSaveService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the slot with assigned fields", func(t *testing.T) {
		repo := new(mocks.SaveRepository)
		now := time.Now()
		repo.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
			save := args.Get(1).(*models.Save)
			save.ID = 11
			save.SaveTime = now
		}).Return(nil).Once()

		save, err := newSaveService(repo).Create(ctx, &models.Save{
			UserID:       3,
			SaveName:     "Chapter 2",
			CurrentScene: "ch2_intro",
			Variables:    models.Variables{"gold": float64(5)},
		})

		require.NoError(t, err)
		assert.EqualValues(t, 11, save.ID)
		assert.Equal(t, now, save.SaveTime)
		repo.AssertExpectations(t)
	})

	t.Run("Repository failure passes through", func(t *testing.T) {
		repo := new(mocks.SaveRepository)
		repo.On("Create", ctx, mock.Anything).Return(assert.AnError).Once()

		save, err := newSaveService(repo).Create(ctx, &models.Save{UserID: 3})

		assert.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, save)
		repo.AssertExpectations(t)
	})
}

func TestSaveService_Updates(t *testing.T) {
	ctx := context.Background()
	vars := models.Variables{"act": float64(2)}

	t.Run("Slot update reaches the slot path", func(t *testing.T) {
		repo := new(mocks.SaveRepository)
		repo.On("UpdateSlot", ctx, int64(4), "Renamed", "ch3", vars).Return(nil).Once()

		err := newSaveService(repo).UpdateSlot(ctx, 4, "Renamed", "ch3", vars)

		assert.NoError(t, err)
		repo.AssertNotCalled(t, "UpdateAutosave", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		repo.AssertExpectations(t)
	})

	t.Run("Autosave update reaches the autosave path", func(t *testing.T) {
		repo := new(mocks.SaveRepository)
		repo.On("UpdateAutosave", ctx, int64(4), "ch1,ch2,ch3", "ch3", vars).Return(nil).Once()

		err := newSaveService(repo).UpdateAutosave(ctx, 4, "ch1,ch2,ch3", "ch3", vars)

		assert.NoError(t, err)
		repo.AssertNotCalled(t, "UpdateSlot", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		repo.AssertExpectations(t)
	})

	t.Run("Unknown slot passes through", func(t *testing.T) {
		repo := new(mocks.SaveRepository)
		repo.On("UpdateSlot", ctx, int64(404), "x", "y", mock.Anything).Return(models.ErrSaveNotFound).Once()

		err := newSaveService(repo).UpdateSlot(ctx, 404, "x", "y", nil)

		assert.ErrorIs(t, err, models.ErrSaveNotFound)
		repo.AssertExpectations(t)
	})
}

func TestSaveService_ListByUser(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.SaveRepository)
	expected := []models.Save{{ID: 2, UserID: 3}, {ID: 1, UserID: 3}}
	repo.On("ListByUser", ctx, int64(3)).Return(expected, nil).Once()

	saves, err := newSaveService(repo).ListByUser(ctx, 3)

	require.NoError(t, err)
	assert.Equal(t, expected, saves)
	repo.AssertExpectations(t)
}

func TestSaveService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.SaveRepository)
	repo.On("Delete", ctx, int64(8)).Return(models.ErrSaveNotFound).Once()

	err := newSaveService(repo).Delete(ctx, 8)

	assert.ErrorIs(t, err, models.ErrSaveNotFound)
	repo.AssertExpectations(t)
}
