package repository

import (
	"context"
	"fmt"

	"vn-backend/internal/interfaces"
	"vn-backend/internal/models"

	"go.uber.org/zap"
)

// Compile-time check to ensure pgSaveRepository implements SaveRepository
var _ interfaces.SaveRepository = (*pgSaveRepository)(nil)

const (
	createSaveQuery = `
		INSERT INTO saves (user_id, save_name, current_scene, scene_history, variables)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, save_time`

	listSavesByUserQuery = `
		SELECT id, user_id, save_name, current_scene, scene_history, variables, save_time
		FROM saves
		WHERE user_id = $1
		ORDER BY save_time DESC`

	updateSaveSlotQuery = `
		UPDATE saves
		SET save_name = $2, current_scene = $3, variables = $4, save_time = CURRENT_TIMESTAMP
		WHERE id = $1`

	updateSaveAutosaveQuery = `
		UPDATE saves
		SET scene_history = $2, current_scene = $3, variables = $4, save_time = CURRENT_TIMESTAMP
		WHERE id = $1`

	deleteSaveQuery = `DELETE FROM saves WHERE id = $1`
)

type pgSaveRepository struct {
	db     interfaces.DBTX
	logger *zap.Logger
}

// NewPgSaveRepository creates a new PostgreSQL-backed SaveRepository.
func NewPgSaveRepository(db interfaces.DBTX, logger *zap.Logger) interfaces.SaveRepository {
	return &pgSaveRepository{
		db:     db,
		logger: logger.Named("PgSaveRepo"),
	}
}

// Create inserts a new save slot. Variables are serialized to a JSON
// document; save_time is assigned by the database.
func (r *pgSaveRepository) Create(ctx context.Context, save *models.Save) error {
	encoded, err := models.EncodeVariables(save.Variables)
	if err != nil {
		r.logger.Error("Failed to encode save variables", zap.Error(err), zap.Int64("userID", save.UserID))
		return fmt.Errorf("failed to encode save variables: %w", err)
	}

	err = r.db.QueryRow(ctx, createSaveQuery,
		save.UserID,
		save.SaveName,
		save.CurrentScene,
		save.SceneHistory,
		encoded,
	).Scan(&save.ID, &save.SaveTime)
	if err != nil {
		r.logger.Error("Failed to create save in postgres", zap.Error(err), zap.Int64("userID", save.UserID))
		return fmt.Errorf("failed to create save: %w", err)
	}
	if save.Variables == nil {
		save.Variables = models.Variables{}
	}

	r.logger.Info("Save created", zap.Int64("saveID", save.ID), zap.Int64("userID", save.UserID))
	return nil
}

// ListByUser returns all saves for a user, most recent first. The stored
// variables document is decoded per row, defaulting to an empty mapping.
func (r *pgSaveRepository) ListByUser(ctx context.Context, userID int64) ([]models.Save, error) {
	rows, err := r.db.Query(ctx, listSavesByUserQuery, userID)
	if err != nil {
		r.logger.Error("Failed to query saves from postgres", zap.Error(err), zap.Int64("userID", userID))
		return nil, fmt.Errorf("failed to query saves: %w", err)
	}
	defer rows.Close()

	saves := make([]models.Save, 0)
	for rows.Next() {
		var save models.Save
		var rawVariables string
		if err := rows.Scan(&save.ID, &save.UserID, &save.SaveName, &save.CurrentScene, &save.SceneHistory, &rawVariables, &save.SaveTime); err != nil {
			r.logger.Error("Failed to scan save row", zap.Error(err), zap.Int64("userID", userID))
			return nil, fmt.Errorf("failed to scan save row: %w", err)
		}
		save.Variables = models.DecodeVariables(rawVariables)
		saves = append(saves, save)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("Error iterating save rows", zap.Error(err), zap.Int64("userID", userID))
		return nil, fmt.Errorf("error iterating save rows: %w", err)
	}

	return saves, nil
}

// UpdateSlot replaces the manual save-slot fields and refreshes save_time.
func (r *pgSaveRepository) UpdateSlot(ctx context.Context, id int64, saveName, currentScene string, variables models.Variables) error {
	encoded, err := models.EncodeVariables(variables)
	if err != nil {
		return fmt.Errorf("failed to encode save variables: %w", err)
	}
	return r.execUpdate(ctx, updateSaveSlotQuery, id, saveName, currentScene, encoded)
}

// UpdateAutosave replaces the progress-tracking fields and refreshes save_time.
func (r *pgSaveRepository) UpdateAutosave(ctx context.Context, id int64, sceneHistory, currentScene string, variables models.Variables) error {
	encoded, err := models.EncodeVariables(variables)
	if err != nil {
		return fmt.Errorf("failed to encode save variables: %w", err)
	}
	return r.execUpdate(ctx, updateSaveAutosaveQuery, id, sceneHistory, currentScene, encoded)
}

func (r *pgSaveRepository) execUpdate(ctx context.Context, query string, id int64, args ...interface{}) error {
	queryArgs := append([]interface{}{id}, args...)
	cmdTag, err := r.db.Exec(ctx, query, queryArgs...)
	if err != nil {
		r.logger.Error("Failed to update save in postgres", zap.Error(err), zap.Int64("saveID", id))
		return fmt.Errorf("failed to update save: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		r.logger.Warn("Attempted to update non-existent save", zap.Int64("saveID", id))
		return models.ErrSaveNotFound
	}

	r.logger.Info("Save updated", zap.Int64("saveID", id))
	return nil
}

// Delete removes one save slot.
func (r *pgSaveRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, deleteSaveQuery, id)
	if err != nil {
		r.logger.Error("Failed to delete save from postgres", zap.Error(err), zap.Int64("saveID", id))
		return fmt.Errorf("failed to delete save: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		r.logger.Warn("Attempted to delete non-existent save", zap.Int64("saveID", id))
		return models.ErrSaveNotFound
	}

	r.logger.Info("Save deleted", zap.Int64("saveID", id))
	return nil
}
