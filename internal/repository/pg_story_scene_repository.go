package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"vn-backend/internal/interfaces"
	"vn-backend/internal/models"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// Compile-time check to ensure pgStorySceneRepository implements the interface.
var _ interfaces.StorySceneRepository = (*pgStorySceneRepository)(nil)

// "character" is a reserved word in PostgreSQL and has to stay quoted.
const storySceneColumns = `id, scene_id, text, music, sfx, background, "character", character_left, character_right, delay, diarytext, choice1_text, choice1_next, choice1_pos_x, choice1_pos_y, choice2_text, choice2_next, choice2_pos_x, choice2_pos_y, next, back`

const (
	createStorySceneQuery = `
		INSERT INTO story
			(scene_id, text, music, sfx, background, "character", character_left, character_right, delay, diarytext,
			 choice1_text, choice1_next, choice1_pos_x, choice1_pos_y, choice2_text, choice2_next, choice2_pos_x, choice2_pos_y, next, back)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING id`

	listStoryScenesQuery = `SELECT ` + storySceneColumns + ` FROM story ORDER BY id ASC`

	getStorySceneQuery = `SELECT ` + storySceneColumns + ` FROM story WHERE scene_id = $1`

	deleteStorySceneQuery = `DELETE FROM story WHERE scene_id = $1`
)

type pgStorySceneRepository struct {
	db     interfaces.DBTX
	logger *zap.Logger
}

// NewPgStorySceneRepository creates a new PostgreSQL-backed StorySceneRepository.
func NewPgStorySceneRepository(db interfaces.DBTX, logger *zap.Logger) interfaces.StorySceneRepository {
	return &pgStorySceneRepository{
		db:     db,
		logger: logger.Named("PgStorySceneRepo"),
	}
}

// Create inserts a new story scene record.
func (r *pgStorySceneRepository) Create(ctx context.Context, scene *models.StoryScene) error {
	err := r.db.QueryRow(ctx, createStorySceneQuery,
		scene.SceneID,
		scene.Text, scene.Music, scene.SFX, scene.Background,
		scene.Character, scene.CharacterLeft, scene.CharacterRight,
		scene.Delay, scene.DiaryText,
		scene.Choice1Text, scene.Choice1Next, scene.Choice1PosX, scene.Choice1PosY,
		scene.Choice2Text, scene.Choice2Next, scene.Choice2PosX, scene.Choice2PosY,
		scene.Next, scene.Back,
	).Scan(&scene.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			r.logger.Warn("Attempted to create duplicate scene", zap.String("sceneID", scene.SceneID))
			return models.ErrSceneAlreadyExists
		}
		r.logger.Error("Failed to create story scene", zap.Error(err), zap.String("sceneID", scene.SceneID))
		return fmt.Errorf("failed to create story scene: %w", err)
	}

	r.logger.Info("Story scene created", zap.String("sceneID", scene.SceneID), zap.Int64("id", scene.ID))
	return nil
}

// List retrieves every scene in insertion order.
func (r *pgStorySceneRepository) List(ctx context.Context) ([]models.StoryScene, error) {
	scenes := make([]models.StoryScene, 0)
	if err := pgxscan.Select(ctx, r.db, &scenes, listStoryScenesQuery); err != nil {
		r.logger.Error("Failed to query story scenes from postgres", zap.Error(err))
		return nil, fmt.Errorf("failed to query story scenes: %w", err)
	}
	return scenes, nil
}

// GetBySceneID retrieves one scene by its natural key.
func (r *pgStorySceneRepository) GetBySceneID(ctx context.Context, sceneID string) (*models.StoryScene, error) {
	scene := &models.StoryScene{}
	if err := pgxscan.Get(ctx, r.db, scene, getStorySceneQuery, sceneID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug("Story scene not found", zap.String("sceneID", sceneID))
			return nil, models.ErrSceneNotFound
		}
		r.logger.Error("Failed to get story scene", zap.Error(err), zap.String("sceneID", sceneID))
		return nil, fmt.Errorf("failed to get story scene %s: %w", sceneID, err)
	}
	return scene, nil
}

// UpdateFields rewrites exactly the supplied columns. Field names must come
// from a vetted set; values are always bound as parameters.
func (r *pgStorySceneRepository) UpdateFields(ctx context.Context, sceneID string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return models.ErrInvalidInput
	}

	// Sorted for a deterministic statement; the map order is not.
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	setClauses := make([]string, 0, len(fields))
	args := make([]interface{}, 0, len(fields)+1)
	argID := 1
	for _, name := range names {
		setClauses = append(setClauses, fmt.Sprintf("%q = $%d", name, argID))
		args = append(args, fields[name])
		argID++
	}

	query := "UPDATE story SET " + strings.Join(setClauses, ", ") + fmt.Sprintf(" WHERE scene_id = $%d", argID)
	args = append(args, sceneID)

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to update story scene fields", zap.Error(err), zap.String("sceneID", sceneID))
		return fmt.Errorf("failed to update story scene fields: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		r.logger.Warn("Attempted to update non-existent scene", zap.String("sceneID", sceneID))
		return models.ErrSceneNotFound
	}

	r.logger.Info("Story scene updated", zap.String("sceneID", sceneID), zap.Strings("fields", names))
	return nil
}

// Delete removes a scene by scene_id. A scene_id that matches nothing is
// reported as success, mirroring the authoring tool's expectations.
func (r *pgStorySceneRepository) Delete(ctx context.Context, sceneID string) error {
	if _, err := r.db.Exec(ctx, deleteStorySceneQuery, sceneID); err != nil {
		r.logger.Error("Failed to delete story scene", zap.Error(err), zap.String("sceneID", sceneID))
		return fmt.Errorf("failed to delete story scene: %w", err)
	}

	r.logger.Info("Story scene delete executed", zap.String("sceneID", sceneID))
	return nil
}
