package repository

import (
	"context"
	"errors"
	"fmt"

	"vn-backend/internal/interfaces"
	"vn-backend/internal/models"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// Compile-time check to ensure pgUserRepository implements UserRepository
var _ interfaces.UserRepository = (*pgUserRepository)(nil)

const (
	createUserQuery = `INSERT INTO users (username, password, email) VALUES ($1, $2, $3) RETURNING id`

	getUserByUsernameQuery = `SELECT id, username, password, email, role FROM users WHERE username = $1`

	listUsersQuery = `SELECT id, username, password, email, role FROM users ORDER BY id ASC`

	updateUserQuery = `UPDATE users SET username = $2, password = $3, email = $4 WHERE id = $1`

	deleteUserQuery = `DELETE FROM users WHERE id = $1`
)

type pgUserRepository struct {
	db     interfaces.DBTX
	logger *zap.Logger
}

// NewPgUserRepository creates a new PostgreSQL-backed UserRepository.
func NewPgUserRepository(db interfaces.DBTX, logger *zap.Logger) interfaces.UserRepository {
	return &pgUserRepository{
		db:     db,
		logger: logger.Named("PgUserRepo"),
	}
}

// Create inserts a new user into the database.
func (r *pgUserRepository) Create(ctx context.Context, user *models.User) error {
	err := r.db.QueryRow(ctx, createUserQuery, user.Username, user.Password, user.Email).Scan(&user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505 is unique_violation; the constraint name tells username and
		// email conflicts apart.
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			logFields := []zap.Field{zap.String("username", user.Username), zap.String("email", user.Email)}
			switch pgErr.ConstraintName {
			case "users_email_key":
				r.logger.Warn("Attempted to create duplicate user by email", logFields...)
				return models.ErrEmailAlreadyExists
			default:
				r.logger.Warn("Attempted to create duplicate user by username", logFields...)
				return models.ErrUserAlreadyExists
			}
		}
		r.logger.Error("Failed to create user in postgres", zap.Error(err), zap.String("username", user.Username))
		return fmt.Errorf("failed to create user in postgres: %w", err)
	}
	r.logger.Info("User created", zap.Int64("userID", user.ID), zap.String("username", user.Username))
	return nil
}

// GetByUsername retrieves a user by their username.
func (r *pgUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRow(ctx, getUserByUsernameQuery, username).Scan(
		&user.ID, &user.Username, &user.Password, &user.Email, &user.Role,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug("User not found by username", zap.String("username", username))
			return nil, models.ErrUserNotFound
		}
		r.logger.Error("Failed to get user by username from postgres", zap.Error(err), zap.String("username", username))
		return nil, fmt.Errorf("failed to get user by username from postgres: %w", err)
	}
	return user, nil
}

// List retrieves all user rows.
func (r *pgUserRepository) List(ctx context.Context) ([]models.User, error) {
	users := make([]models.User, 0)
	if err := pgxscan.Select(ctx, r.db, &users, listUsersQuery); err != nil {
		r.logger.Error("Failed to query users from postgres", zap.Error(err))
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	return users, nil
}

// Update replaces username, password and email for the given user id.
func (r *pgUserRepository) Update(ctx context.Context, user *models.User) error {
	cmdTag, err := r.db.Exec(ctx, updateUserQuery, user.ID, user.Username, user.Password, user.Email)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if pgErr.ConstraintName == "users_email_key" {
				r.logger.Warn("Attempted to update user with duplicate email", zap.Int64("userID", user.ID))
				return models.ErrEmailAlreadyExists
			}
			r.logger.Warn("Attempted to update user with duplicate username", zap.Int64("userID", user.ID))
			return models.ErrUserAlreadyExists
		}
		r.logger.Error("Failed to update user in postgres", zap.Error(err), zap.Int64("userID", user.ID))
		return fmt.Errorf("failed to update user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		r.logger.Warn("Attempted to update non-existent user", zap.Int64("userID", user.ID))
		return models.ErrUserNotFound
	}

	r.logger.Info("User updated", zap.Int64("userID", user.ID))
	return nil
}

// Delete removes a user. Saves go with it via the cascading foreign key.
func (r *pgUserRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, deleteUserQuery, id)
	if err != nil {
		r.logger.Error("Failed to delete user from postgres", zap.Error(err), zap.Int64("userID", id))
		return fmt.Errorf("failed to delete user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		r.logger.Warn("Attempted to delete non-existent user", zap.Int64("userID", id))
		return models.ErrUserNotFound
	}

	r.logger.Info("User deleted", zap.Int64("userID", id))
	return nil
}
