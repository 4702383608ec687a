package handler

import (
	"errors"
	"net/http"

	"vn-backend/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// handleServiceError translates service errors into one consistent
// status/body mapping: validation 400, not-found 404, conflict 409,
// bad credentials 401, everything else 500.
func handleServiceError(c *gin.Context, err error) {
	var statusCode int
	var errResp models.ErrorResponse

	switch {
	case errors.Is(err, models.ErrInvalidCredentials):
		statusCode = http.StatusUnauthorized
		errResp = models.ErrorResponse{Error: "Invalid username or password"}
	case errors.Is(err, models.ErrUserAlreadyExists):
		statusCode = http.StatusConflict
		errResp = models.ErrorResponse{Error: "Username already taken"}
	case errors.Is(err, models.ErrEmailAlreadyExists):
		statusCode = http.StatusConflict
		errResp = models.ErrorResponse{Error: "Email already taken"}
	case errors.Is(err, models.ErrSceneAlreadyExists):
		statusCode = http.StatusConflict
		errResp = models.ErrorResponse{Error: "Scene ID already taken"}
	case errors.Is(err, models.ErrUserNotFound):
		statusCode = http.StatusNotFound
		errResp = models.ErrorResponse{Error: "User not found"}
	case errors.Is(err, models.ErrSaveNotFound):
		statusCode = http.StatusNotFound
		errResp = models.ErrorResponse{Error: "Save not found"}
	case errors.Is(err, models.ErrSceneNotFound):
		statusCode = http.StatusNotFound
		errResp = models.ErrorResponse{Error: "Scene not found"}
	case errors.Is(err, models.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		errResp = models.ErrorResponse{Error: err.Error()}
	default:
		zap.L().Error("Unhandled internal error in handleServiceError", zap.Error(err))
		statusCode = http.StatusInternalServerError
		errResp = models.ErrorResponse{Error: "An unexpected internal error occurred"}
	}

	c.AbortWithStatusJSON(statusCode, errResp)
}
