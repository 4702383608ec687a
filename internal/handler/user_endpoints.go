package handler

import (
	"net/http"

	"vn-backend/internal/models"

	"github.com/gin-gonic/gin"
)

func (h *RecordHandler) registerUser(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.Username, req.Password, req.Email)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	registrationsTotal.Inc()

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User created",
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

func (h *RecordHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user, err := h.users.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		loginsTotal.WithLabelValues("failure").Inc()
		handleServiceError(c, err)
		return
	}

	loginsTotal.WithLabelValues("success").Inc()

	// The password never leaves through this endpoint.
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"role":     user.Role,
		},
	})
}

func (h *RecordHandler) listUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *RecordHandler) updateUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{Error: "username, password and email are required: " + err.Error()})
		return
	}

	if err := h.users.Update(c.Request.Context(), id, req.Username, req.Password, req.Email); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.StatusResponse{Success: true, Message: "User updated successfully"})
}

func (h *RecordHandler) deleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.StatusResponse{Success: true, Message: "User deleted successfully"})
}
