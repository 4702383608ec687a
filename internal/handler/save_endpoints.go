package handler

import (
	"net/http"

	"vn-backend/internal/models"

	"github.com/gin-gonic/gin"
)

func (h *RecordHandler) createSave(c *gin.Context) {
	var req createSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	save := &models.Save{
		UserID:       req.UserID,
		SaveName:     req.SaveName,
		CurrentScene: req.CurrentScene,
		SceneHistory: req.SceneHistory,
		Variables:    req.Variables,
	}

	created, err := h.saves.Create(c.Request.Context(), save)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	savesCreatedTotal.Inc()

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Save created",
		"save":    created,
	})
}

func (h *RecordHandler) listSaves(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	saves, err := h.saves.ListByUser(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, saves)
}

func (h *RecordHandler) updateSave(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req updateSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	var err error
	if req.SaveName != nil {
		err = h.saves.UpdateSlot(c.Request.Context(), id, *req.SaveName, req.CurrentScene, req.Variables)
	} else {
		err = h.saves.UpdateAutosave(c.Request.Context(), id, req.SceneHistory, req.CurrentScene, req.Variables)
	}
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.StatusResponse{Success: true, Message: "Save updated"})
}

func (h *RecordHandler) deleteSave(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.saves.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.StatusResponse{Success: true, Message: "Save deleted"})
}
