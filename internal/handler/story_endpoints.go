package handler

import (
	"net/http"

	"vn-backend/internal/models"

	"github.com/gin-gonic/gin"
)

func (h *RecordHandler) createScene(c *gin.Context) {
	var req createSceneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := h.story.Create(c.Request.Context(), req.toModel()); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.StatusResponse{Success: true, Message: "Scene created"})
}

func (h *RecordHandler) listScenes(c *gin.Context) {
	scenes, err := h.story.List(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, scenes)
}

func (h *RecordHandler) getScene(c *gin.Context) {
	scene, err := h.story.Get(c.Request.Context(), c.Param("scene_id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, scene)
}

func (h *RecordHandler) updateScene(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := h.story.UpdatePartial(c.Request.Context(), c.Param("scene_id"), fields); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.StatusResponse{Success: true, Message: "Scene updated"})
}

func (h *RecordHandler) deleteScene(c *gin.Context) {
	if err := h.story.Delete(c.Request.Context(), c.Param("scene_id")); err != nil {
		handleServiceError(c, err)
		return
	}

	// Success is reported whether or not a row matched.
	c.JSON(http.StatusOK, models.StatusResponse{Success: true, Message: "Scene deleted"})
}
