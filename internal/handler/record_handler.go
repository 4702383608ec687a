package handler

import (
	"net/http"
	"strconv"

	"vn-backend/internal/models"
	"vn-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RecordHandler handles the HTTP surface over users, saves and story scenes.
type RecordHandler struct {
	users *service.UserService
	saves *service.SaveService
	story *service.StoryService
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(users *service.UserService, saves *service.SaveService, story *service.StoryService) *RecordHandler {
	return &RecordHandler{
		users: users,
		saves: saves,
		story: story,
	}
}

// RegisterRoutes wires the record endpoints into the router.
func (h *RecordHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/users", h.registerUser)
	router.POST("/login", h.login)
	router.GET("/users", h.listUsers)
	router.PUT("/users/:id", h.updateUser)
	router.DELETE("/users/:id", h.deleteUser)

	router.POST("/saves", h.createSave)
	router.GET("/saves/:user_id", h.listSaves)
	router.PUT("/saves/:id", h.updateSave)
	router.DELETE("/saves/:id", h.deleteSave)

	storyGroup := router.Group("/story")
	{
		storyGroup.POST("", h.createScene)
		storyGroup.GET("", h.listScenes)
		storyGroup.GET("/:scene_id", h.getScene)
		storyGroup.PUT("/:scene_id", h.updateScene)
		storyGroup.DELETE("/:scene_id", h.deleteScene)
	}
}

// parseIDParam extracts a numeric path parameter. A non-numeric value aborts
// the request with a 400 and returns false.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid " + name + " parameter"})
		return 0, false
	}
	return id, true
}
