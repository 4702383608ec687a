package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vn-backend/internal/handler"
	"vn-backend/internal/interfaces/mocks"
	"vn-backend/internal/models"
	"vn-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go.uber.org/zap"
)

type handlerFixture struct {
	router *gin.Engine
	users  *mocks.UserRepository
	saves  *mocks.SaveRepository
	scenes *mocks.StorySceneRepository
}

func newFixture() *handlerFixture {
	gin.SetMode(gin.TestMode)
	log := zap.NewNop()

	f := &handlerFixture{
		users:  new(mocks.UserRepository),
		saves:  new(mocks.SaveRepository),
		scenes: new(mocks.StorySceneRepository),
	}

	h := handler.NewRecordHandler(
		service.NewUserService(f.users, service.PlainPasswordVerifier{}, log),
		service.NewSaveService(f.saves, log),
		service.NewStoryService(f.scenes, log),
	)

	f.router = gin.New()
	h.RegisterRoutes(f.router)
	return f
}

func (f *handlerFixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestRegisterUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		f := newFixture()
		f.users.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			args.Get(1).(*models.User).ID = 42
		}).Return(nil).Once()

		w := f.do(t, http.MethodPost, "/users", `{"username":"alice","password":"secret","email":"alice@example.com"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{
			"success": true,
			"message": "User created",
			"user": {"id": 42, "username": "alice", "email": "alice@example.com"}
		}`, w.Body.String())
		f.users.AssertExpectations(t)
	})

	t.Run("Missing field is rejected before the service", func(t *testing.T) {
		f := newFixture()

		w := f.do(t, http.MethodPost, "/users", `{"username":"alice"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		f.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Duplicate username", func(t *testing.T) {
		f := newFixture()
		f.users.On("Create", mock.Anything, mock.Anything).Return(models.ErrUserAlreadyExists).Once()

		w := f.do(t, http.MethodPost, "/users", `{"username":"alice","password":"secret","email":"a@b.c"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.JSONEq(t, `{"success": false, "error": "Username already taken"}`, w.Body.String())
	})

	t.Run("Duplicate email", func(t *testing.T) {
		f := newFixture()
		f.users.On("Create", mock.Anything, mock.Anything).Return(models.ErrEmailAlreadyExists).Once()

		w := f.do(t, http.MethodPost, "/users", `{"username":"bob","password":"secret","email":"a@b.c"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.JSONEq(t, `{"success": false, "error": "Email already taken"}`, w.Body.String())
	})
}

func TestLogin(t *testing.T) {
	role := "user"
	stored := &models.User{ID: 3, Username: "alice", Password: "secret", Email: "alice@example.com", Role: &role}

	t.Run("Success omits the password", func(t *testing.T) {
		f := newFixture()
		f.users.On("GetByUsername", mock.Anything, "alice").Return(stored, nil).Once()

		w := f.do(t, http.MethodPost, "/login", `{"username":"alice","password":"secret"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{
			"success": true,
			"user": {"id": 3, "username": "alice", "email": "alice@example.com", "role": "user"}
		}`, w.Body.String())
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("Wrong password", func(t *testing.T) {
		f := newFixture()
		f.users.On("GetByUsername", mock.Anything, "alice").Return(stored, nil).Once()

		w := f.do(t, http.MethodPost, "/login", `{"username":"alice","password":"wrong"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"success": false, "error": "Invalid username or password"}`, w.Body.String())
	})

	t.Run("Unknown username gets the same answer as a wrong password", func(t *testing.T) {
		f := newFixture()
		f.users.On("GetByUsername", mock.Anything, "ghost").Return(nil, models.ErrUserNotFound).Once()

		w := f.do(t, http.MethodPost, "/login", `{"username":"ghost","password":"secret"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"success": false, "error": "Invalid username or password"}`, w.Body.String())
	})
}

func TestListUsers(t *testing.T) {
	f := newFixture()
	f.users.On("List", mock.Anything).Return([]models.User{
		{ID: 1, Username: "alice", Password: "secret", Email: "alice@example.com"},
	}, nil).Once()

	w := f.do(t, http.MethodGet, "/users", "")

	assert.Equal(t, http.StatusOK, w.Code)
	// The listing endpoint returns raw rows, password included.
	assert.JSONEq(t, `[{"id": 1, "username": "alice", "password": "secret", "email": "alice@example.com", "role": null}]`, w.Body.String())
}

func TestUpdateUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		f := newFixture()
		f.users.On("Update", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.ID == 5 && u.Username == "alice2"
		})).Return(nil).Once()

		w := f.do(t, http.MethodPut, "/users/5", `{"username":"alice2","password":"secret2","email":"a2@b.c"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success": true, "message": "User updated successfully"}`, w.Body.String())
	})

	t.Run("Non-numeric id", func(t *testing.T) {
		f := newFixture()

		w := f.do(t, http.MethodPut, "/users/abc", `{"username":"a","password":"b","email":"c"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		f.users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Unknown id", func(t *testing.T) {
		f := newFixture()
		f.users.On("Update", mock.Anything, mock.Anything).Return(models.ErrUserNotFound).Once()

		w := f.do(t, http.MethodPut, "/users/404", `{"username":"a","password":"b","email":"c"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"success": false, "error": "User not found"}`, w.Body.String())
	})
}

func TestDeleteUser(t *testing.T) {
	f := newFixture()
	f.users.On("Delete", mock.Anything, int64(5)).Return(nil).Once()

	w := f.do(t, http.MethodDelete, "/users/5", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success": true, "message": "User deleted successfully"}`, w.Body.String())
	f.users.AssertExpectations(t)
}

func TestCreateSave(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		f := newFixture()
		f.saves.On("Create", mock.Anything, mock.MatchedBy(func(s *models.Save) bool {
			return s.UserID == 3 && s.SaveName == "Chapter 2"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Save).ID = 11
		}).Return(nil).Once()

		w := f.do(t, http.MethodPost, "/saves", `{"user_id":3,"save_name":"Chapter 2","current_scene":"ch2_intro","variables":{"gold":5}}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"message":"Save created"`)
		assert.Contains(t, w.Body.String(), `"id":11`)
	})

	t.Run("Missing user_id is rejected", func(t *testing.T) {
		f := newFixture()

		w := f.do(t, http.MethodPost, "/saves", `{"save_name":"x"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		f.saves.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestUpdateSave(t *testing.T) {
	t.Run("Body with save_name takes the slot path", func(t *testing.T) {
		f := newFixture()
		f.saves.On("UpdateSlot", mock.Anything, int64(4), "Renamed", "ch3",
			models.Variables{"act": float64(2)}).Return(nil).Once()

		w := f.do(t, http.MethodPut, "/saves/4", `{"save_name":"Renamed","current_scene":"ch3","variables":{"act":2}}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success": true, "message": "Save updated"}`, w.Body.String())
		f.saves.AssertNotCalled(t, "UpdateAutosave", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Body without save_name takes the autosave path", func(t *testing.T) {
		f := newFixture()
		f.saves.On("UpdateAutosave", mock.Anything, int64(4), "ch1,ch2,ch3", "ch3",
			models.Variables{"act": float64(2)}).Return(nil).Once()

		w := f.do(t, http.MethodPut, "/saves/4", `{"scene_history":"ch1,ch2,ch3","current_scene":"ch3","variables":{"act":2}}`)

		assert.Equal(t, http.StatusOK, w.Code)
		f.saves.AssertNotCalled(t, "UpdateSlot", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown slot", func(t *testing.T) {
		f := newFixture()
		f.saves.On("UpdateAutosave", mock.Anything, int64(404), mock.Anything, mock.Anything, mock.Anything).
			Return(models.ErrSaveNotFound).Once()

		w := f.do(t, http.MethodPut, "/saves/404", `{"current_scene":"ch3"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"success": false, "error": "Save not found"}`, w.Body.String())
	})
}

func TestDeleteSave(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		f := newFixture()
		f.saves.On("Delete", mock.Anything, int64(8)).Return(nil).Once()

		w := f.do(t, http.MethodDelete, "/saves/8", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success": true, "message": "Save deleted"}`, w.Body.String())
	})

	t.Run("Unknown slot", func(t *testing.T) {
		f := newFixture()
		f.saves.On("Delete", mock.Anything, int64(404)).Return(models.ErrSaveNotFound).Once()

		w := f.do(t, http.MethodDelete, "/saves/404", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCreateScene(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		f := newFixture()
		f.scenes.On("Create", mock.Anything, mock.MatchedBy(func(s *models.StoryScene) bool {
			return s.SceneID == "ch1_intro" && s.Text != nil && *s.Text == "Hello"
		})).Return(nil).Once()

		w := f.do(t, http.MethodPost, "/story", `{"scene_id":"ch1_intro","text":"Hello"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"success": true, "message": "Scene created"}`, w.Body.String())
	})

	t.Run("Missing scene_id is rejected", func(t *testing.T) {
		f := newFixture()

		w := f.do(t, http.MethodPost, "/story", `{"text":"Hello"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		f.scenes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Duplicate scene_id", func(t *testing.T) {
		f := newFixture()
		f.scenes.On("Create", mock.Anything, mock.Anything).Return(models.ErrSceneAlreadyExists).Once()

		w := f.do(t, http.MethodPost, "/story", `{"scene_id":"dup"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.JSONEq(t, `{"success": false, "error": "Scene ID already taken"}`, w.Body.String())
	})
}

func TestGetScene(t *testing.T) {
	t.Run("Unknown scene", func(t *testing.T) {
		f := newFixture()
		f.scenes.On("GetBySceneID", mock.Anything, "ghost").Return(nil, models.ErrSceneNotFound).Once()

		w := f.do(t, http.MethodGet, "/story/ghost", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"success": false, "error": "Scene not found"}`, w.Body.String())
	})
}

func TestUpdateScene(t *testing.T) {
	t.Run("Only updatable fields reach the repository", func(t *testing.T) {
		f := newFixture()
		f.scenes.On("UpdateFields", mock.Anything, "ch1_intro", map[string]interface{}{
			"text": "rewritten",
		}).Return(nil).Once()

		w := f.do(t, http.MethodPut, "/story/ch1_intro", `{"text":"rewritten","scene_id":"hijack"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success": true, "message": "Scene updated"}`, w.Body.String())
	})

	t.Run("No updatable fields", func(t *testing.T) {
		f := newFixture()

		w := f.do(t, http.MethodPut, "/story/ch1_intro", `{"scene_id":"hijack"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		f.scenes.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDeleteScene(t *testing.T) {
	// Deletion reports success even when nothing matched.
	f := newFixture()
	f.scenes.On("Delete", mock.Anything, "ghost").Return(nil).Once()

	w := f.do(t, http.MethodDelete, "/story/ghost", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success": true, "message": "Scene deleted"}`, w.Body.String())
	f.scenes.AssertExpectations(t)
}
