package handler

import "vn-backend/internal/models"

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Email    string `json:"email" binding:"required"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type updateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Email    string `json:"email" binding:"required"`
}

type createSaveRequest struct {
	UserID       int64            `json:"user_id" binding:"required"`
	SaveName     string           `json:"save_name"`
	CurrentScene string           `json:"current_scene"`
	SceneHistory string           `json:"scene_history"`
	Variables    models.Variables `json:"variables"`
}

// updateSaveRequest covers both save-update flows on PUT /saves/:id.
// A body carrying save_name is the manual slot flow; without it the request
// is an autosave.
type updateSaveRequest struct {
	SaveName     *string          `json:"save_name"`
	CurrentScene string           `json:"current_scene"`
	SceneHistory string           `json:"scene_history"`
	Variables    models.Variables `json:"variables"`
}

type createSceneRequest struct {
	SceneID        string  `json:"scene_id" binding:"required"`
	Text           *string `json:"text"`
	Music          *string `json:"music"`
	SFX            *string `json:"sfx"`
	Background     *string `json:"background"`
	Character      *string `json:"character"`
	CharacterLeft  *string `json:"character_left"`
	CharacterRight *string `json:"character_right"`
	Delay          *int    `json:"delay"`
	DiaryText      *string `json:"diarytext"`
	Choice1Text    *string `json:"choice1_text"`
	Choice1Next    *string `json:"choice1_next"`
	Choice1PosX    *string `json:"choice1_pos_x"`
	Choice1PosY    *string `json:"choice1_pos_y"`
	Choice2Text    *string `json:"choice2_text"`
	Choice2Next    *string `json:"choice2_next"`
	Choice2PosX    *string `json:"choice2_pos_x"`
	Choice2PosY    *string `json:"choice2_pos_y"`
	Next           *string `json:"next"`
	Back           *string `json:"back"`
}

func (req *createSceneRequest) toModel() *models.StoryScene {
	return &models.StoryScene{
		SceneID:        req.SceneID,
		Text:           req.Text,
		Music:          req.Music,
		SFX:            req.SFX,
		Background:     req.Background,
		Character:      req.Character,
		CharacterLeft:  req.CharacterLeft,
		CharacterRight: req.CharacterRight,
		Delay:          req.Delay,
		DiaryText:      req.DiaryText,
		Choice1Text:    req.Choice1Text,
		Choice1Next:    req.Choice1Next,
		Choice1PosX:    req.Choice1PosX,
		Choice1PosY:    req.Choice1PosY,
		Choice2Text:    req.Choice2Text,
		Choice2Next:    req.Choice2Next,
		Choice2PosX:    req.Choice2PosX,
		Choice2PosY:    req.Choice2PosY,
		Next:           req.Next,
		Back:           req.Back,
	}
}
