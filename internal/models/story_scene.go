package models

// StoryScene is one node in the branching narrative graph. The natural key
// is SceneID; the surrogate id only fixes the listing order. Every other
// column is optional and stored exactly as the author sent it — choice/next/
// back references are not validated against existing scenes.
type StoryScene struct {
	ID             int64   `db:"id" json:"id"`
	SceneID        string  `db:"scene_id" json:"scene_id"`
	Text           *string `db:"text" json:"text"`
	Music          *string `db:"music" json:"music"`
	SFX            *string `db:"sfx" json:"sfx"`
	Background     *string `db:"background" json:"background"`
	Character      *string `db:"character" json:"character"`
	CharacterLeft  *string `db:"character_left" json:"character_left"`
	CharacterRight *string `db:"character_right" json:"character_right"`
	Delay          *int    `db:"delay" json:"delay"`
	DiaryText      *string `db:"diarytext" json:"diarytext"`
	Choice1Text    *string `db:"choice1_text" json:"choice1_text"`
	Choice1Next    *string `db:"choice1_next" json:"choice1_next"`
	Choice1PosX    *string `db:"choice1_pos_x" json:"choice1_pos_x"`
	Choice1PosY    *string `db:"choice1_pos_y" json:"choice1_pos_y"`
	Choice2Text    *string `db:"choice2_text" json:"choice2_text"`
	Choice2Next    *string `db:"choice2_next" json:"choice2_next"`
	Choice2PosX    *string `db:"choice2_pos_x" json:"choice2_pos_x"`
	Choice2PosY    *string `db:"choice2_pos_y" json:"choice2_pos_y"`
	Next           *string `db:"next" json:"next"`
	Back           *string `db:"back" json:"back"`
}

// sceneUpdatableColumns is the fixed set of columns a partial scene update
// may touch. scene_id and the surrogate id are deliberately absent.
var sceneUpdatableColumns = map[string]struct{}{
	"text":            {},
	"music":           {},
	"sfx":             {},
	"background":      {},
	"character":       {},
	"character_left":  {},
	"character_right": {},
	"delay":           {},
	"diarytext":       {},
	"choice1_text":    {},
	"choice1_next":    {},
	"choice1_pos_x":   {},
	"choice1_pos_y":   {},
	"choice2_text":    {},
	"choice2_next":    {},
	"choice2_pos_x":   {},
	"choice2_pos_y":   {},
	"next":            {},
	"back":            {},
}

// FilterSceneFields returns only the entries whose keys are updatable scene
// columns, preserving the supplied values untouched.
func FilterSceneFields(fields map[string]interface{}) map[string]interface{} {
	filtered := make(map[string]interface{}, len(fields))
	for name, value := range fields {
		if _, ok := sceneUpdatableColumns[name]; ok {
			filtered[name] = value
		}
	}
	return filtered
}
