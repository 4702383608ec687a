package models

import (
	"encoding/json"
	"strings"
	"time"
)

// Variables is the free-form key/value progress state attached to a save.
// It is persisted as a JSON document in a text column.
type Variables map[string]interface{}

// Save represents one named save slot belonging to a user.
type Save struct {
	ID           int64     `db:"id" json:"id"`
	UserID       int64     `db:"user_id" json:"user_id"`
	SaveName     string    `db:"save_name" json:"save_name"`
	CurrentScene string    `db:"current_scene" json:"current_scene"`
	SceneHistory string    `db:"scene_history" json:"scene_history"`
	Variables    Variables `db:"-" json:"variables"`
	SaveTime     time.Time `db:"save_time" json:"save_time"`
}

// EncodeVariables serializes the mapping for storage. A nil mapping encodes
// as an empty JSON object.
func EncodeVariables(v Variables) (string, error) {
	if v == nil {
		v = Variables{}
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeVariables parses a stored variables document. An absent, empty or
// malformed value decodes to an empty mapping, never an error.
func DecodeVariables(raw string) Variables {
	if strings.TrimSpace(raw) == "" {
		return Variables{}
	}
	var v Variables
	if err := json.Unmarshal([]byte(raw), &v); err != nil || v == nil {
		return Variables{}
	}
	return v
}
