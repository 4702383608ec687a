package models

import "errors"

// Application-wide standard errors
var (
	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user with this username already exists")
	ErrEmailAlreadyExists = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")

	// Save errors
	ErrSaveNotFound = errors.New("save not found")

	// Story scene errors
	ErrSceneNotFound      = errors.New("scene not found")
	ErrSceneAlreadyExists = errors.New("scene with this scene_id already exists")

	// General Request/Server Errors
	ErrInvalidInput   = errors.New("invalid input data")
	ErrInternalServer = errors.New("internal server error")
)
