package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this username already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrTokenNotFound indicates that refresh token was not found
	ErrTokenNotFound = errors.New("refresh token not found")

	// ErrWorkspaceNotFound indicates that workspace was not found
	ErrWorkspaceNotFound = errors.New("workspace not found")

	// ErrNotMember indicates that user is not a member of the workspace
	ErrNotMember = errors.New("not a workspace member")

	// ErrAlreadyMember indicates that user is already a member of the workspace
	ErrAlreadyMember = errors.New("already a workspace member")

	// ErrRoomNotFound indicates that room was not found
	ErrRoomNotFound = errors.New("room not found")

	// ErrMessageNotFound indicates that message was not found or is deleted
	ErrMessageNotFound = errors.New("message not found")

	// ErrTaskNotFound indicates that task was not found or is deleted
	ErrTaskNotFound = errors.New("task not found")

	// ErrNotificationNotFound indicates that notification was not found
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrDocumentNotFound indicates that context document was not found
	ErrDocumentNotFound = errors.New("document not found")

	// ErrRunNotFound indicates that pipeline run was not found
	ErrRunNotFound = errors.New("pipeline run not found")
)
