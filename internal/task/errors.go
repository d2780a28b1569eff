package task

import "errors"

var (
	ErrInvalidDescription = errors.New("description must be non-empty")
	ErrDescriptionExists  = errors.New("an incomplete task with this description already exists")
	ErrTaskNotFound       = errors.New("task not found")
)
