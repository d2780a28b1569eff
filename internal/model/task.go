package model

import "github.com/google/uuid"

// Task is the persisted to-do record. Two tasks are equal when all fields are.
type Task struct {
	ID          uuid.UUID
	Description string
	IsCompleted bool
}

// TaskRead is the output representation of a task.
type TaskRead struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	IsCompleted bool      `json:"isCompleted"`
}

// TaskWrite is the input representation used to create or update a task.
type TaskWrite struct {
	ID          OptionalID `json:"id"`
	Description string     `json:"description"`
	IsCompleted bool       `json:"isCompleted"`
}

// Filter selects tasks in a store query. Nil fields match everything.
// Description matches case-insensitively.
type Filter struct {
	Completed   *bool
	Description *string
}

// Incomplete returns a filter matching tasks that are not completed.
func Incomplete() Filter {
	completed := false
	return Filter{Completed: &completed}
}
