package ids

import "github.com/google/uuid"

// NewTaskID returns a random (v4) identifier for a task record.
func NewTaskID() uuid.UUID {
	return uuid.New()
}

// NewRequestID returns a time-ordered identifier for request correlation.
func NewRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
