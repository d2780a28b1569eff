package ids

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTaskID_Unique(t *testing.T) {
	seen := make(map[uuid.UUID]bool, 1000)
	for i := 0; i < 1000; i++ {
		id := NewTaskID()
		require.False(t, seen[id], "id %s generated twice", id)
		seen[id] = true
	}
}

func TestNewRequestID_IsV7(t *testing.T) {
	parsed, err := uuid.Parse(NewRequestID())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}
