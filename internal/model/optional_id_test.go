package model

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskWrite_DecodeAbsentAndNullID(t *testing.T) {
	for _, body := range []string{
		`{"description":"Eat lunch","isCompleted":false}`,
		`{"id":null,"description":"Eat lunch","isCompleted":false}`,
	} {
		var w TaskWrite
		require.NoError(t, json.Unmarshal([]byte(body), &w), body)
		assert.False(t, w.ID.IsSet(), body)
		assert.Equal(t, "Eat lunch", w.Description)
	}
}

func TestTaskWrite_DecodePresentID(t *testing.T) {
	id := uuid.New()
	var w TaskWrite
	require.NoError(t, json.Unmarshal([]byte(`{"id":"`+id.String()+`","description":"x","isCompleted":true}`), &w))

	got, ok := w.ID.Get()
	require.True(t, ok)
	assert.Equal(t, id, got)
	assert.True(t, w.IsCompleted)
}

func TestOptionalID_RejectsMalformed(t *testing.T) {
	var o OptionalID
	assert.Error(t, json.Unmarshal([]byte(`"not-a-uuid"`), &o))
	assert.Error(t, json.Unmarshal([]byte(`42`), &o))
}

func TestOptionalID_Encode(t *testing.T) {
	b, err := json.Marshal(TaskWrite{Description: "x"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":null,"description":"x","isCompleted":false}`, string(b))

	id := uuid.New()
	b, err = json.Marshal(TaskWrite{ID: SomeID(id), Description: "x"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"`+id.String()+`","description":"x","isCompleted":false}`, string(b))
}

func TestOptionalID_OrElse(t *testing.T) {
	fixed := uuid.New()
	gen := func() uuid.UUID { return fixed }

	assert.Equal(t, fixed, NoID().OrElse(gen))

	own := uuid.New()
	assert.Equal(t, own, SomeID(own).OrElse(gen))
}
