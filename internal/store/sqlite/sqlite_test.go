package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hajnalm/ClearPoint/internal/model"
	"github.com/hajnalm/ClearPoint/internal/store"
	"github.com/hajnalm/ClearPoint/internal/store/storetest"
)

func openTestStore(t *testing.T) store.Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "tasks.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStore(t *testing.T) {
	storetest.Run(t, openTestStore)
}

func TestOpen_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tasks.db")
	task := model.Task{ID: uuid.New(), Description: "Survive a restart"}

	s1, err := Open(ctx, path)
	require.NoError(t, err)
	tx, err := s1.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.Add(ctx, task))
	require.NoError(t, tx.Commit())
	require.NoError(t, s1.Close())

	s2, err := Open(ctx, path)
	require.NoError(t, err)
	defer s2.Close()

	tx, err = s2.Begin(ctx)
	require.NoError(t, err)
	defer tx.Rollback()
	got, err := tx.Find(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task, got)
}

func TestOpen_InvalidPath(t *testing.T) {
	_, err := Open(context.Background(), "/nonexistent/dir/tasks.db")
	assert.Error(t, err)
}

func TestAdd_DuplicateID(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	task := model.Task{ID: uuid.New(), Description: "once"}

	tx, err := s.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.Add(ctx, task))
	require.NoError(t, tx.Commit())

	tx, err = s.Begin(ctx)
	require.NoError(t, err)
	defer tx.Rollback()
	assert.Error(t, tx.Add(ctx, task))
}
