// Package storetest holds behavioural tests shared by every store.Store
// implementation.
package storetest

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hajnalm/ClearPoint/internal/model"
	"github.com/hajnalm/ClearPoint/internal/store"
)

// Run exercises s. newStore must return an empty store.
func Run(t *testing.T, newStore func(t *testing.T) store.Store) {
	t.Run("AddFindCommit", func(t *testing.T) { testAddFindCommit(t, newStore(t)) })
	t.Run("RollbackDiscards", func(t *testing.T) { testRollbackDiscards(t, newStore(t)) })
	t.Run("UpdateReplacesFields", func(t *testing.T) { testUpdateReplacesFields(t, newStore(t)) })
	t.Run("UpdateMissing", func(t *testing.T) { testUpdateMissing(t, newStore(t)) })
	t.Run("QueryFilters", func(t *testing.T) { testQueryFilters(t, newStore(t)) })
	t.Run("FindMissing", func(t *testing.T) { testFindMissing(t, newStore(t)) })
	t.Run("TxDone", func(t *testing.T) { testTxDone(t, newStore(t)) })
	t.Run("Ping", func(t *testing.T) { require.NoError(t, newStore(t).Ping(context.Background())) })
}

func add(t *testing.T, s store.Store, tasks ...model.Task) {
	t.Helper()
	ctx := context.Background()
	tx, err := s.Begin(ctx)
	require.NoError(t, err)
	for _, task := range tasks {
		require.NoError(t, tx.Add(ctx, task))
	}
	require.NoError(t, tx.Commit())
}

func find(t *testing.T, s store.Store, id uuid.UUID) (model.Task, error) {
	t.Helper()
	ctx := context.Background()
	tx, err := s.Begin(ctx)
	require.NoError(t, err)
	defer tx.Rollback()
	return tx.Find(ctx, id)
}

func testAddFindCommit(t *testing.T, s store.Store) {
	task := model.Task{ID: uuid.New(), Description: "Eat lunch"}
	add(t, s, task)

	got, err := find(t, s, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task, got)
}

func testRollbackDiscards(t *testing.T, s store.Store) {
	ctx := context.Background()
	task := model.Task{ID: uuid.New(), Description: "Never saved"}

	tx, err := s.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.Add(ctx, task))

	inside, err := tx.Find(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task, inside)
	require.NoError(t, tx.Rollback())

	_, err = find(t, s, task.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func testUpdateReplacesFields(t *testing.T, s store.Store) {
	ctx := context.Background()
	task := model.Task{ID: uuid.New(), Description: "Eat lunch"}
	add(t, s, task)

	changed := model.Task{ID: task.ID, Description: "Eat a late lunch", IsCompleted: true}
	tx, err := s.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.Update(ctx, changed))
	require.NoError(t, tx.Commit())

	got, err := find(t, s, task.ID)
	require.NoError(t, err)
	assert.Equal(t, changed, got)
}

func testUpdateMissing(t *testing.T, s store.Store) {
	ctx := context.Background()
	tx, err := s.Begin(ctx)
	require.NoError(t, err)
	defer tx.Rollback()

	err = tx.Update(ctx, model.Task{ID: uuid.New(), Description: "ghost"})
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func testQueryFilters(t *testing.T, s store.Store) {
	ctx := context.Background()
	lunch := model.Task{ID: uuid.New(), Description: "Eat lunch"}
	wake := model.Task{ID: uuid.New(), Description: "Wake up", IsCompleted: true}
	lunchDone := model.Task{ID: uuid.New(), Description: "EAT LUNCH", IsCompleted: true}
	greek := model.Task{ID: uuid.New(), Description: "ΣΊΣΥΦΟΣ"}
	add(t, s, lunch, wake, lunchDone, greek)

	tx, err := s.Begin(ctx)
	require.NoError(t, err)
	defer tx.Rollback()

	all, err := tx.Query(ctx, model.Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	open, err := tx.Query(ctx, model.Incomplete())
	require.NoError(t, err)
	assert.ElementsMatch(t, []model.Task{lunch, greek}, open)

	f := model.Incomplete()
	desc := "eat LUNCH"
	f.Description = &desc
	matched, err := tx.Query(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, []model.Task{lunch}, matched)

	desc = "σίσυφος"
	matched, err = tx.Query(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, []model.Task{greek}, matched)

	f.Completed = nil
	desc = "Eat Lunch"
	matched, err = tx.Query(ctx, f)
	require.NoError(t, err)
	assert.ElementsMatch(t, []model.Task{lunch, lunchDone}, matched)
}

func testFindMissing(t *testing.T, s store.Store) {
	_, err := find(t, s, uuid.New())
	assert.True(t, errors.Is(err, model.ErrNotFound), "got %v", err)
}

func testTxDone(t *testing.T, s store.Store) {
	ctx := context.Background()
	tx, err := s.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.ErrorIs(t, tx.Commit(), store.ErrTxDone)
	assert.NoError(t, tx.Rollback())
	_, err = tx.Find(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrTxDone)
}
