package task

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hajnalm/ClearPoint/internal/model"
	"github.com/hajnalm/ClearPoint/internal/store/memorystore"
)

func dayOfTasks() []model.Task {
	return []model.Task{
		{ID: uuid.New(), Description: "Wake up", IsCompleted: true},
		{ID: uuid.New(), Description: "Eat breakfast", IsCompleted: true},
		{ID: uuid.New(), Description: "Work 4 hours"},
		{ID: uuid.New(), Description: "Eat lunch"},
		{ID: uuid.New(), Description: "Work another 4 hours"},
		{ID: uuid.New(), Description: "Sleep"},
	}
}

func TestRepository_GetIncompleteTasks(t *testing.T) {
	seed := dayOfTasks()
	repo := NewRepository(memorystore.NewTaskStore(seed...))

	got, err := repo.GetIncompleteTasks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, seed[2:], got)
	for _, task := range got {
		assert.False(t, task.IsCompleted)
	}
}

func TestRepository_GetTask(t *testing.T) {
	seed := dayOfTasks()
	repo := NewRepository(memorystore.NewTaskStore(seed...))
	ctx := context.Background()

	got, found, err := repo.GetTask(ctx, seed[3].ID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, seed[3], got)

	_, found, err = repo.GetTask(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRepository_TaskIDExists(t *testing.T) {
	seed := dayOfTasks()
	repo := NewRepository(memorystore.NewTaskStore(seed...))
	ctx := context.Background()

	exists, err := repo.TaskIDExists(ctx, seed[0].ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.TaskIDExists(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRepository_IncompleteDescriptionExists(t *testing.T) {
	repo := NewRepository(memorystore.NewTaskStore(dayOfTasks()...))
	ctx := context.Background()

	cases := []struct {
		description string
		want        bool
	}{
		{"Eat lunch", true},
		{"EAT LUNCH", true},
		{"eat Lunch", true},
		{"Wake up", false}, // only completed
		{"Eat dinner", false},
	}
	for _, tc := range cases {
		got, err := repo.IncompleteDescriptionExists(ctx, tc.description)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, tc.description)
	}
}

func TestRepository_CreateOrUpdateTask_Inserts(t *testing.T) {
	s := memorystore.NewTaskStore()
	repo := NewRepository(s)
	task := model.Task{ID: uuid.New(), Description: "Do coding assignment"}

	got, err := repo.CreateOrUpdateTask(context.Background(), task)
	require.NoError(t, err)
	assert.Equal(t, task, got)
	assert.Equal(t, 1, s.Len())
}

func TestRepository_CreateOrUpdateTask_Updates(t *testing.T) {
	seed := dayOfTasks()
	s := memorystore.NewTaskStore(seed...)
	repo := NewRepository(s)
	ctx := context.Background()

	changed := model.Task{ID: seed[3].ID, Description: "Eat lunch", IsCompleted: true}
	got, err := repo.CreateOrUpdateTask(ctx, changed)
	require.NoError(t, err)
	assert.Equal(t, changed, got)
	assert.Equal(t, len(seed), s.Len())

	stored, found, err := repo.GetTask(ctx, changed.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, changed, stored)
}

func TestRepository_CreateOrUpdateTask_Idempotent(t *testing.T) {
	s := memorystore.NewTaskStore()
	repo := NewRepository(s)
	ctx := context.Background()
	task := model.Task{ID: uuid.New(), Description: "Same twice"}

	first, err := repo.CreateOrUpdateTask(ctx, task)
	require.NoError(t, err)
	second, err := repo.CreateOrUpdateTask(ctx, task)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, s.Len())
}

func TestRepository_CreateTask(t *testing.T) {
	s := memorystore.NewTaskStore()
	repo := NewRepository(s)
	ctx := context.Background()
	task := model.Task{ID: uuid.New(), Description: "New"}

	got, err := repo.CreateTask(ctx, task)
	require.NoError(t, err)
	assert.Equal(t, task, got)

	_, err = repo.CreateTask(ctx, task)
	assert.Error(t, err)
	assert.Equal(t, 1, s.Len())
}

func TestRepository_StoreErrorsPropagate(t *testing.T) {
	repo := NewRepository(brokenStore{})
	ctx := context.Background()
	task := model.Task{ID: uuid.New(), Description: "x"}

	_, err := repo.GetIncompleteTasks(ctx)
	assert.ErrorIs(t, err, errStoreDown)

	_, _, err = repo.GetTask(ctx, task.ID)
	assert.ErrorIs(t, err, errStoreDown)

	_, err = repo.TaskIDExists(ctx, task.ID)
	assert.ErrorIs(t, err, errStoreDown)

	_, err = repo.IncompleteDescriptionExists(ctx, "x")
	assert.ErrorIs(t, err, errStoreDown)

	_, err = repo.CreateOrUpdateTask(ctx, task)
	assert.ErrorIs(t, err, errStoreDown)

	_, err = repo.CreateTask(ctx, task)
	assert.ErrorIs(t, err, errStoreDown)
}
