package task

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/hajnalm/ClearPoint/internal/model"
	"github.com/hajnalm/ClearPoint/internal/store"
)

// Repository mediates between the service and the store. It keeps no state
// between calls; store errors are returned wrapped and never retried.
type Repository struct {
	store store.Store
}

func NewRepository(s store.Store) *Repository {
	return &Repository{store: s}
}

func (r *Repository) GetIncompleteTasks(ctx context.Context) ([]model.Task, error) {
	var out []model.Task
	err := r.read(ctx, func(tx store.Tx) error {
		var err error
		out, err = tx.Query(ctx, model.Incomplete())
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get incomplete tasks: %w", err)
	}
	return out, nil
}

// GetTask reports found=false, with a nil error, when no task has id.
func (r *Repository) GetTask(ctx context.Context, id uuid.UUID) (model.Task, bool, error) {
	var found model.Task
	err := r.read(ctx, func(tx store.Tx) error {
		var err error
		found, err = tx.Find(ctx, id)
		return err
	})
	if errors.Is(err, model.ErrNotFound) {
		return model.Task{}, false, nil
	}
	if err != nil {
		return model.Task{}, false, fmt.Errorf("get task %s: %w", id, err)
	}
	return found, true, nil
}

func (r *Repository) TaskIDExists(ctx context.Context, id uuid.UUID) (bool, error) {
	_, found, err := r.GetTask(ctx, id)
	return found, err
}

// IncompleteDescriptionExists matches descriptions case-insensitively.
func (r *Repository) IncompleteDescriptionExists(ctx context.Context, description string) (bool, error) {
	f := model.Incomplete()
	f.Description = &description

	var matches []model.Task
	err := r.read(ctx, func(tx store.Tx) error {
		var err error
		matches, err = tx.Query(ctx, f)
		return err
	})
	if err != nil {
		return false, fmt.Errorf("check description: %w", err)
	}
	return len(matches) > 0, nil
}

// CreateOrUpdateTask inserts t when its id is unknown and otherwise
// replaces the stored fields. Either way the result equals t.
func (r *Repository) CreateOrUpdateTask(ctx context.Context, t model.Task) (model.Task, error) {
	err := r.write(ctx, func(tx store.Tx) error {
		_, err := tx.Find(ctx, t.ID)
		switch {
		case errors.Is(err, model.ErrNotFound):
			return tx.Add(ctx, t)
		case err != nil:
			return err
		default:
			return tx.Update(ctx, t)
		}
	})
	if err != nil {
		return model.Task{}, fmt.Errorf("create or update task %s: %w", t.ID, err)
	}
	return t, nil
}

func (r *Repository) CreateTask(ctx context.Context, t model.Task) (model.Task, error) {
	err := r.write(ctx, func(tx store.Tx) error {
		return tx.Add(ctx, t)
	})
	if err != nil {
		return model.Task{}, fmt.Errorf("create task %s: %w", t.ID, err)
	}
	return t, nil
}

func (r *Repository) read(ctx context.Context, fn func(store.Tx) error) error {
	tx, err := r.store.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	return fn(tx)
}

func (r *Repository) write(ctx context.Context, fn func(store.Tx) error) error {
	tx, err := r.store.Begin(ctx)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
