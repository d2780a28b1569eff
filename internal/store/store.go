// Package store defines the persistence contract consumed by the task
// repository. A Store hands out transactions; pending writes inside a
// transaction become visible to other callers only after Commit.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"github.com/hajnalm/ClearPoint/internal/model"
)

type Store interface {
	Begin(ctx context.Context) (Tx, error)
	Ping(ctx context.Context) error
	Close() error
}

type Tx interface {
	// Find returns model.ErrNotFound when no task has the given id.
	Find(ctx context.Context, id uuid.UUID) (model.Task, error)
	Query(ctx context.Context, f model.Filter) ([]model.Task, error)
	Add(ctx context.Context, t model.Task) error
	// Update marks the stored task as modified and replaces its fields.
	Update(ctx context.Context, t model.Task) error
	Commit() error
	// Rollback discards pending changes. It is a no-op after Commit.
	Rollback() error
}

// FoldKey returns the case-folded form of a description used for
// case-insensitive matching.
func FoldKey(description string) string {
	return cases.Fold().String(description)
}

// Match reports whether t satisfies f.
func Match(t model.Task, f model.Filter) bool {
	if f.Completed != nil && t.IsCompleted != *f.Completed {
		return false
	}
	if f.Description != nil && FoldKey(t.Description) != FoldKey(*f.Description) {
		return false
	}
	return true
}

var (
	ErrConflict = errors.New("task already exists")
	ErrTxDone   = errors.New("transaction already committed or rolled back")
)
