// Package memorystore keeps tasks in process memory. It backs the default
// configuration and the tests.
package memorystore

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/hajnalm/ClearPoint/internal/model"
	"github.com/hajnalm/ClearPoint/internal/store"
)

type TaskStore struct {
	mu    sync.RWMutex
	tasks map[uuid.UUID]model.Task
	order []uuid.UUID
}

var _ store.Store = (*TaskStore)(nil)

func NewTaskStore(seed ...model.Task) *TaskStore {
	s := &TaskStore{tasks: make(map[uuid.UUID]model.Task, len(seed))}
	for _, t := range seed {
		if _, ok := s.tasks[t.ID]; !ok {
			s.order = append(s.order, t.ID)
		}
		s.tasks[t.ID] = t
	}
	return s
}

func (s *TaskStore) Begin(ctx context.Context) (store.Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &tx{s: s}, nil
}

func (s *TaskStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *TaskStore) Close() error {
	return nil
}

// Len returns the number of committed tasks.
func (s *TaskStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

type opKind int

const (
	opAdd opKind = iota
	opUpdate
)

type op struct {
	kind opKind
	task model.Task
}

type tx struct {
	s       *TaskStore
	pending []op
	done    bool
}

// view returns committed tasks overlaid with pending writes, in insertion order.
func (t *tx) view() ([]uuid.UUID, map[uuid.UUID]model.Task) {
	t.s.mu.RLock()
	tasks := make(map[uuid.UUID]model.Task, len(t.s.tasks)+len(t.pending))
	for id, task := range t.s.tasks {
		tasks[id] = task
	}
	order := append([]uuid.UUID(nil), t.s.order...)
	t.s.mu.RUnlock()

	for _, o := range t.pending {
		if _, ok := tasks[o.task.ID]; !ok {
			order = append(order, o.task.ID)
		}
		tasks[o.task.ID] = o.task
	}
	return order, tasks
}

func (t *tx) Find(ctx context.Context, id uuid.UUID) (model.Task, error) {
	if err := t.check(ctx); err != nil {
		return model.Task{}, err
	}
	_, tasks := t.view()
	found, ok := tasks[id]
	if !ok {
		return model.Task{}, model.ErrNotFound
	}
	return found, nil
}

func (t *tx) Query(ctx context.Context, f model.Filter) ([]model.Task, error) {
	if err := t.check(ctx); err != nil {
		return nil, err
	}
	order, tasks := t.view()
	out := make([]model.Task, 0, len(order))
	for _, id := range order {
		if task := tasks[id]; store.Match(task, f) {
			out = append(out, task)
		}
	}
	return out, nil
}

func (t *tx) Add(ctx context.Context, task model.Task) error {
	if err := t.check(ctx); err != nil {
		return err
	}
	_, tasks := t.view()
	if _, exists := tasks[task.ID]; exists {
		return store.ErrConflict
	}
	t.pending = append(t.pending, op{kind: opAdd, task: task})
	return nil
}

func (t *tx) Update(ctx context.Context, task model.Task) error {
	if err := t.check(ctx); err != nil {
		return err
	}
	_, tasks := t.view()
	if _, exists := tasks[task.ID]; !exists {
		return model.ErrNotFound
	}
	t.pending = append(t.pending, op{kind: opUpdate, task: task})
	return nil
}

// Commit applies all pending writes at once, or none of them if another
// transaction committed a conflicting change first.
func (t *tx) Commit() error {
	if t.done {
		return store.ErrTxDone
	}
	t.done = true

	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	added := make(map[uuid.UUID]bool)
	for _, o := range t.pending {
		_, exists := t.s.tasks[o.task.ID]
		exists = exists || added[o.task.ID]
		switch o.kind {
		case opAdd:
			if exists {
				return store.ErrConflict
			}
			added[o.task.ID] = true
		case opUpdate:
			if !exists {
				return model.ErrNotFound
			}
		}
	}

	for _, o := range t.pending {
		if _, exists := t.s.tasks[o.task.ID]; !exists {
			t.s.order = append(t.s.order, o.task.ID)
		}
		t.s.tasks[o.task.ID] = o.task
	}
	t.pending = nil
	return nil
}

func (t *tx) Rollback() error {
	t.done = true
	t.pending = nil
	return nil
}

func (t *tx) check(ctx context.Context) error {
	if t.done {
		return store.ErrTxDone
	}
	return ctx.Err()
}
