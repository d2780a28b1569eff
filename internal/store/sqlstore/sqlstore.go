// Package sqlstore implements store.Store on top of database/sql. The
// relational backends (sqlite, postgres) supply a Dialect and the driver.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/hajnalm/ClearPoint/internal/model"
	"github.com/hajnalm/ClearPoint/internal/store"
)

// Dialect captures what differs between relational backends.
type Dialect struct {
	Name        string
	Schema      []string
	Placeholder func(n int) string
}

// QuestionMark is the placeholder style used by SQLite.
func QuestionMark(int) string { return "?" }

// Dollar is the placeholder style used by Postgres.
func Dollar(n int) string { return fmt.Sprintf("$%d", n) }

type Store struct {
	db      *sql.DB
	dialect Dialect
}

var _ store.Store = (*Store)(nil)

// New applies the dialect schema to db and returns a Store owning db.
// Schema statements must be idempotent.
func New(ctx context.Context, db *sql.DB, d Dialect) (*Store, error) {
	for _, stmt := range d.Schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return nil, fmt.Errorf("apply %s schema: %w", d.Name, err)
		}
	}
	return &Store{db: db, dialect: d}, nil
}

func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) Begin(ctx context.Context) (store.Tx, error) {
	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	return &tx{tx: sqlTx, ph: s.dialect.Placeholder}, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

type tx struct {
	tx   *sql.Tx
	ph   func(int) string
	done bool
}

func (t *tx) Find(ctx context.Context, id uuid.UUID) (model.Task, error) {
	if t.done {
		return model.Task{}, store.ErrTxDone
	}
	q := `SELECT id, description, is_completed FROM tasks WHERE id = ` + t.ph(1)
	task, err := scanTask(t.tx.QueryRowContext(ctx, q, id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Task{}, model.ErrNotFound
		}
		return model.Task{}, fmt.Errorf("find task %s: %w", id, err)
	}
	return task, nil
}

func (t *tx) Query(ctx context.Context, f model.Filter) ([]model.Task, error) {
	if t.done {
		return nil, store.ErrTxDone
	}
	q, args := buildQuery(f, t.ph)
	rows, err := t.tx.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	var out []model.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		out = append(out, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	return out, nil
}

func (t *tx) Add(ctx context.Context, task model.Task) error {
	if t.done {
		return store.ErrTxDone
	}
	q := fmt.Sprintf(`INSERT INTO tasks (id, description, description_key, is_completed) VALUES (%s, %s, %s, %s)`,
		t.ph(1), t.ph(2), t.ph(3), t.ph(4))
	_, err := t.tx.ExecContext(ctx, q, task.ID.String(), task.Description, store.FoldKey(task.Description), task.IsCompleted)
	if err != nil {
		return fmt.Errorf("insert task %s: %w", task.ID, err)
	}
	return nil
}

func (t *tx) Update(ctx context.Context, task model.Task) error {
	if t.done {
		return store.ErrTxDone
	}
	q := fmt.Sprintf(`UPDATE tasks SET description = %s, description_key = %s, is_completed = %s WHERE id = %s`,
		t.ph(1), t.ph(2), t.ph(3), t.ph(4))
	res, err := t.tx.ExecContext(ctx, q, task.Description, store.FoldKey(task.Description), task.IsCompleted, task.ID.String())
	if err != nil {
		return fmt.Errorf("update task %s: %w", task.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update task %s: %w", task.ID, err)
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (t *tx) Commit() error {
	if t.done {
		return store.ErrTxDone
	}
	t.done = true
	if err := t.tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (t *tx) Rollback() error {
	if t.done {
		return nil
	}
	t.done = true
	return t.tx.Rollback()
}

func buildQuery(f model.Filter, ph func(int) string) (string, []any) {
	var (
		where []string
		args  []any
	)
	if f.Completed != nil {
		args = append(args, *f.Completed)
		where = append(where, "is_completed = "+ph(len(args)))
	}
	if f.Description != nil {
		args = append(args, store.FoldKey(*f.Description))
		where = append(where, "description_key = "+ph(len(args)))
	}

	q := `SELECT id, description, is_completed FROM tasks`
	if len(where) > 0 {
		q += ` WHERE ` + strings.Join(where, " AND ")
	}
	return q, args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (model.Task, error) {
	var (
		rawID string
		task  model.Task
	)
	if err := row.Scan(&rawID, &task.Description, &task.IsCompleted); err != nil {
		return model.Task{}, err
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return model.Task{}, fmt.Errorf("stored id %q: %w", rawID, err)
	}
	task.ID = id
	return task, nil
}
