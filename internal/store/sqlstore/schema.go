package sqlstore

// Schema is portable between SQLite and Postgres. description_key holds the
// case-folded description so case-insensitive lookups do not depend on the
// engine's collation rules.
var Schema = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
	id              TEXT PRIMARY KEY,
	description     TEXT NOT NULL,
	description_key TEXT NOT NULL,
	is_completed    BOOLEAN NOT NULL DEFAULT FALSE
)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_open_description ON tasks (is_completed, description_key)`,
}
