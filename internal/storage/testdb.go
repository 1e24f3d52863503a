package storage

import "gorm.io/gorm"

// Schema for the in-memory sqlite database used by tests. Kept in sync
// with the goose migrations under migrations/, minus postgres-only types.
var testDbSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		hashed_password TEXT,
		password_creation_time DATETIME NOT NULL,
		role TEXT NOT NULL,
		status TEXT NOT NULL,
		created_at DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS workspaces (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		client_name TEXT NOT NULL,
		share_token TEXT UNIQUE,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS posts (
		id TEXT PRIMARY KEY,
		workspace_id TEXT NOT NULL REFERENCES workspaces(id) ON DELETE CASCADE,
		date DATETIME NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_posts_workspace_date
		ON posts (workspace_id, date)`,
	`CREATE TABLE IF NOT EXISTS platforms (
		id TEXT PRIMARY KEY,
		post_id TEXT NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		url TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS audit_logs (
		id TEXT PRIMARY KEY,
		user_id TEXT,
		workspace_id TEXT,
		message TEXT NOT NULL,
		created_at DATETIME NOT NULL
	)`,
}

func migrateTestDb(db *gorm.DB) error {
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return err
	}

	for _, statement := range testDbSchema {
		if err := db.Exec(statement).Error; err != nil {
			return err
		}
	}

	return nil
}
