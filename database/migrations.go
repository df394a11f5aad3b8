package database

import (
	"log/slog"

	"github.com/jmoiron/sqlx"
)

// migrate creates necessary tables if they don't exist
func migrate(db *sqlx.DB) error {
	_, err := db.Exec(`
CREATE TABLE IF NOT EXISTS profiles (
    telegram_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    nickname TEXT NOT NULL,
    mmr INTEGER NOT NULL CHECK (mmr >= 0),
    position TEXT NOT NULL,
    description TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS files (
    file_key TEXT PRIMARY KEY,
    file_id TEXT NOT NULL
);
`)
	if err != nil {
		slog.Error("migrate", "err", err)
	}
	return err
}
