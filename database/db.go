package database

import (
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Store wraps the Postgres connection and owns all SQL.
type Store struct {
	db *sqlx.DB
}

// Open connects to Postgres using DSN and runs migrations
func Open(dsn string) (*Store, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Truncate empties all tables. Used by tests.
func (s *Store) Truncate() error {
	_, err := s.db.Exec(`TRUNCATE profiles, files`)
	return err
}
