package database

import (
	"database/sql"
	"errors"
)

// GetFileID returns the cached Telegram file_id stored under key, or ""
// if the file has not been uploaded yet.
func (s *Store) GetFileID(key string) (string, error) {
	var id string
	err := s.db.Get(&id, `SELECT file_id FROM files WHERE file_key = $1`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return id, nil
}

// SaveFileID remembers the Telegram file_id for key so later requests
// can send the document without re-uploading it.
func (s *Store) SaveFileID(key, fileID string) error {
	_, err := s.db.Exec(`
INSERT INTO files (file_key, file_id) VALUES ($1, $2)
ON CONFLICT (file_key) DO UPDATE SET file_id = EXCLUDED.file_id
`, key, fileID)
	return err
}
