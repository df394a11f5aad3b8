package database

import (
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/matb3l/tg-bot/models"
)

// CreateProfile inserts a new profile; the primary key rejects duplicates.
func (s *Store) CreateProfile(p *models.Profile) error {
	row := s.db.QueryRow(`
INSERT INTO profiles (telegram_id, name, nickname, mmr, position, description)
VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))
RETURNING created_at
`, p.TelegramID, p.Name, p.Nickname, p.MMR, p.Position, p.Description)
	return row.Scan(&p.CreatedAt)
}

// GetProfile returns the profile for a Telegram ID, or nil if none exists.
func (s *Store) GetProfile(telegramID string) (*models.Profile, error) {
	var p models.Profile
	err := s.db.Get(&p, `
SELECT telegram_id, name, nickname, mmr, position, COALESCE(description, '') AS description, created_at
FROM profiles WHERE telegram_id = $1
`, telegramID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProfile applies the non-nil fields of u to one profile.
func (s *Store) UpdateProfile(telegramID string, u models.ProfileUpdate) error {
	sets := make([]string, 0, 5)
	args := make([]interface{}, 0, 6)
	add := func(col string, v interface{}) {
		args = append(args, v)
		sets = append(sets, col+" = $"+strconv.Itoa(len(args)))
	}
	if u.Name != nil {
		add("name", *u.Name)
	}
	if u.Nickname != nil {
		add("nickname", *u.Nickname)
	}
	if u.MMR != nil {
		add("mmr", *u.MMR)
	}
	if u.Position != nil {
		add("position", *u.Position)
	}
	if u.Description != nil {
		add("description", sql.NullString{String: *u.Description, Valid: *u.Description != ""})
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, telegramID)
	query := "UPDATE profiles SET " + strings.Join(sets, ", ") + " WHERE telegram_id = $" + strconv.Itoa(len(args))
	res, err := s.db.Exec(query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteProfile removes the profile for a Telegram ID.
func (s *Store) DeleteProfile(telegramID string) error {
	_, err := s.db.Exec(`DELETE FROM profiles WHERE telegram_id = $1`, telegramID)
	return err
}

// BrowseProfiles returns the profile at position offset in the filtered
// feed, never the viewer's own. Ordering is creation time ascending with
// telegram_id as tie-breaker so offsets stay stable while paging. Returns
// nil when offset runs past the end of the result set.
func (s *Store) BrowseProfiles(viewerID string, offset int, f models.BrowseFilter) (*models.Profile, error) {
	var b strings.Builder
	b.WriteString(`
SELECT telegram_id, name, nickname, mmr, position, COALESCE(description, '') AS description, created_at
FROM profiles WHERE telegram_id <> $1`)
	args := []interface{}{viewerID}
	if f.MinMMR != nil {
		args = append(args, *f.MinMMR)
		b.WriteString(" AND mmr >= $" + strconv.Itoa(len(args)))
	}
	if f.MaxMMR != nil {
		args = append(args, *f.MaxMMR)
		b.WriteString(" AND mmr <= $" + strconv.Itoa(len(args)))
	}
	if f.Position != "" {
		args = append(args, f.Position)
		b.WriteString(" AND position = $" + strconv.Itoa(len(args)))
	}
	args = append(args, offset)
	b.WriteString(" ORDER BY created_at ASC, telegram_id ASC LIMIT 1 OFFSET $" + strconv.Itoa(len(args)))

	var p models.Profile
	err := s.db.Get(&p, b.String(), args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// SearchProfiles does a case-insensitive substring match over name,
// nickname and description, excluding the viewer.
func (s *Store) SearchProfiles(viewerID, query string, limit int) ([]models.Profile, error) {
	var res []models.Profile
	err := s.db.Select(&res, `
SELECT telegram_id, name, nickname, mmr, position, COALESCE(description, '') AS description, created_at
FROM profiles
WHERE telegram_id <> $1
  AND (name ILIKE '%' || $2 || '%' OR nickname ILIKE '%' || $2 || '%' OR description ILIKE '%' || $2 || '%')
ORDER BY created_at ASC, telegram_id ASC
LIMIT $3
`, viewerID, query, limit)
	if err != nil {
		return nil, err
	}
	return res, nil
}
