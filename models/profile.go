package models

import "time"

// Positions a player can register as, in menu order.
var Positions = []string{"1", "2", "3", "4", "5"}

func ValidPosition(p string) bool {
	for _, v := range Positions {
		if v == p {
			return true
		}
	}
	return false
}

// Profile is one member's team-finding card, keyed by their Telegram ID.
type Profile struct {
	TelegramID  string    `db:"telegram_id" json:"telegram_id"`
	Name        string    `db:"name" json:"name"`
	Nickname    string    `db:"nickname" json:"nickname"`
	MMR         int       `db:"mmr" json:"mmr"`
	Position    string    `db:"position" json:"position"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// ProfileUpdate carries the fields of a single-field edit; nil means
// "leave unchanged".
type ProfileUpdate struct {
	Name        *string
	Nickname    *string
	MMR         *int
	Position    *string
	Description *string
}

// BrowseFilter narrows the profile feed. Zero value means no filter.
type BrowseFilter struct {
	MinMMR   *int
	MaxMMR   *int
	Position string
}
