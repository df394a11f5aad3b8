package handlers

import (
	"fmt"
	"strings"

	"github.com/matb3l/tg-bot/models"
)

// FormatProfile renders a profile card for the chat.
func FormatProfile(p *models.Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "👤 %s\n", p.Name)
	fmt.Fprintf(&b, "Никнейм: %s\n", p.Nickname)
	fmt.Fprintf(&b, "Рейтинг: %d ММР\n", p.MMR)
	fmt.Fprintf(&b, "Позиция: %s\n", p.Position)
	if p.Description != "" {
		fmt.Fprintf(&b, "О себе: %s\n", p.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}
