package handlers

import (
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/matb3l/tg-bot/states"
	"github.com/matb3l/tg-bot/utils"
)

func (b *Bot) handleCallback(q *tgbotapi.CallbackQuery) {
	if q.Message == nil {
		return
	}
	if _, err := b.api.Request(tgbotapi.NewCallback(q.ID, "")); err != nil {
		b.log.Error("answer callback", "err", err)
	}

	chatID := q.Message.Chat.ID
	id := strconv.FormatInt(chatID, 10)

	switch q.Data {
	case utils.CbBrowseNext, utils.CbBrowsePrev:
		s := b.sessions.Get(id)
		if s == nil || s.Flow != states.FlowBrowsing || s.Stage != states.StagePaging {
			// stale button from a finished browse
			return
		}
		if q.Data == utils.CbBrowseNext {
			s.Offset++
		} else if s.Offset > 0 {
			s.Offset--
		}
		b.showPage(chatID, id, s)
	case utils.CbDeleteYes:
		b.confirmDelete(chatID, id, true)
	case utils.CbDeleteNo:
		b.confirmDelete(chatID, id, false)
	}
}
