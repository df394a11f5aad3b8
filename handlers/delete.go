package handlers

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/matb3l/tg-bot/states"
	"github.com/matb3l/tg-bot/utils"
)

func (b *Bot) startDelete(chatID int64, id string) {
	p, err := b.store.GetProfile(id)
	if err != nil {
		b.fail(chatID, id, "get profile", err)
		return
	}
	if p == nil {
		b.send(tgbotapi.NewMessage(chatID, msgNoProfileYet))
		b.sendMainMenu(chatID)
		return
	}
	s := b.sessions.Start(id, states.FlowDeleting)
	s.Stage = states.StageConfirmDelete
	m := tgbotapi.NewMessage(chatID, "Удалить вашу анкету? Это действие нельзя отменить.")
	m.ReplyMarkup = utils.DeleteConfirmKeyboard()
	b.send(m)
}

func (b *Bot) confirmDelete(chatID int64, id string, confirmed bool) {
	s := b.sessions.Get(id)
	if s == nil || s.Flow != states.FlowDeleting {
		return
	}
	b.sessions.Reset(id)
	if !confirmed {
		b.sendMainMenu(chatID)
		return
	}
	if err := b.store.DeleteProfile(id); err != nil {
		b.fail(chatID, id, "delete profile", err)
		return
	}
	b.send(tgbotapi.NewMessage(chatID, "Анкета удалена."))
	b.sendMainMenu(chatID)
}
