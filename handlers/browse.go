package handlers

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/matb3l/tg-bot/models"
	"github.com/matb3l/tg-bot/states"
	"github.com/matb3l/tg-bot/utils"
)

// startFindTeam routes «Найти команду»: members without a profile fill
// the questionnaire first, everyone else picks a filter and browses.
func (b *Bot) startFindTeam(chatID int64, id string) {
	p, err := b.store.GetProfile(id)
	if err != nil {
		b.fail(chatID, id, "get profile", err)
		return
	}
	if p == nil {
		b.startRegistration(chatID, id)
		return
	}
	s := b.sessions.Start(id, states.FlowBrowsing)
	s.Stage = states.StageChooseFilter
	m := tgbotapi.NewMessage(chatID, "Какие анкеты показать?")
	m.ReplyMarkup = utils.FilterKeyboard()
	b.send(m)
}

func (b *Bot) handleBrowseAnswer(chatID int64, id string, s *states.Session, text string) {
	switch s.Stage {
	case states.StageChooseFilter:
		switch text {
		case utils.FilterAll:
			b.showPage(chatID, id, s)
		case utils.FilterByMMR:
			s.Stage = states.StageAwaitRange
			b.askMMRRange(chatID)
		case utils.FilterByPosition:
			s.Stage = states.StageAwaitPosition
			b.askFilterPosition(chatID)
		case utils.FilterMMRPosition:
			// collect the range first, then the position
			s.Stage = states.StageAwaitRange
			s.FilterBoth = true
			b.askMMRRange(chatID)
		default:
			m := tgbotapi.NewMessage(chatID, "Выберите фильтр кнопкой ниже.")
			m.ReplyMarkup = utils.FilterKeyboard()
			b.send(m)
		}
	case states.StageAwaitRange:
		min, max, err := utils.ParseMMRRange(text)
		if err != nil {
			b.send(tgbotapi.NewMessage(chatID, "Неверный формат. Введите диапазон рейтинга как min-max, например 1000-1500:"))
			return
		}
		s.Filter.MinMMR = &min
		s.Filter.MaxMMR = &max
		if s.FilterBoth {
			s.Stage = states.StageAwaitPosition
			b.askFilterPosition(chatID)
			return
		}
		b.showPage(chatID, id, s)
	case states.StageAwaitPosition:
		if !models.ValidPosition(text) {
			b.send(tgbotapi.NewMessage(chatID, "Позиция должна быть от 1 до 5. Попробуйте снова:"))
			return
		}
		s.Filter.Position = text
		b.showPage(chatID, id, s)
	case states.StagePaging:
		b.send(tgbotapi.NewMessage(chatID, "Листайте анкеты кнопками под сообщением."))
	}
}

func (b *Bot) askMMRRange(chatID int64) {
	m := tgbotapi.NewMessage(chatID, "Введите диапазон рейтинга как min-max, например 1000-1500:")
	m.ReplyMarkup = utils.BackKeyboard()
	b.send(m)
}

func (b *Bot) askFilterPosition(chatID int64) {
	m := tgbotapi.NewMessage(chatID, "Какая позиция вас интересует?")
	m.ReplyMarkup = utils.PositionKeyboard()
	b.send(m)
}

// showPage renders the profile at the session's current offset, or ends
// the browse when the feed is exhausted.
func (b *Bot) showPage(chatID int64, id string, s *states.Session) {
	p, err := b.store.BrowseProfiles(id, s.Offset, s.Filter)
	if err != nil {
		b.fail(chatID, id, "browse profiles", err)
		return
	}
	if p == nil {
		b.sessions.Reset(id)
		b.send(tgbotapi.NewMessage(chatID, msgNoMoreProfiles))
		b.sendMainMenu(chatID)
		return
	}
	s.Stage = states.StagePaging
	m := tgbotapi.NewMessage(chatID, FormatProfile(p))
	m.ReplyMarkup = utils.BrowseNavKeyboard(s.Offset)
	b.send(m)
}
