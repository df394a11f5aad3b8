package handlers

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/matb3l/tg-bot/models"
	"github.com/matb3l/tg-bot/states"
	"github.com/matb3l/tg-bot/utils"
)

// Questionnaire fields in the order they are asked.
const (
	fieldName        = "name"
	fieldNickname    = "nickname"
	fieldMMR         = "mmr"
	fieldPosition    = "position"
	fieldDescription = "description"
)

type question struct {
	field  string
	prompt string
}

var questionnaire = []question{
	{fieldName, "Давайте познакомимся! Введите ваше имя:"},
	{fieldNickname, "Введите ваш никнейм ТГ в формате @example (по нему с вами будут связываться):"},
	{fieldMMR, "Введите ваш рейтинг ММР:"},
	{fieldPosition, "Укажите вашу основную позицию (1-5):"},
	{fieldDescription, "Расскажите о себе — информация, которая поможет найти команду:"},
}

func (b *Bot) startRegistration(chatID int64, id string) {
	b.sessions.Start(id, states.FlowRegistering)
	b.send(tgbotapi.NewMessage(chatID, "Заполните анкету, чтобы мы могли с вами связаться!"))
	b.askQuestion(chatID, 0)
}

func (b *Bot) askQuestion(chatID int64, step int) {
	q := questionnaire[step]
	m := tgbotapi.NewMessage(chatID, q.prompt)
	if q.field == fieldPosition {
		m.ReplyMarkup = utils.PositionKeyboard()
	} else {
		m.ReplyMarkup = utils.BackKeyboard()
	}
	b.send(m)
}

// handleRegistrationAnswer validates the answer to the pending question.
// A bad answer re-asks the same question; the cursor never advances on
// validation failure.
func (b *Bot) handleRegistrationAnswer(chatID int64, id string, s *states.Session, text string) {
	q := questionnaire[s.Step]
	if text == "" {
		b.askQuestion(chatID, s.Step)
		return
	}
	switch q.field {
	case fieldMMR:
		if _, err := utils.ParseMMR(text); err != nil {
			b.send(tgbotapi.NewMessage(chatID, "Рейтинг должен быть целым неотрицательным числом. Попробуйте снова:"))
			b.askQuestion(chatID, s.Step)
			return
		}
	case fieldPosition:
		if !models.ValidPosition(text) {
			b.send(tgbotapi.NewMessage(chatID, "Позиция должна быть от 1 до 5. Попробуйте снова:"))
			b.askQuestion(chatID, s.Step)
			return
		}
	}

	s.Answers[q.field] = text
	s.Step++
	if s.Step < len(questionnaire) {
		b.askQuestion(chatID, s.Step)
		return
	}
	b.finishRegistration(chatID, id, s)
}

func (b *Bot) finishRegistration(chatID int64, id string, s *states.Session) {
	mmr, err := utils.ParseMMR(s.Answers[fieldMMR])
	if err != nil {
		// answers are validated on entry; treat as a broken session
		b.fail(chatID, id, "finish registration", err)
		return
	}
	p := &models.Profile{
		TelegramID:  id,
		Name:        s.Answers[fieldName],
		Nickname:    s.Answers[fieldNickname],
		MMR:         mmr,
		Position:    s.Answers[fieldPosition],
		Description: s.Answers[fieldDescription],
	}
	if err := b.store.CreateProfile(p); err != nil {
		b.fail(chatID, id, "create profile", err)
		return
	}
	b.sessions.Reset(id)
	b.send(tgbotapi.NewMessage(chatID, "Анкета успешно сохранена!\n\n"+FormatProfile(p)))
	b.sendMainMenu(chatID)
}
