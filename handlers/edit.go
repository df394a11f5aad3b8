package handlers

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/matb3l/tg-bot/models"
	"github.com/matb3l/tg-bot/states"
	"github.com/matb3l/tg-bot/utils"
)

// editFields maps the field-choice button labels to questionnaire fields.
var editFields = map[string]string{
	utils.FieldName:        fieldName,
	utils.FieldNickname:    fieldNickname,
	utils.FieldMMR:         fieldMMR,
	utils.FieldPosition:    fieldPosition,
	utils.FieldDescription: fieldDescription,
}

var editPrompts = map[string]string{
	fieldName:        "Введите новое имя:",
	fieldNickname:    "Введите новый никнейм:",
	fieldMMR:         "Введите новый рейтинг ММР:",
	fieldPosition:    "Укажите новую позицию (1-5):",
	fieldDescription: "Расскажите о себе заново:",
}

func (b *Bot) startEdit(chatID int64, id string) {
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
	s := b.sessions.Start(id, states.FlowEditing)
	s.Stage = states.StageChooseField
	m := tgbotapi.NewMessage(chatID, "Что изменить?")
	m.ReplyMarkup = utils.EditFieldKeyboard()
	b.send(m)
}

// handleEditAnswer drives the two-step edit flow: pick a field, answer
// once, finalize.
func (b *Bot) handleEditAnswer(chatID int64, id string, s *states.Session, text string) {
	switch s.Stage {
	case states.StageChooseField:
		field, ok := editFields[text]
		if !ok {
			m := tgbotapi.NewMessage(chatID, "Выберите поле кнопкой ниже.")
			m.ReplyMarkup = utils.EditFieldKeyboard()
			b.send(m)
			return
		}
		s.EditField = field
		s.Stage = states.StageAwaitFieldData
		m := tgbotapi.NewMessage(chatID, editPrompts[field])
		if field == fieldPosition {
			m.ReplyMarkup = utils.PositionKeyboard()
		} else {
			m.ReplyMarkup = utils.BackKeyboard()
		}
		b.send(m)
	case states.StageAwaitFieldData:
		b.applyEdit(chatID, id, s, text)
	}
}

func (b *Bot) applyEdit(chatID int64, id string, s *states.Session, text string) {
	var u models.ProfileUpdate
	switch s.EditField {
	case fieldName:
		if text == "" {
			b.send(tgbotapi.NewMessage(chatID, editPrompts[s.EditField]))
			return
		}
		u.Name = &text
	case fieldNickname:
		if text == "" {
			b.send(tgbotapi.NewMessage(chatID, editPrompts[s.EditField]))
			return
		}
		u.Nickname = &text
	case fieldMMR:
		mmr, err := utils.ParseMMR(text)
		if err != nil {
			b.send(tgbotapi.NewMessage(chatID, "Рейтинг должен быть целым неотрицательным числом. Попробуйте снова:"))
			return
		}
		u.MMR = &mmr
	case fieldPosition:
		if !models.ValidPosition(text) {
			b.send(tgbotapi.NewMessage(chatID, "Позиция должна быть от 1 до 5. Попробуйте снова:"))
			return
		}
		u.Position = &text
	case fieldDescription:
		u.Description = &text
	}

	if err := b.store.UpdateProfile(id, u); err != nil {
		b.fail(chatID, id, "update profile", err)
		return
	}
	b.sessions.Reset(id)

	p, err := b.store.GetProfile(id)
	if err != nil || p == nil {
		b.send(tgbotapi.NewMessage(chatID, "Анкета обновлена."))
		b.sendMainMenu(chatID)
		return
	}
	b.send(tgbotapi.NewMessage(chatID, "Анкета обновлена.\n\n"+FormatProfile(p)))
	b.sendMainMenu(chatID)
}
