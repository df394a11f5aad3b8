package utils

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/matb3l/tg-bot/models"
)

// Menu labels matched verbatim by the dispatcher.
const (
	CmdWhoWeAre = "Кто мы"
	CmdFindTeam = "Найти команду"
	CmdRules    = "Правила"
	CmdMyCard   = "Моя анкета"
	CmdEditCard = "Редактировать анкету"
	CmdDelete   = "Удалить анкету"
	CmdBack     = "Вернуться в главное меню"

	FilterAll         = "Все анкеты"
	FilterByMMR       = "По рейтингу"
	FilterByPosition  = "По позиции"
	FilterMMRPosition = "Рейтинг и позиция"

	FieldName        = "Имя"
	FieldNickname    = "Никнейм"
	FieldMMR         = "Рейтинг"
	FieldPosition    = "Позиция"
	FieldDescription = "О себе"
)

// Callback data for inline buttons.
const (
	CbBrowseNext = "browse_next"
	CbBrowsePrev = "browse_prev"
	CbDeleteYes  = "delete_yes"
	CbDeleteNo   = "delete_no"
)

func MainMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(CmdWhoWeAre)),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(CmdFindTeam)),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(CmdRules)),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(CmdMyCard),
			tgbotapi.NewKeyboardButton(CmdEditCard),
			tgbotapi.NewKeyboardButton(CmdDelete),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}

func BackKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(CmdBack)),
	)
	kb.ResizeKeyboard = true
	return kb
}

func FilterKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(FilterAll)),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(FilterByMMR),
			tgbotapi.NewKeyboardButton(FilterByPosition),
		),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(FilterMMRPosition)),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(CmdBack)),
	)
	kb.ResizeKeyboard = true
	return kb
}

func PositionKeyboard() tgbotapi.ReplyKeyboardMarkup {
	row := make([]tgbotapi.KeyboardButton, 0, len(models.Positions))
	for _, p := range models.Positions {
		row = append(row, tgbotapi.NewKeyboardButton(p))
	}
	kb := tgbotapi.NewReplyKeyboard(
		row,
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(CmdBack)),
	)
	kb.ResizeKeyboard = true
	return kb
}

func EditFieldKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(FieldName),
			tgbotapi.NewKeyboardButton(FieldNickname),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(FieldMMR),
			tgbotapi.NewKeyboardButton(FieldPosition),
		),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(FieldDescription)),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(CmdBack)),
	)
	kb.ResizeKeyboard = true
	return kb
}

// BrowseNavKeyboard hides the back button on the first page.
func BrowseNavKeyboard(offset int) tgbotapi.InlineKeyboardMarkup {
	next := tgbotapi.NewInlineKeyboardButtonData("Далее ▶", CbBrowseNext)
	if offset == 0 {
		return tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(next))
	}
	prev := tgbotapi.NewInlineKeyboardButtonData("◀ Назад", CbBrowsePrev)
	return tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(prev, next))
}

func DeleteConfirmKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Да, удалить", CbDeleteYes),
			tgbotapi.NewInlineKeyboardButtonData("Нет", CbDeleteNo),
		),
	)
}
