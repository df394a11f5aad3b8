package handlers

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/matb3l/tg-bot/utils"
)

const rulesFileKey = "rules"

// sendRules delivers the rules document, uploading it once and reusing
// the Telegram file_id afterwards.
func (b *Bot) sendRules(chatID int64) {
	fileID, err := b.store.GetFileID(rulesFileKey)
	if err != nil {
		b.log.Error("get file id", "err", err)
	}

	var doc tgbotapi.DocumentConfig
	if fileID != "" {
		doc = tgbotapi.NewDocument(chatID, tgbotapi.FileID(fileID))
	} else {
		doc = tgbotapi.NewDocument(chatID, tgbotapi.FilePath(b.rules))
	}
	doc.ReplyMarkup = utils.BackKeyboard()

	sent, err := b.api.Send(doc)
	if err != nil {
		b.log.Error("send rules", "err", err)
		b.send(tgbotapi.NewMessage(chatID, msgStoreFailure))
		b.sendMainMenu(chatID)
		return
	}
	if fileID == "" && sent.Document != nil {
		if err := b.store.SaveFileID(rulesFileKey, sent.Document.FileID); err != nil {
			b.log.Error("save file id", "err", err)
		}
	}
}
