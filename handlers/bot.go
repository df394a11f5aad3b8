package handlers

import (
	"log/slog"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/matb3l/tg-bot/models"
	"github.com/matb3l/tg-bot/states"
	"github.com/matb3l/tg-bot/utils"
)

const aboutUs = `Киберспортивное сообщество WB Team: Cyber Club – это команда и комьюнити, объединяющие увлеченных киберспортом людей, которые стремятся к достижениям и личностному росту.

WB Team: Cyber Club предоставляет платформу для общения, тренировок, соревнований и обмена опытом. В сообществе организуются регулярные турниры и чемпионаты по разным киберспортивным дисциплинам, где каждый может проявить себя. Здесь можно найти как единомышленников для игры, так и наставников, которые помогут повысить уровень мастерства.`

const (
	msgChooseAction   = "Выберите действие:"
	msgUnknownCommand = "Неизвестная команда, пожалуйста, попробуйте снова!"
	msgStoreFailure   = "Произошла ошибка, попробуйте ещё раз."
	msgNoMoreProfiles = "Анкет больше нет."
	msgNoProfileYet   = "Сначала заполните анкету — нажмите «Найти команду»."
)

// Sender is the slice of the Telegram API the handlers use; satisfied by
// *tgbotapi.BotAPI.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// ProfileStore is what the handlers need from persistence; satisfied by
// *database.Store.
type ProfileStore interface {
	GetProfile(telegramID string) (*models.Profile, error)
	CreateProfile(p *models.Profile) error
	UpdateProfile(telegramID string, u models.ProfileUpdate) error
	DeleteProfile(telegramID string) error
	BrowseProfiles(viewerID string, offset int, f models.BrowseFilter) (*models.Profile, error)
	GetFileID(key string) (string, error)
	SaveFileID(key, fileID string) error
}

type Bot struct {
	api      Sender
	store    ProfileStore
	sessions *states.Manager
	log      *slog.Logger
	rules    string // path to the rules document on disk
}

func New(api Sender, store ProfileStore, sessions *states.Manager, log *slog.Logger, rulesPath string) *Bot {
	return &Bot{api: api, store: store, sessions: sessions, log: log, rules: rulesPath}
}

// HandleUpdate is the single entry point for every inbound update.
func (b *Bot) HandleUpdate(update tgbotapi.Update) {
	if update.Message != nil {
		b.handleMessage(update.Message)
	}
	if update.CallbackQuery != nil {
		b.handleCallback(update.CallbackQuery)
	}
}

func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	id := strconv.FormatInt(chatID, 10)
	text := msg.Text

	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			b.sessions.Reset(id)
			b.sendMainMenu(chatID)
		default:
			b.send(tgbotapi.NewMessage(chatID, msgUnknownCommand))
			b.sendMainMenu(chatID)
		}
		return
	}

	// The abort command wins over any active flow.
	if text == utils.CmdBack {
		b.sessions.Reset(id)
		b.sendMainMenu(chatID)
		return
	}

	// An active flow consumes the message as an answer.
	if s := b.sessions.Get(id); s != nil && s.Flow != states.FlowNone {
		b.continueFlow(chatID, id, s, text)
		return
	}

	switch text {
	case utils.CmdWhoWeAre:
		m := tgbotapi.NewMessage(chatID, aboutUs)
		m.ReplyMarkup = utils.BackKeyboard()
		b.send(m)
	case utils.CmdFindTeam:
		b.startFindTeam(chatID, id)
	case utils.CmdRules:
		b.sendRules(chatID)
	case utils.CmdMyCard:
		b.showMyCard(chatID, id)
	case utils.CmdEditCard:
		b.startEdit(chatID, id)
	case utils.CmdDelete:
		b.startDelete(chatID, id)
	default:
		b.send(tgbotapi.NewMessage(chatID, msgUnknownCommand))
		b.sendMainMenu(chatID)
	}
}

func (b *Bot) continueFlow(chatID int64, id string, s *states.Session, text string) {
	switch s.Flow {
	case states.FlowRegistering:
		b.handleRegistrationAnswer(chatID, id, s, text)
	case states.FlowBrowsing:
		b.handleBrowseAnswer(chatID, id, s, text)
	case states.FlowEditing:
		b.handleEditAnswer(chatID, id, s, text)
	case states.FlowDeleting:
		// deletion is confirmed by button only
		m := tgbotapi.NewMessage(chatID, "Подтвердите удаление анкеты кнопкой ниже.")
		m.ReplyMarkup = utils.DeleteConfirmKeyboard()
		b.send(m)
	default:
		b.sessions.Reset(id)
		b.sendMainMenu(chatID)
	}
}

func (b *Bot) showMyCard(chatID int64, id string) {
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
	m := tgbotapi.NewMessage(chatID, FormatProfile(p))
	m.ReplyMarkup = utils.MainMenuKeyboard()
	b.send(m)
}

func (b *Bot) sendMainMenu(chatID int64) {
	m := tgbotapi.NewMessage(chatID, msgChooseAction)
	m.ReplyMarkup = utils.MainMenuKeyboard()
	b.send(m)
}

func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.api.Send(c); err != nil {
		b.log.Error("send", "err", err)
	}
}

// fail logs a storage error, abandons the current flow and tells the
// user to retry; the update loop stays alive.
func (b *Bot) fail(chatID int64, id, op string, err error) {
	b.log.Error(op, "chat", id, "err", err)
	b.sessions.Reset(id)
	b.send(tgbotapi.NewMessage(chatID, msgStoreFailure))
	b.sendMainMenu(chatID)
}
