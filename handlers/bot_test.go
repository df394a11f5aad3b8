package handlers

import (
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/matb3l/tg-bot/models"
	"github.com/matb3l/tg-bot/states"
)

var errTest = errors.New("store is down")

// fakeSender records everything the bot tries to send.
type fakeSender struct {
	sent []tgbotapi.Chattable
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, nil
}

func (f *fakeSender) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	return &tgbotapi.APIResponse{Ok: true}, nil
}

// texts returns the message bodies sent so far, in order.
func (f *fakeSender) texts() []string {
	var out []string
	for _, c := range f.sent {
		if m, ok := c.(tgbotapi.MessageConfig); ok {
			out = append(out, m.Text)
		}
	}
	return out
}

func (f *fakeSender) lastText() string {
	ts := f.texts()
	if len(ts) == 0 {
		return ""
	}
	return ts[len(ts)-1]
}

func (f *fakeSender) reset() { f.sent = nil }

// fakeStore is an in-memory ProfileStore with the same contract as the
// Postgres one: nil result for missing rows and exhausted offsets,
// creation-time ordering with telegram_id tie-break.
type fakeStore struct {
	profiles  map[string]models.Profile
	files     map[string]string
	seq         int
	createErr   error
	browseErr   error
	browseCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		profiles: make(map[string]models.Profile),
		files:    make(map[string]string),
	}
}

func (f *fakeStore) GetProfile(id string) (*models.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakeStore) CreateProfile(p *models.Profile) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.profiles[p.TelegramID]; ok {
		return errors.New("duplicate key value violates unique constraint")
	}
	f.seq++
	p.CreatedAt = time.Unix(int64(f.seq), 0)
	f.profiles[p.TelegramID] = *p
	return nil
}

func (f *fakeStore) UpdateProfile(id string, u models.ProfileUpdate) error {
	p, ok := f.profiles[id]
	if !ok {
		return sql.ErrNoRows
	}
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Nickname != nil {
		p.Nickname = *u.Nickname
	}
	if u.MMR != nil {
		p.MMR = *u.MMR
	}
	if u.Position != nil {
		p.Position = *u.Position
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	f.profiles[id] = p
	return nil
}

func (f *fakeStore) DeleteProfile(id string) error {
	delete(f.profiles, id)
	return nil
}

func (f *fakeStore) BrowseProfiles(viewer string, offset int, fl models.BrowseFilter) (*models.Profile, error) {
	f.browseCalls++
	if f.browseErr != nil {
		return nil, f.browseErr
	}
	var res []models.Profile
	for _, p := range f.profiles {
		if p.TelegramID == viewer {
			continue
		}
		if fl.MinMMR != nil && p.MMR < *fl.MinMMR {
			continue
		}
		if fl.MaxMMR != nil && p.MMR > *fl.MaxMMR {
			continue
		}
		if fl.Position != "" && p.Position != fl.Position {
			continue
		}
		res = append(res, p)
	}
	sort.Slice(res, func(i, j int) bool {
		if !res[i].CreatedAt.Equal(res[j].CreatedAt) {
			return res[i].CreatedAt.Before(res[j].CreatedAt)
		}
		return res[i].TelegramID < res[j].TelegramID
	})
	if offset < 0 || offset >= len(res) {
		return nil, nil
	}
	p := res[offset]
	return &p, nil
}

func (f *fakeStore) GetFileID(key string) (string, error) { return f.files[key], nil }

func (f *fakeStore) SaveFileID(key, fileID string) error {
	f.files[key] = fileID
	return nil
}

func newTestBot() (*Bot, *fakeSender, *fakeStore) {
	sender := &fakeSender{}
	store := newFakeStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	b := New(sender, store, states.NewManager(), logger, "rules.pdf")
	return b, sender, store
}

func textUpdate(chatID int64, text string) tgbotapi.Update {
	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			Text: text,
			Chat: &tgbotapi.Chat{ID: chatID},
			From: &tgbotapi.User{ID: chatID},
		},
	}
}

func callbackUpdate(chatID int64, data string) tgbotapi.Update {
	return tgbotapi.Update{
		CallbackQuery: &tgbotapi.CallbackQuery{
			ID:      "cb",
			Data:    data,
			From:    &tgbotapi.User{ID: chatID},
			Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: chatID}},
		},
	}
}

func seedProfile(f *fakeStore, chatID int64, name string, mmr int, position string) models.Profile {
	id := strconv.FormatInt(chatID, 10)
	f.seq++
	p := models.Profile{
		TelegramID: id,
		Name:       name,
		Nickname:   "@" + name,
		MMR:        mmr,
		Position:   position,
		CreatedAt:  time.Unix(int64(f.seq), 0),
	}
	f.profiles[id] = p
	return p
}
