package telegram

import (
	"context"
	"log"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"web-chatter/internal/assistant"
	"web-chatter/internal/session"
)

// Bot serves the assistant over Telegram with one session per chat.
type Bot struct {
	api     *tgbotapi.BotAPI
	engine  *assistant.Engine
	allowed map[int64]bool

	mu       sync.Mutex
	sessions map[int64]*session.Session
}

func New(botToken string, engine *assistant.Engine, allowedUsers []int64) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}
	allowed := make(map[int64]bool, len(allowedUsers))
	for _, id := range allowedUsers {
		allowed[id] = true
	}
	return &Bot{
		api:      api,
		engine:   engine,
		allowed:  allowed,
		sessions: make(map[int64]*session.Session),
	}, nil
}

func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil || update.Message.Text == "" {
			continue
		}
		b.handleIncomingMessage(ctx, update.Message)
	}
}

func (b *Bot) handleIncomingMessage(ctx context.Context, msg *tgbotapi.Message) {
	if len(b.allowed) > 0 && !b.allowed[msg.From.ID] {
		log.Printf("unauthorized access attempt by user ID: %d, username: @%s", msg.From.ID, msg.From.UserName)
		return
	}

	log.Printf("incoming message from %d (@%s): %q", msg.From.ID, msg.From.UserName, msg.Text)

	sess := b.sessionFor(msg.Chat.ID)
	answer, err := b.engine.Ask(ctx, sess, msg.Text)
	if err != nil {
		log.Printf("failed to answer: %v", err)
		b.sendMessage(msg.Chat.ID, "Sorry, something went wrong.")
		return
	}

	b.sendMessage(msg.Chat.ID, answer)
}

func (b *Bot) sessionFor(chatID int64) *session.Session {
	b.mu.Lock()
	defer b.mu.Unlock()
	if s, ok := b.sessions[chatID]; ok {
		return s
	}
	s := session.New()
	b.sessions[chatID] = s
	return s
}

func (b *Bot) sendMessage(chatID int64, text string) {
	out := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(out); err != nil {
		log.Printf("failed to send message: %v", err)
	}
}
