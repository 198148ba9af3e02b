// Package telegram posts moderation decision notices to a staff chat.
package telegram

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type Notifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
	log    *zap.Logger
}

func NewNotifier(token string, chatID int64, log *zap.Logger) (*Notifier, error) {
	if strings.TrimSpace(token) == "" {
		return nil, fmt.Errorf("telegram token is empty")
	}
	if chatID == 0 {
		return nil, fmt.Errorf("telegram chat id is required")
	}

	api, err := tgbotapi.NewBotAPI(strings.TrimSpace(token))
	if err != nil {
		return nil, fmt.Errorf("create telegram bot api: %w", err)
	}

	return &Notifier{api: api, chatID: chatID, log: log}, nil
}

// Notify delivers a notice on a best-effort basis: a failed send is logged
// and swallowed so a chat outage never fails a moderation commit.
func (n *Notifier) Notify(_ context.Context, message string) {
	if n == nil || n.api == nil || strings.TrimSpace(message) == "" {
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, message)
	if _, err := n.api.Send(msg); err != nil && n.log != nil {
		n.log.Warn("send telegram notice", zap.Error(err))
	}
}
