package notifier

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	errorvalues "github.com/limbo/habitual/internal/error_values"
	"github.com/limbo/habitual/pkg/entity"
	"gopkg.in/telebot.v3"
)

// TelegramScheme prefixes endpoints delivered through the Telegram bot.
const TelegramScheme = "tg:"

// TelegramSender is the part of *telebot.Bot used for delivery.
type TelegramSender interface {
	Send(to telebot.Recipient, what interface{}, opts ...interface{}) (*telebot.Message, error)
}

type Telegram struct {
	bot TelegramSender
}

func NewTelegram(bot TelegramSender) *Telegram {
	return &Telegram{bot: bot}
}

// ParseTelegramEndpoint extracts the chat id of a "tg:<chat id>" endpoint.
func ParseTelegramEndpoint(endpoint string) (int64, error) {
	raw, ok := strings.CutPrefix(endpoint, TelegramScheme)
	if !ok {
		return 0, fmt.Errorf("endpoint %q is not a telegram one", endpoint)
	}
	chatID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || chatID == 0 {
		return 0, fmt.Errorf("invalid telegram chat id %q", raw)
	}
	return chatID, nil
}

func (t *Telegram) Send(ctx context.Context, sub entity.Subscription, payload entity.PushPayload) error {
	chatID, err := ParseTelegramEndpoint(sub.Endpoint)
	if err != nil {
		return fmt.Errorf("%w: %w", errorvalues.ErrTransportFailure, err)
	}
	if err = ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", errorvalues.ErrTransportFailure, err)
	}
	text := payload.Title
	if payload.Body != "" {
		text += "\n" + payload.Body
	}
	// telebot takes no context; the bot's http client bounds the call itself
	done := make(chan error, 1)
	go func() {
		_, err := t.bot.Send(telebot.ChatID(chatID), text, &telebot.SendOptions{DisableWebPagePreview: true})
		done <- err
	}()
	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", errorvalues.ErrTransportFailure, ctx.Err())
	case err = <-done:
	}
	switch {
	case err == nil:
		return nil
	case errors.Is(err, telebot.ErrBlockedByUser),
		errors.Is(err, telebot.ErrChatNotFound),
		errors.Is(err, telebot.ErrUserIsDeactivated),
		errors.Is(err, telebot.ErrKickedFromGroup):
		return fmt.Errorf("%w: %w", errorvalues.ErrEndpointGone, err)
	default:
		return fmt.Errorf("%w: %w", errorvalues.ErrTransportFailure, err)
	}
}
