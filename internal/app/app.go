// Package app wires configuration into the reminder engine. Both the API
// server and habitctl build their dispatcher here.
package app

import (
	"fmt"
	"net/http"

	"github.com/limbo/habitual/internal/notifier"
	"github.com/limbo/habitual/internal/reminder"
	"github.com/limbo/habitual/internal/repository"
	"github.com/limbo/habitual/pkg/config"
	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// NewNotifier builds the transport router. A transport without
// credentials stays disabled.
func NewNotifier(cfg *config.AppConfig, logger logrus.FieldLogger) (*notifier.Router, error) {
	var webPush, telegram notifier.Sender
	if cfg.VAPIDPublicKey != "" && cfg.VAPIDPrivateKey != "" {
		webPush = notifier.NewWebPush(notifier.WebPushConfig{
			VAPIDPublicKey:  cfg.VAPIDPublicKey,
			VAPIDPrivateKey: cfg.VAPIDPrivateKey,
			Subscriber:      cfg.VAPIDSubscriber,
			TTL:             cfg.PushTTL,
		})
	} else {
		logger.Warn("VAPID keys are not set, web push is disabled")
	}
	if cfg.TelegramToken != "" {
		sendTimeout := cfg.ReminderSendTimeout
		if sendTimeout <= 0 {
			sendTimeout = reminder.DefaultSendTimeout
		}
		bot, err := telebot.NewBot(telebot.Settings{
			Token:  cfg.TelegramToken,
			Client: &http.Client{Timeout: sendTimeout},
			OnError: func(err error, _ telebot.Context) {
				logger.WithError(err).Error("telebot error")
			},
		})
		if err != nil {
			return nil, fmt.Errorf("creating telegram bot error: %w", err)
		}
		telegram = notifier.NewTelegram(bot)
		logger.WithField("bot", bot.Me.Username).Info("telegram transport enabled")
	}
	return notifier.NewRouter(webPush, telegram), nil
}

// NewDispatcher builds the reminder pipeline on top of Postgres
// repositories.
func NewDispatcher(conn repository.PgConnection, n reminder.Notifier, cfg *config.AppConfig, logger logrus.FieldLogger) *reminder.Dispatcher {
	habitsRepo := repository.NewHabitsRepo(conn)
	ledgerRepo := repository.NewLedgerRepo(conn)
	subsRepo := repository.NewSubscriptionsRepo(conn)
	entry := logger.WithField("component", "reminder")
	matcher := reminder.NewMatcher(habitsRepo, ledgerRepo, entry)
	return reminder.NewDispatcher(matcher, subsRepo, n, entry, reminder.Options{
		Concurrency: cfg.ReminderConcurrency,
		SendTimeout: cfg.ReminderSendTimeout,
	})
}

// DBConfig adapts AppConfig to repository.DBConfig.
func DBConfig(cfg *config.AppConfig) *repository.PGCfg {
	return &repository.PGCfg{
		Address:  cfg.PostgresAddress,
		Username: cfg.PostgresUser,
		Password: cfg.PostgresPassword,
		DB:       cfg.PostgresDB,
	}
}
