// Package notifier delivers reminder payloads to subscription endpoints:
// Web Push for browser subscriptions and Telegram for "tg:<chat id>" ones.
package notifier

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/habitual/internal/error_values"
	"github.com/limbo/habitual/pkg/entity"
)

const DefaultPushTTL = 3600

type WebPushConfig struct {
	VAPIDPublicKey  string
	VAPIDPrivateKey string
	// Contact of the application server, e-mail or https URL
	Subscriber string
	// Seconds the push service keeps an undelivered message
	TTL        int
	HTTPClient webpush.HTTPClient
}

type WebPush struct {
	cfg WebPushConfig
}

func NewWebPush(cfg WebPushConfig) *WebPush {
	// webpush-go adds the scheme itself
	cfg.Subscriber = strings.TrimPrefix(cfg.Subscriber, "mailto:")
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultPushTTL
	}
	return &WebPush{cfg: cfg}
}

func (wp *WebPush) PublicKey() string {
	return wp.cfg.VAPIDPublicKey
}

func (wp *WebPush) Send(ctx context.Context, sub entity.Subscription, payload entity.PushPayload) error {
	msg, err := sonic.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: encoding payload: %w", errorvalues.ErrTransportFailure, err)
	}
	resp, err := webpush.SendNotificationWithContext(ctx, msg,
		&webpush.Subscription{
			Endpoint: sub.Endpoint,
			Keys: webpush.Keys{
				Auth:   sub.Auth,
				P256dh: sub.P256dh,
			},
		},
		&webpush.Options{
			HTTPClient:      wp.cfg.HTTPClient,
			Subscriber:      wp.cfg.Subscriber,
			TTL:             wp.cfg.TTL,
			Urgency:         webpush.UrgencyNormal,
			VAPIDPublicKey:  wp.cfg.VAPIDPublicKey,
			VAPIDPrivateKey: wp.cfg.VAPIDPrivateKey,
		},
	)
	if err != nil {
		return fmt.Errorf("%w: %w", errorvalues.ErrTransportFailure, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return fmt.Errorf("%w: push service answered %d", errorvalues.ErrEndpointGone, resp.StatusCode)
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: push service answered %d: %s", errorvalues.ErrTransportFailure, resp.StatusCode, strings.TrimSpace(string(body)))
	}
}

// GenerateVAPIDKeys returns a fresh base64url encoded key pair.
func GenerateVAPIDKeys() (privateKey, publicKey string, err error) {
	privateKey, publicKey, err = webpush.GenerateVAPIDKeys()
	if err != nil {
		return "", "", fmt.Errorf("generating VAPID keys error: %w", err)
	}
	return privateKey, publicKey, nil
}
