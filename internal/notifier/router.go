package notifier

import (
	"context"
	"fmt"
	"strings"

	errorvalues "github.com/limbo/habitual/internal/error_values"
	"github.com/limbo/habitual/pkg/entity"
)

type Sender interface {
	Send(ctx context.Context, sub entity.Subscription, payload entity.PushPayload) error
}

// Router picks the transport by endpoint scheme. A nil transport is
// disabled and every send to it fails.
type Router struct {
	webPush  Sender
	telegram Sender
}

func NewRouter(webPush, telegram Sender) *Router {
	return &Router{
		webPush:  webPush,
		telegram: telegram,
	}
}

func (r *Router) Send(ctx context.Context, sub entity.Subscription, payload entity.PushPayload) error {
	transport, name := r.webPush, "web push"
	if strings.HasPrefix(sub.Endpoint, TelegramScheme) {
		transport, name = r.telegram, "telegram"
	}
	if transport == nil {
		return fmt.Errorf("%w: %s transport is disabled", errorvalues.ErrTransportFailure, name)
	}
	return transport.Send(ctx, sub, payload)
}
