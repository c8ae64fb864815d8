package reminder

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/habitual/pkg/entity"
)

// HabitSource lists habits whose reminder is set to clock (HH:MM).
type HabitSource interface {
	ListWithReminder(ctx context.Context, clock string) ([]entity.ReminderHabit, error)
}

type CompletionChecker interface {
	HasCompletion(ctx context.Context, habitID uuid.UUID, date time.Time) (bool, error)
}

// Registry is the subscription store as seen by the dispatcher.
type Registry interface {
	// Subscriptions of ownerID targeting habitID or all of the owner's habits
	ListForHabit(ctx context.Context, habitID, ownerID uuid.UUID) ([]entity.Subscription, error)
	DeleteByEndpoint(ctx context.Context, endpoint string) error
}

// Notifier delivers one payload to one subscription. nil means delivered,
// an error wrapping errorvalues.ErrEndpointGone means the endpoint expired,
// anything else is a transport failure.
type Notifier interface {
	Send(ctx context.Context, sub entity.Subscription, payload entity.PushPayload) error
}

type Ticker interface {
	Tick(ctx context.Context, now time.Time) TickReport
}
