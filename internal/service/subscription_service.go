package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/habitual/internal/error_values"
	"github.com/limbo/habitual/internal/notifier"
	"github.com/limbo/habitual/internal/reminder"
	"github.com/limbo/habitual/internal/repository"
	"github.com/limbo/habitual/pkg/entity"
)

var testPayload = entity.PushPayload{
	Title: "Test notification",
	Body:  "Reminders will arrive here",
}

type SubscriptionService struct {
	habitsRepo repository.HabitsRepositoryI
	subsRepo   repository.SubscriptionsRepositoryI
	deliverer  Deliverer
}

func NewSubscriptionService(habitsRepo repository.HabitsRepositoryI, subsRepo repository.SubscriptionsRepositoryI, deliverer Deliverer) *SubscriptionService {
	InitValidator()
	return &SubscriptionService{
		habitsRepo: habitsRepo,
		subsRepo:   subsRepo,
		deliverer:  deliverer,
	}
}

// Subscribe stores the endpoint for uid. Re-subscribing an own endpoint
// updates its keys and habit target; an endpoint of another user is a
// conflict and stays untouched.
func (ss *SubscriptionService) Subscribe(ctx context.Context, uid uuid.UUID, req *SubscribeRequest) (*entity.Subscription, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	sub := entity.Subscription{
		UserID:   uid,
		HabitID:  req.HabitID,
		Endpoint: strings.TrimSpace(req.Endpoint),
		P256dh:   req.P256dh,
		Auth:     req.Auth,
	}
	if err := checkEndpoint(&sub); err != nil {
		return nil, err
	}
	if req.HabitID != nil {
		if _, err := ownedHabit(ctx, ss.habitsRepo, *req.HabitID, uid); err != nil {
			return nil, err
		}
	}
	if err := ss.subsRepo.Upsert(ctx, &sub); err != nil {
		if errors.Is(err, errorvalues.ErrEndpointTaken) || errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("subscriptions repository error: %w", err)
	}
	return &sub, nil
}

func (ss *SubscriptionService) Unsubscribe(ctx context.Context, uid uuid.UUID, endpoint string) error {
	endpoint = strings.TrimSpace(endpoint)
	sub, err := ss.subsRepo.GetByEndpoint(ctx, endpoint)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSubscriptionNotFound) {
			return nil
		}
		return fmt.Errorf("subscriptions repository error: %w", err)
	}
	if sub.UserID != uid {
		return errorvalues.ErrWrongOwner
	}
	err = ss.subsRepo.DeleteByEndpoint(ctx, endpoint)
	if err != nil && !errors.Is(err, errorvalues.ErrSubscriptionNotFound) {
		return fmt.Errorf("subscriptions repository error: %w", err)
	}
	return nil
}

func (ss *SubscriptionService) List(ctx context.Context, uid uuid.UUID) ([]entity.Subscription, error) {
	subs, err := ss.subsRepo.ListByOwner(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("subscriptions repository error: %w", err)
	}
	return subs, nil
}

// SendTest goes through the same delivery path as reminders, so expired
// endpoints get pruned here too.
func (ss *SubscriptionService) SendTest(ctx context.Context, uid uuid.UUID) (reminder.DispatchResult, error) {
	subs, err := ss.List(ctx, uid)
	if err != nil {
		return reminder.DispatchResult{}, err
	}
	if len(subs) == 0 {
		return reminder.DispatchResult{}, errorvalues.ErrSubscriptionNotFound
	}
	return ss.deliverer.Deliver(ctx, subs, testPayload), nil
}

// checkEndpoint accepts "tg:<chat id>" or an http(s) push service URL
// with both encryption keys.
func checkEndpoint(sub *entity.Subscription) error {
	if strings.HasPrefix(sub.Endpoint, notifier.TelegramScheme) {
		if _, err := notifier.ParseTelegramEndpoint(sub.Endpoint); err != nil {
			return fmt.Errorf("%w: %w", errorvalues.ErrValidation, err)
		}
		sub.P256dh, sub.Auth = "", ""
		return nil
	}
	u, err := url.Parse(sub.Endpoint)
	if err != nil || (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		return fmt.Errorf("%w: endpoint must be an http(s) URL or tg:<chat id>", errorvalues.ErrValidation)
	}
	if sub.P256dh == "" || sub.Auth == "" {
		return fmt.Errorf("%w: p256dh and auth keys are required for web push", errorvalues.ErrValidation)
	}
	return nil
}
