package reminder

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/habitual/internal/error_values"
	"github.com/limbo/habitual/pkg/entity"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultConcurrency = 8
	DefaultSendTimeout = 10 * time.Second
)

type Options struct {
	// Max notify calls in flight per tick or Deliver call
	Concurrency int
	SendTimeout time.Duration
}

type DispatchResult struct {
	HabitID uuid.UUID `json:"habit_id"`
	Sent    int       `json:"sent"`
	Pruned  int       `json:"pruned"`
	Failed  int       `json:"failed"`
}

type TickReport struct {
	At      time.Time        `json:"at"`
	Due     int              `json:"due"`
	Results []DispatchResult `json:"results"`
	// Habits whose subscriptions couldn't be read
	Errors int   `json:"errors"`
	Err    error `json:"-"`
}

func (r TickReport) Totals() (sent, pruned, failed int) {
	for _, res := range r.Results {
		sent += res.Sent
		pruned += res.Pruned
		failed += res.Failed
	}
	return sent, pruned, failed
}

// Dispatcher keeps no state between ticks.
type Dispatcher struct {
	matcher     *Matcher
	registry    Registry
	notifier    Notifier
	logger      logrus.FieldLogger
	concurrency int
	sendTimeout time.Duration
}

func NewDispatcher(matcher *Matcher, registry Registry, notifier Notifier, logger logrus.FieldLogger, opts Options) *Dispatcher {
	if opts.Concurrency < 1 {
		opts.Concurrency = DefaultConcurrency
	}
	if opts.SendTimeout <= 0 {
		opts.SendTimeout = DefaultSendTimeout
	}
	return &Dispatcher{
		matcher:     matcher,
		registry:    registry,
		notifier:    notifier,
		logger:      logger,
		concurrency: opts.Concurrency,
		sendTimeout: opts.SendTimeout,
	}
}

func ReminderPayload(habit entity.ReminderHabit) entity.PushPayload {
	return entity.PushPayload{
		Title:   "Habit reminder",
		Body:    fmt.Sprintf("Time for %q", habit.Name),
		HabitID: habit.HabitID.String(),
	}
}

// Tick runs one matching and dispatching round for the minute of now.
// Subscriptions of all due habits are read before any send, then every
// delivery of the tick shares one concurrency limit.
func (d *Dispatcher) Tick(ctx context.Context, now time.Time) TickReport {
	report := TickReport{At: now, Results: make([]DispatchResult, 0)}
	due, err := d.matcher.Due(ctx, now)
	if err != nil {
		d.logger.WithError(err).Error("matching reminders failed")
		report.Err = err
		return report
	}
	report.Due = len(due)
	jobs := make([]delivery, 0)
	for _, habit := range due {
		subs, err := d.registry.ListForHabit(ctx, habit.HabitID, habit.OwnerID)
		if err != nil {
			d.logger.WithError(err).WithField("habit_id", habit.HabitID).Error("listing subscriptions for reminder failed")
			report.Errors++
			continue
		}
		payload := ReminderPayload(habit)
		for _, sub := range subs {
			jobs = append(jobs, delivery{result: len(report.Results), sub: sub, payload: payload})
		}
		report.Results = append(report.Results, DispatchResult{HabitID: habit.HabitID})
	}
	d.deliverAll(ctx, report.Results, jobs)
	return report
}

// Dispatch sends payload to every subscription of the habit owner that
// targets the habit or all habits. It fails only when the subscriptions
// can't be listed; delivery failures are counted in the result.
func (d *Dispatcher) Dispatch(ctx context.Context, habit entity.ReminderHabit, payload entity.PushPayload) (DispatchResult, error) {
	subs, err := d.registry.ListForHabit(ctx, habit.HabitID, habit.OwnerID)
	if err != nil {
		return DispatchResult{HabitID: habit.HabitID}, fmt.Errorf("listing subscriptions error: %w", err)
	}
	res := d.Deliver(ctx, subs, payload)
	res.HabitID = habit.HabitID
	return res, nil
}

// Deliver notifies subs concurrently. Expired endpoints are removed from
// the registry.
func (d *Dispatcher) Deliver(ctx context.Context, subs []entity.Subscription, payload entity.PushPayload) DispatchResult {
	results := make([]DispatchResult, 1)
	jobs := make([]delivery, 0, len(subs))
	for _, sub := range subs {
		jobs = append(jobs, delivery{sub: sub, payload: payload})
	}
	d.deliverAll(ctx, results, jobs)
	return results[0]
}

type delivery struct {
	// index into the results slice
	result  int
	sub     entity.Subscription
	payload entity.PushPayload
}

func (d *Dispatcher) deliverAll(ctx context.Context, results []DispatchResult, jobs []delivery) {
	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(d.concurrency)
	for _, job := range jobs {
		g.Go(func() error {
			outcome := d.deliverOne(ctx, job.sub, job.payload)
			mu.Lock()
			results[job.result].add(outcome)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
}

type outcome int

const (
	outcomeSent outcome = iota
	outcomePruned
	outcomeFailed
)

func (r *DispatchResult) add(o outcome) {
	switch o {
	case outcomeSent:
		r.Sent++
	case outcomePruned:
		r.Pruned++
	default:
		r.Failed++
	}
}

func (d *Dispatcher) deliverOne(ctx context.Context, sub entity.Subscription, payload entity.PushPayload) outcome {
	logger := d.logger.WithFields(logrus.Fields{
		"subscription_id": sub.ID,
		"owner_id":        sub.UserID,
	})
	sendCtx, cancel := context.WithTimeout(ctx, d.sendTimeout)
	err := d.notifier.Send(sendCtx, sub, payload)
	cancel()
	switch {
	case err == nil:
		return outcomeSent
	case errors.Is(err, errorvalues.ErrEndpointGone):
		err = d.registry.DeleteByEndpoint(ctx, sub.Endpoint)
		if err != nil && !errors.Is(err, errorvalues.ErrSubscriptionNotFound) {
			logger.WithError(err).Error("pruning expired subscription failed")
			return outcomeFailed
		}
		logger.Info("expired subscription pruned")
		return outcomePruned
	default:
		logger.WithError(err).Warn("notification not delivered")
		return outcomeFailed
	}
}
