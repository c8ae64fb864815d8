package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/limbo/habitual/internal/analytics"
	"github.com/limbo/habitual/pkg/entity"
	"github.com/sirupsen/logrus"
)

const ClockLayout = "15:04"

// ReminderDue reports whether a HH:MM reminder fires at now. The match is
// exact to the minute in now's location; missed minutes are not caught up.
func ReminderDue(reminderTime string, now time.Time) bool {
	return reminderTime == now.Format(ClockLayout)
}

type Matcher struct {
	habits HabitSource
	ledger CompletionChecker
	logger logrus.FieldLogger
}

func NewMatcher(habits HabitSource, ledger CompletionChecker, logger logrus.FieldLogger) *Matcher {
	return &Matcher{
		habits: habits,
		ledger: ledger,
		logger: logger,
	}
}

// Due returns habits whose reminder fires at now and which are not yet
// completed today. A failed ledger lookup drops only that habit.
func (m *Matcher) Due(ctx context.Context, now time.Time) ([]entity.ReminderHabit, error) {
	habits, err := m.habits.ListWithReminder(ctx, now.Format(ClockLayout))
	if err != nil {
		return nil, fmt.Errorf("listing habits with reminder error: %w", err)
	}
	today := analytics.Day(now)
	due := make([]entity.ReminderHabit, 0)
	for _, h := range habits {
		if !ReminderDue(h.ReminderTime, now) {
			continue
		}
		done, err := m.ledger.HasCompletion(ctx, h.HabitID, today)
		if err != nil {
			m.logger.WithError(err).WithField("habit_id", h.HabitID).Warn("checking today's completion failed, skipping reminder")
			continue
		}
		if done {
			m.logger.WithField("habit_id", h.HabitID).Debug("habit already completed today")
			continue
		}
		due = append(due, h)
	}
	return due, nil
}
