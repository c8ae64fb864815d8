package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/habitual/internal/analytics"
	"github.com/limbo/habitual/internal/repository"
	"github.com/limbo/habitual/pkg/entity"
)

type StatsService struct {
	habitsRepo repository.HabitsRepositoryI
	ledgerRepo repository.LedgerRepositoryI
	now        func() time.Time
}

func NewStatsService(habitsRepo repository.HabitsRepositoryI, ledgerRepo repository.LedgerRepositoryI) *StatsService {
	return &StatsService{
		habitsRepo: habitsRepo,
		ledgerRepo: ledgerRepo,
		now:        time.Now,
	}
}

func (ss *StatsService) WithClock(now func() time.Time) *StatsService {
	ss.now = now
	return ss
}

func (ss *StatsService) HabitStats(ctx context.Context, habitID, uid uuid.UUID) (*entity.HabitStats, error) {
	if _, err := ownedHabit(ctx, ss.habitsRepo, habitID, uid); err != nil {
		return nil, err
	}
	stats, err := ss.compute(ctx, habitID, ss.now())
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (ss *StatsService) UserStats(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error) {
	habits, err := ss.habitsRepo.ListAllByUserID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("habits repository error: %w", err)
	}
	// one clock reading keeps "today" equal across habits
	now := ss.now()
	perHabit := make([]entity.HabitStats, 0, len(habits))
	for _, h := range habits {
		stats, err := ss.compute(ctx, h.ID, now)
		if err != nil {
			return nil, err
		}
		perHabit = append(perHabit, stats)
	}
	res := analytics.Aggregate(perHabit)
	res.UserID = uid
	return &res, nil
}

func (ss *StatsService) compute(ctx context.Context, habitID uuid.UUID, now time.Time) (entity.HabitStats, error) {
	completions, err := ss.ledgerRepo.GetCompletions(ctx, habitID)
	if err != nil {
		return entity.HabitStats{}, fmt.Errorf("ledger repository error: %w", err)
	}
	skips, err := ss.ledgerRepo.GetSkips(ctx, habitID)
	if err != nil {
		return entity.HabitStats{}, fmt.Errorf("ledger repository error: %w", err)
	}
	stats := analytics.Compute(completions, skips, now)
	stats.ID = habitID
	return stats, nil
}
