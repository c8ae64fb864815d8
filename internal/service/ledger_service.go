package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/habitual/internal/analytics"
	errorvalues "github.com/limbo/habitual/internal/error_values"
	"github.com/limbo/habitual/internal/repository"
	"github.com/limbo/habitual/pkg/entity"
)

// LedgerService records completions and skips of habits. "Today" is the
// server-local date.
type LedgerService struct {
	habitsRepo repository.HabitsRepositoryI
	ledgerRepo repository.LedgerRepositoryI
	now        func() time.Time
}

func NewLedgerService(habitsRepo repository.HabitsRepositoryI, ledgerRepo repository.LedgerRepositoryI) *LedgerService {
	InitValidator()
	return &LedgerService{
		habitsRepo: habitsRepo,
		ledgerRepo: ledgerRepo,
		now:        time.Now,
	}
}

func (ls *LedgerService) WithClock(now func() time.Time) *LedgerService {
	ls.now = now
	return ls
}

func (ls *LedgerService) Complete(ctx context.Context, habitID, uid uuid.UUID, req *CompletionRequest) (*entity.Completion, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if _, err := ownedHabit(ctx, ls.habitsRepo, habitID, uid); err != nil {
		return nil, err
	}
	date, err := ls.recordDate(req.Date)
	if err != nil {
		return nil, err
	}
	c := entity.Completion{
		HabitID:  habitID,
		Date:     date,
		Duration: req.Duration,
		Notes:    req.Notes,
	}
	if err = ls.ledgerRepo.CreateCompletion(ctx, &c); err != nil {
		return nil, ledgerError(err)
	}
	return &c, nil
}

func (ls *LedgerService) Uncomplete(ctx context.Context, habitID, uid uuid.UUID, date time.Time) error {
	if _, err := ownedHabit(ctx, ls.habitsRepo, habitID, uid); err != nil {
		return err
	}
	if err := ls.ledgerRepo.DeleteCompletion(ctx, habitID, analytics.Day(date)); err != nil {
		return ledgerError(err)
	}
	return nil
}

func (ls *LedgerService) ListCompletions(ctx context.Context, habitID, uid uuid.UUID, period DateRange) ([]entity.Completion, error) {
	if _, err := ownedHabit(ctx, ls.habitsRepo, habitID, uid); err != nil {
		return nil, err
	}
	var (
		completions []entity.Completion
		err         error
	)
	if period.From == nil && period.To == nil {
		completions, err = ls.ledgerRepo.GetCompletions(ctx, habitID)
	} else {
		from, to, rangeErr := ls.bounds(period)
		if rangeErr != nil {
			return nil, rangeErr
		}
		completions, err = ls.ledgerRepo.GetCompletionsInRange(ctx, habitID, from, to)
	}
	if err != nil {
		return nil, fmt.Errorf("ledger repository error: %w", err)
	}
	return completions, nil
}

func (ls *LedgerService) Skip(ctx context.Context, habitID, uid uuid.UUID, req *SkipRequest) (*entity.Skip, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if _, err := ownedHabit(ctx, ls.habitsRepo, habitID, uid); err != nil {
		return nil, err
	}
	date, err := ls.recordDate(req.Date)
	if err != nil {
		return nil, err
	}
	s := entity.Skip{
		HabitID: habitID,
		Date:    date,
		Reason:  req.Reason,
	}
	if err = ls.ledgerRepo.CreateSkip(ctx, &s); err != nil {
		return nil, ledgerError(err)
	}
	return &s, nil
}

func (ls *LedgerService) Unskip(ctx context.Context, habitID, uid uuid.UUID, date time.Time) error {
	if _, err := ownedHabit(ctx, ls.habitsRepo, habitID, uid); err != nil {
		return err
	}
	if err := ls.ledgerRepo.DeleteSkip(ctx, habitID, analytics.Day(date)); err != nil {
		return ledgerError(err)
	}
	return nil
}

func (ls *LedgerService) ListSkips(ctx context.Context, habitID, uid uuid.UUID, period DateRange) ([]entity.Skip, error) {
	if _, err := ownedHabit(ctx, ls.habitsRepo, habitID, uid); err != nil {
		return nil, err
	}
	var (
		skips []entity.Skip
		err   error
	)
	if period.From == nil && period.To == nil {
		skips, err = ls.ledgerRepo.GetSkips(ctx, habitID)
	} else {
		from, to, rangeErr := ls.bounds(period)
		if rangeErr != nil {
			return nil, rangeErr
		}
		skips, err = ls.ledgerRepo.GetSkipsInRange(ctx, habitID, from, to)
	}
	if err != nil {
		return nil, fmt.Errorf("ledger repository error: %w", err)
	}
	return skips, nil
}

// recordDate defaults to today and refuses future days.
func (ls *LedgerService) recordDate(date *time.Time) (time.Time, error) {
	today := analytics.Day(ls.now())
	if date == nil {
		return today, nil
	}
	day := analytics.Day(*date)
	if day.After(today) {
		return time.Time{}, errorvalues.ErrDateInFuture
	}
	return day, nil
}

// bounds closes an open range: no start means the beginning of time,
// no end means today.
func (ls *LedgerService) bounds(period DateRange) (time.Time, time.Time, error) {
	from := time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)
	to := analytics.Day(ls.now())
	if period.From != nil {
		from = analytics.Day(*period.From)
	}
	if period.To != nil {
		to = analytics.Day(*period.To)
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, errorvalues.ErrInvalidDateRange
	}
	return from, to, nil
}

// Sentinels pass through untouched, anything else is a storage failure.
func ledgerError(err error) error {
	if errors.Is(err, errorvalues.ErrConflict) || errors.Is(err, errorvalues.ErrNotFound) {
		return err
	}
	return fmt.Errorf("ledger repository error: %w", err)
}
