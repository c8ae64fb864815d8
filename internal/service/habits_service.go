package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/habitual/internal/error_values"
	"github.com/limbo/habitual/internal/repository"
	"github.com/limbo/habitual/pkg/entity"
)

type HabitsService struct {
	repo repository.HabitsRepositoryI
}

func NewHabitsService(habitsRepo repository.HabitsRepositoryI) *HabitsService {
	InitValidator()
	return &HabitsService{
		repo: habitsRepo,
	}
}

func (hs *HabitsService) CreateHabit(ctx context.Context, uid uuid.UUID, req *CreateHabitRequest) (*entity.Habit, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	h := entity.Habit{
		UserID:       uid,
		Name:         req.Name,
		Description:  req.Description,
		Category:     entity.Category(req.Category),
		Frequency:    entity.Frequency(req.Frequency),
		TargetCount:  req.TargetCount,
		ReminderTime: req.ReminderTime,
	}
	id, err := hs.repo.Create(ctx, &h)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrOwnerNotFound):
			return nil, errorvalues.ErrUserNotFound
		case errors.Is(err, errorvalues.ErrUserHasHabit):
			return nil, err
		}
		return nil, fmt.Errorf("habits repository error: %w", err)
	}
	habit, err := hs.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("habits repository error: %w", err)
	}
	return habit, nil
}

func (hs *HabitsService) GetUserHabits(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Habit, error) {
	habits, err := hs.repo.GetByUserID(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, fmt.Errorf("habits repository error: %w", err)
	}
	return habits, nil
}

func (hs *HabitsService) GetHabit(ctx context.Context, habitID, uid uuid.UUID) (*entity.Habit, error) {
	return ownedHabit(ctx, hs.repo, habitID, uid)
}

func (hs *HabitsService) UpdateHabit(ctx context.Context, habitID, uid uuid.UUID, req *UpdateHabitRequest) (*entity.Habit, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	habit, err := ownedHabit(ctx, hs.repo, habitID, uid)
	if err != nil {
		return nil, err
	}
	habit.Name = req.Name
	habit.Description = req.Description
	habit.Category = entity.Category(req.Category)
	habit.Frequency = entity.Frequency(req.Frequency)
	habit.TargetCount = req.TargetCount
	habit.ReminderTime = req.ReminderTime
	if err = hs.repo.Update(ctx, habit); err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) || errors.Is(err, errorvalues.ErrUserHasHabit) {
			return nil, err
		}
		return nil, fmt.Errorf("habits repository error: %w", err)
	}
	updated, err := hs.repo.GetByID(ctx, habitID)
	if err != nil {
		return nil, fmt.Errorf("habits repository error: %w", err)
	}
	return updated, nil
}

func (hs *HabitsService) DeleteHabit(ctx context.Context, habitID, uid uuid.UUID) error {
	if _, err := ownedHabit(ctx, hs.repo, habitID, uid); err != nil {
		return err
	}
	err := hs.repo.Delete(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return err
		}
		return fmt.Errorf("habits repository error: %w", err)
	}
	return nil
}

// ownedHabit loads a habit and checks it belongs to uid.
func ownedHabit(ctx context.Context, repo repository.HabitsRepositoryI, habitID, uid uuid.UUID) (*entity.Habit, error) {
	habit, err := repo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("habits repository error: %w", err)
	}
	if habit.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	return habit, nil
}
