package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/habitual/internal/reminder"
	"github.com/limbo/habitual/pkg/entity"
)

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks . UserServiceI,HabitsServiceI,LedgerServiceI,StatsServiceI,SubscriptionServiceI,Deliverer

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type CreateHabitRequest struct {
	Name         string  `validate:"required,max=100"`
	Description  string  `validate:"max=1000"`
	Category     string  `validate:"required,oneof=MORNING EVENING OTHER"`
	Frequency    string  `validate:"required,oneof=DAILY WEEKLY"`
	TargetCount  *int    `validate:"omitempty,min=1"`
	ReminderTime *string `validate:"omitempty,clock"`
}

// UpdateHabitRequest replaces every editable field of a habit.
type UpdateHabitRequest CreateHabitRequest

type PaginationOpts struct {
	Limit  int
	Offset int
}

type CompletionRequest struct {
	// Today when nil
	Date     *time.Time
	Duration *int    `validate:"omitempty,min=0,max=1440"`
	Notes    *string `validate:"omitempty,max=1000"`
}

type SkipRequest struct {
	// Today when nil
	Date   *time.Time
	Reason *string `validate:"omitempty,max=1000"`
}

// DateRange bounds are inclusive, nil means open.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

type SubscribeRequest struct {
	Endpoint string `validate:"required,max=2048"`
	P256dh   string `validate:"max=256"`
	Auth     string `validate:"max=256"`
	// nil subscribes to every habit of the user
	HabitID *uuid.UUID
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

// Every method taking both habitID and uid fails with ErrWrongOwner when
// the habit belongs to someone else.
type HabitsServiceI interface {
	CreateHabit(ctx context.Context, uid uuid.UUID, req *CreateHabitRequest) (*entity.Habit, error)
	GetUserHabits(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Habit, error)
	GetHabit(ctx context.Context, habitID, uid uuid.UUID) (*entity.Habit, error)
	UpdateHabit(ctx context.Context, habitID, uid uuid.UUID, req *UpdateHabitRequest) (*entity.Habit, error)
	DeleteHabit(ctx context.Context, habitID, uid uuid.UUID) error
}

type LedgerServiceI interface {
	Complete(ctx context.Context, habitID, uid uuid.UUID, req *CompletionRequest) (*entity.Completion, error)
	Uncomplete(ctx context.Context, habitID, uid uuid.UUID, date time.Time) error
	ListCompletions(ctx context.Context, habitID, uid uuid.UUID, period DateRange) ([]entity.Completion, error)
	Skip(ctx context.Context, habitID, uid uuid.UUID, req *SkipRequest) (*entity.Skip, error)
	Unskip(ctx context.Context, habitID, uid uuid.UUID, date time.Time) error
	ListSkips(ctx context.Context, habitID, uid uuid.UUID, period DateRange) ([]entity.Skip, error)
}

type StatsServiceI interface {
	HabitStats(ctx context.Context, habitID, uid uuid.UUID) (*entity.HabitStats, error)
	UserStats(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error)
}

type SubscriptionServiceI interface {
	Subscribe(ctx context.Context, uid uuid.UUID, req *SubscribeRequest) (*entity.Subscription, error)
	// Unknown endpoints are not an error
	Unsubscribe(ctx context.Context, uid uuid.UUID, endpoint string) error
	List(ctx context.Context, uid uuid.UUID) ([]entity.Subscription, error)
	// Sends a test notification to every subscription of the user
	SendTest(ctx context.Context, uid uuid.UUID) (reminder.DispatchResult, error)
}

// Deliverer is implemented by *reminder.Dispatcher.
type Deliverer interface {
	Deliver(ctx context.Context, subs []entity.Subscription, payload entity.PushPayload) reminder.DispatchResult
}
