package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/habitual/pkg/entity"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks . HabitsRepositoryI,LedgerRepositoryI,SubscriptionsRepositoryI,UsersRepositoryI

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates user's info
	Update(ctx context.Context, user *entity.User) error
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type HabitsRepositoryI interface {
	// Creates new habit, returns its id. UserID, Name, Category and Frequency are necessary
	Create(ctx context.Context, habit *entity.Habit) (uuid.UUID, error)
	// Searches habit with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error)
	// Lists habits owned by user with uid. Requires pagination params provided
	GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Habit, error)
	// Lists every habit owned by user with uid
	ListAllByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Habit, error)
	// Lists habits with reminder time equal to clock (HH:MM), across all users
	ListWithReminder(ctx context.Context, clock string) ([]entity.ReminderHabit, error)
	// Updates habit by ID (ID in habit is necessary)
	Update(ctx context.Context, habit *entity.Habit) error
	// Deletes habit with id together with its ledger
	Delete(ctx context.Context, id uuid.UUID) error
}

// LedgerRepositoryI stores completions and skips. At most one record of
// either kind exists per (habit, date).
type LedgerRepositoryI interface {
	// Records a completion, fills ID and CreatedAt. Fails if the date is already completed or skipped
	CreateCompletion(ctx context.Context, c *entity.Completion) error
	DeleteCompletion(ctx context.Context, habitID uuid.UUID, date time.Time) error
	// All completions of habit ordered by date
	GetCompletions(ctx context.Context, habitID uuid.UUID) ([]entity.Completion, error)
	GetCompletionsInRange(ctx context.Context, habitID uuid.UUID, from, to time.Time) ([]entity.Completion, error)
	HasCompletion(ctx context.Context, habitID uuid.UUID, date time.Time) (bool, error)
	// Records a skip, fills ID and CreatedAt. Fails if the date is already skipped or completed
	CreateSkip(ctx context.Context, s *entity.Skip) error
	DeleteSkip(ctx context.Context, habitID uuid.UUID, date time.Time) error
	// All skips of habit ordered by date
	GetSkips(ctx context.Context, habitID uuid.UUID) ([]entity.Skip, error)
	GetSkipsInRange(ctx context.Context, habitID uuid.UUID, from, to time.Time) ([]entity.Skip, error)
}

type SubscriptionsRepositoryI interface {
	// Inserts subscription or updates keys and habit target of the owner's existing one.
	// Fails with ErrEndpointTaken if endpoint belongs to another user
	Upsert(ctx context.Context, sub *entity.Subscription) error
	GetByEndpoint(ctx context.Context, endpoint string) (*entity.Subscription, error)
	// Subscriptions of owner targeting habitID or all habits
	ListForHabit(ctx context.Context, habitID, ownerID uuid.UUID) ([]entity.Subscription, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.Subscription, error)
	DeleteByEndpoint(ctx context.Context, endpoint string) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
