//go:build integration

package service_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/limbo/habitual/internal/analytics"
	errorvalues "github.com/limbo/habitual/internal/error_values"
	"github.com/limbo/habitual/internal/repository"
	"github.com/limbo/habitual/internal/service"
	"github.com/limbo/habitual/pkg/entity"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"
)

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func TestUserServiceIntegrational(t *testing.T) {
	ctx := context.Background()
	pool, err := repository.NewPool(ctx, setupTestDB(t))
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	us := service.NewUserService(repository.NewUsersRepo(pool))
	username := "test_user"
	var user *entity.User
	t.Run("registered user", func(t *testing.T) {
		user, err = us.Register(ctx, &service.RegisterRequest{
			Name:     username,
			Password: password,
		})
		require.NoError(t, err)
		assert.Equal(t, username, user.Name)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)))
	})
	t.Run("error registering already existed user", func(t *testing.T) {
		_, err = us.Register(ctx, &service.RegisterRequest{
			Name:     username,
			Password: password,
		})
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("login", func(t *testing.T) {
		res, err := us.Login(ctx, username, password)
		assert.NoError(t, err)
		assert.Equal(t, *user, *res)
	})
	t.Run("error login on unexisted user", func(t *testing.T) {
		_, err := us.Login(ctx, "aaaaaaa", "bbbbb")
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("failed to delete w/ wrong password", func(t *testing.T) {
		err := us.DeleteAccount(ctx, user.ID, "dasdasd")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("deleted", func(t *testing.T) {
		assert.NoError(t, us.DeleteAccount(ctx, user.ID, password))
	})
	t.Run("failed to delete unexist user", func(t *testing.T) {
		assert.Error(t, us.DeleteAccount(ctx, user.ID, password))
	})
}

func TestHabitTrackingIntegrational(t *testing.T) {
	ctx := context.Background()
	pool, err := repository.NewPool(ctx, setupTestDB(t))
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	habitsRepo := repository.NewHabitsRepo(pool)
	ledgerRepo := repository.NewLedgerRepo(pool)
	today := time.Date(2024, 3, 10, 9, 30, 0, 0, time.Local)
	clock := func() time.Time { return today }
	hs := service.NewHabitsService(habitsRepo)
	ls := service.NewLedgerService(habitsRepo, ledgerRepo).WithClock(clock)
	ss := service.NewStatsService(habitsRepo, ledgerRepo).WithClock(clock)

	owner, err := service.NewUserService(repository.NewUsersRepo(pool)).Register(ctx, &service.RegisterRequest{
		Name:     "tracker",
		Password: password,
	})
	require.NoError(t, err)

	habits := make([]*entity.Habit, 0, 3)
	for i := range 3 {
		h, err := hs.CreateHabit(ctx, owner.ID, &service.CreateHabitRequest{
			Name:      fmt.Sprintf("test_habit_%d", i),
			Category:  "MORNING",
			Frequency: "DAILY",
		})
		require.NoError(t, err)
		habits = append(habits, h)
	}
	t.Run("duplicate name", func(t *testing.T) {
		_, err := hs.CreateHabit(ctx, owner.ID, &service.CreateHabitRequest{
			Name:      habits[0].Name,
			Category:  "OTHER",
			Frequency: "DAILY",
		})
		assert.ErrorIs(t, err, errorvalues.ErrUserHasHabit)
	})
	t.Run("paginated", func(t *testing.T) {
		res, err := hs.GetUserHabits(ctx, owner.ID, service.PaginationOpts{Limit: 2, Offset: 1})
		require.NoError(t, err)
		assert.Len(t, res, 2)
	})

	hid := habits[0].ID
	daysAgo := func(n int) *time.Time {
		d := today.AddDate(0, 0, -n)
		return &d
	}
	t.Run("ledger", func(t *testing.T) {
		for _, n := range []int{0, 1, 2, 4} {
			_, err := ls.Complete(ctx, hid, owner.ID, &service.CompletionRequest{Date: daysAgo(n)})
			require.NoError(t, err)
		}
		_, err := ls.Skip(ctx, hid, owner.ID, &service.SkipRequest{Date: daysAgo(3)})
		require.NoError(t, err)

		_, err = ls.Skip(ctx, hid, owner.ID, &service.SkipRequest{Date: daysAgo(0)})
		assert.ErrorIs(t, err, errorvalues.ErrDayAlreadyCompleted)
		_, err = ls.Complete(ctx, hid, owner.ID, &service.CompletionRequest{Date: daysAgo(-1)})
		assert.ErrorIs(t, err, errorvalues.ErrDateInFuture)
	})
	t.Run("stats", func(t *testing.T) {
		stats, err := ss.HabitStats(ctx, hid, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, 4, stats.TotalCompletions)
		assert.Equal(t, 1, stats.TotalSkips)
		assert.Equal(t, 3, stats.CurrentStreak)
		assert.Equal(t, 3, stats.LongestStreak)
		assert.Equal(t, 80.0, stats.CompletionRate)
		require.NotNil(t, stats.LastCompletion)
		assert.Equal(t, analytics.Day(today), *stats.LastCompletion)

		user, err := ss.UserStats(ctx, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, user.TotalHabits)
		assert.Equal(t, 3, user.BestCurrentStreak)
	})
	t.Run("uncomplete today resets current streak", func(t *testing.T) {
		require.NoError(t, ls.Uncomplete(ctx, hid, owner.ID, today))
		stats, err := ss.HabitStats(ctx, hid, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, stats.CurrentStreak)
		assert.Equal(t, 2, stats.LongestStreak)
	})
	t.Run("foreign habit", func(t *testing.T) {
		_, err := ss.HabitStats(ctx, hid, uuid.New())
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
		_, err = ls.Complete(ctx, hid, uuid.New(), &service.CompletionRequest{})
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
}

func setupTestDB(t *testing.T) *testPGConfig {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("habitual"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(context.Background(), "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	if err = goose.Up(conn, "../../migrations"); err != nil {
		t.Fatal(err)
	}
	return &testPGConfig{
		connStr: connStr,
	}
}
