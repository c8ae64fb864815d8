//go:build integration

package repository_test

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	errorvalues "github.com/limbo/habitual/internal/error_values"
	"github.com/limbo/habitual/internal/repository"
	"github.com/limbo/habitual/pkg/entity"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type testPGConfig struct {
	connStr string
}

func (c *testPGConfig) ConnString() string {
	return c.connStr
}

func TestRepositoriesIntegrational(t *testing.T) {
	cfg := setupTestDB(t)
	ctx := context.Background()
	pool, err := repository.NewPool(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	habitsRepo := repository.NewHabitsRepo(pool)
	ledgerRepo := repository.NewLedgerRepo(pool)
	subsRepo := repository.NewSubscriptionsRepo(pool)

	habits := []*entity.Habit{}
	for i := range 3 {
		habits = append(habits, &entity.Habit{
			UserID:      userID,
			Name:        fmt.Sprintf("habit_n%d", i),
			Description: fmt.Sprintf("desc_n%d", i),
			Category:    entity.CategoryMorning,
			Frequency:   entity.FrequencyDaily,
		})
	}
	habits[0].ReminderTime = ptr("07:00")

	t.Run("habits", func(t *testing.T) {
		for _, h := range habits {
			id, err := habitsRepo.Create(ctx, h)
			require.NoError(t, err)
			h.ID = id
		}
		_, err := habitsRepo.Create(ctx, habits[0])
		assert.ErrorIs(t, err, errorvalues.ErrUserHasHabit)
		_, err = habitsRepo.Create(ctx, &entity.Habit{UserID: uuid.New(), Name: "x", Category: entity.CategoryOther, Frequency: entity.FrequencyWeekly})
		assert.ErrorIs(t, err, errorvalues.ErrOwnerNotFound)

		page, err := habitsRepo.GetByUserID(ctx, userID, 2, 1)
		require.NoError(t, err)
		if assert.Len(t, page, 2) {
			assert.Equal(t, habits[1].ID, page[0].ID)
		}
		withReminder, err := habitsRepo.ListWithReminder(ctx, "07:00")
		require.NoError(t, err)
		assert.Equal(t, []entity.ReminderHabit{{HabitID: habits[0].ID, OwnerID: userID, Name: habits[0].Name, ReminderTime: "07:00"}}, withReminder)
		withReminder, err = habitsRepo.ListWithReminder(ctx, "07:01")
		require.NoError(t, err)
		assert.Empty(t, withReminder)
	})

	day := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	t.Run("ledger", func(t *testing.T) {
		hid := habits[0].ID
		c := entity.Completion{HabitID: hid, Date: day, Duration: ptr(15)}
		require.NoError(t, ledgerRepo.CreateCompletion(ctx, &c))
		assert.NotZero(t, c.ID)

		err := ledgerRepo.CreateCompletion(ctx, &entity.Completion{HabitID: hid, Date: day})
		assert.ErrorIs(t, err, errorvalues.ErrCompletionExists)
		err = ledgerRepo.CreateSkip(ctx, &entity.Skip{HabitID: hid, Date: day})
		assert.ErrorIs(t, err, errorvalues.ErrDayAlreadyCompleted)

		completions, err := ledgerRepo.GetCompletions(ctx, hid)
		require.NoError(t, err)
		if assert.Len(t, completions, 1) {
			assert.True(t, completions[0].Date.Equal(day))
		}
		ok, err := ledgerRepo.HasCompletion(ctx, hid, day)
		require.NoError(t, err)
		assert.True(t, ok)

		require.NoError(t, ledgerRepo.DeleteCompletion(ctx, hid, day))
		assert.ErrorIs(t, ledgerRepo.DeleteCompletion(ctx, hid, day), errorvalues.ErrCompletionNotFound)
		assert.ErrorIs(t, ledgerRepo.CreateSkip(ctx, &entity.Skip{HabitID: uuid.New(), Date: day}), errorvalues.ErrHabitNotFound)
	})

	t.Run("concurrent completion and skip of one day", func(t *testing.T) {
		hid := habits[1].ID
		var (
			wg   sync.WaitGroup
			errs = make([]error, 2)
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			errs[0] = ledgerRepo.CreateCompletion(ctx, &entity.Completion{HabitID: hid, Date: day})
		}()
		go func() {
			defer wg.Done()
			errs[1] = ledgerRepo.CreateSkip(ctx, &entity.Skip{HabitID: hid, Date: day})
		}()
		wg.Wait()
		failed := 0
		for _, err := range errs {
			if err != nil {
				assert.ErrorIs(t, err, errorvalues.ErrConflict)
				failed++
			}
		}
		assert.Equal(t, 1, failed)
	})

	t.Run("subscriptions", func(t *testing.T) {
		otherUser := insertUser(t, cfg, "other_user")
		endpoint := "https://push.example.com/shared"
		mine := entity.Subscription{UserID: userID, Endpoint: endpoint, P256dh: "k1", Auth: "a1"}
		require.NoError(t, subsRepo.Upsert(ctx, &mine))

		mine.P256dh, mine.HabitID = "k2", &habits[2].ID
		require.NoError(t, subsRepo.Upsert(ctx, &mine))

		theirs := entity.Subscription{UserID: otherUser, Endpoint: endpoint, P256dh: "k3", Auth: "a3"}
		assert.ErrorIs(t, subsRepo.Upsert(ctx, &theirs), errorvalues.ErrEndpointTaken)

		stored, err := subsRepo.GetByEndpoint(ctx, endpoint)
		require.NoError(t, err)
		assert.Equal(t, userID, stored.UserID)
		assert.Equal(t, "k2", stored.P256dh)

		forHabit, err := subsRepo.ListForHabit(ctx, habits[2].ID, userID)
		require.NoError(t, err)
		assert.Len(t, forHabit, 1)
		forOther, err := subsRepo.ListForHabit(ctx, habits[0].ID, userID)
		require.NoError(t, err)
		assert.Empty(t, forOther)

		require.NoError(t, subsRepo.DeleteByEndpoint(ctx, endpoint))
		assert.ErrorIs(t, subsRepo.DeleteByEndpoint(ctx, endpoint), errorvalues.ErrSubscriptionNotFound)
	})

	t.Run("habit delete cascades", func(t *testing.T) {
		require.NoError(t, habitsRepo.Delete(ctx, habits[1].ID))
		records, err := ledgerRepo.GetSkips(ctx, habits[1].ID)
		require.NoError(t, err)
		assert.Empty(t, records)
		_, err = habitsRepo.GetByID(ctx, habits[1].ID)
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
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
	cfg := &testPGConfig{connStr: connStr}
	_, err = conn.Exec(`INSERT INTO users (id, name, password_hash) VALUES ($1, $2, $3);`, userID, "test_name", "pass_hash")
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}

func insertUser(t *testing.T, cfg *testPGConfig, name string) uuid.UUID {
	conn, err := sql.Open("postgres", cfg.connStr)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	id := uuid.New()
	if _, err = conn.Exec(`INSERT INTO users (id, name, password_hash) VALUES ($1, $2, $3);`, id, name, "pass_hash"); err != nil {
		t.Fatal(err)
	}
	return id
}
