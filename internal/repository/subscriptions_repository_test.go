package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/habitual/internal/error_values"
	"github.com/limbo/habitual/internal/repository"
	"github.com/limbo/habitual/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

var subscriptionRowColumns = []string{"id", "user_id", "habit_id", "endpoint", "p256dh", "auth", "created_at"}

func subscriptionRow(rows *pgxmock.Rows, s entity.Subscription) *pgxmock.Rows {
	return rows.AddRow(s.ID, s.UserID, s.HabitID, s.Endpoint, s.P256dh, s.Auth, s.CreatedAt)
}

func TestUpsertSubscription(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewSubscriptionsRepo(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`INSERT INTO push_subscriptions (user_id, habit_id, endpoint, p256dh, auth) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (endpoint) DO UPDATE SET habit_id = EXCLUDED.habit_id, p256dh = EXCLUDED.p256dh, auth = EXCLUDED.auth WHERE push_subscriptions.user_id = EXCLUDED.user_id RETURNING id, created_at;`)
	sub := entity.Subscription{
		UserID:   userID,
		HabitID:  ptr(uuid.New()),
		Endpoint: "https://push.example.com/ep/1",
		P256dh:   "p256dh-key",
		Auth:     "auth-secret",
	}
	args := []any{sub.UserID, sub.HabitID, sub.Endpoint, sub.P256dh, sub.Auth}
	sid := uuid.New()
	createdAt := time.Date(2024, 2, 2, 12, 0, 0, 0, time.UTC)

	t.Run("stored", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(args...).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(sid, createdAt))
		s := sub
		err := repo.Upsert(ctx, &s)
		assert.NoError(t, err)
		assert.Equal(t, sid, s.ID)
		assert.Equal(t, createdAt, s.CreatedAt)
	})
	t.Run("endpoint of another user", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(args...).WillReturnError(pgx.ErrNoRows)
		s := sub
		err := repo.Upsert(ctx, &s)
		assert.ErrorIs(t, err, errorvalues.ErrEndpointTaken)
		assert.ErrorIs(t, err, errorvalues.ErrConflict)
	})
	t.Run("habit vanished", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(args...).WillReturnError(&pgconn.PgError{Code: "23503"})
		s := sub
		err := repo.Upsert(ctx, &s)
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(args...).WillReturnError(errors.New("db error"))
		s := sub
		err := repo.Upsert(ctx, &s)
		assert.Error(t, err)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSubscriptionByEndpoint(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewSubscriptionsRepo(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT id, user_id, habit_id, endpoint, p256dh, auth, created_at FROM push_subscriptions WHERE endpoint = $1;`)
	var anyHabit *uuid.UUID
	sub := entity.Subscription{
		ID:        uuid.New(),
		UserID:    userID,
		HabitID:   anyHabit,
		Endpoint:  "tg:42",
		CreatedAt: time.Date(2024, 2, 2, 12, 0, 0, 0, time.UTC),
	}
	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(sub.Endpoint).
			WillReturnRows(subscriptionRow(pgxmock.NewRows(subscriptionRowColumns), sub))
		result, err := repo.GetByEndpoint(ctx, sub.Endpoint)
		assert.NoError(t, err)
		assert.Equal(t, sub, *result)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(sub.Endpoint).WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByEndpoint(ctx, sub.Endpoint)
		assert.ErrorIs(t, err, errorvalues.ErrSubscriptionNotFound)
	})
}

func TestListSubscriptions(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewSubscriptionsRepo(mock)
	ctx := context.Background()
	hid := uuid.New()
	var allHabits *uuid.UUID
	targeted := entity.Subscription{ID: uuid.New(), UserID: userID, HabitID: &hid, Endpoint: "https://push.example.com/a", P256dh: "k", Auth: "a"}
	global := entity.Subscription{ID: uuid.New(), UserID: userID, HabitID: allHabits, Endpoint: "https://push.example.com/b", P256dh: "k", Auth: "a"}

	t.Run("for habit", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, habit_id, endpoint, p256dh, auth, created_at FROM push_subscriptions WHERE user_id = $1 AND (habit_id = $2 OR habit_id IS NULL) ORDER BY created_at;`)).
			WithArgs(userID, hid).
			WillReturnRows(subscriptionRow(subscriptionRow(pgxmock.NewRows(subscriptionRowColumns), targeted), global))
		result, err := repo.ListForHabit(ctx, hid, userID)
		assert.NoError(t, err)
		assert.Equal(t, []entity.Subscription{targeted, global}, result)
	})
	t.Run("by owner", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, habit_id, endpoint, p256dh, auth, created_at FROM push_subscriptions WHERE user_id = $1 ORDER BY created_at;`)).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows(subscriptionRowColumns))
		result, err := repo.ListByOwner(ctx, userID)
		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, habit_id, endpoint, p256dh, auth, created_at FROM push_subscriptions WHERE user_id = $1 ORDER BY created_at;`)).
			WithArgs(userID).
			WillReturnError(errors.New("db error"))
		_, err := repo.ListByOwner(ctx, userID)
		assert.Error(t, err)
	})
}

func TestDeleteSubscriptionByEndpoint(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewSubscriptionsRepo(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`DELETE FROM push_subscriptions WHERE endpoint = $1;`)
	endpoint := "https://push.example.com/gone"

	mock.ExpectExec(query).WithArgs(endpoint).WillReturnResult(pgxmock.NewResult("DELETE", 1))
	assert.NoError(t, repo.DeleteByEndpoint(ctx, endpoint))

	mock.ExpectExec(query).WithArgs(endpoint).WillReturnResult(pgxmock.NewResult("DELETE", 0))
	assert.ErrorIs(t, repo.DeleteByEndpoint(ctx, endpoint), errorvalues.ErrSubscriptionNotFound)

	mock.ExpectExec(query).WithArgs(endpoint).WillReturnError(errors.New("db error"))
	assert.Error(t, repo.DeleteByEndpoint(ctx, endpoint))
}
