package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/habitual/internal/error_values"
	"github.com/limbo/habitual/pkg/entity"
)

const subscriptionColumns = `id, user_id, habit_id, endpoint, p256dh, auth, created_at`

type SubscriptionsRepository struct {
	conn PgConnection
}

func NewSubscriptionsRepo(conn PgConnection) *SubscriptionsRepository {
	return &SubscriptionsRepository{
		conn: conn,
	}
}

// Upsert is a single statement: the WHERE of the conflict branch keeps
// another user's row untouched, and then nothing is returned.
func (sr *SubscriptionsRepository) Upsert(ctx context.Context, sub *entity.Subscription) error {
	row := sr.conn.QueryRow(ctx,
		`INSERT INTO push_subscriptions (user_id, habit_id, endpoint, p256dh, auth) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (endpoint) DO UPDATE SET habit_id = EXCLUDED.habit_id, p256dh = EXCLUDED.p256dh, auth = EXCLUDED.auth WHERE push_subscriptions.user_id = EXCLUDED.user_id RETURNING id, created_at;`,
		sub.UserID, sub.HabitID, sub.Endpoint, sub.P256dh, sub.Auth,
	)
	if err := row.Scan(&sub.ID, &sub.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errorvalues.ErrEndpointTaken
		}
		if pgErrCode(err) == codeForeignKeyViolation {
			return errorvalues.ErrHabitNotFound
		}
		return fmt.Errorf("upserting subscription error: %w", err)
	}
	return nil
}

func (sr *SubscriptionsRepository) GetByEndpoint(ctx context.Context, endpoint string) (*entity.Subscription, error) {
	row := sr.conn.QueryRow(ctx, `SELECT `+subscriptionColumns+` FROM push_subscriptions WHERE endpoint = $1;`, endpoint)
	var sub entity.Subscription
	if err := scanSubscription(row, &sub); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("getting subscription by endpoint error: %w", err)
	}
	return &sub, nil
}

func (sr *SubscriptionsRepository) ListForHabit(ctx context.Context, habitID, ownerID uuid.UUID) ([]entity.Subscription, error) {
	rows, err := sr.conn.Query(ctx,
		`SELECT `+subscriptionColumns+` FROM push_subscriptions WHERE user_id = $1 AND (habit_id = $2 OR habit_id IS NULL) ORDER BY created_at;`,
		ownerID, habitID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing subscriptions for habit error: %w", err)
	}
	return collectSubscriptions(rows)
}

func (sr *SubscriptionsRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.Subscription, error) {
	rows, err := sr.conn.Query(ctx,
		`SELECT `+subscriptionColumns+` FROM push_subscriptions WHERE user_id = $1 ORDER BY created_at;`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing subscriptions of user error: %w", err)
	}
	return collectSubscriptions(rows)
}

func (sr *SubscriptionsRepository) DeleteByEndpoint(ctx context.Context, endpoint string) error {
	ct, err := sr.conn.Exec(ctx, `DELETE FROM push_subscriptions WHERE endpoint = $1;`, endpoint)
	if err != nil {
		return fmt.Errorf("deleting subscription error: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrSubscriptionNotFound
	}
	return nil
}

func scanSubscription(row pgx.Row, sub *entity.Subscription) error {
	return row.Scan(&sub.ID, &sub.UserID, &sub.HabitID, &sub.Endpoint, &sub.P256dh, &sub.Auth, &sub.CreatedAt)
}

func collectSubscriptions(rows pgx.Rows) ([]entity.Subscription, error) {
	defer rows.Close()
	result := make([]entity.Subscription, 0)
	for rows.Next() {
		var sub entity.Subscription
		if err := scanSubscription(rows, &sub); err != nil {
			return nil, fmt.Errorf("subscription row parsing error: %w", err)
		}
		result = append(result, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected subscription rows error: %w", err)
	}
	return result, nil
}
