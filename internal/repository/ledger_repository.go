package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/habitual/internal/error_values"
	"github.com/limbo/habitual/pkg/entity"
)

type LedgerRepository struct {
	conn PgConnection
}

func NewLedgerRepo(conn PgConnection) *LedgerRepository {
	return &LedgerRepository{
		conn: conn,
	}
}

func (lr *LedgerRepository) CreateCompletion(ctx context.Context, c *entity.Completion) error {
	return lr.insertDayRecord(ctx, c.HabitID, c.Date,
		`SELECT EXISTS(SELECT 1 FROM habit_skips WHERE habit_id = $1 AND skip_date = $2);`,
		errorvalues.ErrDayAlreadySkipped,
		func(tx pgx.Tx) error {
			row := tx.QueryRow(ctx,
				`INSERT INTO habit_completions (habit_id, completion_date, duration_minutes, notes) VALUES ($1, $2, $3, $4) RETURNING id, created_at;`,
				c.HabitID, c.Date, c.Duration, c.Notes,
			)
			if err := row.Scan(&c.ID, &c.CreatedAt); err != nil {
				if pgErrCode(err) == codeUniqueViolation {
					return errorvalues.ErrCompletionExists
				}
				return fmt.Errorf("creating completion error: %w", err)
			}
			return nil
		},
	)
}

func (lr *LedgerRepository) CreateSkip(ctx context.Context, s *entity.Skip) error {
	return lr.insertDayRecord(ctx, s.HabitID, s.Date,
		`SELECT EXISTS(SELECT 1 FROM habit_completions WHERE habit_id = $1 AND completion_date = $2);`,
		errorvalues.ErrDayAlreadyCompleted,
		func(tx pgx.Tx) error {
			row := tx.QueryRow(ctx,
				`INSERT INTO habit_skips (habit_id, skip_date, reason) VALUES ($1, $2, $3) RETURNING id, created_at;`,
				s.HabitID, s.Date, s.Reason,
			)
			if err := row.Scan(&s.ID, &s.CreatedAt); err != nil {
				if pgErrCode(err) == codeUniqueViolation {
					return errorvalues.ErrSkipExists
				}
				return fmt.Errorf("creating skip error: %w", err)
			}
			return nil
		},
	)
}

// insertDayRecord serializes writers of one habit on its row lock, so the
// check of the opposite table and the insert are atomic together. Writers
// of different habits don't block each other. Duplicates of the same kind
// are caught by the UNIQUE (habit_id, date) constraints.
func (lr *LedgerRepository) insertDayRecord(ctx context.Context, habitID uuid.UUID, date time.Time,
	oppositeQuery string, oppositeErr error, insert func(tx pgx.Tx) error) error {
	tx, err := lr.conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning ledger transaction error: %w", err)
	}
	defer tx.Rollback(ctx)

	var locked uuid.UUID
	if err = tx.QueryRow(ctx, `SELECT id FROM habits WHERE id = $1 FOR UPDATE;`, habitID).Scan(&locked); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errorvalues.ErrHabitNotFound
		}
		return fmt.Errorf("locking habit error: %w", err)
	}
	var taken bool
	if err = tx.QueryRow(ctx, oppositeQuery, habitID, date).Scan(&taken); err != nil {
		return fmt.Errorf("inspecting ledger day error: %w", err)
	}
	if taken {
		return oppositeErr
	}
	if err = insert(tx); err != nil {
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing ledger transaction error: %w", err)
	}
	return nil
}

func (lr *LedgerRepository) DeleteCompletion(ctx context.Context, habitID uuid.UUID, date time.Time) error {
	ct, err := lr.conn.Exec(ctx, `DELETE FROM habit_completions WHERE habit_id = $1 AND completion_date = $2;`, habitID, date)
	if err != nil {
		return fmt.Errorf("deleting completion error: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrCompletionNotFound
	}
	return nil
}

func (lr *LedgerRepository) DeleteSkip(ctx context.Context, habitID uuid.UUID, date time.Time) error {
	ct, err := lr.conn.Exec(ctx, `DELETE FROM habit_skips WHERE habit_id = $1 AND skip_date = $2;`, habitID, date)
	if err != nil {
		return fmt.Errorf("deleting skip error: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrSkipNotFound
	}
	return nil
}

func (lr *LedgerRepository) HasCompletion(ctx context.Context, habitID uuid.UUID, date time.Time) (bool, error) {
	var exists bool
	row := lr.conn.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM habit_completions WHERE habit_id = $1 AND completion_date = $2);`,
		habitID, date,
	)
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("inspecting if completion exists error: %w", err)
	}
	return exists, nil
}

func (lr *LedgerRepository) GetCompletions(ctx context.Context, habitID uuid.UUID) ([]entity.Completion, error) {
	rows, err := lr.conn.Query(ctx,
		`SELECT id, habit_id, completion_date, duration_minutes, notes, created_at FROM habit_completions WHERE habit_id = $1 ORDER BY completion_date;`,
		habitID,
	)
	if err != nil {
		return nil, fmt.Errorf("getting completions error: %w", err)
	}
	return collectCompletions(rows)
}

func (lr *LedgerRepository) GetCompletionsInRange(ctx context.Context, habitID uuid.UUID, from, to time.Time) ([]entity.Completion, error) {
	rows, err := lr.conn.Query(ctx,
		`SELECT id, habit_id, completion_date, duration_minutes, notes, created_at FROM habit_completions WHERE habit_id = $1 AND completion_date >= $2 AND completion_date <= $3 ORDER BY completion_date;`,
		habitID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("getting completions for period error: %w", err)
	}
	return collectCompletions(rows)
}

func (lr *LedgerRepository) GetSkips(ctx context.Context, habitID uuid.UUID) ([]entity.Skip, error) {
	rows, err := lr.conn.Query(ctx,
		`SELECT id, habit_id, skip_date, reason, created_at FROM habit_skips WHERE habit_id = $1 ORDER BY skip_date;`,
		habitID,
	)
	if err != nil {
		return nil, fmt.Errorf("getting skips error: %w", err)
	}
	return collectSkips(rows)
}

func (lr *LedgerRepository) GetSkipsInRange(ctx context.Context, habitID uuid.UUID, from, to time.Time) ([]entity.Skip, error) {
	rows, err := lr.conn.Query(ctx,
		`SELECT id, habit_id, skip_date, reason, created_at FROM habit_skips WHERE habit_id = $1 AND skip_date >= $2 AND skip_date <= $3 ORDER BY skip_date;`,
		habitID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("getting skips for period error: %w", err)
	}
	return collectSkips(rows)
}

func collectCompletions(rows pgx.Rows) ([]entity.Completion, error) {
	defer rows.Close()
	result := make([]entity.Completion, 0)
	for rows.Next() {
		var c entity.Completion
		if err := rows.Scan(&c.ID, &c.HabitID, &c.Date, &c.Duration, &c.Notes, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("completion row parsing error: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected completion rows error: %w", err)
	}
	return result, nil
}

func collectSkips(rows pgx.Rows) ([]entity.Skip, error) {
	defer rows.Close()
	result := make([]entity.Skip, 0)
	for rows.Next() {
		var s entity.Skip
		if err := rows.Scan(&s.ID, &s.HabitID, &s.Date, &s.Reason, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("skip row parsing error: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected skip rows error: %w", err)
	}
	return result, nil
}
