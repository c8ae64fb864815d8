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

const habitColumns = `id, user_id, name, description, category, frequency, target_count, reminder_time, created_at, updated_at`

type HabitsRepository struct {
	conn PgConnection
}

func NewHabitsRepo(conn PgConnection) *HabitsRepository {
	return &HabitsRepository{
		conn: conn,
	}
}

func (hr *HabitsRepository) Create(ctx context.Context, habit *entity.Habit) (uuid.UUID, error) {
	var id uuid.UUID
	row := hr.conn.QueryRow(ctx, `INSERT INTO habits (user_id, name, description, category, frequency, target_count, reminder_time) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id;`,
		habit.UserID,
		habit.Name,
		habit.Description,
		string(habit.Category),
		string(habit.Frequency),
		habit.TargetCount,
		habit.ReminderTime,
	)
	if err := row.Scan(&id); err != nil {
		switch pgErrCode(err) {
		case codeUniqueViolation:
			return uuid.UUID{}, errorvalues.ErrUserHasHabit
		case codeForeignKeyViolation:
			return uuid.UUID{}, errorvalues.ErrOwnerNotFound
		}
		return uuid.UUID{}, fmt.Errorf("creating habit db error: %w", err)
	}
	return id, nil
}

func (hr *HabitsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error) {
	row := hr.conn.QueryRow(ctx, `SELECT `+habitColumns+` FROM habits WHERE id = $1;`, id)
	habit, err := scanHabit(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrHabitNotFound
		}
		return nil, fmt.Errorf("getting habit by id error: %w", err)
	}
	return habit, nil
}

func (hr *HabitsRepository) GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Habit, error) {
	rows, err := hr.conn.Query(ctx, `SELECT `+habitColumns+` FROM habits WHERE user_id = $1 ORDER BY created_at LIMIT $2 OFFSET $3;`, uid, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("getting habits by uid error: %w", err)
	}
	return collectHabits(rows)
}

func (hr *HabitsRepository) ListAllByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Habit, error) {
	rows, err := hr.conn.Query(ctx, `SELECT `+habitColumns+` FROM habits WHERE user_id = $1 ORDER BY created_at;`, uid)
	if err != nil {
		return nil, fmt.Errorf("listing habits by uid error: %w", err)
	}
	return collectHabits(rows)
}

// ListWithReminder lists habits of all users whose reminder is set to
// clock (HH:MM).
func (hr *HabitsRepository) ListWithReminder(ctx context.Context, clock string) ([]entity.ReminderHabit, error) {
	rows, err := hr.conn.Query(ctx, `SELECT id, user_id, name, reminder_time FROM habits WHERE reminder_time = $1;`, clock)
	if err != nil {
		return nil, fmt.Errorf("listing habits with reminder error: %w", err)
	}
	defer rows.Close()
	res := make([]entity.ReminderHabit, 0)
	for rows.Next() {
		var h entity.ReminderHabit
		if err = rows.Scan(&h.HabitID, &h.OwnerID, &h.Name, &h.ReminderTime); err != nil {
			return nil, fmt.Errorf("unmarshalling reminder habit error: %w", err)
		}
		res = append(res, h)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected error after scanning: %w", err)
	}
	return res, nil
}

func (hr *HabitsRepository) Update(ctx context.Context, habit *entity.Habit) error {
	ct, err := hr.conn.Exec(ctx, `UPDATE habits SET name = $1, description = $2, category = $3, frequency = $4, target_count = $5, reminder_time = $6, updated_at = NOW() WHERE id = $7;`,
		habit.Name,
		habit.Description,
		string(habit.Category),
		string(habit.Frequency),
		habit.TargetCount,
		habit.ReminderTime,
		habit.ID,
	)
	if err != nil {
		if pgErrCode(err) == codeUniqueViolation {
			return errorvalues.ErrUserHasHabit
		}
		return fmt.Errorf("updating habit error: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHabitNotFound
	}
	return nil
}

func (hr *HabitsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := hr.conn.Exec(ctx, `DELETE FROM habits WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("deleting habit error: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHabitNotFound
	}
	return nil
}

func scanHabit(row pgx.Row) (*entity.Habit, error) {
	var (
		h         entity.Habit
		category  string
		frequency string
	)
	err := row.Scan(&h.ID, &h.UserID, &h.Name, &h.Description, &category, &frequency,
		&h.TargetCount, &h.ReminderTime, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, err
	}
	h.Category = entity.Category(category)
	h.Frequency = entity.Frequency(frequency)
	return &h, nil
}

func collectHabits(rows pgx.Rows) ([]*entity.Habit, error) {
	defer rows.Close()
	habits := make([]*entity.Habit, 0)
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, fmt.Errorf("unmarshalling habit error: %w", err)
		}
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected error after scanning: %w", err)
	}
	return habits, nil
}
