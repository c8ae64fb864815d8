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

var (
	lockHabitQuery      = regexp.QuoteMeta(`SELECT id FROM habits WHERE id = $1 FOR UPDATE;`)
	completionExistsSQL = regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM habit_completions WHERE habit_id = $1 AND completion_date = $2);`)
	skipExistsSQL       = regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM habit_skips WHERE habit_id = $1 AND skip_date = $2);`)
)

func TestCreateCompletion(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewLedgerRepo(mock)
	ctx := context.Background()
	hid := uuid.New()
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2024, 5, 10, 8, 12, 0, 0, time.UTC)
	insertQuery := regexp.QuoteMeta(`INSERT INTO habit_completions (habit_id, completion_date, duration_minutes, notes) VALUES ($1, $2, $3, $4) RETURNING id, created_at;`)

	type MockPrepFunc func(c *entity.Completion)
	tests := []struct {
		name    string
		prep    MockPrepFunc
		wantErr error
	}{
		{
			name: "recorded",
			prep: func(c *entity.Completion) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockHabitQuery).WithArgs(hid).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(hid))
				mock.ExpectQuery(skipExistsSQL).WithArgs(hid, day).
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
				mock.ExpectQuery(insertQuery).WithArgs(hid, day, c.Duration, c.Notes).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), createdAt))
				mock.ExpectCommit()
			},
		},
		{
			name: "habit not found",
			prep: func(c *entity.Completion) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockHabitQuery).WithArgs(hid).WillReturnError(pgx.ErrNoRows)
				mock.ExpectRollback()
			},
			wantErr: errorvalues.ErrHabitNotFound,
		},
		{
			name: "day already skipped",
			prep: func(c *entity.Completion) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockHabitQuery).WithArgs(hid).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(hid))
				mock.ExpectQuery(skipExistsSQL).WithArgs(hid, day).
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
				mock.ExpectRollback()
			},
			wantErr: errorvalues.ErrDayAlreadySkipped,
		},
		{
			name: "completion already recorded",
			prep: func(c *entity.Completion) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockHabitQuery).WithArgs(hid).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(hid))
				mock.ExpectQuery(skipExistsSQL).WithArgs(hid, day).
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
				mock.ExpectQuery(insertQuery).WithArgs(hid, day, c.Duration, c.Notes).
					WillReturnError(&pgconn.PgError{Code: "23505"})
				mock.ExpectRollback()
			},
			wantErr: errorvalues.ErrCompletionExists,
		},
		{
			name: "begin error",
			prep: func(c *entity.Completion) {
				mock.ExpectBegin().WillReturnError(errors.New("db error"))
			},
			wantErr: errors.New("any"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := entity.Completion{HabitID: hid, Date: day, Duration: ptr(25), Notes: ptr("felt good")}
			tt.prep(&c)
			err := repo.CreateCompletion(ctx, &c)
			switch {
			case tt.wantErr == nil:
				assert.NoError(t, err)
				assert.Equal(t, int64(7), c.ID)
				assert.Equal(t, createdAt, c.CreatedAt)
			case errors.Is(tt.wantErr, errorvalues.ErrNotFound), errors.Is(tt.wantErr, errorvalues.ErrConflict):
				assert.ErrorIs(t, err, tt.wantErr)
			default:
				assert.Error(t, err)
			}
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSkip(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewLedgerRepo(mock)
	ctx := context.Background()
	hid := uuid.New()
	day := time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC)
	insertQuery := regexp.QuoteMeta(`INSERT INTO habit_skips (habit_id, skip_date, reason) VALUES ($1, $2, $3) RETURNING id, created_at;`)
	reason := ptr("sick")

	t.Run("recorded", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lockHabitQuery).WithArgs(hid).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(hid))
		mock.ExpectQuery(completionExistsSQL).WithArgs(hid, day).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectQuery(insertQuery).WithArgs(hid, day, reason).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(3), day))
		mock.ExpectCommit()
		s := entity.Skip{HabitID: hid, Date: day, Reason: reason}
		err := repo.CreateSkip(ctx, &s)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), s.ID)
	})
	t.Run("day already completed", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lockHabitQuery).WithArgs(hid).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(hid))
		mock.ExpectQuery(completionExistsSQL).WithArgs(hid, day).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectRollback()
		err := repo.CreateSkip(ctx, &entity.Skip{HabitID: hid, Date: day, Reason: reason})
		assert.ErrorIs(t, err, errorvalues.ErrDayAlreadyCompleted)
		assert.ErrorIs(t, err, errorvalues.ErrConflict)
	})
	t.Run("skip already recorded", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lockHabitQuery).WithArgs(hid).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(hid))
		mock.ExpectQuery(completionExistsSQL).WithArgs(hid, day).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectQuery(insertQuery).WithArgs(hid, day, reason).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		mock.ExpectRollback()
		err := repo.CreateSkip(ctx, &entity.Skip{HabitID: hid, Date: day, Reason: reason})
		assert.ErrorIs(t, err, errorvalues.ErrSkipExists)
	})
	t.Run("commit error", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lockHabitQuery).WithArgs(hid).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(hid))
		mock.ExpectQuery(completionExistsSQL).WithArgs(hid, day).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectQuery(insertQuery).WithArgs(hid, day, reason).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(4), day))
		mock.ExpectCommit().WillReturnError(errors.New("db error"))
		err := repo.CreateSkip(ctx, &entity.Skip{HabitID: hid, Date: day, Reason: reason})
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrConflict)
	})
}

func TestDeleteLedgerRecords(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewLedgerRepo(mock)
	ctx := context.Background()
	hid := uuid.New()
	day := time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC)
	delCompletion := regexp.QuoteMeta(`DELETE FROM habit_completions WHERE habit_id = $1 AND completion_date = $2;`)
	delSkip := regexp.QuoteMeta(`DELETE FROM habit_skips WHERE habit_id = $1 AND skip_date = $2;`)

	t.Run("completion deleted", func(t *testing.T) {
		mock.ExpectExec(delCompletion).WithArgs(hid, day).WillReturnResult(pgxmock.NewResult("DELETE", 1))
		assert.NoError(t, repo.DeleteCompletion(ctx, hid, day))
	})
	t.Run("completion not found", func(t *testing.T) {
		mock.ExpectExec(delCompletion).WithArgs(hid, day).WillReturnResult(pgxmock.NewResult("DELETE", 0))
		assert.ErrorIs(t, repo.DeleteCompletion(ctx, hid, day), errorvalues.ErrCompletionNotFound)
	})
	t.Run("skip deleted", func(t *testing.T) {
		mock.ExpectExec(delSkip).WithArgs(hid, day).WillReturnResult(pgxmock.NewResult("DELETE", 1))
		assert.NoError(t, repo.DeleteSkip(ctx, hid, day))
	})
	t.Run("skip not found", func(t *testing.T) {
		mock.ExpectExec(delSkip).WithArgs(hid, day).WillReturnResult(pgxmock.NewResult("DELETE", 0))
		assert.ErrorIs(t, repo.DeleteSkip(ctx, hid, day), errorvalues.ErrSkipNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(delSkip).WithArgs(hid, day).WillReturnError(errors.New("db error"))
		err := repo.DeleteSkip(ctx, hid, day)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrSkipNotFound)
	})
}

func TestHasCompletion(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewLedgerRepo(mock)
	ctx := context.Background()
	hid := uuid.New()
	day := time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(completionExistsSQL).WithArgs(hid, day).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	ok, err := repo.HasCompletion(ctx, hid, day)
	assert.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectQuery(completionExistsSQL).WithArgs(hid, day).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	ok, err = repo.HasCompletion(ctx, hid, day)
	assert.NoError(t, err)
	assert.False(t, ok)

	mock.ExpectQuery(completionExistsSQL).WithArgs(hid, day).WillReturnError(errors.New("db error"))
	_, err = repo.HasCompletion(ctx, hid, day)
	assert.Error(t, err)
}

func TestGetCompletionsAndSkips(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewLedgerRepo(mock)
	ctx := context.Background()
	hid := uuid.New()
	d1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d2 := d1.AddDate(0, 0, 1)
	completionCols := []string{"id", "habit_id", "completion_date", "duration_minutes", "notes", "created_at"}
	skipCols := []string{"id", "habit_id", "skip_date", "reason", "created_at"}
	var noDuration *int
	var noText *string

	t.Run("all completions", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, habit_id, completion_date, duration_minutes, notes, created_at FROM habit_completions WHERE habit_id = $1 ORDER BY completion_date;`)).
			WithArgs(hid).
			WillReturnRows(pgxmock.NewRows(completionCols).
				AddRow(int64(1), hid, d1, ptr(30), noText, d1).
				AddRow(int64(2), hid, d2, noDuration, ptr("late"), d2))
		result, err := repo.GetCompletions(ctx, hid)
		assert.NoError(t, err)
		assert.Equal(t, []entity.Completion{
			{ID: 1, HabitID: hid, Date: d1, Duration: ptr(30), CreatedAt: d1},
			{ID: 2, HabitID: hid, Date: d2, Notes: ptr("late"), CreatedAt: d2},
		}, result)
	})
	t.Run("completions in range", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, habit_id, completion_date, duration_minutes, notes, created_at FROM habit_completions WHERE habit_id = $1 AND completion_date >= $2 AND completion_date <= $3 ORDER BY completion_date;`)).
			WithArgs(hid, d1, d1).
			WillReturnRows(pgxmock.NewRows(completionCols))
		result, err := repo.GetCompletionsInRange(ctx, hid, d1, d1)
		assert.NoError(t, err)
		assert.Empty(t, result)
	})
	t.Run("all skips", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, habit_id, skip_date, reason, created_at FROM habit_skips WHERE habit_id = $1 ORDER BY skip_date;`)).
			WithArgs(hid).
			WillReturnRows(pgxmock.NewRows(skipCols).AddRow(int64(5), hid, d2, ptr("rain"), d2))
		result, err := repo.GetSkips(ctx, hid)
		assert.NoError(t, err)
		assert.Equal(t, []entity.Skip{{ID: 5, HabitID: hid, Date: d2, Reason: ptr("rain"), CreatedAt: d2}}, result)
	})
	t.Run("skips in range db error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, habit_id, skip_date, reason, created_at FROM habit_skips WHERE habit_id = $1 AND skip_date >= $2 AND skip_date <= $3 ORDER BY skip_date;`)).
			WithArgs(hid, d1, d2).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetSkipsInRange(ctx, hid, d1, d2)
		assert.Error(t, err)
	})
}
