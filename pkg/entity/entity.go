package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
}

type Category string

const (
	CategoryMorning Category = "MORNING"
	CategoryEvening Category = "EVENING"
	CategoryOther   Category = "OTHER"
)

type Frequency string

const (
	FrequencyDaily  Frequency = "DAILY"
	FrequencyWeekly Frequency = "WEEKLY"
)

type Habit struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"uid"`
	Name        string    `json:"name"`
	Description string    `json:"desc"`
	Category    Category  `json:"category"`
	Frequency   Frequency `json:"frequency"`
	TargetCount *int      `json:"target_count,omitempty"`
	// HH:MM in server-local time
	ReminderTime *string   `json:"reminder_time,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ReminderHabit is the slice of a habit the reminder engine needs.
type ReminderHabit struct {
	HabitID      uuid.UUID
	OwnerID      uuid.UUID
	Name         string
	ReminderTime string
}

type Completion struct {
	ID        int64     `json:"id"`
	HabitID   uuid.UUID `json:"habit_id"`
	Date      time.Time `json:"date"`
	Duration  *int      `json:"duration,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Skip struct {
	ID        int64     `json:"id"`
	HabitID   uuid.UUID `json:"habit_id"`
	Date      time.Time `json:"date"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type HabitStats struct {
	ID               uuid.UUID  `json:"habit_id"`
	TotalCompletions int        `json:"total_completions"`
	TotalSkips       int        `json:"total_skips"`
	TotalTime        int        `json:"total_time"`
	CompletionRate   float64    `json:"completion_rate"`
	CurrentStreak    int        `json:"current_streak"`
	LongestStreak    int        `json:"longest_streak"`
	LastCompletion   *time.Time `json:"last_completion,omitempty"`
}

type UserStats struct {
	UserID                uuid.UUID    `json:"uid"`
	TotalHabits           int          `json:"total_habits"`
	TotalCompletions      int          `json:"total_completions"`
	TotalSkips            int          `json:"total_skips"`
	TotalTime             int          `json:"total_time"`
	AverageCompletionRate float64      `json:"average_completion_rate"`
	BestCurrentStreak     int          `json:"best_current_streak"`
	BestLongestStreak     int          `json:"best_longest_streak"`
	Habits                []HabitStats `json:"habits"`
}

// Subscription is a delivery endpoint. HabitID == nil targets all of the
// owner's habits. Telegram endpoints ("tg:<chat id>") carry no keys.
type Subscription struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"uid"`
	HabitID   *uuid.UUID `json:"habit_id,omitempty"`
	Endpoint  string     `json:"endpoint"`
	P256dh    string     `json:"p256dh,omitempty"`
	Auth      string     `json:"auth,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type PushPayload struct {
	Title   string `json:"title"`
	Body    string `json:"body"`
	HabitID string `json:"habitId,omitempty"`
}
