package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	APIAddress string

	PostgresAddress  string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	MigrationsDir    string

	JWTSecret string
	JWTTTL    time.Duration

	LogLevel    string
	Environment string
	LogFile     string

	ReminderCron        string
	ReminderConcurrency int
	ReminderSendTimeout time.Duration
	ReminderTickTimeout time.Duration

	VAPIDPublicKey  string
	VAPIDPrivateKey string
	VAPIDSubscriber string
	PushTTL         int

	TelegramToken string
}

// Load reads configuration from the environment. Values from envFile are
// applied first if it exists; variables already set in the environment win.
func Load(envFile string) (*AppConfig, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("loading envs error: %w", err)
		}
	}
	cfg := &AppConfig{
		APIAddress:       getenv("API_ADDRESS", ":8080"),
		PostgresAddress:  os.Getenv("POSTGRES_DB_ADDRESS"),
		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       os.Getenv("POSTGRES_DB"),
		MigrationsDir:    getenv("MIGRATIONS_DIR", "./migrations"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		LogLevel:         strings.ToLower(getenv("LOG_LEVEL", "info")),
		Environment:      strings.ToLower(getenv("ENVIRONMENT", "development")),
		LogFile:          os.Getenv("LOG_FILE"),
		ReminderCron:     getenv("REMINDER_CRON", "* * * * *"),
		VAPIDPublicKey:   os.Getenv("VAPID_PUBLIC_KEY"),
		VAPIDPrivateKey:  os.Getenv("VAPID_PRIVATE_KEY"),
		VAPIDSubscriber:  getenv("VAPID_SUBSCRIBER", "mailto:admin@localhost"),
		TelegramToken:    os.Getenv("TELEGRAM_TOKEN"),
	}
	var err error
	if cfg.JWTTTL, err = getenvDuration("JWT_TTL", time.Hour); err != nil {
		return nil, err
	}
	if cfg.ReminderConcurrency, err = getenvInt("REMINDER_CONCURRENCY", 8); err != nil {
		return nil, err
	}
	if cfg.ReminderConcurrency < 1 {
		return nil, fmt.Errorf("REMINDER_CONCURRENCY must be positive, got %d", cfg.ReminderConcurrency)
	}
	if cfg.ReminderSendTimeout, err = getenvDuration("REMINDER_SEND_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.ReminderTickTimeout, err = getenvDuration("REMINDER_TICK_TIMEOUT", 50*time.Second); err != nil {
		return nil, err
	}
	if cfg.PushTTL, err = getenvInt("PUSH_TTL", 3600); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks what the API server can't start without.
func (c *AppConfig) Validate() error {
	missing := make([]string, 0)
	for key, val := range map[string]string{
		"POSTGRES_DB_ADDRESS": c.PostgresAddress,
		"POSTGRES_USER":       c.PostgresUser,
		"POSTGRES_DB":         c.PostgresDB,
		"JWT_SECRET":          c.JWTSecret,
	} {
		if val == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return fmt.Errorf("required variables are not set: %s", strings.Join(missing, ", "))
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return i, nil
}

func getenvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
