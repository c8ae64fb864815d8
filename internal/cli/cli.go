// Package cli holds the habitctl commands.
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	_ "github.com/lib/pq"
	"github.com/limbo/habitual/internal/app"
	"github.com/limbo/habitual/internal/notifier"
	"github.com/limbo/habitual/internal/reminder"
	"github.com/limbo/habitual/internal/repository"
	"github.com/limbo/habitual/pkg/config"
	"github.com/pressly/goose"
	"github.com/sirupsen/logrus"
)

// AtLayout is the format of "tick --at", read in server-local time.
const AtLayout = "2006-01-02 15:04"

type Context struct {
	Config *config.AppConfig
	Logger *logrus.Logger
	Out    io.Writer
}

type MigrateCmd struct {
	Dir     string `help:"Migrations directory, MIGRATIONS_DIR when empty." type:"path"`
	SSLMode string `help:"sslmode of the connection." default:"disable"`
	Down    bool   `help:"Roll back the latest migration instead."`
	Status  bool   `help:"Print migration status only."`
}

func (c *MigrateCmd) Run(ctx *Context) error {
	dir := c.Dir
	if dir == "" {
		dir = ctx.Config.MigrationsDir
	}
	connStr := app.DBConfig(ctx.Config).ConnString() + "?sslmode=" + c.SSLMode
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return fmt.Errorf("opening database error: %w", err)
	}
	defer db.Close()
	if err = goose.SetDialect("postgres"); err != nil {
		return err
	}
	switch {
	case c.Status:
		err = goose.Status(db, dir)
	case c.Down:
		err = goose.Down(db, dir)
	default:
		err = goose.Up(db, dir)
	}
	if err != nil {
		return fmt.Errorf("migrating error: %w", err)
	}
	ctx.Logger.WithField("dir", dir).Info("migrations applied")
	return nil
}

type TickCmd struct {
	At      string        `help:"Local time as 'YYYY-MM-DD HH:MM', now when empty."`
	Timeout time.Duration `help:"Tick deadline." default:"50s"`
}

func (c *TickCmd) Run(ctx *Context) error {
	now, err := ParseAt(c.At, time.Now)
	if err != nil {
		return err
	}
	tickCtx, cancel := context.WithTimeout(context.Background(), c.Timeout)
	defer cancel()
	pool, err := repository.NewPool(tickCtx, app.DBConfig(ctx.Config))
	if err != nil {
		return err
	}
	defer pool.Close()
	router, err := app.NewNotifier(ctx.Config, ctx.Logger)
	if err != nil {
		return err
	}
	report := app.NewDispatcher(pool, router, ctx.Config, ctx.Logger).Tick(tickCtx, now)
	if report.Err != nil {
		return fmt.Errorf("tick at %s failed: %w", now.Format(AtLayout), report.Err)
	}
	return writeReport(ctx.Out, report)
}

// ParseAt reads a tick time. Empty means now.
func ParseAt(at string, now func() time.Time) (time.Time, error) {
	if strings.TrimSpace(at) == "" {
		return now(), nil
	}
	t, err := time.ParseInLocation(AtLayout, at, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --at %q, want %s: %w", at, AtLayout, err)
	}
	return t, nil
}

func writeReport(out io.Writer, report reminder.TickReport) error {
	data, err := sonic.ConfigDefault.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

type VapidKeysCmd struct{}

func (c *VapidKeysCmd) Run(ctx *Context) error {
	privateKey, publicKey, err := notifier.GenerateVAPIDKeys()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(ctx.Out, "VAPID_PUBLIC_KEY=%s\nVAPID_PRIVATE_KEY=%s\n", publicKey, privateKey)
	return err
}
