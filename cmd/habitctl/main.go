package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/limbo/habitual/internal/cli"
	"github.com/limbo/habitual/pkg/config"
	"github.com/limbo/habitual/pkg/logger"
)

var CLI struct {
	Env string `help:"Env file to load." type:"path" default:".env"`

	Migrate   cli.MigrateCmd   `cmd:"" help:"Apply database migrations."`
	Tick      cli.TickCmd      `cmd:"" help:"Run one reminder tick and print the report."`
	VapidKeys cli.VapidKeysCmd `cmd:"" name:"vapid-keys" help:"Generate a VAPID key pair for web push."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("habitctl"),
		kong.Description("Operations tool for the habitual API"),
		kong.UsageOnError(),
	)
	cfg, err := config.Load(CLI.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	err = ctx.Run(&cli.Context{
		Config: cfg,
		Logger: logger.New(logger.Options{Level: cfg.LogLevel, Environment: cfg.Environment}),
		Out:    os.Stdout,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
