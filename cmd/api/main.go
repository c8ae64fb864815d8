// @title Habit-tracker API
// @description API for habit-tracker app "Habitual"
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/limbo/habitual/internal/api"
	"github.com/limbo/habitual/internal/app"
	"github.com/limbo/habitual/internal/reminder"
	"github.com/limbo/habitual/internal/repository"
	"github.com/limbo/habitual/internal/service"
	"github.com/limbo/habitual/pkg/cleanup"
	"github.com/limbo/habitual/pkg/config"
	jwtservice "github.com/limbo/habitual/pkg/jwt_service"
	"github.com/limbo/habitual/pkg/logger"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		panic(err)
	}
	log := logger.New(logger.Options{
		Level:       cfg.LogLevel,
		Environment: cfg.Environment,
		File:        cfg.LogFile,
	})
	if err = cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	log.Infof("configuration loaded, environment: %s", cfg.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	jobs := cleanup.New(log)
	defer jobs.CleanUp()

	// Fatal would skip cleanup
	fail := func(err error, msg string) {
		log.WithError(err).Error(msg)
		jobs.CleanUp()
		os.Exit(1)
	}

	connCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	pool, err := repository.NewPool(connCtx, app.DBConfig(cfg))
	cancel()
	if err != nil {
		fail(err, "couldn't connect to database")
	}
	jobs.Register(&cleanup.Job{Name: "postgres pool", F: func() error {
		pool.Close()
		return nil
	}})
	log.Info("database connection established")

	usersRepo := repository.NewUsersRepo(pool)
	habitsRepo := repository.NewHabitsRepo(pool)
	ledgerRepo := repository.NewLedgerRepo(pool)
	subsRepo := repository.NewSubscriptionsRepo(pool)

	router, err := app.NewNotifier(cfg, log)
	if err != nil {
		fail(err, "couldn't set up notifier")
	}
	dispatcher := app.NewDispatcher(pool, router, cfg, log)
	scheduler := reminder.NewScheduler(dispatcher, cfg.ReminderCron, cfg.ReminderTickTimeout, log.WithField("component", "scheduler"))
	if err = scheduler.Start(); err != nil {
		fail(err, "couldn't start reminder scheduler")
	}
	jobs.Register(&cleanup.Job{Name: "reminder scheduler", F: func() error {
		scheduler.Stop()
		return nil
	}})

	serv := api.New(&api.ServicesList{
		UserService:         service.NewUserService(usersRepo),
		HabitsService:       service.NewHabitsService(habitsRepo),
		LedgerService:       service.NewLedgerService(habitsRepo, ledgerRepo),
		StatsService:        service.NewStatsService(habitsRepo, ledgerRepo),
		SubscriptionService: service.NewSubscriptionService(habitsRepo, subsRepo, dispatcher),
		JwtService:          jwtservice.New(cfg.JWTSecret, cfg.JWTTTL),
		VAPIDPublicKey:      cfg.VAPIDPublicKey,
		Logger:              log,
	})
	if err = serv.Run(ctx, cfg.APIAddress); err != nil {
		fail(err, "api server error")
	}
	log.Info("api server stopped")
}
