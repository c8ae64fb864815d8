package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const DefaultTickTimeout = 50 * time.Second

// Scheduler fires Tick on a cron spec in server-local time. A tick still
// running when the next one is due makes the next one skip.
type Scheduler struct {
	cronEngine  *cron.Cron
	ticker      Ticker
	spec        string
	tickTimeout time.Duration
	logger      logrus.FieldLogger
	now         func() time.Time
}

func NewScheduler(ticker Ticker, spec string, tickTimeout time.Duration, logger logrus.FieldLogger) *Scheduler {
	if tickTimeout <= 0 {
		tickTimeout = DefaultTickTimeout
	}
	cl := cronLogger{logger: logger}
	return &Scheduler{
		cronEngine: cron.New(
			cron.WithLocation(time.Local),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		ticker:      ticker,
		spec:        spec,
		tickTimeout: tickTimeout,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cronEngine.AddFunc(s.spec, s.runTick); err != nil {
		return fmt.Errorf("adding reminder job with spec %q error: %w", s.spec, err)
	}
	s.cronEngine.Start()
	s.logger.WithField("spec", s.spec).Info("reminder scheduler started")
	return nil
}

// Stop waits for a running tick to finish.
func (s *Scheduler) Stop() {
	ctx := s.cronEngine.Stop()
	<-ctx.Done()
	s.logger.Info("reminder scheduler stopped")
}

func (s *Scheduler) runTick() {
	ctx, cancel := context.WithTimeout(context.Background(), s.tickTimeout)
	defer cancel()
	started := s.now()
	report := s.ticker.Tick(ctx, started)
	sent, pruned, failed := report.Totals()
	entry := s.logger.WithFields(logrus.Fields{
		"due":      report.Due,
		"sent":     sent,
		"pruned":   pruned,
		"failed":   failed,
		"errors":   report.Errors,
		"duration": time.Since(started).String(),
	})
	if report.Err != nil {
		entry.WithError(report.Err).Error("reminder tick failed")
		return
	}
	if report.Due > 0 {
		entry.Info("reminder tick done")
		return
	}
	entry.Debug("reminder tick done")
}

// cronLogger adapts logrus to cron.Logger.
type cronLogger struct {
	logger logrus.FieldLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.WithFields(kvFields(keysAndValues)).Debug("cron: " + msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.WithFields(kvFields(keysAndValues)).WithError(err).Error("cron: " + msg)
}

func kvFields(keysAndValues []interface{}) logrus.Fields {
	fields := make(logrus.Fields, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprint(keysAndValues[i])
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
