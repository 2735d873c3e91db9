package jobs

import (
	"context"
	"log/slog"
	"time"

	"hyperlocal/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultStaleCartSchedule runs the purge at the top of every hour.
const DefaultStaleCartSchedule = "0 0 * * * *"

type staleCartPurger interface {
	Handle(ctx context.Context, cmd commands.PurgeStaleCartsCommand) (int64, error)
}

// StaleCartPurgeJob deletes carts untouched for longer than maxAge.
type StaleCartPurgeJob struct {
	handler  staleCartPurger
	schedule string
	maxAge   time.Duration
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewStaleCartPurgeJob(handler staleCartPurger, schedule string, maxAge time.Duration, logger *slog.Logger) *StaleCartPurgeJob {
	if schedule == "" {
		schedule = DefaultStaleCartSchedule
	}
	return &StaleCartPurgeJob{
		handler:  handler,
		schedule: schedule,
		maxAge:   maxAge,
		now:      time.Now,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "stale_cart_purge_job"),
	}
}

// Start schedules the purge.
func (j *StaleCartPurgeJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale cart purge job started", "schedule", j.schedule, "max_age", j.maxAge.String())
	return nil
}

// Run purges once.
func (j *StaleCartPurgeJob) Run(ctx context.Context) {
	cmd, err := commands.NewPurgeStaleCartsCommand(j.now(), j.maxAge)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale cart purge job misconfigured", "error", err)
		return
	}

	n, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale cart purge job failed", "error", err)
		return
	}
	if n > 0 {
		j.logger.InfoContext(ctx, "Stale carts purged", "count", n)
	}
}

// Stop stops the purge job.
func (j *StaleCartPurgeJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Stale cart purge job stopped")
}
