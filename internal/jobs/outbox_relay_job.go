package jobs

import (
	"context"
	"log/slog"

	"hyperlocal/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultOutboxRelaySchedule runs the relay every second.
const DefaultOutboxRelaySchedule = "* * * * * *"

type outboxRelayer interface {
	Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (int, error)
}

// OutboxRelayJob publishes stored order events on a schedule.
type OutboxRelayJob struct {
	handler   outboxRelayer
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOutboxRelayJob creates the relay job. schedule is a six-field cron expression.
func NewOutboxRelayJob(handler outboxRelayer, schedule string, batchSize int, logger *slog.Logger) *OutboxRelayJob {
	if schedule == "" {
		schedule = DefaultOutboxRelaySchedule
	}
	return &OutboxRelayJob{
		handler:   handler,
		schedule:  schedule,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "outbox_relay_job"),
	}
}

// Start schedules the relay.
func (j *OutboxRelayJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started", "schedule", j.schedule)
	return nil
}

// Run relays one batch. Failures are logged and the batch is retried on the next tick.
func (j *OutboxRelayJob) Run(ctx context.Context) {
	cmd, err := commands.NewRelayOutboxCommand(j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay job misconfigured", "error", err)
		return
	}

	n, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay job failed", "error", err)
		return
	}
	if n > 0 {
		j.logger.DebugContext(ctx, "Outbox events published", "count", n)
	}
}

// Stop stops the relay and waits for a running batch.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}
