package jobs

import (
	"log/slog"
	"time"

	"github.com/pkg/errors"
)

type Config struct {
	OutboxRelaySchedule string
	OutboxBatchSize     int
	StaleCartSchedule   string
	StaleCartMaxAge     time.Duration
}

type scheduledJob interface {
	Start() error
	Stop()
}

type namedJob struct {
	name string
	job  scheduledJob
}

// JobManager starts jobs in order and stops them in reverse.
type JobManager struct {
	jobs    []namedJob
	started int
}

func NewJobManager(
	cfg Config,
	relayHandler outboxRelayer,
	purgeHandler staleCartPurger,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{jobs: []namedJob{
		{"outbox relay job", NewOutboxRelayJob(relayHandler, cfg.OutboxRelaySchedule, cfg.OutboxBatchSize, logger)},
		{"stale cart purge job", NewStaleCartPurgeJob(purgeHandler, cfg.StaleCartSchedule, cfg.StaleCartMaxAge, logger)},
	}}
}

// StartAll leaves nothing running when one of the jobs fails to start.
func (jm *JobManager) StartAll() error {
	for _, nj := range jm.jobs {
		if err := nj.job.Start(); err != nil {
			jm.StopAll()
			return errors.Wrapf(err, "start %s", nj.name)
		}
		jm.started++
	}
	return nil
}

func (jm *JobManager) StopAll() {
	for ; jm.started > 0; jm.started-- {
		jm.jobs[jm.started-1].job.Stop()
	}
}
