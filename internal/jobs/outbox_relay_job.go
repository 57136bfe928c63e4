package jobs

import (
	"context"
	"log/slog"

	"freight/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultOutboxSchedule relays every five seconds.
const DefaultOutboxSchedule = "*/5 * * * * *"

// OutboxRelayer is satisfied by commands.RelayOutboxCommandHandler.
type OutboxRelayer interface {
	Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (int, error)
}

// OutboxRelayJob periodically publishes pending outbox messages. A run that
// finds a full batch does not loop; the next tick picks up the rest.
type OutboxRelayJob struct {
	relayer   OutboxRelayer
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOutboxRelayJob creates the relay job. schedule is a six-field cron
// expression; an empty one means DefaultOutboxSchedule.
func NewOutboxRelayJob(relayer OutboxRelayer, schedule string, batchSize int, logger *slog.Logger) *OutboxRelayJob {
	if schedule == "" {
		schedule = DefaultOutboxSchedule
	}
	return &OutboxRelayJob{
		relayer:   relayer,
		schedule:  schedule,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "outbox_relay_job"),
	}
}

// Start registers the relay on the schedule and starts the scheduler.
func (j *OutboxRelayJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.RunOnce)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started", "schedule", j.schedule)
	return nil
}

// RunOnce relays one batch.
func (j *OutboxRelayJob) RunOnce() {
	ctx := context.Background()

	cmd, err := commands.NewRelayOutboxCommand(j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay job misconfigured", "error", err)
		return
	}

	published, err := j.relayer.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay job failed", "error", err)
		return
	}
	if published > 0 {
		j.logger.DebugContext(ctx, "Outbox messages published", "count", published)
	}
}

// Stop stops the scheduler and waits for a running relay to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}
