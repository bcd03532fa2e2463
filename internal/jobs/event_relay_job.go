package jobs

import (
	"context"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// relayBatchLimit caps how many pending events a single drain pass delivers.
const relayBatchLimit = 100

// EventRelayJob manages the scheduled draining of the event log.
// Runs every second to publish pending events to the message broker.
type EventRelayJob struct {
	handler commands.RelayEventsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewEventRelayJob creates a new job for relaying pending events.
// Uses RelayEventsCommandHandler to drain the outbox every second.
func NewEventRelayJob(handler commands.RelayEventsCommandHandler, logger *slog.Logger) *EventRelayJob {
	return &EventRelayJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "event_relay_job"),
	}
}

// Start begins the event relay job to run every second.
func (j *EventRelayJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewRelayEventsCommand(relayBatchLimit)
		if err != nil {
			j.logger.ErrorContext(ctx, "Event relay job misconfigured", "error", err)
			return
		}

		delivered, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			// Broker outages are transient; the next pass retries from
			// the first undelivered entry.
			j.logger.ErrorContext(ctx, "Event relay job failed", "error", err, "delivered", delivered)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Event relay job started (running every second)")
	return nil
}

// Stop stops the event relay job.
func (j *EventRelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Event relay job stopped")
}
