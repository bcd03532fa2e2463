// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the service.
//
// # Available Jobs
//
// 1. EventRelayJob - Runs every second to drain the event log and publish
// pending entries to the message broker in log order
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(relayEventsHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The relay job uses the cron expression "* * * * * *" which means it runs
// every second. This keeps broker consumers close to real time without
// coupling request handling to broker availability.
//
// # Error Handling
//
// - Relay failures are logged and retried on the next pass; entries already
// delivered within a pass stay marked so nothing is published twice
// - Failed job starts leave no jobs running
package jobs
