// Package jobs provides scheduled background tasks for the freight system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OutboxRelayJob - publishes committed domain events from the outbox table
// to the configured broker (Kafka or RabbitMQ)
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	relay := jobs.NewOutboxRelayJob(relayHandler, "*/5 * * * * *", 100, logger)
//	jobManager := jobs.NewJobManager(relay)
//
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the six-field cron syntax with a leading seconds field.
// Overlapping runs of one job are skipped.
//
// # Error Handling
//
// Relay failures are logged and retried on the next tick. Messages that were
// not marked as published stay pending, so delivery is at least once.
package jobs
