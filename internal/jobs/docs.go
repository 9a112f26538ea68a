// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the live order backlog.
//
// # Available Jobs
//
// 1. KitchenBacklogJob - Samples the active-order backlog every 15 seconds,
// logs a summary, and flags orders waiting longer than the configured
// threshold
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(getActiveOrdersHandler, 10*time.Minute, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The backlog job reads detached snapshots from the in-memory store, so a
// failed sample never affects order state; failures are logged and the next
// tick retries.
package jobs
