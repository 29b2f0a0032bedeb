// Package jobs provides scheduled background tasks for the fulfillment
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping the request path never performs.
//
// # Available Jobs
//
// 1. EvidenceCleanupJob - Runs hourly to delete evidence photos that were
// uploaded but never attached to an audit entry or package.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(cleanupHandler, logger)
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
// - Cleanup failures are logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
