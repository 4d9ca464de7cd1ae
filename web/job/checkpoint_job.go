// Package job contains the scheduled background jobs of the web server.
package job

import (
	"userdash/database"
	"userdash/logger"
)

// CheckpointJob flushes the sqlite WAL into the main database file so the
// on-disk database stays current between shutdowns.
type CheckpointJob struct{}

func NewCheckpointJob() *CheckpointJob {
	return new(CheckpointJob)
}

// Run implements the cron Job interface.
func (j *CheckpointJob) Run() {
	if err := database.Checkpoint(); err != nil {
		logger.Warning("checkpoint job err:", err)
	}
}
