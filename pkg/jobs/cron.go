package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/replyflow/replyflow-api/pkg/trial"
)

// CronManager manages scheduled jobs
type CronManager struct {
	cron          *cron.Cron
	trialService  *trial.Service
	sweepSchedule string
	logger        *log.Logger
}

// NewCronManager creates a new cron manager
func NewCronManager(trialService *trial.Service, sweepSchedule string, logger *log.Logger) *CronManager {
	if logger == nil {
		logger = log.Default()
	}

	return &CronManager{
		cron:          cron.New(),
		trialService:  trialService,
		sweepSchedule: sweepSchedule,
		logger:        logger,
	}
}

// SetupJobs configures all scheduled jobs
func (cm *CronManager) SetupJobs() error {
	cm.logger.Println("Setting up cron jobs...")

	_, err := cm.cron.AddFunc(cm.sweepSchedule, func() {
		cm.logger.Println("🕐 Running trial expiry sweep...")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		result, err := cm.trialService.Sweep(ctx, time.Now())
		if err != nil {
			cm.logger.Printf("❌ Trial sweep failed: %v", err)
			return
		}

		if len(result.Errors) > 0 {
			cm.logger.Printf("⚠️ Trial sweep completed with errors: checked=%d converted=%d errors=%d",
				result.Checked, result.Converted, len(result.Errors))
			return
		}

		cm.logger.Printf("✅ Trial sweep completed: checked=%d converted=%d", result.Checked, result.Converted)
	})

	if err != nil {
		return err
	}

	cm.logger.Println("✅ Cron jobs configured successfully")
	cm.logger.Printf("  - %s: Trial expiry sweep", cm.sweepSchedule)

	return nil
}

// Start starts the cron scheduler
func (cm *CronManager) Start() {
	cm.logger.Println("🚀 Starting cron scheduler...")
	cm.cron.Start()
}

// Stop stops the cron scheduler
func (cm *CronManager) Stop() {
	cm.logger.Println("🛑 Stopping cron scheduler...")
	cm.cron.Stop()
}
