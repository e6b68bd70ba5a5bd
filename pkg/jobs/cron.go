package jobs

import (
	"context"
	"log"
	"time"

	"github.com/fanvault/backend/config"
	"github.com/fanvault/backend/pkg/analytics"
	"github.com/fanvault/backend/pkg/commission"
	"github.com/fanvault/backend/pkg/metrics"
	"github.com/robfig/cron/v3"
)

// CronManager manages scheduled jobs
type CronManager struct {
	cron        *cron.Cron
	commissions *commission.Service
	analytics   *analytics.Service
	config      *config.Config
	metrics     *metrics.Metrics
	logger      *log.Logger
}

// NewCronManager creates a new cron manager
func NewCronManager(commissions *commission.Service, analyticsService *analytics.Service, cfg *config.Config, m *metrics.Metrics, logger *log.Logger) *CronManager {
	if logger == nil {
		logger = log.Default()
	}

	return &CronManager{
		cron:        cron.New(),
		commissions: commissions,
		analytics:   analyticsService,
		config:      cfg,
		metrics:     m,
		logger:      logger,
	}
}

// SetupJobs configures all scheduled jobs
func (cm *CronManager) SetupJobs() error {
	cm.logger.Println("Setting up cron jobs...")

	// Payout batch on the configured schedule (default hourly)
	_, err := cm.cron.AddFunc(cm.config.PayoutSchedule, func() {
		cm.logger.Println("🕐 Running payout batch...")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		start := time.Now()
		result, err := cm.commissions.ProcessPayouts(ctx, cm.config.PayoutMinAmount, cm.config.PayoutBatchLimit)
		if err != nil {
			cm.logger.Printf("❌ Payout batch failed: %v", err)
			return
		}

		if cm.metrics != nil {
			cm.metrics.RecordPayouts(result.Processed, result.Failed, time.Since(start))
		}

		for _, e := range result.Errors {
			cm.logger.Printf("⚠️ Payout error: %s", e)
		}
		cm.logger.Printf("✅ Payout batch completed: %d processed, %d failed, %.2f total",
			result.Processed, result.Failed, result.TotalAmount)
	})
	if err != nil {
		return err
	}

	// Every 5 minutes: keep the leaderboard cache warm
	_, err = cm.cron.AddFunc("*/5 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()

		if err := cm.analytics.RefreshLeaderboard(ctx); err != nil {
			cm.logger.Printf("❌ Leaderboard refresh failed: %v", err)
			return
		}
		cm.logger.Println("✅ Leaderboard cache refreshed")
	})
	if err != nil {
		return err
	}

	// Daily at 1 AM: log the previous day's program numbers
	_, err = cm.cron.AddFunc("0 1 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		to := time.Now().Truncate(24 * time.Hour)
		from := to.AddDate(0, 0, -1)

		stats, err := cm.analytics.GetGlobalStats(ctx, from, to)
		if err != nil {
			cm.logger.Printf("❌ Daily stats job failed: %v", err)
			return
		}

		cm.logger.Printf("📊 Daily referral stats %s: accounts=%d attributed=%d paid=%.2f",
			from.Format("2006-01-02"), stats.TotalAccounts, stats.AttributedAccounts, stats.TotalCommissionPaid)
	})
	if err != nil {
		return err
	}

	cm.logger.Println("✅ Cron jobs configured")
	return nil
}

// Start starts the cron scheduler
func (cm *CronManager) Start() {
	cm.cron.Start()
	cm.logger.Println("✅ Cron scheduler started")
}

// Stop stops the cron scheduler and waits for running jobs
func (cm *CronManager) Stop() {
	ctx := cm.cron.Stop()
	<-ctx.Done()
	cm.logger.Println("✅ Cron scheduler stopped")
}
