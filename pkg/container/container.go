package container

import (
	"fmt"
	"log"
	"time"

	"github.com/fanvault/backend/config"
	"github.com/fanvault/backend/pkg/analytics"
	"github.com/fanvault/backend/pkg/api/handlers"
	"github.com/fanvault/backend/pkg/cache"
	"github.com/fanvault/backend/pkg/commission"
	"github.com/fanvault/backend/pkg/database"
	"github.com/fanvault/backend/pkg/email"
	"github.com/fanvault/backend/pkg/export"
	"github.com/fanvault/backend/pkg/jobs"
	"github.com/fanvault/backend/pkg/ledger"
	"github.com/fanvault/backend/pkg/logger"
	"github.com/fanvault/backend/pkg/metrics"
	"github.com/fanvault/backend/pkg/referral"
	"github.com/fanvault/backend/pkg/users"
	"github.com/fanvault/backend/pkg/wallet"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger logger.Logger

	// Infrastructure
	DB      *database.Client
	Cache   *cache.Client
	Metrics *metrics.Metrics

	// Services
	ReferralService   *referral.Service
	WalletService     *wallet.Service
	CommissionService *commission.Service
	LedgerService     *ledger.Service
	UserService       *users.Service
	AnalyticsService  *analytics.Service
	EmailService      *email.Service
	ExportService     *export.Service

	// Jobs
	CronManager *jobs.CronManager

	// Handlers
	AuthHandler      *handlers.AuthHandler
	ReferralHandler  *handlers.ReferralHandler
	LedgerHandler    *handlers.LedgerHandler
	AnalyticsHandler *handlers.AnalyticsHandler
	AdminHandler     *handlers.AdminHandler
	ExportHandler    *handlers.ExportHandler
}

// New creates and initializes all application dependencies
func New(cfg *config.Config) (*Container, error) {
	c := &Container{
		Config: cfg,
		Logger: logger.New(cfg.LogLevel, cfg.LogFormat),
	}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	if err := c.initServices(); err != nil {
		return nil, err
	}

	c.initHandlers()
	c.initJobs()

	return c, nil
}

func (c *Container) initInfrastructure() error {
	db, err := database.NewClient(c.Config.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to init database: %w", err)
	}
	c.DB = db

	// Redis is optional; without it the leaderboard recomputes per request.
	cacheClient, err := cache.NewClient(c.Config.RedisURL)
	if err != nil {
		c.Logger.Warn("redis unavailable, running without cache", "error", err)
	} else {
		c.Cache = cacheClient
	}

	c.Metrics = metrics.New()

	return nil
}

func (c *Container) initServices() error {
	c.EmailService = email.NewService(
		c.Config.EmailFrom,
		c.Config.EmailFromName,
		c.Config.FrontendURL,
		c.Config.SendGridAPIKey,
	)

	c.ReferralService = referral.NewService(c.DB.Ent)
	c.WalletService = wallet.NewService(c.DB.Ent)
	c.CommissionService = commission.NewService(c.DB.Ent, c.WalletService, c.EmailService)
	c.LedgerService = ledger.NewService(c.DB.Ent, c.CommissionService, c.Logger)
	c.UserService = users.NewService(c.DB.Ent, c.ReferralService, c.Logger)

	cacheTTL := time.Duration(c.Config.LeaderboardCacheTTLMinutes) * time.Minute
	c.AnalyticsService = analytics.NewService(c.DB.Ent, c.Cache, cacheTTL, c.Metrics, c.Logger)

	exportService, err := export.NewService(c.DB.Ent, export.Config{
		StoragePath: c.Config.StorageLocalPath,
		AWSRegion:   c.Config.AWSRegion,
		S3Bucket:    c.Config.S3Bucket,
	}, c.Logger)
	if err != nil {
		return fmt.Errorf("failed to init export service: %w", err)
	}
	c.ExportService = exportService

	return nil
}

func (c *Container) initHandlers() {
	c.AuthHandler = handlers.NewAuthHandler(c.UserService, c.EmailService, c.Config, c.Metrics)
	c.ReferralHandler = handlers.NewReferralHandler(c.ReferralService, c.AnalyticsService)
	c.LedgerHandler = handlers.NewLedgerHandler(c.LedgerService, c.WalletService, c.Metrics)
	c.AnalyticsHandler = handlers.NewAnalyticsHandler(c.AnalyticsService)
	c.AdminHandler = handlers.NewAdminHandler(c.CommissionService, c.Config, c.Metrics)
	c.ExportHandler = handlers.NewExportHandler(c.ExportService, c.UserService, c.EmailService)
}

func (c *Container) initJobs() {
	c.CronManager = jobs.NewCronManager(c.CommissionService, c.AnalyticsService, c.Config, c.Metrics, log.Default())
}

// Close releases infrastructure resources
func (c *Container) Close() {
	if c.CronManager != nil {
		c.CronManager.Stop()
	}
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			c.Logger.Error("failed to close cache", "error", err)
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			c.Logger.Error("failed to close database", "error", err)
		}
	}
}
