package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fanvault/backend/config"
	"github.com/fanvault/backend/pkg/container"
	custommiddleware "github.com/fanvault/backend/pkg/middleware"
	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.SentryEnvironment,
			TracesSampleRate: 1.0,
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.SentryEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	c, err := container.New(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize application: %v", err)
	}
	defer c.Close()

	e := echo.New()
	e.HideBanner = true

	// Rate limiters
	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	authRateLimiter := custommiddleware.NewRateLimiter(5, 2)     // login brute-force guard
	registerRateLimiter := custommiddleware.NewRateLimiter(3, 1) // signup abuse guard

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(ec echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("[%s] %s - Status: %d", ec.Request().Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true,
		}))
	}

	e.Use(c.Metrics.Middleware())

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{
			"http://localhost:3000",
			cfg.FrontendURL,
		},
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowCredentials: true,
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
		},
	}))

	e.Use(middleware.Gzip())
	e.Use(middleware.Secure())
	e.Use(globalRateLimiter.RateLimitMiddleware())

	// Health and metadata (public)
	e.GET("/", func(ec echo.Context) error {
		return ec.JSON(http.StatusOK, map[string]any{
			"name":        "FanVault API",
			"version":     "0.1.0",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})

	e.GET("/health", func(ec echo.Context) error {
		if err := c.DB.Ping(ec.Request().Context()); err != nil {
			return ec.JSON(http.StatusServiceUnavailable, map[string]any{
				"status":   "unhealthy",
				"database": "down",
			})
		}

		cacheStatus := "up"
		if c.Cache != nil {
			if _, err := c.Cache.Redis.Ping(ec.Request().Context()).Result(); err != nil {
				cacheStatus = "down"
			}
		} else {
			cacheStatus = "disabled"
		}

		return ec.JSON(http.StatusOK, map[string]any{
			"status":   "healthy",
			"database": "up",
			"cache":    cacheStatus,
		})
	})

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/api/v1")

	v1.GET("/ping", func(ec echo.Context) error {
		return ec.JSON(http.StatusOK, map[string]string{
			"message": "pong",
		})
	})

	// Authentication routes (public)
	authRoutes := v1.Group("/auth")
	{
		authRoutes.POST("/register", c.AuthHandler.Register, registerRateLimiter.RateLimitMiddleware())
		authRoutes.POST("/login", c.AuthHandler.Login, authRateLimiter.RateLimitMiddleware())
		authRoutes.GET("/me", c.AuthHandler.Me, custommiddleware.JWTMiddleware(cfg.JWTSecret))
	}

	// Public referral code validation (used by the signup form)
	v1.GET("/referrals/validate/:code", c.ReferralHandler.ValidateCode)

	// Public leaderboard
	v1.GET("/leaderboard", c.AnalyticsHandler.GetLeaderboard)

	// Protected routes
	protected := v1.Group("")
	protected.Use(custommiddleware.JWTMiddleware(cfg.JWTSecret))
	{
		userGroup := protected.Group("/user")
		{
			userGroup.PUT("/payout-address", c.AuthHandler.SetPayoutAddress)
			userGroup.GET("/wallet", c.LedgerHandler.GetMyWallet)
		}

		referralGroup := protected.Group("/referrals")
		{
			referralGroup.GET("/me", c.ReferralHandler.GetMyCode)
			referralGroup.GET("/summary", c.ReferralHandler.GetMySummary)
		}

		txnGroup := protected.Group("/transactions")
		{
			txnGroup.POST("", c.LedgerHandler.RecordTransaction)
			txnGroup.POST("/:id/complete", c.LedgerHandler.CompleteTransaction)
			txnGroup.GET("", c.LedgerHandler.ListMyTransactions)
		}

		statementsGroup := protected.Group("/statements")
		{
			statementsGroup.POST("", c.ExportHandler.GenerateStatement)
		}

		// Admin routes (require admin role)
		adminGroup := protected.Group("/admin")
		adminGroup.Use(custommiddleware.RequireAdmin(c.DB.Ent))
		{
			adminGroup.POST("/payouts/run", c.AdminHandler.RunPayouts)
			adminGroup.POST("/commissions/:id/cancel", c.AdminHandler.CancelCommission)
			adminGroup.GET("/stats", c.AnalyticsHandler.GetGlobalStats)
		}
	}

	// Scheduled payout and cache jobs
	if err := c.CronManager.SetupJobs(); err != nil {
		log.Fatalf("❌ Failed to setup cron jobs: %v", err)
	}
	c.CronManager.Start()

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 FanVault API starting on %s", address)
	log.Printf("🛡️  Rate limiting: %d req/min (burst: %d)", cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	log.Printf("💸 Payout schedule: %s (min %.2f, batch %d)", cfg.PayoutSchedule, cfg.PayoutMinAmount, cfg.PayoutBatchLimit)

	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}
