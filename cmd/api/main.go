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

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/replyflow/replyflow-api/config"
	"github.com/replyflow/replyflow-api/pkg/ai"
	"github.com/replyflow/replyflow-api/pkg/ai/llm"
	"github.com/replyflow/replyflow-api/pkg/api/handlers"
	custommw "github.com/replyflow/replyflow-api/pkg/api/middleware"
	"github.com/replyflow/replyflow-api/pkg/auth"
	"github.com/replyflow/replyflow-api/pkg/billing"
	"github.com/replyflow/replyflow-api/pkg/cache"
	"github.com/replyflow/replyflow-api/pkg/database"
	"github.com/replyflow/replyflow-api/pkg/email"
	"github.com/replyflow/replyflow-api/pkg/entitlement"
	"github.com/replyflow/replyflow-api/pkg/jobs"
	"github.com/replyflow/replyflow-api/pkg/metrics"
	custommiddleware "github.com/replyflow/replyflow-api/pkg/middleware"
	"github.com/replyflow/replyflow-api/pkg/oauth"
	"github.com/replyflow/replyflow-api/pkg/store"
	"github.com/replyflow/replyflow-api/pkg/trial"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.APIEnvironment,
			TracesSampleRate: 1.0,
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.APIEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	// Initialize database
	db, err := database.NewClient(cfg.DatabaseURL, cfg.DBSSLMode)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize Redis cache
	redisClient, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize Prometheus metrics
	prometheusMetrics := metrics.New()
	log.Printf("✅ Prometheus metrics initialized")

	// Account store backed by ent
	accountStore := store.NewEntStore(db.Ent)

	// Initialize JWT blacklist
	tokenBlacklist := auth.NewTokenBlacklist(redisClient)

	// Initialize email service
	emailService := email.NewService(
		cfg.EmailFrom,
		cfg.EmailFromName,
		cfg.FrontendURL,
		cfg.SendGridAPIKey,
	)

	// LLM client: OpenAI in production, Ollama for local development
	var llmClient llm.LLMClient
	if cfg.OpenAIAPIKey != "" {
		llmClient = llm.NewOpenAIClient(llm.Config{
			APIKey: cfg.OpenAIAPIKey,
			Model:  cfg.OpenAIModel,
		}, nil)
	} else {
		log.Printf("⚠️  No OpenAI API key configured, falling back to local Ollama")
		llmClient = llm.NewOllamaClient(llm.OllamaConfig{}, nil)
	}
	assistant := ai.NewAssistant(llmClient, nil)

	// Initialize services
	evaluator := entitlement.NewEvaluator(accountStore, cfg)
	billingService := billing.NewService(accountStore, &billing.StripeConfig{
		SecretKey:       cfg.StripeSecretKey,
		WebhookSecret:   cfg.StripeWebhookSecret,
		PriceMonthly:    cfg.StripePriceMonthly,
		PriceYearly:     cfg.StripePriceYearly,
		TrialPeriodDays: cfg.TrialPeriodDays,
		SuccessURL:      cfg.FrontendURL + "/settings/billing?success=true",
		CancelURL:       cfg.FrontendURL + "/settings/billing?canceled=true",
		BaseURL:         cfg.FrontendURL,
	})
	billingService.SetEmailSender(billing.NewEmailServiceAdapter(emailService))
	trialService := trial.NewService(accountStore, redisClient, cfg)
	oauthService := oauth.NewService(accountStore, cfg)

	// Initialize cron manager for the trial expiry sweep
	cronManager := jobs.NewCronManager(trialService, cfg.TrialSweepSchedule, log.Default())
	if err := cronManager.SetupJobs(); err != nil {
		log.Fatalf("❌ Failed to setup cron jobs: %v", err)
	}
	cronManager.Start()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(accountStore, cfg, tokenBlacklist, oauthService)
	authHandler.SetEmailService(emailService)
	authHandler.SetMetrics(prometheusMetrics)
	authHandler.SetCache(redisClient)

	aiHandler := handlers.NewAIHandler(evaluator, assistant)
	aiHandler.SetMetrics(prometheusMetrics)

	billingHandler := handlers.NewBillingHandler(billingService, cfg.FrontendURL+"/settings/billing")
	billingHandler.SetMetrics(prometheusMetrics)

	trialHandler := handlers.NewTrialHandler(trialService)

	cronHandler := handlers.NewCronHandler(trialService, cfg.CronSecret)
	cronHandler.SetMetrics(prometheusMetrics)

	healthHandler := handlers.NewHealthHandler(db, redisClient, version)

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Rate limiters
	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	authRateLimiter := custommiddleware.NewRateLimiter(5, 2)      // login and register
	webhookRateLimiter := custommiddleware.NewRateLimiter(100, 20) // Stripe webhooks

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("[%s] %s - Status: %d", c.Request().Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true,
		}))
	}

	e.Use(prometheusMetrics.Middleware())
	e.Use(middleware.CORSWithConfig(custommiddleware.CORSConfig(cfg.CORSAllowedOrigins)))
	e.Use(custommiddleware.SecurityHeaders(custommiddleware.DefaultSecurityHeadersConfig()))
	e.Use(middleware.Gzip())
	e.Use(globalRateLimiter.RateLimitMiddleware())

	// Public endpoints
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"name":        "ReplyFlow API",
			"version":     version,
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})
	e.GET("/health", healthHandler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")

	// Authentication routes (public, tighter rate limit)
	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register, authRateLimiter.RateLimitMiddleware())
		authRoutes.POST("/login", authHandler.Login, authRateLimiter.RateLimitMiddleware())
		authRoutes.POST("/google", authHandler.GoogleLogin, authRateLimiter.RateLimitMiddleware())
		authRoutes.POST("/forgot-password", authHandler.ForgotPassword, authRateLimiter.RateLimitMiddleware())
		authRoutes.POST("/reset-password", authHandler.ResetPassword, authRateLimiter.RateLimitMiddleware())
		authRoutes.GET("/me", authHandler.Me, custommw.JWTMiddlewareWithBlacklist(cfg.JWTSecret, tokenBlacklist))
		authRoutes.POST("/logout", authHandler.Logout, custommw.JWTMiddlewareWithBlacklist(cfg.JWTSecret, tokenBlacklist))
	}

	// Protected routes (require JWT with blacklist validation)
	protected := api.Group("")
	protected.Use(custommw.JWTMiddlewareWithBlacklist(cfg.JWTSecret, tokenBlacklist))
	{
		aiGroup := protected.Group("/ai")
		{
			aiGroup.POST("/reply-options", aiHandler.ReplyOptions)
			aiGroup.POST("/generate-reply", aiHandler.GenerateReply)
			aiGroup.POST("/generate-compose", aiHandler.GenerateCompose)
			aiGroup.POST("/analyze-category", aiHandler.AnalyzeCategory)
			aiGroup.POST("/summarize", aiHandler.Summarize)
		}

		billingGroup := protected.Group("/billing")
		{
			billingGroup.POST("/checkout", billingHandler.CreateCheckout)
			billingGroup.POST("/portal", billingHandler.CreatePortal)
			billingGroup.POST("/cancel", billingHandler.CancelSubscription)
			billingGroup.POST("/reactivate", billingHandler.ReactivateSubscription)
			billingGroup.GET("/subscription", billingHandler.GetSubscription)
		}

		protected.GET("/trial/status", trialHandler.Status)
	}

	// Stripe webhook (public, signature verified, higher rate limit)
	api.POST("/billing/webhook", billingHandler.Webhook, webhookRateLimiter.RateLimitMiddleware())

	// External cron trigger (guarded by the cron secret)
	api.POST("/cron/check-trial-expiry", cronHandler.CheckTrialExpiry)

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 ReplyFlow API starting on %s", address)
	log.Printf("🔐 JWT expiration: %d hours", cfg.JWTExpirationHours)
	log.Printf("🛡️  Rate limiting: %d req/min (burst: %d), auth 5/min, webhook 100/min",
		cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	log.Printf("⏰ Trial sweep schedule: %s", cfg.TrialSweepSchedule)

	// Graceful shutdown
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	cronManager.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}
