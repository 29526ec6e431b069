package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chaseplus/internal/audit"
	contentHTTP "chaseplus/internal/controller/http"
	"chaseplus/internal/repo/persistent"
	"chaseplus/internal/usecase"
	"chaseplus/pkg/cache"
	"chaseplus/pkg/config"
	"chaseplus/pkg/database"
	"chaseplus/pkg/gcs"
	"chaseplus/pkg/jwt"
	"chaseplus/pkg/logger"
	"chaseplus/pkg/queue"
	"chaseplus/pkg/s3"
	"chaseplus/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	cfg            *config.Config
	log            *logger.Logger
	db             *gorm.DB
	redisClient    *redis.Client
	assets         usecase.AssetStore
	closeAssets    func() error
	queueClient    *queue.Client
	jwtService     *jwt.Service
	httpServer     *http.Server
	scheduler      *audit.Scheduler
	tracerShutdown tracing.ShutdownFunc
}

func NewApp(cfg *config.Config) (*App, error) {
	log, err := logger.NewWithMode(cfg.LogMode)
	if err != nil {
		log = logger.New()
	}
	gin.SetMode(cfg.GinMode)

	ctx := context.Background()
	tracerShutdown := tracing.Init(ctx, cfg, log)

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		// Rate limiting and view de-duplication are skipped without redis
		log.Error("Failed to connect to redis: %v (continuing without cache)", err)
		redisClient = nil
	}

	assets, closeAssets, err := newAssetStore(ctx, cfg)
	if err != nil {
		log.Error("Failed to create %s asset store: %v", cfg.AssetBackend, err)
		return nil, err
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v (continuing without events)", err)
		queueClient = nil
	}

	return &App{
		cfg:            cfg,
		log:            log,
		db:             db,
		redisClient:    redisClient,
		assets:         assets,
		closeAssets:    closeAssets,
		queueClient:    queueClient,
		jwtService:     jwt.NewServiceWithTTL(cfg.JWTSecret, cfg.SessionTTL),
		tracerShutdown: tracerShutdown,
	}, nil
}

func newAssetStore(ctx context.Context, cfg *config.Config) (usecase.AssetStore, func() error, error) {
	switch cfg.AssetBackend {
	case "s3", "":
		client, err := s3.NewClient(cfg)
		if err != nil {
			return nil, nil, err
		}
		return client, func() error { return nil }, nil
	case "gcs":
		client, err := gcs.NewClient(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return client, client.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown asset backend %q", cfg.AssetBackend)
	}
}

func (a *App) Run() error {
	// Optional collaborators stay nil interfaces when their backend is down
	var events usecase.EventPublisher
	if a.queueClient != nil {
		events = a.queueClient
	}
	var views usecase.ViewTracker
	if a.redisClient != nil {
		views = cache.NewViewTracker(a.redisClient, 24*time.Hour)
	}

	// Initialize repositories
	courseRepo := persistent.NewCourseRepository(a.db)
	blogRepo := persistent.NewBlogRepository(a.db)
	categoryRepo := persistent.NewCategoryRepository(a.db)
	adminRepo := persistent.NewAdminRepository(a.db)

	// Initialize use cases
	courseUseCase := usecase.NewCourseUseCase(courseRepo, a.assets, events, a.log, a.cfg.CourseImagePrefix)
	blogUseCase := usecase.NewBlogUseCase(blogRepo, a.assets, events, views, a.log, a.cfg.BlogImagePrefix)
	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo, a.log)
	authUseCase := usecase.NewAuthUseCase(adminRepo, a.jwtService, a.log)

	// Initialize HTTP handlers
	sessionCookie := contentHTTP.SessionCookie{
		Name:   a.cfg.SessionCookieName,
		TTL:    a.jwtService.TTL(),
		Secure: a.cfg.SecureCookies,
	}
	handlers := Handlers{
		Course:   contentHTTP.NewCourseHandler(courseUseCase, a.log),
		Blog:     contentHTTP.NewBlogHandler(blogUseCase, a.log),
		Category: contentHTTP.NewCategoryHandler(categoryUseCase, a.log),
		Auth:     contentHTTP.NewAuthHandler(authUseCase, sessionCookie, a.log),
		Site:     contentHTTP.NewSiteHandler(courseUseCase, blogUseCase, categoryUseCase, a.log),
	}

	router := NewRouter(RouterConfig{
		ServiceName:       a.cfg.OTELServiceName,
		CORSOrigins:       a.cfg.CORSOrigins,
		SessionCookieName: a.cfg.SessionCookieName,
		RateLimitRequests: a.cfg.RateLimitRequests,
		RateLimitWindow:   a.cfg.RateLimitWindow,
	}, handlers, a.jwtService, a.redisClient, a.log)

	// Orphaned asset audit
	auditor := audit.NewAuditor(a.assets, events, a.log,
		[]string{a.cfg.CourseImagePrefix, a.cfg.BlogImagePrefix},
		courseRepo, blogRepo,
	)
	if a.queueClient != nil {
		auditor.WithBacklog(a.queueClient)
	}
	scheduler, err := audit.NewScheduler(a.cfg.AuditSchedule, auditor, a.log)
	if err != nil {
		return err
	}
	a.scheduler = scheduler
	a.scheduler.Start()

	// Create HTTP server
	a.httpServer = &http.Server{
		Addr:              ":" + a.cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		a.log.Info("Content service starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down content service...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var serverErr error
	if a.httpServer != nil {
		if serverErr = a.httpServer.Shutdown(ctx); serverErr != nil {
			a.log.Error("Server forced to shutdown: %v", serverErr)
		}
	}

	if a.scheduler != nil {
		a.scheduler.Stop(ctx)
	}

	// Close RabbitMQ connection
	if a.queueClient != nil {
		if err := a.queueClient.Close(); err != nil {
			a.log.Error("Error closing RabbitMQ: %v", err)
		}
	}

	// Close Redis connection
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	if a.closeAssets != nil {
		if err := a.closeAssets(); err != nil {
			a.log.Error("Error closing asset store: %v", err)
		}
	}

	// Close database connection
	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	if err := a.tracerShutdown(ctx); err != nil {
		a.log.Error("Error flushing traces: %v", err)
	}

	a.log.Info("Content service exited")
	a.log.Sync()
	return serverErr
}
