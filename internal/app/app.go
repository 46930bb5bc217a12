package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"fitness_backend/internal/auth"
	"fitness_backend/internal/config"
	"fitness_backend/internal/database"
	"fitness_backend/internal/email"
	"fitness_backend/internal/handlers"
	"fitness_backend/internal/logger"
	"fitness_backend/internal/middleware"
	"fitness_backend/internal/repositories"
	"fitness_backend/internal/routes"
	"fitness_backend/internal/services"
	"fitness_backend/internal/validator"
	"fitness_backend/internal/workers"
	"fitness_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	apperrors.SetDebug(cfg.Server.Env == "development")

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := database.Open(database.Options{
		Driver:       cfg.Database.Driver,
		DSN:          cfg.Database.DSN,
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
		Logger:       logger.NewGormLogger(cfg.Server.Env),
		Attempts:     5,
	})
	if err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	container := initializeServices(cfg)

	if err := container.SeedService.EnsureAdmin(ctx, gormDB.WithContext(ctx), cfg.Admin.Email, cfg.Admin.Password); err != nil {
		// без админа сервер не запускаем: проблемы с БД
		logger.Fatal("Failed to seed first admin user", "error", err)
	}
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
	}

	worker := workers.NewMembershipWorker(gormDB, repositories.NewUserRepository(),
		time.Duration(cfg.Workers.MembershipExpiryIntervalMinutes)*time.Minute)
	worker.Start(ctx)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           buildRouter(cfg, gormDB, container),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info(fmt.Sprintf("🚀 Server starting on %s", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logger.Info("Server exited")
}

// SetupRouter собирает сервисы, хэндлеры и gin-роутер (используется и в тестах)
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	return buildRouter(cfg, gormDB, initializeServices(cfg))
}

func buildRouter(cfg *config.Config, gormDB *gorm.DB, container *services.ServiceContainer) *gin.Engine {
	appHandlers := initializeHandlers(cfg, container)

	ginRouter := initializeGinRouter(cfg, gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers, middleware.AuthMiddleware(container.AuthService))

	return ginRouter
}

func initializeServices(cfg *config.Config) *services.ServiceContainer {
	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWTTTL())
	return services.NewServiceContainer(tokens, newMailer(cfg), cfg.Email.AdminEmail)
}

// newMailer - SMTP, если задан хост, иначе письма только логируются
func newMailer(cfg *config.Config) email.Provider {
	renderer := email.NewTemplateManager()
	if !cfg.SMTPEnabled() {
		logger.Warn("SMTP is not configured, contact notifications are disabled")
		return email.NewNoopProvider(renderer)
	}

	provider := email.NewSMTPProvider(email.ConfigFromApp(cfg), renderer)
	if err := provider.Validate(); err != nil {
		logger.Warn("Invalid SMTP configuration, falling back to noop mailer", "error", err)
		return email.NewNoopProvider(renderer)
	}
	logger.Info("SMTP mailer configured", "host", cfg.Email.SMTPHost)
	return provider
}

func initializeHandlers(cfg *config.Config, container *services.ServiceContainer) *handlers.AppHandlers {
	baseHandler := handlers.NewBaseHandler(validator.New())

	limiter, err := middleware.NewRateLimiter(
		cfg.Contact.RateLimit,
		time.Duration(cfg.Contact.RateWindowMinutes)*time.Minute,
		cfg.Contact.CacheSize,
	)
	if err != nil {
		logger.Fatal("Failed to initialize rate limiter", "error", err)
	}

	return &handlers.AppHandlers{
		AuthHandler:       handlers.NewAuthHandler(baseHandler, container.AuthService),
		UserHandler:       handlers.NewUserHandler(baseHandler, container.UserService),
		MembershipHandler: handlers.NewMembershipHandler(baseHandler, container.MembershipService),
		TrainerHandler:    handlers.NewTrainerHandler(baseHandler, container.TrainerService),
		ProgramHandler:    handlers.NewProgramHandler(baseHandler, container.ProgramService),
		ClassHandler:      handlers.NewClassHandler(baseHandler, container.ClassService),
		BookingHandler:    handlers.NewBookingHandler(baseHandler, container.BookingService),
		MealPlanHandler:   handlers.NewMealPlanHandler(baseHandler, container.MealPlanService),
		ProgressHandler:   handlers.NewProgressHandler(baseHandler, container.ProgressService),
		ContactHandler:    handlers.NewContactHandler(baseHandler, container.ContactService, limiter),
		AdminHandler:      handlers.NewAdminHandler(baseHandler, container.DashboardService),
		SystemHandler:     handlers.NewSystemHandler(baseHandler, container.SeedService),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.CtxError(c.Request.Context(), "Panic recovered", "panic", recovered)
		apperrors.HandleError(c, apperrors.InternalError(fmt.Errorf("panic: %v", recovered)))
	}))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	router.Use(middleware.DBMiddleware(db))
	return router
}
