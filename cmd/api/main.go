package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	_ "github.com/rafabene/hiresphere-backend/docs"
	"github.com/rafabene/hiresphere-backend/internal/domain/ports"
	"github.com/rafabene/hiresphere-backend/internal/handlers/dto"
	httphandlers "github.com/rafabene/hiresphere-backend/internal/handlers/http"
	"github.com/rafabene/hiresphere-backend/internal/infrastructure/config"
	"github.com/rafabene/hiresphere-backend/internal/infrastructure/email"
	"github.com/rafabene/hiresphere-backend/internal/infrastructure/i18n"
	"github.com/rafabene/hiresphere-backend/internal/infrastructure/logging"
	"github.com/rafabene/hiresphere-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/hiresphere-backend/internal/infrastructure/realtime"
	"github.com/rafabene/hiresphere-backend/internal/infrastructure/security"
	"github.com/rafabene/hiresphere-backend/internal/services"
)

// @title HireSphere API
// @version 1.0
// @description API do quadro de vagas HireSphere
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer {access token}
func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting hiresphere backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger, !cfg.IsProduction())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}
	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(db); err != nil {
			logger.Error("failed to migrate database", "error", err)
			log.Fatal(err)
		}
		logger.Info("database migrated")
	}

	// Inicializar i18n
	i18nService, err := newI18nService(cfg.I18n)
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	if err := dto.RegisterValidators(); err != nil {
		logger.Error("failed to register validators", "error", err)
		log.Fatal(err)
	}

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	refreshRepo := postgres.NewRefreshTokenRepository(db)
	resetRepo := postgres.NewPasswordResetTokenRepository(db)
	companyRepo := postgres.NewCompanyRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	jobRepo := postgres.NewJobRepository(db)
	applicationRepo := postgres.NewJobApplicationRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Infraestrutura
	jwtManager := security.NewJWTManager(cfg.JWT)
	hasher := security.NewBcryptHasher(0)
	mailer := email.NewMailer(cfg.SMTP, logger)
	hub := realtime.NewHub(logger, cfg.CORS.Origins())

	// Inicializar services
	authService := services.NewAuthService(userRepo, refreshRepo, resetRepo, uow, jwtManager, hasher, mailer,
		services.AuthSettings{
			RefreshTTL: cfg.JWT.RefreshTTL(),
			ResetTTL:   cfg.PasswordReset.TTL,
			ResetURL:   cfg.PasswordReset.ResetURL,
		}, logger)
	userService := services.NewUserService(userRepo, refreshRepo, companyRepo, hasher, uow, logger)
	companyService := services.NewCompanyService(companyRepo, userRepo, logger)
	categoryService := services.NewCategoryService(categoryRepo, logger)
	jobService := services.NewJobService(jobRepo, companyRepo, categoryRepo, logger)
	applicationService := services.NewJobApplicationService(applicationRepo, jobRepo, companyRepo, userRepo, uow, hub, logger)
	homeService := services.NewHomeService(jobRepo, companyRepo, categoryRepo, logger)

	bootstrap(authService, cfg.Admin, logger)

	// Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("failed to access database pool", "error", err)
		log.Fatal(err)
	}

	router := httphandlers.NewRouter(httphandlers.RouterConfig{
		BaseURL:        cfg.Server.BaseURL,
		AllowedOrigins: cfg.CORS.Origins(),
		EnableSwagger:  !cfg.IsProduction(),
		Tokens:         jwtManager,
		I18n:           i18nService,
		Logger:         logger,
	}, httphandlers.Handlers{
		Auth:        httphandlers.NewAuthHandler(authService, userService),
		User:        httphandlers.NewUserHandler(userService),
		Company:     httphandlers.NewCompanyHandler(companyService),
		Category:    httphandlers.NewCategoryHandler(categoryService),
		Job:         httphandlers.NewJobHandler(jobService),
		Application: httphandlers.NewApplicationHandler(applicationService),
		Home:        httphandlers.NewHomeHandler(homeService),
		WebSocket:   httphandlers.NewWebSocketHandler(hub, logger),
		Health:      httphandlers.NewHealthHandler(sqlDB),
	})

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}
	hub.Close()
	if err := postgres.Close(db); err != nil {
		logger.Error("failed to close database", "error", err)
	}

	logger.Info("server exited")
}

func newI18nService(cfg config.I18nConfig) (*i18n.Service, error) {
	if cfg.LocalesDir != "" {
		return i18n.NewService(cfg.LocalesDir, cfg.DefaultLanguage)
	}
	return i18n.NewEmbeddedService(cfg.DefaultLanguage)
}

// bootstrap cria o admin configurado e limpa tokens vencidos
func bootstrap(authService *services.AuthService, admin config.AdminConfig, logger ports.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if admin.Email != "" {
		if err := authService.EnsureAdmin(ctx, admin.Email, admin.Password); err != nil {
			logger.Error("failed to ensure admin user", "error", err)
			log.Fatal(err)
		}
	}

	purged, err := authService.PurgeExpiredTokens(ctx)
	if err != nil {
		logger.Warn("failed to purge expired tokens", "error", err)
		return
	}
	logger.Info("expired tokens purged", "count", purged)
}
