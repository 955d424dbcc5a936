package app

import (
	"context"
	"fmt"

	"mentorhub_backend/database"
	"mentorhub_backend/internal/auth"
	"mentorhub_backend/internal/config"
	"mentorhub_backend/internal/email"
	"mentorhub_backend/internal/handlers"
	"mentorhub_backend/internal/logger"
	"mentorhub_backend/internal/middleware"
	"mentorhub_backend/internal/models"
	"mentorhub_backend/internal/repositories"
	"mentorhub_backend/internal/routes"
	"mentorhub_backend/internal/services"
	"mentorhub_backend/internal/validator"
	"mentorhub_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}
	logger.Info("Migrations applied")

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		// Без первого админа модерация менторов недоступна - не стартуем
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter собирает зависимости и возвращает готовый *gin.Engine
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	// 1. Сервисы
	serviceContainer := initializeServices(cfg, gormDB)

	// 2. Хэндлеры
	appHandlers := handlers.NewAppHandlers(serviceContainer, validator.New())

	// 3. Фоновые воркеры
	tokenWorker := workers.NewTokenWorker(repositories.NewRefreshTokenRepository(gormDB))
	tokenWorker.Start(context.Background())

	// 4. Gin + маршруты
	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	emailService := initializeEmailProvider(cfg)

	userRepo := repositories.NewUserRepository(gormDB)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(gormDB)
	requestRepo := repositories.NewRequestRepository(gormDB)

	return &services.ServiceContainer{
		AuthService:    services.NewAuthService(userRepo, refreshTokenRepo, emailService),
		UserService:    services.NewUserService(userRepo),
		AdminService:   services.NewAdminService(userRepo, emailService),
		RequestService: services.NewRequestService(requestRepo, userRepo, emailService),
		EmailService:   emailService,
	}
}

// initializeEmailProvider возвращает nil, если SMTP не настроен:
// сервисы трактуют nil-провайдер как "уведомления выключены"
func initializeEmailProvider(cfg *config.Config) email.Provider {
	emailCfg := email.Config{
		SMTPHost:  cfg.Email.SMTPHost,
		SMTPPort:  cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	}

	if err := emailCfg.Validate(); err != nil {
		logger.Warn("Email provider disabled", "reason", err)
		return nil
	}

	provider, err := email.NewGomailSender(emailCfg)
	if err != nil {
		logger.Warn("Failed to initialize email provider, notifications disabled", "error", err)
		return nil
	}

	logger.Info("Email provider initialized", "host", cfg.Email.SMTPHost)
	return provider
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.CORSMiddleware(),
	)
	return ginRouter
}

// seedFirstAdmin создает первого администратора, если его еще нет.
// Без админа некому одобрять менторов.
func seedFirstAdmin(gormDB *gorm.DB, cfg *config.Config) error {
	if cfg.FirstAdminEmail == "" || cfg.FirstAdminPassword == "" {
		logger.Warn("First admin credentials not configured, skipping seed")
		return nil
	}

	var count int64
	if err := gormDB.Model(&models.User{}).
		Where("email = ?", cfg.FirstAdminEmail).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for existing admin: %w", err)
	}
	if count > 0 {
		return nil
	}

	passwordHash, err := auth.HashPassword(cfg.FirstAdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		Name:         cfg.FirstAdminName,
		Email:        cfg.FirstAdminEmail,
		PasswordHash: passwordHash,
		Role:         models.UserRoleAdmin,
		MentorStatus: models.MentorStatusApproved,
	}

	if err := gormDB.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	logger.Info("First admin user created", "email", cfg.FirstAdminEmail)
	return nil
}
