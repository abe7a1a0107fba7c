package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/kaan/etdtrack/internal/app/controllers"
	appMigrations "github.com/kaan/etdtrack/internal/app/migrations"
	"github.com/kaan/etdtrack/internal/app/notifications"
	appRepos "github.com/kaan/etdtrack/internal/app/repositories"
	appRoutes "github.com/kaan/etdtrack/internal/app/routes"
	appServices "github.com/kaan/etdtrack/internal/app/services"
	"github.com/kaan/etdtrack/internal/config"
	"github.com/kaan/etdtrack/internal/db"
	appMiddleware "github.com/kaan/etdtrack/internal/middleware"
	pkgAuth "github.com/kaan/etdtrack/internal/pkg/auth"
	"github.com/kaan/etdtrack/internal/pkg/filestorage"
	"github.com/kaan/etdtrack/internal/pkg/helpers"
	"github.com/kaan/etdtrack/internal/pkg/logger"
	"github.com/kaan/etdtrack/internal/pkg/mailer"
	"github.com/kaan/etdtrack/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos               *appRepos.Repositories
	Services            *appServices.Services
	JWTService          *pkgAuth.JWTService
	FileStorage         *filestorage.LocalStorage
	Dispatcher          *notifications.Dispatcher
	AuthController      *appControllers.AuthController
	CandidateController *appControllers.CandidateController
	ThesisController    *appControllers.ThesisController
	ChecklistController *appControllers.ChecklistController
	CommitteeController *appControllers.CommitteeController
	ReferenceController *appControllers.ReferenceController
	AuthMiddleware      *appMiddleware.AuthMiddleware
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations,
// and seeds the default reference data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 8*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	smtpMailer := mailer.NewSMTPMailer(mailer.SMTPConfig{
		Host:      cfg.Mail.Host,
		Port:      cfg.Mail.Port,
		Username:  cfg.Mail.Username,
		Password:  cfg.Mail.Password,
		FromName:  cfg.Mail.FromName,
		FromEmail: cfg.Mail.FromAddress,
	}, lgr)

	deps.Dispatcher = notifications.NewDispatcher(smtpMailer, notifications.Config{
		ContactAddress: cfg.Mail.ContactAddress,
	}, lgr)

	deps.Services = appServices.NewServices(dbPool, deps.Repos, deps.JWTService, deps.FileStorage, deps.Dispatcher, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Repos.StaffRepository)

	deps.AuthController = appControllers.NewAuthController(deps.Services.AuthService)
	deps.CandidateController = appControllers.NewCandidateController(deps.Services.RegistrationService, deps.Services.CandidateService)
	deps.ThesisController = appControllers.NewThesisController(deps.Services.ThesisService)
	deps.ChecklistController = appControllers.NewChecklistController(deps.Services.ChecklistService)
	deps.CommitteeController = appControllers.NewCommitteeController(deps.Services.CommitteeService)
	deps.ReferenceController = appControllers.NewReferenceController(deps.Services.ReferenceService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.CandidateController,
		deps.ThesisController,
		deps.ChecklistController,
		deps.CommitteeController,
		deps.ReferenceController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
