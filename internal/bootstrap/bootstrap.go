package bootstrap

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/sarah-brisson/keyhook-code-test/internal/app/controllers"
	"github.com/sarah-brisson/keyhook-code-test/internal/app/migrations"
	appRepos "github.com/sarah-brisson/keyhook-code-test/internal/app/repositories"
	appRoutes "github.com/sarah-brisson/keyhook-code-test/internal/app/routes"
	appServices "github.com/sarah-brisson/keyhook-code-test/internal/app/services"
	"github.com/sarah-brisson/keyhook-code-test/internal/config"
	"github.com/sarah-brisson/keyhook-code-test/internal/db"
	appMiddleware "github.com/sarah-brisson/keyhook-code-test/internal/middleware"
	"github.com/sarah-brisson/keyhook-code-test/internal/pkg/logger"
	"github.com/sarah-brisson/keyhook-code-test/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	DepartmentService    appServices.DepartmentService
	EmployeeService      appServices.EmployeeService
	DepartmentController *appControllers.DepartmentController
	EmployeeController   *appControllers.EmployeeController
	Repos                *appRepos.Repositories
	Logger               zerolog.Logger
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds the initial directory when the store is empty.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	migrator := migrations.NewMigrator(database.Pool)
	if err := migrator.Run(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to run migrations")
		database.Close()
		return nil, err
	}

	if err := seed.CreateDefaultData(ctx, database, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to seed default data")
		database.Close()
		return nil, err
	}

	return database, nil
}

// BuildDependencies wires repositories, services and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	deps.DepartmentService = appServices.NewDepartmentService(
		deps.Repos.DepartmentRepository,
		deps.Repos.EmployeeRepository,
	)
	deps.EmployeeService = appServices.NewEmployeeService(
		deps.Repos.EmployeeRepository,
		deps.Repos.DepartmentRepository,
	)

	deps.DepartmentController = appControllers.NewDepartmentController(deps.DepartmentService)
	deps.EmployeeController = appControllers.NewEmployeeController(deps.EmployeeService)

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

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	appRoutes.SetupRouter(router,
		deps.DepartmentController,
		deps.EmployeeController,
	)

	// Health endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
