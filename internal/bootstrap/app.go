package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"datecheck-backend/internal/settings"
	"datecheck-backend/internal/shared/config"
	"datecheck-backend/internal/shared/server"
	"datecheck-backend/internal/shared/storage/db"
	"datecheck-backend/internal/shared/telemetry"
	"datecheck-backend/internal/validation"
)

// App holds shared dependencies wired from configuration.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	SettingsRepo   settings.Repo
	ValidationRepo validation.Repo

	SettingsService   *settings.Service
	ValidationService *validation.Service

	SettingsHandler   *settings.Handler
	ValidationHandler *validation.Handler
}

// Build prepares shared dependencies and the HTTP router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:            app.Config,
		ValidationHandler: app.ValidationHandler,
		SettingsHandler:   app.SettingsHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			_ = sqlDB.Close()
			return nil, nil
		}
		_ = sqlDB.Close()
		return nil, err
	}

	return sqlDB, nil
}

func buildServices(app *App) {
	var settingsRepo settings.Repo
	var runsRepo validation.Repo
	if app.DB != nil {
		settingsRepo = &settings.PGRepo{DB: app.DB}
		runsRepo = &validation.PGRepo{DB: app.DB}
	} else {
		settingsRepo = settings.NewMemoryRepo()
		runsRepo = validation.NewMemoryRepo()
	}

	sink := telemetry.LogSink{}
	settingsSvc := settings.NewService(settingsRepo, sink)
	validationSvc := validation.NewService(settingsSvc, runsRepo, sink)

	app.SettingsRepo = settingsRepo
	app.ValidationRepo = runsRepo
	app.SettingsService = settingsSvc
	app.ValidationService = validationSvc
	app.SettingsHandler = settings.NewHandler(settingsSvc)
	app.ValidationHandler = validation.NewHandler(validationSvc, runsRepo)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
