package cmd

import (
	"fmt"
	"log"

	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/wire"
	"hotel-booking/pkg/database"
	"hotel-booking/pkg/metrics"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

// Runtime is everything a process needs to serve the functions
type Runtime struct {
	Config *utils.Config
	Logger *zap.Logger
	App    *wire.App
	db     database.PgxIface
}

// Close releases the pool and flushes the logger
func (rt *Runtime) Close() {
	rt.db.Close()
	rt.Logger.Sync()
}

// Bootstrap loads config, logger and the connection pool. Serverless runs log to stdout only.
func Bootstrap(serverless bool) (*Runtime, error) {
	config, err := utils.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logPath := config.App.LogPath
	if serverless {
		logPath = ""
	}

	logger, err := utils.InitLogger(logPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.Bool("serverless", serverless),
		zap.Bool("debug", config.App.Debug),
		zap.Bool("admin_token", config.Admin.TokenHash != ""),
	)

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Error("Failed to connect to database", zap.Error(err))
		logger.Sync()
		return nil, fmt.Errorf("connect database: %w", err)
	}

	logger.Info("Database connected successfully")

	metrics.Register()

	store := repository.NewStore(db, logger)

	return &Runtime{
		Config: config,
		Logger: logger,
		App:    wire.Wiring(store, config, logger),
		db:     db,
	}, nil
}
