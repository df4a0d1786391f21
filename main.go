package main

import (
	"context"
	"log"

	"restaurant-orders/cmd"
	"restaurant-orders/internal/data/repository"
	"restaurant-orders/internal/usecase"
	"restaurant-orders/internal/wire"
	"restaurant-orders/pkg/database"
	"restaurant-orders/pkg/token"
	"restaurant-orders/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	logger.Info("Connecting to database")
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}
	logger.Info("Database connected and migrated")

	repos := repository.NewRepository(db, logger)
	codec := token.NewCodec(config.JWT.Secret)
	service := usecase.NewService(repos, codec, logger)

	// createUser is owner-gated; seed the first owner on an empty store.
	if err := service.Auth.EnsureOwner(context.Background(), config.Admin.Username, config.Admin.Password); err != nil {
		logger.Fatal("Failed to bootstrap owner account", zap.Error(err))
	}

	app := wire.Wiring(service, repos.User, codec, logger)

	cmd.APIServer(app.Router, config.App.Port, logger)
}
