package app

import (
	"go.uber.org/zap"

	"ideagen/internal/config"
	"ideagen/internal/database"
	"ideagen/internal/repository"
	"ideagen/internal/service"
)

func App(cfg *config.Config, l *zap.Logger) (*database.DB, *repository.Repository, *service.Service) {
	// connection DB
	db, err := database.ConnectDB(cfg, l)
	if err != nil {
		l.Fatal("failed to connect to database", zap.Error(err))
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, l)

	return db, repo, services
}
