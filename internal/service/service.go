package service

import (
	"go.uber.org/zap"

	"ideagen/internal/config"
	"ideagen/internal/repository"
)

type Service struct {
	Auth      AuthService
	Idea      IdeaService
	Generator Generator
}

func NewService(rep *repository.Repository, cfg *config.Config, l *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(rep.User, cfg),
		Idea:      NewIdeaService(rep.Idea),
		Generator: NewGenerator(cfg.Generator, l),
	}
}
