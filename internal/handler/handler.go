package handlers

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"ideagen/internal/config"
	"ideagen/internal/repository"
	"ideagen/internal/service"
)

type Handlers struct {
	AuthService service.AuthService
	IdeaService service.IdeaService
	Generator   service.Generator
	StatusRepo  repository.StatusRepository
	Cfg         *config.Config
	Validate    *validator.Validate
	Logger      *zap.Logger
}

func NewHandlers(repo *repository.Repository, service *service.Service, config *config.Config, l *zap.Logger) *Handlers {
	return &Handlers{
		AuthService: service.Auth,
		IdeaService: service.Idea,
		Generator:   service.Generator,
		StatusRepo:  repo.Status,
		Cfg:         config,
		Validate:    validator.New(),
		Logger:      l,
	}
}
