package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"ideagen/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
}

type IdeaRepository interface {
	Create(ctx context.Context, idea *models.Idea) error
	GetByID(ctx context.Context, ideaID string) (*models.Idea, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Idea, error)
	Update(ctx context.Context, idea *models.Idea) error
	Delete(ctx context.Context, ideaID string) error
}

type StatusRepository interface {
	CountTablesDB(ctx context.Context) (int, error)
	Ping(ctx context.Context) error
}

type Repository struct {
	User   UserRepository
	Idea   IdeaRepository
	Status StatusRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:   NewUserRepository(db),
		Idea:   NewIdeaRepository(db),
		Status: NewStatusRepository(db),
	}
}
