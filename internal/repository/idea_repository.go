package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"ideagen/internal/apperrors"
	"ideagen/internal/models"
)

type ideaRepository struct {
	db *sqlx.DB
}

func NewIdeaRepository(db *sqlx.DB) IdeaRepository {
	return &ideaRepository{db: db}
}

func (r *ideaRepository) Create(ctx context.Context, idea *models.Idea) error {
	if idea.IdeaID == "" {
		idea.IdeaID = uuid.New().String()
	}
	idea.CreatedAt = time.Now()

	if idea.Keywords == nil {
		idea.Keywords = pq.StringArray{}
	}

	query := `
		INSERT INTO ideas (idea_id, user_id, title, description, content_type, keywords, industry, saved, created_at)
		VALUES (:idea_id, :user_id, :title, :description, :content_type, :keywords, :industry, :saved, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, idea)
	if err != nil {
		return fmt.Errorf("failed to create idea: %w", err)
	}

	return nil
}

func (r *ideaRepository) GetByID(ctx context.Context, ideaID string) (*models.Idea, error) {
	var idea models.Idea

	query := `SELECT * FROM ideas WHERE idea_id = $1`

	err := r.db.GetContext(ctx, &idea, query, ideaID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isMalformedID(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get idea: %w", err)
	}

	return &idea, nil
}

func (r *ideaRepository) GetByUserID(ctx context.Context, userID string) ([]models.Idea, error) {
	ideas := []models.Idea{}

	query := `SELECT * FROM ideas WHERE user_id = $1 ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &ideas, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ideas: %w", err)
	}

	return ideas, nil
}

func (r *ideaRepository) Update(ctx context.Context, idea *models.Idea) error {
	query := `
		UPDATE ideas
		SET title = :title, description = :description, content_type = :content_type,
		    keywords = :keywords, industry = :industry, saved = :saved
		WHERE idea_id = :idea_id
	`

	result, err := r.db.NamedExecContext(ctx, query, idea)
	if err != nil {
		if isMalformedID(err) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to update idea: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

func (r *ideaRepository) Delete(ctx context.Context, ideaID string) error {
	query := `DELETE FROM ideas WHERE idea_id = $1`

	result, err := r.db.ExecContext(ctx, query, ideaID)
	if err != nil {
		if isMalformedID(err) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to delete idea: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}
