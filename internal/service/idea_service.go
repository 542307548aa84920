package service

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"ideagen/internal/apperrors"
	"ideagen/internal/models"
	"ideagen/internal/repository"
)

type CreateIdeaInput struct {
	Title       string
	Description string
	ContentType string
	Keywords    []string
	Industry    string
}

// UpdateIdeaInput uses pointers so an absent field is distinguishable
// from an explicit zero value; only provided fields are merged.
type UpdateIdeaInput struct {
	Title       *string
	Description *string
	ContentType *string
	Keywords    []string
	Industry    *string
	Saved       *bool
}

type IdeaService interface {
	ListByOwner(ctx context.Context, userID string) ([]models.Idea, error)
	Create(ctx context.Context, userID string, input CreateIdeaInput) (*models.Idea, error)
	GetByID(ctx context.Context, userID, ideaID string) (*models.Idea, error)
	Update(ctx context.Context, userID, ideaID string, input UpdateIdeaInput) (*models.Idea, error)
	Delete(ctx context.Context, userID, ideaID string) error
}

type ideaService struct {
	ideaRepo repository.IdeaRepository
}

func NewIdeaService(ideaRepo repository.IdeaRepository) IdeaService {
	return &ideaService{ideaRepo: ideaRepo}
}

func (s *ideaService) ListByOwner(ctx context.Context, userID string) ([]models.Idea, error) {
	ideas, err := s.ideaRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ideas: %w", err)
	}

	return ideas, nil
}

func (s *ideaService) Create(ctx context.Context, userID string, input CreateIdeaInput) (*models.Idea, error) {
	idea := &models.Idea{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		ContentType: input.ContentType,
		Keywords:    pq.StringArray(input.Keywords),
		Industry:    input.Industry,
	}

	if err := s.ideaRepo.Create(ctx, idea); err != nil {
		return nil, fmt.Errorf("failed to create idea: %w", err)
	}

	return idea, nil
}

// getOwned loads an idea and enforces ownership. Ownership is checked
// before anything else is done with the record.
func (s *ideaService) getOwned(ctx context.Context, userID, ideaID string) (*models.Idea, error) {
	idea, err := s.ideaRepo.GetByID(ctx, ideaID)
	if err != nil {
		return nil, err
	}

	if idea.UserID != userID {
		return nil, apperrors.ErrForbidden
	}

	return idea, nil
}

func (s *ideaService) GetByID(ctx context.Context, userID, ideaID string) (*models.Idea, error) {
	return s.getOwned(ctx, userID, ideaID)
}

func (s *ideaService) Update(ctx context.Context, userID, ideaID string, input UpdateIdeaInput) (*models.Idea, error) {
	idea, err := s.getOwned(ctx, userID, ideaID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		idea.Title = *input.Title
	}
	if input.Description != nil {
		idea.Description = *input.Description
	}
	if input.ContentType != nil {
		idea.ContentType = *input.ContentType
	}
	if input.Keywords != nil {
		idea.Keywords = pq.StringArray(input.Keywords)
	}
	if input.Industry != nil {
		idea.Industry = *input.Industry
	}
	if input.Saved != nil {
		idea.Saved = *input.Saved
	}

	if err := s.ideaRepo.Update(ctx, idea); err != nil {
		return nil, fmt.Errorf("failed to update idea: %w", err)
	}

	return idea, nil
}

func (s *ideaService) Delete(ctx context.Context, userID, ideaID string) error {
	if _, err := s.getOwned(ctx, userID, ideaID); err != nil {
		return err
	}

	if err := s.ideaRepo.Delete(ctx, ideaID); err != nil {
		return fmt.Errorf("failed to delete idea: %w", err)
	}

	return nil
}
