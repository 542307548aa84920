package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"ideagen/internal/apperrors"
	"ideagen/internal/config"
	"ideagen/internal/models"
)

// Generator produces content idea drafts for a topic. Implementations
// may call an external completion service; callers only see the
// synchronous contract.
type Generator interface {
	Generate(ctx context.Context, topic, contentType, industry string) ([]models.IdeaDraft, error)
}

func NewGenerator(cfg config.Generator, l *zap.Logger) Generator {
	if cfg.Mode == "openai" {
		return NewOpenAIGenerator(cfg, l)
	}
	return &TemplateGenerator{}
}

// TemplateGenerator interpolates the inputs into a fixed set of
// templates. Deterministic, no network dependency.
type TemplateGenerator struct{}

func (g *TemplateGenerator) Generate(_ context.Context, topic, contentType, industry string) ([]models.IdeaDraft, error) {
	return []models.IdeaDraft{
		{
			Title:       fmt.Sprintf("5 Ways %s is Transforming the %s Industry", topic, industry),
			Description: fmt.Sprintf("An in-depth look at how %s is changing the landscape of %s businesses.", topic, industry),
			ContentType: contentType,
			Keywords:    []string{topic, industry, "transformation", "innovation"},
			Industry:    industry,
		},
		{
			Title:       fmt.Sprintf("The Ultimate Guide to %s for %s Professionals", topic, industry),
			Description: fmt.Sprintf("A comprehensive guide explaining how professionals in the %s industry can leverage %s.", industry, topic),
			ContentType: contentType,
			Keywords:    []string{topic, industry, "guide", "professional development"},
			Industry:    industry,
		},
		{
			Title:       fmt.Sprintf("%s Case Studies: Success Stories from the %s Sector", topic, industry),
			Description: fmt.Sprintf("Real-world examples of how companies in the %s industry successfully implemented %s.", industry, topic),
			ContentType: contentType,
			Keywords:    []string{topic, industry, "case study", "success story"},
			Industry:    industry,
		},
	}, nil
}

// OpenAIGenerator asks a completions endpoint for drafts. Any transport
// or decoding failure is reported as ErrUpstream; details stay in the
// server log.
type OpenAIGenerator struct {
	cfg    config.Generator
	client *http.Client
	l      *zap.Logger
}

func NewOpenAIGenerator(cfg config.Generator, l *zap.Logger) *OpenAIGenerator {
	return &OpenAIGenerator{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		l:      l,
	}
}

type completionRequest struct {
	Model     string `json:"model"`
	Prompt    string `json:"prompt"`
	MaxTokens int    `json:"max_tokens"`
}

type completionResponse struct {
	Choices []struct {
		Text string `json:"text"`
	} `json:"choices"`
}

func (g *OpenAIGenerator) Generate(ctx context.Context, topic, contentType, industry string) ([]models.IdeaDraft, error) {
	prompt := fmt.Sprintf(
		"Generate 3 %s content ideas for the %s industry about %s. "+
			"Respond with a JSON array of objects with title, description and keywords fields.",
		contentType, industry, topic,
	)

	body, err := json.Marshal(completionRequest{
		Model:     g.cfg.Model,
		Prompt:    prompt,
		MaxTokens: 1000,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)

	resp, err := g.client.Do(req)
	if err != nil {
		g.l.Error("completion request failed", zap.Error(err))
		return nil, apperrors.ErrUpstream
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		g.l.Error("completion request rejected", zap.Int("status", resp.StatusCode))
		return nil, apperrors.ErrUpstream
	}

	var completion completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil || len(completion.Choices) == 0 {
		g.l.Error("failed to decode completion response", zap.Error(err))
		return nil, apperrors.ErrUpstream
	}

	var drafts []models.IdeaDraft
	if err := json.Unmarshal([]byte(completion.Choices[0].Text), &drafts); err != nil || len(drafts) == 0 {
		g.l.Error("completion text is not a draft array", zap.Error(err))
		return nil, apperrors.ErrUpstream
	}

	// the model is not trusted to echo these back
	for i := range drafts {
		drafts[i].ContentType = contentType
		drafts[i].Industry = industry
	}

	return drafts, nil
}
