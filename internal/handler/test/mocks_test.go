package test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ideagen/internal/models"
	"ideagen/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, input service.RegisterInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Authenticate(ctx context.Context, tokenString string) (*models.User, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) IssueToken(userID string) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

type MockIdeaService struct {
	mock.Mock
}

func (m *MockIdeaService) ListByOwner(ctx context.Context, userID string) ([]models.Idea, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Idea), args.Error(1)
}

func (m *MockIdeaService) Create(ctx context.Context, userID string, input service.CreateIdeaInput) (*models.Idea, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Idea), args.Error(1)
}

func (m *MockIdeaService) GetByID(ctx context.Context, userID, ideaID string) (*models.Idea, error) {
	args := m.Called(ctx, userID, ideaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Idea), args.Error(1)
}

func (m *MockIdeaService) Update(ctx context.Context, userID, ideaID string, input service.UpdateIdeaInput) (*models.Idea, error) {
	args := m.Called(ctx, userID, ideaID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Idea), args.Error(1)
}

func (m *MockIdeaService) Delete(ctx context.Context, userID, ideaID string) error {
	args := m.Called(ctx, userID, ideaID)
	return args.Error(0)
}

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, topic, contentType, industry string) ([]models.IdeaDraft, error) {
	args := m.Called(ctx, topic, contentType, industry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.IdeaDraft), args.Error(1)
}

type MockStatusRepo struct {
	mock.Mock
}

func (m *MockStatusRepo) CountTablesDB(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockStatusRepo) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
