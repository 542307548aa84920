package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"ideagen/internal/apperrors"
	"ideagen/internal/config"
	"ideagen/internal/models"
	"ideagen/internal/repository"
)

// Claims carries the registered claims plus the user identifier the
// token is bound to.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

type RegisterInput struct {
	Name        string
	Email       string
	Password    string
	Preferences models.Preferences
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	// Authenticate verifies a raw token string and resolves it to a live
	// user record. Any verification failure comes back as ErrInvalidToken.
	Authenticate(ctx context.Context, tokenString string) (*models.User, error)
	IssueToken(userID string) (string, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (s *authService) Register(ctx context.Context, input RegisterInput) (string, error) {
	user := &models.User{
		Name:        input.Name,
		Email:       input.Email,
		Preferences: input.Preferences,
	}

	if err := s.userRepo.CreateUser(ctx, user, input.Password); err != nil {
		if errors.Is(err, apperrors.ErrEmailTaken) {
			return "", apperrors.ErrEmailTaken
		}
		return "", fmt.Errorf("failed to register user: %w", err)
	}

	return s.IssueToken(user.UserID)
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.VerifyPassword(ctx, email, password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to log in: %w", err)
	}

	return s.IssueToken(user.UserID)
}

func (s *authService) IssueToken(userID string) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.cfg.TokenDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

func (s *authService) Authenticate(ctx context.Context, tokenString string) (*models.User, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecretKey), nil
	})
	if err != nil || !token.Valid || claims.UserID == "" {
		return nil, apperrors.ErrInvalidToken
	}

	// a token for a user that no longer exists is just as invalid
	user, err := s.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to resolve token user: %w", err)
	}

	return user, nil
}
