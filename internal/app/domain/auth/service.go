package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/NSooriya/yaalir-travel-planning-app/internal/app/models"
)

var _ Service = (*ServiceImpl)(nil)

// Service defines the business logic contract for account operations.
type Service interface {
	Register(ctx context.Context, name, email, password string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	GetUser(ctx context.Context, userID string) (*models.User, error)
}

type ServiceImpl struct {
	logger *zap.Logger
	repo   Repository
	jwt    *JWTService
	config JWTConfig
}

func NewServiceImpl(repo Repository, config JWTConfig, logger *zap.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		repo:   repo,
		jwt:    NewJWTService(),
		config: config,
	}
}

// Register creates an account and returns it with a fresh token.
func (s *ServiceImpl) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {
	ctx, span := otel.Tracer("authService").Start(ctx, "Register", trace.WithAttributes(
		attribute.String("user.email", email),
	))
	defer span.End()

	l := s.logger.With(zap.String("method", "Register"), zap.String("email", email))

	if name == "" || email == "" || len(password) < 6 {
		span.SetStatus(codes.Error, "invalid registration input")
		return nil, "", fmt.Errorf("name, email and a password of 6+ characters are required: %w", models.ErrValidation)
	}

	hash, err := s.jwt.HashPassword(password)
	if err != nil {
		l.Error("Failed to hash password", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "hash failed")
		return nil, "", fmt.Errorf("error hashing password: %w", err)
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		if !errors.Is(err, models.ErrEmailTaken) {
			l.Error("Failed to create user", zap.Error(err))
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "create failed")
		return nil, "", err
	}

	token, err := s.jwt.GenerateToken(s.config, user.ID, user.Email, user.Name)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "token generation failed")
		return nil, "", err
	}

	l.Info("User registered", zap.String("userID", user.ID))
	span.SetStatus(codes.Ok, "user registered")
	return user, token, nil
}

// Login verifies credentials and returns the account with a token.
func (s *ServiceImpl) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	ctx, span := otel.Tracer("authService").Start(ctx, "Login", trace.WithAttributes(
		attribute.String("user.email", email),
	))
	defer span.End()

	l := s.logger.With(zap.String("method", "Login"), zap.String("email", email))

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			span.SetStatus(codes.Error, "unknown email")
			return nil, "", fmt.Errorf("invalid credentials: %w", models.ErrUnauthenticated)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "lookup failed")
		return nil, "", err
	}

	if !s.jwt.CheckPassword(user.PasswordHash, password) {
		l.Debug("Password mismatch")
		span.SetStatus(codes.Error, "password mismatch")
		return nil, "", fmt.Errorf("invalid credentials: %w", models.ErrUnauthenticated)
	}

	token, err := s.jwt.GenerateToken(s.config, user.ID, user.Email, user.Name)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "token generation failed")
		return nil, "", err
	}

	l.Info("User logged in", zap.String("userID", user.ID))
	span.SetStatus(codes.Ok, "login successful")
	return user, token, nil
}

func (s *ServiceImpl) GetUser(ctx context.Context, userID string) (*models.User, error) {
	ctx, span := otel.Tracer("authService").Start(ctx, "GetUser", trace.WithAttributes(
		attribute.String("user.id", userID),
	))
	defer span.End()

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "lookup failed")
		return nil, err
	}

	span.SetStatus(codes.Ok, "user fetched")
	return user, nil
}
