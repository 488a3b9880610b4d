package service

//go:generate mockgen -source=account.go -destination=mocks/account.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/etraffic/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// TokenManager выпускает и разбирает access-токены
type TokenManager interface {
	GenerateAccessToken(userID uuid.UUID) (string, time.Time, error)
	ParseUserID(token string) (uuid.UUID, error)
}

type RegisterInput struct {
	Email    string
	Username string
	Password string
	FullName string
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *models.User
}

type AccountService interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Me(ctx context.Context, userID uuid.UUID) (*models.User, error)
	// Authenticate проверяет токен и загружает пользователя
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

type accountService struct {
	users  UserRepository
	tokens TokenManager
	logger *logrus.Logger
	cost   int
}

func NewAccountService(users UserRepository, tokens TokenManager, logger *logrus.Logger) AccountService {
	return &accountService{
		users:  users,
		tokens: tokens,
		logger: logger,
		cost:   bcrypt.DefaultCost,
	}
}

func (s *accountService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	log := s.logger.WithFields(logrus.Fields{
		"service": "account",
		"method":  "Register",
		"email":   email,
	})
	log.Info("Registering user")

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cost)
	if err != nil {
		log.WithError(err).Error("Failed to hash password")
		return nil, fmt.Errorf("service: could not hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		Username:     strings.TrimSpace(input.Username),
		FullName:     strings.TrimSpace(input.FullName),
		PasswordHash: string(hash),
		Role:         models.UserRoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		log.WithError(err).Warn("Failed to create user")
		return nil, fmt.Errorf("service: could not register user: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User registered")
	return user, nil
}

func (s *accountService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	log := s.logger.WithFields(logrus.Fields{
		"service": "account",
		"method":  "Login",
		"email":   email,
	})

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			log.Warn("Login for unknown email")
			return nil, ErrInvalidCredentials
		}
		log.WithError(err).Error("Failed to load user")
		return nil, fmt.Errorf("service: could not load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warn("Invalid password")
		return nil, ErrInvalidCredentials
	}
	if user.IsBanned {
		log.Warn("Banned user attempted to log in")
		return nil, &RejectionError{Kind: RejectionBanned, Reason: user.BanReason}
	}

	token, expiresAt, err := s.tokens.GenerateAccessToken(user.ID)
	if err != nil {
		log.WithError(err).Error("Failed to issue access token")
		return nil, fmt.Errorf("service: could not issue token: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User logged in")
	return &LoginResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

func (s *accountService) Me(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get user: %w", err)
	}
	return user, nil
}

func (s *accountService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	userID, err := s.tokens.ParseUserID(token)
	if err != nil {
		return nil, err
	}
	return s.Me(ctx, userID)
}
