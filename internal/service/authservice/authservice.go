package authservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/spintracker/internal/domain"
	"github.com/GlebRadaev/spintracker/pkg/auth"
)

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

var (
	ErrEmailTaken         = errors.New("email already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = domain.NewError(domain.ErrNotFound, "User not found")
)

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	tokenTTL    time.Duration
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, tokenTTL time.Duration) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
		tokenTTL:    tokenTTL,
	}
}

func (s *Service) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("email", email))
		return nil, ErrEmailTaken
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("email", email))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil || user == nil {
		zap.L().Info("invalid credentials", zap.String("email", email), zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("email", email))
	return user, nil
}

func (s *Service) GetUser(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *Service) GenerateToken(userID int) (string, error) {
	token, err := s.jwtService.GenerateJWT(userID, time.Now().Add(s.tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
