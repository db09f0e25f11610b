package authservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/spintracker/internal/domain"
	"github.com/GlebRadaev/spintracker/pkg/auth"
)

const tokenTTL = 15 * time.Minute

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(repo, hashService, jwtService, tokenTTL)
	return service, repo, hashService, jwtService
}

func TestRegister(t *testing.T) {
	service, userRepo, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name: "Successful registration",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "player@example.com").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("password123").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					user.ID = 1
					return user, nil
				})
			},
			expectedUser: &domain.User{
				ID:           1,
				Name:         "Player",
				Email:        "player@example.com",
				PasswordHash: "hashedpassword",
			},
		},
		{
			name: "Email already taken",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "player@example.com").Return(&domain.User{ID: 2}, nil)
			},
			expectedError: ErrEmailTaken,
		},
		{
			name: "Error finding user",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "player@example.com").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
		{
			name: "Error hashing password",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "player@example.com").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("password123").Return("", errors.New("hashing error"))
			},
			expectedError: errors.New("hashing error"),
		},
		{
			name: "Error creating user",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "player@example.com").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("password123").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).Return(nil, errors.New("creation failed"))
			},
			expectedError: errors.New("creation failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Register(context.Background(), "Player", "player@example.com", "password123")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, userRepo, passwordHasher, _ := NewMock(t)
	stored := &domain.User{ID: 1, Email: "player@example.com", PasswordHash: "hashedpassword"}

	tests := []struct {
		name          string
		password      string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:     "Successful authentication",
			password: "password123",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "player@example.com").Return(stored, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "password123").Return(true)
			},
			expectedUser: stored,
		},
		{
			name:     "User not found",
			password: "password123",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "player@example.com").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Incorrect password",
			password: "wrongpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "player@example.com").Return(stored, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "wrongpassword").Return(false)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Authenticate(context.Background(), "player@example.com", tt.password)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}

func TestGetUser(t *testing.T) {
	service, userRepo, _, _ := NewMock(t)

	userRepo.EXPECT().FindByID(context.Background(), 1).Return(&domain.User{ID: 1, Name: "Player"}, nil)
	user, err := service.GetUser(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, "Player", user.Name)

	userRepo.EXPECT().FindByID(context.Background(), 2).Return(nil, nil)
	_, err = service.GetUser(context.Background(), 2)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	userRepo.EXPECT().FindByID(context.Background(), 3).Return(nil, errors.New("database error"))
	_, err = service.GetUser(context.Background(), 3)
	assert.EqualError(t, err, "database error")
}

func TestGenerateToken(t *testing.T) {
	service, _, _, jwtService := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedToken string
		expectedError bool
	}{
		{
			name: "Token issued for configured ttl",
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT(1, gomock.Any()).DoAndReturn(func(userID int, expiresAt time.Time) (string, error) {
					assert.WithinDuration(t, time.Now().Add(tokenTTL), expiresAt, time.Minute)
					return "token", nil
				})
			},
			expectedToken: "token",
		},
		{
			name: "Signing error",
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT(1, gomock.Any()).Return("", errors.New("signing error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			token, err := service.GenerateToken(1)
			if tt.expectedError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}
