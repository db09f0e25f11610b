package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func TestGenerateJWT(t *testing.T) {
	jwtService := NewJWTService(testSecret)

	first, err := jwtService.GenerateJWT(123, time.Now().Add(time.Hour))
	assert.NoError(t, err)
	second, err := jwtService.GenerateJWT(123, time.Now().Add(time.Hour))
	assert.NoError(t, err)
	assert.NotEqual(t, first, second, "every token carries its own id")

	claims, err := jwtService.ValidateToken(first)
	assert.NoError(t, err)
	assert.Equal(t, 123, claims.UserID)
	assert.NotEmpty(t, claims.Id)
}

func TestValidateToken(t *testing.T) {
	jwtService := NewJWTService(testSecret)

	tests := []struct {
		name        string
		setup       func() string
		expectError bool
	}{
		{
			name: "Valid Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(123, time.Now().Add(time.Hour))
				return token
			},
			expectError: false,
		},
		{
			name: "Invalid Token",
			setup: func() string {
				return "invalid.token.string"
			},
			expectError: true,
		},
		{
			name: "Expired Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(123, time.Now().Add(-time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Signed With Another Secret",
			setup: func() string {
				token, _ := NewJWTService("other-secret").GenerateJWT(123, time.Now().Add(time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Missing User",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
					ExpiresAt: time.Now().Add(time.Hour).Unix(),
					Issuer:    issuer,
				})
				signedToken, _ := token.SignedString([]byte(testSecret))
				return signedToken
			},
			expectError: true,
		},
		{
			name: "Foreign Issuer",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
					UserID: 123,
					StandardClaims: jwt.StandardClaims{
						ExpiresAt: time.Now().Add(time.Hour).Unix(),
						Issuer:    "someone-else",
					},
				})
				signedToken, _ := token.SignedString([]byte(testSecret))
				return signedToken
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := jwtService.ValidateToken(tt.setup())

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, claims)
			}
		})
	}
}
