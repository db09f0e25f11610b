package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrEmptyPassword = errors.New("password cannot be empty")

type HashServiceInterface interface {
	HashPassword(password string) (string, error)
	ComparePassword(hashedPassword, password string) bool
}

type HashService struct {
	cost int
}

// NewHashService falls back to bcrypt.DefaultCost for costs bcrypt rejects.
func NewHashService(cost int) *HashService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &HashService{cost: cost}
}

func (b *HashService) HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (b *HashService) ComparePassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
