package service

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/GlebRadaev/spintracker/internal/config"
	"github.com/GlebRadaev/spintracker/internal/domain"
	"github.com/GlebRadaev/spintracker/internal/handlers/auth"
	"github.com/GlebRadaev/spintracker/internal/handlers/sessions"
	"github.com/GlebRadaev/spintracker/internal/handlers/spins"
	"github.com/GlebRadaev/spintracker/internal/repo"
	"github.com/GlebRadaev/spintracker/internal/service/authservice"
	"github.com/GlebRadaev/spintracker/internal/service/plservice"
	"github.com/GlebRadaev/spintracker/internal/service/sessionservice"
	"github.com/GlebRadaev/spintracker/internal/service/strategyservice"
	pkgauth "github.com/GlebRadaev/spintracker/pkg/auth"
)

type Services struct {
	AuthService    auth.Service
	SessionService sessions.Service
	SpinService    spins.Service
	Tokens         pkgauth.TokenValidator
}

// New wires the services. Strategy limits come from cfg and must already be
// valid; see StrategyParams.
func New(repo *repo.Repositories, cfg *config.Config) *Services {
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret)
	authService := authservice.New(repo.UserRepo, pkgauth.NewHashService(bcrypt.DefaultCost), jwtService, cfg.TokenTTL)

	sessionService := sessionservice.New(
		repo.TXManager,
		repo.SessionRepo,
		repo.SpinRepo,
		plservice.New(),
		strategyservice.New(),
		StrategyParams(cfg),
	)

	return &Services{
		AuthService:    authService,
		SessionService: sessionService,
		SpinService:    sessionService,
		Tokens:         jwtService,
	}
}

// StrategyParams returns the configured bet limits.
func StrategyParams(cfg *config.Config) domain.StrategyParams {
	return domain.StrategyParams{
		BaseBet: cfg.BaseBet,
		MaxBet:  cfg.MaxBet,
	}
}
