package sessionservice

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/spintracker/internal/domain"
	"github.com/GlebRadaev/spintracker/internal/pg"
)

const moneyPlaces = 2

type SessionRepo interface {
	Create(ctx context.Context, userID int, startTime time.Time) (*domain.Session, error)
	FindByID(ctx context.Context, id int) (*domain.Session, error)
	LockByID(ctx context.Context, id int) (*domain.Session, error)
	ListByUserID(ctx context.Context, userID int) ([]domain.Session, error)
	Close(ctx context.Context, id int, endTime time.Time) error
	Delete(ctx context.Context, id int) error
}

type SpinRepo interface {
	Create(ctx context.Context, spin *domain.Spin) (*domain.Spin, error)
	ListBySessionID(ctx context.Context, sessionID int) ([]domain.Spin, error)
}

type Calculator interface {
	ValidateForCalculations(session *domain.Session) error
	Calculate(spins []domain.Spin) domain.PLData
}

type Strategy interface {
	ValidateParameters(params domain.StrategyParams) error
	Report(spins []domain.Spin, params domain.StrategyParams) (domain.StrategyReport, error)
}

var (
	ErrSessionNotFound      = domain.NewError(domain.ErrNotFound, "The requested session does not exist or you do not have permission to access it.")
	ErrViewForbidden        = domain.NewError(domain.ErrForbidden, "You can only access your own sessions.")
	ErrCloseForbidden       = domain.NewError(domain.ErrForbidden, "You can only close your own sessions.")
	ErrDeleteForbidden      = domain.NewError(domain.ErrForbidden, "You can only delete your own sessions.")
	ErrAddSpinForbidden     = domain.NewError(domain.ErrForbidden, "You can only add spins to your own sessions.")
	ErrSessionAlreadyClosed = domain.NewError(domain.ErrInvalidState, "Session is already closed.")
	ErrSessionClosed        = domain.NewError(domain.ErrInvalidState, "Cannot add spins to a closed session.")
)

// Service owns the session lifecycle: creation, reads with the profit/loss
// and strategy report, closing, and spin recording. Every mutation runs in a
// transaction holding the session row lock.
type Service struct {
	txManager  pg.TXManager
	sessions   SessionRepo
	spins      SpinRepo
	calculator Calculator
	strategy   Strategy
	defaults   domain.StrategyParams
	now        func() time.Time
}

func New(
	txManager pg.TXManager,
	sessions SessionRepo,
	spins SpinRepo,
	calculator Calculator,
	strategy Strategy,
	defaults domain.StrategyParams,
) *Service {
	return &Service{
		txManager:  txManager,
		sessions:   sessions,
		spins:      spins,
		calculator: calculator,
		strategy:   strategy,
		defaults:   defaults,
		now:        time.Now,
	}
}

func (s *Service) CreateSession(ctx context.Context, userID int) (*domain.Session, error) {
	var session *domain.Session
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		created, err := s.sessions.Create(ctx, userID, s.now())
		if err != nil {
			return err
		}
		session, err = s.sessions.FindByID(ctx, created.ID)
		if err != nil {
			return err
		}
		if session == nil {
			return ErrSessionNotFound
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't create session", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	session.Spins = []domain.Spin{}

	zap.L().Info("session created", zap.Int("session_id", session.ID), zap.Int("user_id", userID))
	return session, nil
}

func (s *Service) ListSessions(ctx context.Context, userID int) ([]domain.Session, error) {
	return s.sessions.ListByUserID(ctx, userID)
}

func (s *Service) GetSessionDetails(ctx context.Context, sessionID, userID int, overrides domain.StrategyOverrides) (*domain.SessionDetails, error) {
	params := overrides.Apply(s.defaults)
	if err := s.strategy.ValidateParameters(params); err != nil {
		return nil, err
	}

	var session *domain.Session
	var spins []domain.Spin
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		session, err = s.sessions.FindByID(gCtx, sessionID)
		return err
	})
	g.Go(func() error {
		var err error
		spins, err = s.spins.ListBySessionID(gCtx, sessionID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if session == nil {
		return nil, ErrSessionNotFound
	}
	if !session.IsOwnedBy(userID) {
		zap.L().Info("session access denied", zap.Int("session_id", sessionID), zap.Int("user_id", userID))
		return nil, ErrViewForbidden
	}
	session.Spins = spins

	return s.buildDetails(session, params)
}

func (s *Service) CloseSession(ctx context.Context, sessionID, userID int) (*domain.SessionDetails, error) {
	var details *domain.SessionDetails
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		session, err := s.lockOwned(ctx, sessionID, userID, ErrCloseForbidden)
		if err != nil {
			return err
		}
		if !session.IsOpen() {
			return ErrSessionAlreadyClosed
		}

		endTime := s.now()
		if endTime.Before(session.StartTime) {
			endTime = session.StartTime
		}
		if err := s.sessions.Close(ctx, sessionID, endTime); err != nil {
			return err
		}

		details, err = s.reload(ctx, sessionID)
		return err
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("session closed", zap.Int("session_id", sessionID), zap.Int("user_id", userID))
	return details, nil
}

// AppendSpin records a spin on an open session and returns the refreshed
// report. A failure while building the report undoes the insert.
func (s *Service) AppendSpin(ctx context.Context, sessionID, userID int, input domain.SpinInput) (*domain.SessionDetails, error) {
	var details *domain.SessionDetails
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		session, err := s.lockOwned(ctx, sessionID, userID, ErrAddSpinForbidden)
		if err != nil {
			return err
		}
		if !session.IsOpen() {
			return ErrSessionClosed
		}

		_, err = s.spins.Create(ctx, &domain.Spin{
			SessionID: sessionID,
			Result:    input.Result,
			BetAmount: input.BetAmount.Round(moneyPlaces),
			PL:        input.PL.Round(moneyPlaces),
		})
		if err != nil {
			return err
		}

		details, err = s.reload(ctx, sessionID)
		return err
	})
	if err != nil {
		return nil, err
	}

	zap.L().Debug("spin recorded", zap.Int("session_id", sessionID), zap.String("result", input.Result))
	return details, nil
}

func (s *Service) DeleteSession(ctx context.Context, sessionID, userID int) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.lockOwned(ctx, sessionID, userID, ErrDeleteForbidden); err != nil {
			return err
		}
		return s.sessions.Delete(ctx, sessionID)
	})
	if err != nil {
		return err
	}

	zap.L().Info("session deleted", zap.Int("session_id", sessionID), zap.Int("user_id", userID))
	return nil
}

func (s *Service) lockOwned(ctx context.Context, sessionID, userID int, forbidden error) (*domain.Session, error) {
	session, err := s.sessions.LockByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	if !session.IsOwnedBy(userID) {
		zap.L().Info("session access denied", zap.Int("session_id", sessionID), zap.Int("user_id", userID))
		return nil, forbidden
	}
	return session, nil
}

func (s *Service) reload(ctx context.Context, sessionID int) (*domain.SessionDetails, error) {
	session, err := s.sessions.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	session.Spins, err = s.spins.ListBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.buildDetails(session, s.defaults)
}

func (s *Service) buildDetails(session *domain.Session, params domain.StrategyParams) (*domain.SessionDetails, error) {
	if err := s.calculator.ValidateForCalculations(session); err != nil {
		zap.L().Error("session can't be analysed", zap.Int("session_id", session.ID), zap.Error(err))
		return nil, err
	}
	report, err := s.strategy.Report(session.Spins, params)
	if err != nil {
		return nil, err
	}
	return &domain.SessionDetails{
		Session:  session,
		PLData:   s.calculator.Calculate(session.Spins),
		Strategy: report,
	}, nil
}
