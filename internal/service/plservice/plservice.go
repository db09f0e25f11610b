package plservice

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/spintracker/internal/domain"
)

const ratioPlaces = 2

var hundred = decimal.NewFromInt(100)

var (
	ErrSessionNotPersisted = domain.NewError(domain.ErrValidation, "Session must be persisted to database")
	ErrSessionWithoutOwner = domain.NewError(domain.ErrValidation, "Session must have a valid user_id")
)

// Service computes profit/loss figures over an ordered spin history.
// It keeps no state and is safe for concurrent use.
type Service struct{}

func New() *Service {
	return &Service{}
}

func (s *Service) TotalProfitLoss(spins []domain.Spin) decimal.Decimal {
	total := decimal.Zero
	for _, spin := range spins {
		total = total.Add(spin.PL)
	}
	return total
}

func (s *Service) RunningTotals(spins []domain.Spin) []domain.RunningTotal {
	totals := make([]domain.RunningTotal, 0, len(spins))
	running := decimal.Zero
	for _, spin := range spins {
		running = running.Add(spin.PL)
		totals = append(totals, domain.RunningTotal{
			SpinID:       spin.ID,
			PL:           spin.PL,
			RunningTotal: running,
		})
	}
	return totals
}

func (s *Service) SessionStatistics(spins []domain.Spin) domain.Statistics {
	stats := domain.Statistics{
		WinRatePercentage: decimal.Zero,
		TotalPL:           decimal.Zero,
		TotalBetAmount:    decimal.Zero,
		LargestWin:        decimal.Zero,
		LargestLoss:       decimal.Zero,
		AverageBet:        decimal.Zero,
		AveragePLPerSpin:  decimal.Zero,
	}
	if len(spins) == 0 {
		return stats
	}

	for _, spin := range spins {
		stats.TotalPL = stats.TotalPL.Add(spin.PL)
		stats.TotalBetAmount = stats.TotalBetAmount.Add(spin.BetAmount)

		switch spin.PL.Sign() {
		case 1:
			stats.WinningSpins++
			if spin.PL.GreaterThan(stats.LargestWin) {
				stats.LargestWin = spin.PL
			}
		case -1:
			stats.LosingSpins++
			if spin.PL.LessThan(stats.LargestLoss) {
				stats.LargestLoss = spin.PL
			}
		default:
			stats.BreakEvenSpins++
		}
	}

	total := decimal.NewFromInt(int64(len(spins)))
	stats.TotalSpins = len(spins)
	stats.WinRatePercentage = decimal.NewFromInt(int64(stats.WinningSpins)).
		Mul(hundred).
		Div(total).
		Round(ratioPlaces)
	stats.AverageBet = stats.TotalBetAmount.Div(total).Round(ratioPlaces)
	stats.AveragePLPerSpin = stats.TotalPL.Div(total).Round(ratioPlaces)
	stats.IsProfitable = stats.TotalPL.IsPositive()

	return stats
}

// Calculate bundles the total, the running totals and the statistics of one
// history.
func (s *Service) Calculate(spins []domain.Spin) domain.PLData {
	return domain.PLData{
		TotalPL:       s.TotalProfitLoss(spins),
		RunningTotals: s.RunningTotals(spins),
		Statistics:    s.SessionStatistics(spins),
	}
}

// ValidateForCalculations rejects sessions whose figures cannot be trusted.
// NULL amounts never reach this point because they fail to scan into a
// decimal, so a spin is invalid here only when its bet is negative.
func (s *Service) ValidateForCalculations(session *domain.Session) error {
	if session == nil || session.ID == 0 {
		return ErrSessionNotPersisted
	}
	if session.UserID <= 0 {
		return ErrSessionWithoutOwner
	}

	invalid := 0
	for _, spin := range session.Spins {
		if spin.BetAmount.IsNegative() {
			invalid++
		}
	}
	if invalid > 0 {
		return domain.NewError(domain.ErrValidation, fmt.Sprintf("Session contains %d spins with invalid data", invalid))
	}
	return nil
}
