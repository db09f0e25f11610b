package strategyservice

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/spintracker/internal/domain"
)

const (
	StrategyName    = `Martingale "Bet on 1"`
	ProgressionType = "Double on loss, reset on win"
)

var (
	DefaultBaseBet = decimal.RequireFromString("1.00")
	DefaultMaxBet  = decimal.RequireFromString("1000.00")
)

var (
	ErrBaseBetNotPositive   = domain.NewError(domain.ErrInvalidParameter, "Base bet must be positive")
	ErrMaxBetNotPositive    = domain.NewError(domain.ErrInvalidParameter, "Maximum bet must be positive")
	ErrBaseBetExceedsMax    = domain.NewError(domain.ErrInvalidParameter, "Base bet cannot exceed maximum bet")
	ErrNegativeLossesStreak = domain.NewError(domain.ErrInvalidParameter, "Consecutive losses cannot be negative")
)

// Service recommends bets for the Martingale "Bet on 1" progression: the
// stake doubles after every losing bet and falls back to the base bet after
// a win on "1".
type Service struct{}

func New() *Service {
	return &Service{}
}

func DefaultParams() domain.StrategyParams {
	return domain.StrategyParams{BaseBet: DefaultBaseBet, MaxBet: DefaultMaxBet}
}

func (s *Service) ValidateParameters(params domain.StrategyParams) error {
	if !params.BaseBet.IsPositive() {
		return ErrBaseBetNotPositive
	}
	if !params.MaxBet.IsPositive() {
		return ErrMaxBetNotPositive
	}
	if params.BaseBet.GreaterThan(params.MaxBet) {
		return ErrBaseBetExceedsMax
	}
	return nil
}

func (s *Service) IsWinningSpin(spin domain.Spin) bool {
	return spin.Result == domain.WinningResult && spin.PL.IsPositive()
}

func (s *Service) IsLosingBet(spin domain.Spin) bool {
	return spin.BetAmount.IsPositive() && spin.PL.IsNegative()
}

// ConsecutiveLossesFromEnd walks the history newest first and counts losing
// bets until the first win. Spins that are neither do not break the streak.
func (s *Service) ConsecutiveLossesFromEnd(spins []domain.Spin) int {
	losses := 0
	for i := len(spins) - 1; i >= 0; i-- {
		if s.IsWinningSpin(spins[i]) {
			break
		}
		if s.IsLosingBet(spins[i]) {
			losses++
		}
	}
	return losses
}

func (s *Service) CalculateNextBetAmount(baseBet decimal.Decimal, consecutiveLosses int) (decimal.Decimal, error) {
	if consecutiveLosses < 0 {
		return decimal.Zero, ErrNegativeLossesStreak
	}
	if !baseBet.IsPositive() {
		return decimal.Zero, ErrBaseBetNotPositive
	}
	factor := new(big.Int).Lsh(big.NewInt(1), uint(consecutiveLosses))
	return baseBet.Mul(decimal.NewFromBigInt(factor, 0)), nil
}

func (s *Service) DetermineNextAction(spins []domain.Spin, params domain.StrategyParams) (domain.NextAction, error) {
	if err := s.ValidateParameters(params); err != nil {
		return domain.NextAction{}, err
	}

	if len(spins) == 0 {
		return domain.NextAction{
			Action:    domain.ActionBet,
			BetAmount: params.BaseBet,
			Reason:    "First spin - start with base bet",
		}, nil
	}

	losses := s.ConsecutiveLossesFromEnd(spins)
	next, err := s.CalculateNextBetAmount(params.BaseBet, losses)
	if err != nil {
		return domain.NextAction{}, err
	}

	if next.GreaterThan(params.MaxBet) {
		return domain.NextAction{
			Action:            domain.ActionSkip,
			BetAmount:         decimal.Zero,
			Reason:            fmt.Sprintf("Next bet amount (%s) exceeds maximum bet limit (%s)", next, params.MaxBet),
			ConsecutiveLosses: losses,
		}, nil
	}

	reason := "Previous spin won - reset to base bet"
	if losses > 0 {
		reason = fmt.Sprintf("Martingale progression after %d consecutive losses", losses)
	}
	return domain.NextAction{
		Action:            domain.ActionBet,
		BetAmount:         next,
		Reason:            reason,
		ConsecutiveLosses: losses,
	}, nil
}

// CalculateMaxConsecutiveLosses is the longest losing streak the bankroll
// limit can absorb while still placing the doubled bet.
func (s *Service) CalculateMaxConsecutiveLosses(params domain.StrategyParams) (int, error) {
	if err := s.ValidateParameters(params); err != nil {
		return 0, err
	}

	losses := 0
	current := params.BaseBet
	for current.LessThanOrEqual(params.MaxBet) {
		current = current.Add(current)
		losses++
	}
	return losses - 1, nil
}

func (s *Service) Configuration(params domain.StrategyParams) (domain.StrategyConfiguration, error) {
	maxLosses, err := s.CalculateMaxConsecutiveLosses(params)
	if err != nil {
		return domain.StrategyConfiguration{}, err
	}
	return domain.StrategyConfiguration{
		StrategyName:         StrategyName,
		BaseBet:              params.BaseBet,
		MaxBet:               params.MaxBet,
		WinningResult:        domain.WinningResult,
		MaxConsecutiveLosses: maxLosses,
		ProgressionType:      ProgressionType,
	}, nil
}

// Report combines the recommendation with the configuration it was made
// under.
func (s *Service) Report(spins []domain.Spin, params domain.StrategyParams) (domain.StrategyReport, error) {
	action, err := s.DetermineNextAction(spins, params)
	if err != nil {
		return domain.StrategyReport{}, err
	}
	cfg, err := s.Configuration(params)
	if err != nil {
		return domain.StrategyReport{}, err
	}
	return domain.StrategyReport{NextAction: action, Configuration: cfg}, nil
}
