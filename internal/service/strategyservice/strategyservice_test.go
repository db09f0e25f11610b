package strategyservice

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/spintracker/internal/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func params(base, max string) domain.StrategyParams {
	return domain.StrategyParams{BaseBet: dec(base), MaxBet: dec(max)}
}

func loss(bet string) domain.Spin {
	return domain.Spin{Result: "0", BetAmount: dec(bet), PL: dec(bet).Neg()}
}

func win(bet string) domain.Spin {
	return domain.Spin{Result: "1", BetAmount: dec(bet), PL: dec(bet)}
}

func TestService_ValidateParameters(t *testing.T) {
	s := New()

	tests := []struct {
		name    string
		params  domain.StrategyParams
		message string
	}{
		{name: "Valid", params: params("1", "1000")},
		{name: "Equal limits", params: params("5", "5")},
		{name: "Zero base", params: params("0", "10"), message: "Base bet must be positive"},
		{name: "Negative max", params: params("1", "-10"), message: "Maximum bet must be positive"},
		{name: "Base above max", params: params("20", "10"), message: "Base bet cannot exceed maximum bet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.ValidateParameters(tt.params)
			if tt.message == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, domain.ErrInvalidParameter)
			assert.EqualError(t, err, tt.message)
		})
	}
}

func TestService_SpinPredicates(t *testing.T) {
	s := New()

	tests := []struct {
		name    string
		spin    domain.Spin
		winning bool
		losing  bool
	}{
		{name: "Win on one", spin: win("1"), winning: true},
		{name: "Loss", spin: loss("2"), losing: true},
		{name: "Positive pl on other label", spin: domain.Spin{Result: "2", BetAmount: dec("1"), PL: dec("5")}},
		{name: "One without profit", spin: domain.Spin{Result: "1", BetAmount: dec("1"), PL: dec("0")}},
		{name: "Negative pl without bet", spin: domain.Spin{Result: "0", BetAmount: dec("0"), PL: dec("-1")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.winning, s.IsWinningSpin(tt.spin))
			assert.Equal(t, tt.losing, s.IsLosingBet(tt.spin))
		})
	}
}

func TestService_ConsecutiveLossesFromEnd(t *testing.T) {
	s := New()
	breakEven := domain.Spin{Result: "5", BetAmount: dec("1"), PL: dec("0")}

	tests := []struct {
		name     string
		spins    []domain.Spin
		expected int
	}{
		{name: "Empty", spins: nil, expected: 0},
		{name: "Last spin won", spins: []domain.Spin{loss("1"), win("2")}, expected: 0},
		{name: "Losses after win", spins: []domain.Spin{loss("1"), win("2"), loss("1"), loss("2"), loss("4")}, expected: 3},
		{name: "Break even does not reset", spins: []domain.Spin{win("1"), loss("1"), breakEven, loss("2")}, expected: 2},
		{name: "No win at all", spins: []domain.Spin{loss("1"), loss("2")}, expected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, s.ConsecutiveLossesFromEnd(tt.spins))
		})
	}
}

func TestService_CalculateNextBetAmount(t *testing.T) {
	s := New()

	tests := []struct {
		name      string
		base      string
		losses    int
		expected  string
		expectErr string
	}{
		{name: "No losses", base: "1", losses: 0, expected: "1"},
		{name: "Doubling", base: "2.50", losses: 3, expected: "20"},
		{name: "Long streak stays exact", base: "0.01", losses: 40, expected: "10995116277.76"},
		{name: "Negative streak", base: "1", losses: -1, expectErr: "Consecutive losses cannot be negative"},
		{name: "Zero base", base: "0", losses: 1, expectErr: "Base bet must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := s.CalculateNextBetAmount(dec(tt.base), tt.losses)
			if tt.expectErr != "" {
				assert.ErrorIs(t, err, domain.ErrInvalidParameter)
				assert.EqualError(t, err, tt.expectErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, dec(tt.expected).Equal(amount), "got %s", amount)
		})
	}
}

func TestService_DetermineNextAction(t *testing.T) {
	s := New()

	tests := []struct {
		name      string
		spins     []domain.Spin
		params    domain.StrategyParams
		action    domain.NextActionKind
		amount    string
		reason    string
		losses    int
		expectErr bool
	}{
		{
			name:   "Empty session",
			params: params("2", "50"),
			action: domain.ActionBet,
			amount: "2",
			reason: "First spin - start with base bet",
		},
		{
			name:   "Reset after win",
			spins:  []domain.Spin{loss("1"), loss("2"), win("4")},
			params: params("1", "1000"),
			action: domain.ActionBet,
			amount: "1",
			reason: "Previous spin won - reset to base bet",
		},
		{
			name:   "Progression",
			spins:  []domain.Spin{win("1"), loss("1"), loss("2")},
			params: params("1", "1000"),
			action: domain.ActionBet,
			amount: "4",
			reason: "Martingale progression after 2 consecutive losses",
			losses: 2,
		},
		{
			name:   "Skip above limit",
			spins:  []domain.Spin{loss("1"), loss("2"), loss("4"), loss("8")},
			params: params("1.00", "10.00"),
			action: domain.ActionSkip,
			amount: "0",
			reason: "Next bet amount (16) exceeds maximum bet limit (10)",
			losses: 4,
		},
		{
			name:   "Exactly at limit",
			spins:  []domain.Spin{loss("1"), loss("2"), loss("4")},
			params: params("1", "8"),
			action: domain.ActionBet,
			amount: "8",
			reason: "Martingale progression after 3 consecutive losses",
			losses: 3,
		},
		{
			name:      "Invalid parameters",
			params:    params("10", "1"),
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, err := s.DetermineNextAction(tt.spins, tt.params)
			if tt.expectErr {
				assert.ErrorIs(t, err, domain.ErrInvalidParameter)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.action, action.Action)
			assert.True(t, dec(tt.amount).Equal(action.BetAmount), "got %s", action.BetAmount)
			assert.Equal(t, tt.reason, action.Reason)
			assert.Equal(t, tt.losses, action.ConsecutiveLosses)
		})
	}
}

func TestService_CalculateMaxConsecutiveLosses(t *testing.T) {
	s := New()

	tests := []struct {
		params   domain.StrategyParams
		expected int
	}{
		{params: params("2", "50"), expected: 4},
		{params: params("1", "8"), expected: 3},
		{params: params("2", "16"), expected: 3},
		{params: params("1", "15"), expected: 3},
		{params: params("1", "1000"), expected: 9},
		{params: params("5", "5"), expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.params.BaseBet.String()+"/"+tt.params.MaxBet.String(), func(t *testing.T) {
			maxLosses, err := s.CalculateMaxConsecutiveLosses(tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, maxLosses)
		})
	}
}

func TestService_Report(t *testing.T) {
	s := New()

	report, err := s.Report(nil, DefaultParams())
	require.NoError(t, err)

	assert.Equal(t, domain.ActionBet, report.NextAction.Action)
	assert.Equal(t, `Martingale "Bet on 1"`, report.Configuration.StrategyName)
	assert.Equal(t, "1", report.Configuration.WinningResult)
	assert.Equal(t, 9, report.Configuration.MaxConsecutiveLosses)
	assert.Equal(t, "Double on loss, reset on win", report.Configuration.ProgressionType)
	assert.Equal(t, "1000.00", report.Configuration.MaxBet.StringFixed(2))

	_, err = s.Report(nil, params("0", "1"))
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
}
