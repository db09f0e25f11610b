package domain

import "github.com/shopspring/decimal"

type NextActionKind string

const (
	ActionBet  NextActionKind = "Bet"
	ActionSkip NextActionKind = "Skip"
)

type RunningTotal struct {
	SpinID       int
	PL           decimal.Decimal
	RunningTotal decimal.Decimal
}

type Statistics struct {
	TotalSpins        int
	WinningSpins      int
	LosingSpins       int
	BreakEvenSpins    int
	WinRatePercentage decimal.Decimal
	TotalPL           decimal.Decimal
	TotalBetAmount    decimal.Decimal
	LargestWin        decimal.Decimal
	LargestLoss       decimal.Decimal
	AverageBet        decimal.Decimal
	AveragePLPerSpin  decimal.Decimal
	IsProfitable      bool
}

type NextAction struct {
	Action            NextActionKind
	BetAmount         decimal.Decimal
	Reason            string
	ConsecutiveLosses int
}

type StrategyConfiguration struct {
	StrategyName         string
	BaseBet              decimal.Decimal
	MaxBet               decimal.Decimal
	WinningResult        string
	MaxConsecutiveLosses int
	ProgressionType      string
}

// StrategyParams are the bet limits a recommendation is computed with.
type StrategyParams struct {
	BaseBet decimal.Decimal
	MaxBet  decimal.Decimal
}

type PLData struct {
	TotalPL       decimal.Decimal
	RunningTotals []RunningTotal
	Statistics    Statistics
}

type StrategyReport struct {
	NextAction    NextAction
	Configuration StrategyConfiguration
}

// SessionDetails is a session enriched with its profit/loss analysis and
// the next bet recommendation.
type SessionDetails struct {
	Session  *Session
	PLData   PLData
	Strategy StrategyReport
}

// StrategyOverrides replaces the configured limits for a single request.
// Nil fields keep the configured value.
type StrategyOverrides struct {
	BaseBet *decimal.Decimal
	MaxBet  *decimal.Decimal
}

func (o StrategyOverrides) Apply(params StrategyParams) StrategyParams {
	if o.BaseBet != nil {
		params.BaseBet = *o.BaseBet
	}
	if o.MaxBet != nil {
		params.MaxBet = *o.MaxBet
	}
	return params
}
