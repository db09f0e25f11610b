package dto

import "time"

type SessionDTO struct {
	ID        int        `json:"id"`
	UserID    int        `json:"user_id"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	User      *UserDTO   `json:"user,omitempty"`
}

type SpinDTO struct {
	ID        int       `json:"id"`
	SessionID int       `json:"session_id"`
	Result    string    `json:"result"`
	BetAmount Number    `json:"bet_amount" swaggertype:"number"`
	PL        Number    `json:"pl" swaggertype:"number"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SpinRequestDTO documents the body of POST /api/sessions/{sessionId}/spins.
// Amounts may also be sent as numeric strings.
type SpinRequestDTO struct {
	Result    string  `json:"result" example:"1"`
	BetAmount float64 `json:"bet_amount" example:"2.00"`
	PL        float64 `json:"pl" example:"-2.00"`
}

type RunningTotalDTO struct {
	SpinID       int    `json:"spin_id"`
	PL           Number `json:"pl" swaggertype:"number"`
	RunningTotal Number `json:"running_total" swaggertype:"number"`
}

type StatisticsDTO struct {
	TotalSpins        int    `json:"total_spins"`
	WinningSpins      int    `json:"winning_spins"`
	LosingSpins       int    `json:"losing_spins"`
	BreakEvenSpins    int    `json:"break_even_spins"`
	WinRatePercentage Number `json:"win_rate_percentage" swaggertype:"number"`
	TotalPL           Number `json:"total_pl" swaggertype:"number"`
	TotalBetAmount    Number `json:"total_bet_amount" swaggertype:"number"`
	LargestWin        Number `json:"largest_win" swaggertype:"number"`
	LargestLoss       Number `json:"largest_loss" swaggertype:"number"`
	AverageBet        Number `json:"average_bet" swaggertype:"number"`
	AveragePLPerSpin  Number `json:"average_pl_per_spin" swaggertype:"number"`
	IsProfitable      bool   `json:"is_profitable"`
}

type PLDataDTO struct {
	TotalPL       Number            `json:"total_pl" swaggertype:"number"`
	RunningTotals []RunningTotalDTO `json:"running_totals"`
	Statistics    StatisticsDTO     `json:"statistics"`
}

type NextActionDTO struct {
	Action            string `json:"action" example:"Bet"`
	BetAmount         Number `json:"bet_amount" swaggertype:"number"`
	Reason            string `json:"reason"`
	ConsecutiveLosses int    `json:"consecutive_losses"`
}

type StrategyConfigurationDTO struct {
	StrategyName         string `json:"strategy_name"`
	BaseBet              Number `json:"base_bet" swaggertype:"number"`
	MaxBet               Number `json:"max_bet" swaggertype:"number"`
	WinningResult        string `json:"winning_result"`
	MaxConsecutiveLosses int    `json:"max_consecutive_losses"`
	ProgressionType      string `json:"progression_type"`
}

type StrategyDTO struct {
	NextAction    NextActionDTO            `json:"next_action"`
	Configuration StrategyConfigurationDTO `json:"configuration"`
}

type SessionDetailsDTO struct {
	SessionDTO
	PLData   PLDataDTO   `json:"pl_data"`
	Strategy StrategyDTO `json:"strategy"`
	Spins    []SpinDTO   `json:"spins"`
}
